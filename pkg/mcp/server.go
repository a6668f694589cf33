package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/duynguyendang/plantcurator/pkg/matcher"
	"github.com/duynguyendang/plantcurator/pkg/render"
	"github.com/duynguyendang/plantcurator/pkg/service"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer exposes the recommender to MCP clients.
type MCPServer struct {
	recommender *service.Recommender
}

// NewMCPServer registers the plant tools and resources on a fresh MCP server.
func NewMCPServer(rec *service.Recommender) *server.MCPServer {
	s := server.NewMCPServer(
		"plantcurator",
		"0.1.0",
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
	)
	ms := &MCPServer{recommender: rec}

	// --- Resources ---

	s.AddResource(
		mcp.NewResource(
			"plants://questions",
			"Preference Questions",
			mcp.WithResourceDescription("The six preference questions with their answer codes and labels"),
			mcp.WithMIMEType("application/json"),
		),
		ms.handleQuestionsResource,
	)

	// --- Tools ---

	recommendOpts := []mcp.ToolOption{
		mcp.WithDescription("Recommend up to three indoor plants for six preference answers. " +
			"Each answer accepts the short code or the full label; see list_questions."),
		mcp.WithString("mode", mcp.Description("scored (partial matches, best first) or exact (all six must match)"),
			mcp.Enum(string(matcher.ModeScored), string(matcher.ModeExact))),
	}
	for _, q := range vocab.Questions() {
		codes := make([]string, 0, len(q.Options()))
		for _, o := range q.Options() {
			codes = append(codes, o.Code)
		}
		recommendOpts = append(recommendOpts, mcp.WithString(q.Key, mcp.Required(),
			mcp.Description(fmt.Sprintf("%s (one of %s)", q.Title, strings.Join(codes, ", ")))))
	}
	s.AddTool(mcp.NewTool("recommend_plants", recommendOpts...), ms.handleRecommend)

	s.AddTool(
		mcp.NewTool(
			"list_questions",
			mcp.WithDescription("List the six preference questions and their answer options."),
		),
		ms.handleListQuestions,
	)

	s.AddTool(
		mcp.NewTool(
			"list_plants",
			mcp.WithDescription("List every plant in the catalog with its six attribute codes."),
		),
		ms.handleListPlants,
	)

	return s
}

// Run starts the MCP server on Stdio. It returns when ctx is cancelled or stdin closes.
func Run(ctx context.Context, rec *service.Recommender) error {
	slog.Info("Starting MCP server on Stdio")
	return Serve(ctx, rec, os.Stdin, os.Stdout)
}

// Serve speaks MCP over in and out until ctx is cancelled or in reaches EOF.
func Serve(ctx context.Context, rec *service.Recommender, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(NewMCPServer(rec)).Listen(ctx, in, out)
}

// --- Resource Handlers ---

func (ms *MCPServer) handleQuestionsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, err := questionsJSON()
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}

// --- Tool Handlers ---

func (ms *MCPServer) handleRecommend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	answers := matcher.Answers{}
	for _, q := range vocab.Questions() {
		v, _ := args[q.Key].(string)
		answers[q.Key] = v
	}
	mode, _ := args["mode"].(string)

	view, err := ms.recommender.Recommend(ctx, service.Request{Answers: answers, Mode: mode})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	if err := render.WriteText(&sb, view, render.TextOptions{}); err != nil {
		return nil, fmt.Errorf("failed to render result: %w", err)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (ms *MCPServer) handleListQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := questionsJSON()
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

func (ms *MCPServer) handleListPlants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cat, err := ms.recommender.Catalog()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("catalog unavailable: %v", err)), nil
	}
	if cat.IsEmpty() {
		return mcp.NewToolResultText("The catalog is empty."), nil
	}

	var formatted []string
	for _, r := range cat.Records() {
		attrs := r.Attributes()
		formatted = append(formatted, fmt.Sprintf("%s: %s", r.KoreanName, strings.Join(attrs[:], " / ")))
	}
	return mcp.NewToolResultText(strings.Join(formatted, "\n")), nil
}

type questionDoc struct {
	Key     string         `json:"key"`
	Title   string         `json:"title"`
	Options []vocab.Option `json:"options"`
}

func questionsJSON() (string, error) {
	var docs []questionDoc
	for _, q := range vocab.Questions() {
		docs = append(docs, questionDoc{Key: q.Key, Title: q.Title, Options: q.Options()})
	}
	jsonBytes, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal questions: %w", err)
	}
	return string(jsonBytes), nil
}
