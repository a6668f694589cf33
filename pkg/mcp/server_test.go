package mcp

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/duynguyendang/plantcurator/internal/manager"
	"github.com/duynguyendang/plantcurator/pkg/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMCP(t *testing.T) *MCPServer {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "plants_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
	  {"korean_name": "스킨답서스", "difficulty": "하", "light_level": "중간", "size": "소",
	   "air_purifying": "보통", "pet_safe": "주의", "growth_speed": "빠름"}]`), 0644))

	m, err := manager.NewCatalogManager(1)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	rec := service.NewRecommender(m, service.Options{CatalogPath: path, ImagesDir: filepath.Join(dir, "images")})
	return &MCPServer{recommender: rec}
}

func callTool(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestRecommendTool(t *testing.T) {
	ms := setupMCP(t)

	res, err := ms.handleRecommend(context.Background(), callTool(map[string]any{
		"difficulty":    "하",
		"light_level":   "간접광이 들어오는 실내 중간 🌥️",
		"size":          "소",
		"air_purifying": "보통",
		"pet_safe":      "주의",
		"growth_speed":  "느림",
		"mode":          "scored",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "1. 스킨답서스  (5/6)")
}

func TestRecommendTool_InvalidAnswer(t *testing.T) {
	ms := setupMCP(t)

	res, err := ms.handleRecommend(context.Background(), callTool(map[string]any{"size": "huge"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestListTools(t *testing.T) {
	ms := setupMCP(t)

	res, err := ms.handleListQuestions(context.Background(), callTool(nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), `"key": "growth_speed"`)

	res, err = ms.handleListPlants(context.Background(), callTool(nil))
	require.NoError(t, err)
	assert.Equal(t, "스킨답서스: 하 / 중간 / 소 / 보통 / 주의 / 빠름", resultText(t, res))
}

func TestNewMCPServer(t *testing.T) {
	ms := setupMCP(t)
	assert.NotNil(t, NewMCPServer(ms.recommender))
}

func TestServe_AnswersAndStopsOnCancel(t *testing.T) {
	ms := setupMCP(t)
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	t.Cleanup(func() {
		inW.Close()
		outR.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ms.recommender, inR, outW) }()

	lines := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(outR).ReadString('\n')
		lines <- line
	}()

	_, err := inW.Write([]byte(`{"jsonrpc":"2.0","id":7,"method":"ping"}` + "\n"))
	require.NoError(t, err)

	select {
	case line := <-lines:
		assert.Contains(t, line, `"id":7`)
	case <-time.After(5 * time.Second):
		t.Fatal("no response to ping")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Serve kept running after cancel")
	}
}
