// Package render turns ranked matches into display-ready views shared by the web page,
// the JSON API, the CLI, and the MCP tools.
package render

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/duynguyendang/plantcurator/pkg/catalog"
	"github.com/duynguyendang/plantcurator/pkg/matcher"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
)

// Level is the severity of a message box.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Message is a single user-facing notice.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// AttributeView shows one raw catalog field next to its label.
type AttributeView struct {
	Key   string `json:"key"`
	Short string `json:"short"`
	Code  string `json:"code"`
	// Label is the answer text for Code, or Code itself when it is not an option.
	Label string `json:"label"`
}

// ImageView describes the outcome of looking for a record's image.
type ImageView struct {
	File      string `json:"file,omitempty"`
	URL       string `json:"url,omitempty"`
	Available bool   `json:"available"`
	Warning   string `json:"warning,omitempty"`
}

// PlantView is one ranked result.
type PlantView struct {
	Rank             int             `json:"rank"`
	Name             string          `json:"name"`
	Score            int             `json:"score"`
	ShowScore        bool            `json:"show_score"`
	Attributes       []AttributeView `json:"attributes"`
	ManagementTip    string          `json:"management_tip"`
	DiscolorationTip string          `json:"discoloration_tip"`
	Image            ImageView       `json:"image"`
}

// ScoreText formats the score as "n/6".
func (p PlantView) ScoreText() string { return FormatScore(p.Score) }

// ResultView is everything needed to draw the results area.
type ResultView struct {
	Mode        matcher.Mode `json:"mode"`
	AllSelected bool         `json:"all_selected"`
	Ranked      bool         `json:"ranked"`
	Messages    []Message    `json:"messages"`
	Plants      []PlantView  `json:"plants"`
}

// Add appends a message.
func (v *ResultView) Add(level Level, text string) {
	v.Messages = append(v.Messages, Message{Level: level, Text: text})
}

// NewPlantView builds the view of the rank-th result (1-based).
// imagesDir is probed on disk; urlPrefix is prepended to the image file for the web page.
func NewPlantView(rank int, m matcher.ScoredMatch, mode matcher.Mode, imagesDir, urlPrefix string) PlantView {
	r := m.Record
	attrs := r.Attributes()

	pv := PlantView{
		Rank:             rank,
		Name:             r.KoreanName,
		Score:            m.Score,
		ShowScore:        mode == matcher.ModeScored,
		ManagementTip:    orDefault(r.ManagementTip, NoManagementTip),
		DiscolorationTip: orDefault(r.DiscolorationTip, NoDiscolorationTip),
		Image:            ProbeImage(imagesDir, urlPrefix, r),
	}
	for _, q := range vocab.Questions() {
		pv.Attributes = append(pv.Attributes, AttributeView{
			Key:   q.Key,
			Short: q.Short,
			Code:  attrs[q.ID],
			Label: q.Label(attrs[q.ID]),
		})
	}
	return pv
}

// ProbeImage checks whether the record's image exists under imagesDir.
// A missing image only produces a warning; it never fails the page.
func ProbeImage(imagesDir, urlPrefix string, r catalog.PlantRecord) ImageView {
	if r.ImageFile == "" {
		return ImageView{Warning: NoImageRegistered}
	}
	iv := ImageView{File: r.ImageFile}

	file, ok := catalog.ImagePath(imagesDir, r.ImageFile)
	if !ok {
		iv.Warning = ImageNotFound(r.ImageFile)
		return iv
	}
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		iv.Warning = ImageNotFound(file)
		return iv
	}

	iv.Available = true
	if urlPrefix != "" {
		iv.URL = ImageURL(urlPrefix, r.ImageFile)
	}
	return iv
}

// ImageURL joins urlPrefix and a local image path, escaping each segment so names holding
// '#', '?' or spaces still reach the file server.
func ImageURL(urlPrefix, file string) string {
	segs := strings.Split(filepath.ToSlash(file), "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return path.Join(urlPrefix, strings.Join(segs, "/"))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
