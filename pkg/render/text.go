package render

import (
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// TextOptions controls plain-text rendering.
type TextOptions struct {
	Color bool
}

// WriteText renders v for a terminal, in ranking order.
//
//	✅ 추천 결과
//	🎊 ...
//	1. 스킨답서스  (5/6)
//	  🌿 난이도: 하 | ☀️ 빛: 중간 | 📏 크기: 소
//	  💨 공기정화: 보통 | 🐶 안전성: 주의 | 📈 생장 속도: 빠름
//	  💡 일반 관리 팁: ...
//	  ⚠️ 잎 변색 시 대처법: ...
func WriteText(w io.Writer, v *ResultView, opts TextOptions) error {
	paint := func(color, s string) string {
		if !opts.Color {
			return s
		}
		return color + s + colorReset
	}

	var sb strings.Builder
	if v.Ranked {
		sb.WriteString(paint(colorBold, ResultsHeader))
		sb.WriteString("\n")
	}
	for _, m := range v.Messages {
		sb.WriteString(paint(levelColor(m.Level), m.Text))
		sb.WriteString("\n")
	}

	for _, p := range v.Plants {
		header := fmt.Sprintf("%d. %s", p.Rank, p.Name)
		if p.ShowScore {
			header += "  " + paint(colorGray, "("+p.ScoreText()+")")
		}
		sb.WriteString("\n")
		sb.WriteString(paint(colorBold, header))
		sb.WriteString("\n")

		for _, line := range attributeLines(p.Attributes) {
			sb.WriteString("  " + paint(colorCyan, line) + "\n")
		}
		if p.Image.Available {
			sb.WriteString("  🖼️ " + p.Image.File + "\n")
		} else {
			sb.WriteString("  " + paint(colorYellow, p.Image.Warning) + "\n")
		}
		sb.WriteString("  " + paint(colorYellow, "💡 일반 관리 팁: "+p.ManagementTip) + "\n")
		sb.WriteString("  " + paint(colorRed, "⚠️ 잎 변색 시 대처법: "+p.DiscolorationTip) + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// attributeLines groups the six attributes three per line.
func attributeLines(attrs []AttributeView) []string {
	var lines []string
	for i := 0; i < len(attrs); i += 3 {
		end := min(i+3, len(attrs))
		parts := make([]string, 0, 3)
		for _, a := range attrs[i:end] {
			parts = append(parts, fmt.Sprintf("%s: %s", a.Short, a.Code))
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return lines
}

func levelColor(l Level) string {
	switch l {
	case LevelSuccess:
		return colorGreen
	case LevelWarning:
		return colorYellow
	case LevelError:
		return colorRed
	}
	return colorCyan
}
