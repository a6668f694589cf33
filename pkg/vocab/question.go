package vocab

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/duynguyendang/plantcurator/pkg/common/errors"
	"golang.org/x/text/unicode/norm"
)

// Unselected is the placeholder choice shown before the user answers a question.
const Unselected = "-- 선택 --"

// NumQuestions is the number of preference questions, and so the maximum match score.
const NumQuestions = 6

// QuestionID identifies a question. Its value is also the attribute index used by the matcher.
type QuestionID int

const (
	QDifficulty QuestionID = iota
	QLight
	QSize
	QAirPurifying
	QPetSafe
	QGrowthSpeed
)

// Option is one selectable answer: the catalog code plus its display label.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Question describes a single form control.
type Question struct {
	ID    QuestionID `json:"id"`
	Key   string     `json:"key"`
	Title string     `json:"title"`
	Group string     `json:"group"`
	Short string     `json:"short"`

	options []Option
}

var questions = []Question{
	{ID: QDifficulty, Key: "difficulty", Title: "Q1. 관리 난이도", Group: "✅ 관리 성향/환경", Short: "🌿 난이도", options: difficultyOptions},
	{ID: QLight, Key: "light_level", Title: "Q2. 햇빛 량", Group: "✅ 관리 성향/환경", Short: "☀️ 빛", options: lightOptions},
	{ID: QSize, Key: "size", Title: "Q3. 식물 크기", Group: "💡 추가 조건", Short: "📏 크기", options: sizeOptions},
	{ID: QAirPurifying, Key: "air_purifying", Title: "Q4. 공기정화 능력", Group: "💡 추가 조건", Short: "💨 공기정화", options: airOptions},
	{ID: QPetSafe, Key: "pet_safe", Title: "Q5. 반려동물/아이 안전", Group: "⚠️ 생활 환경", Short: "🐶 안전성", options: petOptions},
	{ID: QGrowthSpeed, Key: "growth_speed", Title: "Q6. 생장 속도", Group: "⚠️ 생활 환경", Short: "📈 생장 속도", options: growthOptions},
}

// Questions returns the six questions in form order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionByKey finds a question by its catalog field name.
func QuestionByKey(key string) (Question, bool) {
	for _, q := range questions {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

// Options returns the answers in display order.
func (q Question) Options() []Option {
	out := make([]Option, len(q.options))
	copy(out, q.options)
	return out
}

// Label returns the display label for code, or code itself if it is not an option.
func (q Question) Label(code string) string {
	return labelOf(q.options, code)
}

// Parse resolves a raw form value to a catalog code.
// Both the code and the long label are accepted. An empty value or the Unselected
// placeholder reports selected=false without error. Anything else that is not an option of
// this question is an invalid-input error carrying the closest option as a hint.
func (q Question) Parse(raw string) (code string, selected bool, err error) {
	n := Normalize(raw)
	if n == "" || n == Unselected {
		return "", false, nil
	}
	for _, o := range q.options {
		if n == o.Code || n == Normalize(o.Label) {
			return o.Code, true, nil
		}
	}
	if s, ok := q.Suggest(n); ok {
		return "", false, fmt.Errorf("%w: %s: unknown option %q (did you mean %q?)", errors.ErrInvalidInput, q.Key, raw, s.Code)
	}
	return "", false, fmt.Errorf("%w: %s: unknown option %q", errors.ErrInvalidInput, q.Key, raw)
}

// Suggest returns the option closest to raw by edit distance over both codes and labels.
func (q Question) Suggest(raw string) (Option, bool) {
	n := Normalize(raw)
	if n == "" || len(q.options) == 0 {
		return Option{}, false
	}

	best := -1
	bestDist := 0
	for i, o := range q.options {
		for _, candidate := range []string{o.Code, Normalize(o.Label)} {
			d := levenshtein.Distance(n, candidate, nil)
			if best < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
	}
	// A suggestion further away than the input is long is noise.
	if bestDist > len([]rune(n)) {
		return Option{}, false
	}
	return q.options[best], true
}

// Normalize trims surrounding space and composes Hangul into NFC so that values typed on
// systems emitting decomposed jamo compare equal to the stored codes.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
