package matcher

import (
	"fmt"

	"github.com/duynguyendang/plantcurator/pkg/common/errors"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
)

// Answers holds the raw form values keyed by question key (for example "difficulty").
// Missing keys count as unselected.
type Answers map[string]string

// Selection is the resolved state of the six questions.
type Selection struct {
	codes    [vocab.NumQuestions]string
	selected [vocab.NumQuestions]bool
}

// AllSelected reports whether every question has a real answer.
func (s Selection) AllSelected() bool {
	for _, ok := range s.selected {
		if !ok {
			return false
		}
	}
	return true
}

// Missing returns the keys of unanswered questions in form order.
func (s Selection) Missing() []string {
	var out []string
	for _, q := range vocab.Questions() {
		if !s.selected[q.ID] {
			out = append(out, q.Key)
		}
	}
	return out
}

// Criteria converts a complete selection into match criteria.
// It fails with ErrIncompleteSelection when any question is unanswered.
func (s Selection) Criteria() (Criteria, error) {
	if !s.AllSelected() {
		return Criteria{}, fmt.Errorf("%w: missing %v", errors.ErrIncompleteSelection, s.Missing())
	}
	return Criteria{
		Difficulty:   vocab.Difficulty(s.codes[vocab.QDifficulty]),
		LightLevel:   vocab.Light(s.codes[vocab.QLight]),
		Size:         vocab.Size(s.codes[vocab.QSize]),
		AirPurifying: vocab.AirPurifying(s.codes[vocab.QAirPurifying]),
		PetSafe:      vocab.PetSafety(s.codes[vocab.QPetSafe]),
		GrowthSpeed:  vocab.GrowthSpeed(s.codes[vocab.QGrowthSpeed]),
	}, nil
}

// Resolve turns raw answers into a Selection. Every answer must be empty, the Unselected
// placeholder, or an option of its question (code or label); anything else is an error,
// never a silent non-match.
func Resolve(answers Answers) (Selection, error) {
	var sel Selection
	for _, q := range vocab.Questions() {
		code, ok, err := q.Parse(answers[q.Key])
		if err != nil {
			return Selection{}, err
		}
		sel.codes[q.ID] = code
		sel.selected[q.ID] = ok
	}
	return sel, nil
}

// Criteria is a complete, typed set of answers.
type Criteria struct {
	Difficulty   vocab.Difficulty   `json:"difficulty"`
	LightLevel   vocab.Light        `json:"light_level"`
	Size         vocab.Size         `json:"size"`
	AirPurifying vocab.AirPurifying `json:"air_purifying"`
	PetSafe      vocab.PetSafety    `json:"pet_safe"`
	GrowthSpeed  vocab.GrowthSpeed  `json:"growth_speed"`
}

// Codes returns the criteria indexed by vocab.QuestionID.
func (c Criteria) Codes() [vocab.NumQuestions]string {
	return [vocab.NumQuestions]string{
		vocab.QDifficulty:   string(c.Difficulty),
		vocab.QLight:        string(c.LightLevel),
		vocab.QSize:         string(c.Size),
		vocab.QAirPurifying: string(c.AirPurifying),
		vocab.QPetSafe:      string(c.PetSafe),
		vocab.QGrowthSpeed:  string(c.GrowthSpeed),
	}
}
