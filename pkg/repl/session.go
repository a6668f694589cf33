package repl

import (
	"github.com/duynguyendang/plantcurator/pkg/matcher"
	"github.com/duynguyendang/plantcurator/pkg/render"
)

// Session holds the answers given so far and the last result shown.
type Session struct {
	Answers matcher.Answers
	Mode    matcher.Mode

	// LastResult is the most recent result view, nil before the first run.
	LastResult *render.ResultView
}

// NewSession creates an empty session in the given mode.
func NewSession(mode matcher.Mode) *Session {
	return &Session{
		Answers: matcher.Answers{},
		Mode:    mode,
	}
}

// Reset clears every answer but keeps the mode.
func (s *Session) Reset() {
	s.Answers = matcher.Answers{}
	s.LastResult = nil
}

// Record stores the outcome of a run.
func (s *Session) Record(view *render.ResultView) {
	s.LastResult = view
}
