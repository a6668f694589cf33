package repl

import "github.com/duynguyendang/plantcurator/pkg/matcher"

// Config holds configuration for the interactive questionnaire.
type Config struct {
	// Mode is the match mode the session starts in.
	Mode matcher.Mode
	// Color enables ANSI colors in result output.
	Color bool
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Mode: matcher.ModeScored,
	}
}
