package cli

import "os"

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// resolveColor determines whether to use color output.
// colorFlag is "auto", "always", or "never"; auto only colors a terminal stdout.
func resolveColor(colorFlag string, toStdout bool) bool {
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default:
		return toStdout && isStdoutTTY()
	}
}
