package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are drawn.
type OutputMode int

// Output modes, from least to most capable.
const (
	// OutputModePlain prints ASCII without colors.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints colored, boxed output once.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen table.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode for the current process from the
// flags, the environment and whether stdin and stdout are terminals.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, os.LookupEnv, isTerminal(os.Stdout), isTerminal(os.Stdin))
}

func detectOutputMode(
	forceColor, noColor, plain bool,
	lookupEnv func(string) (string, bool),
	stdoutTTY, stdinTTY bool,
) OutputMode {
	if plain {
		return OutputModePlain
	}

	_, noColorEnv := lookupEnv("NO_COLOR")
	termEnv, _ := lookupEnv("TERM")
	if noColor || noColorEnv || termEnv == "dumb" {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}

	if !stdoutTTY {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}

	if _, ci := lookupEnv("CI"); ci || !stdinTTY {
		return OutputModeStyled
	}

	return OutputModeInteractive
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
