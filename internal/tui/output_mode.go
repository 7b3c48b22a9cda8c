package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are drawn.
type OutputMode int

const (
	// OutputModePlain prints unstyled text; used for pipes, NO_COLOR, and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints lipgloss-styled text once and exits.
	OutputModeStyled
	// OutputModeInteractive runs the full Bubble Tea program.
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

// DetectOutputMode picks an output mode from the flags and the terminal.
func DetectOutputMode(forcePlain, noColor, noInteractive bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, noInteractive, os.LookupEnv, isTerminal)
}

func detectOutputMode(
	forcePlain, noColor, noInteractive bool,
	lookupEnv func(string) (string, bool),
	isTTY func(*os.File) bool,
) OutputMode {
	if forcePlain || noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}
	if !isTTY(os.Stdout) {
		return OutputModePlain
	}
	if _, ci := lookupEnv("CI"); ci || noInteractive || !isTTY(os.Stdin) {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of stdout, or a default when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
