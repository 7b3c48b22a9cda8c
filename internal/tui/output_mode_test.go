package tui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode(t *testing.T) {
	tty := func(*os.File) bool { return true }
	pipe := func(*os.File) bool { return false }
	stdinPiped := func(f *os.File) bool { return f == os.Stdout }

	env := func(vars map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
	}

	tests := []struct {
		name          string
		forcePlain    bool
		noColor       bool
		noInteractive bool
		env           map[string]string
		isTTY         func(*os.File) bool
		want          OutputMode
	}{
		{name: "terminal", isTTY: tty, want: OutputModeInteractive},
		{name: "forced plain", forcePlain: true, isTTY: tty, want: OutputModePlain},
		{name: "no color flag", noColor: true, isTTY: tty, want: OutputModePlain},
		{name: "NO_COLOR set", env: map[string]string{"NO_COLOR": ""}, isTTY: tty, want: OutputModePlain},
		{name: "dumb terminal", env: map[string]string{"TERM": "dumb"}, isTTY: tty, want: OutputModePlain},
		{name: "piped stdout", isTTY: pipe, want: OutputModePlain},
		{name: "CI", env: map[string]string{"CI": "true"}, isTTY: tty, want: OutputModeStyled},
		{name: "no interactive flag", noInteractive: true, isTTY: tty, want: OutputModeStyled},
		{name: "piped stdin", isTTY: stdinPiped, want: OutputModeStyled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectOutputMode(tt.forcePlain, tt.noColor, tt.noInteractive, env(tt.env), tt.isTTY)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(99).String())
}
