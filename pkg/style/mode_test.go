package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"Always", ModeAlways},
		{"NEVER", ModeNever},
		{" never ", ModeNever},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}

	_, err := ParseMode("sometimes")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestMode_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		terminal bool
		env      map[string]string
		expected bool
	}{
		{name: "always on pipe", mode: ModeAlways, terminal: false, expected: true},
		{name: "always ignores NO_COLOR", mode: ModeAlways, env: map[string]string{"NO_COLOR": "1"}, expected: true},
		{name: "never on terminal", mode: ModeNever, terminal: true, expected: false},
		{name: "auto on terminal", mode: ModeAuto, terminal: true, expected: true},
		{name: "auto on pipe", mode: ModeAuto, terminal: false, expected: false},
		{name: "auto with NO_COLOR", mode: ModeAuto, terminal: true, env: map[string]string{"NO_COLOR": "1"}, expected: false},
		{name: "auto with dumb terminal", mode: ModeAuto, terminal: true, env: map[string]string{"TERM": "dumb"}, expected: false},
		{name: "auto with xterm", mode: ModeAuto, terminal: true, env: map[string]string{"TERM": "xterm-256color"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.Enabled(tt.terminal, env(tt.env)))
		})
	}
}
