package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned for unrecognized --color values.
var ErrInvalidMode = errors.New("invalid color mode")

// Mode is the user's color preference.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode parses auto, always or never. An empty string means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (use auto, always or never)", ErrInvalidMode, s)
	}
}

// Enabled decides whether colors are used. In auto mode colors are off when
// NO_COLOR is set, when TERM is "dumb", or when the output is not a terminal.
func (m Mode) Enabled(isTerminal bool, getenv func(string) string) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}

	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal
}
