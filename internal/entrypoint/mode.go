package entrypoint

import (
	"errors"
	"fmt"
)

// Mode selects how the marker line of the template is handled.
type Mode string

const (
	// ModeVite replaces the marker line with module script tags.
	ModeVite Mode = "vite"
	// ModeTrunk removes the marker line.
	ModeTrunk Mode = "trunk"
)

// ErrInvalidMode is returned by ParseMode for anything but a known mode.
var ErrInvalidMode = errors.New("invalid build mode")

// ParseMode validates s as a build mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeVite, ModeTrunk:
		return m, nil
	}
	return "", fmt.Errorf("%w %q, must be one of %q or %q", ErrInvalidMode, s, ModeVite, ModeTrunk)
}

// Title is the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeVite:
		return "Vite"
	case ModeTrunk:
		return "Trunk"
	}
	return string(m)
}
