package editor

import (
	"log/slog"

	"github.com/iw2rmb/waypoint/navhistory"
)

// Document is a named text opened at construction time.
type Document struct {
	Name string
	Text string
}

// Config configures the editor Model.
type Config struct {
	Documents []Document

	// Limits is consulted on every cursor move so hosts can feed live
	// settings. Nil means navhistory.DefaultLimits.
	Limits func() navhistory.Limits

	// Rendering options.
	ShowLineNums bool
	TabWidth     int // default: 4
	Style        Style

	// KeyMap defaults to DefaultKeyMap when it has no cursor bindings.
	KeyMap KeyMap

	Clipboard Clipboard

	// OnJump is called after every effective Back/Forward navigation.
	OnJump func(JumpEvent)

	Logger *slog.Logger
}

func (c Config) limits() navhistory.Limits {
	if c.Limits == nil {
		return navhistory.DefaultLimits()
	}
	return c.Limits()
}
