package yso

import (
	"github.com/KimNorgaard/go-yso/internal/formatter"
	"github.com/fatih/color"
)

// Colors holds one formatting function per part of the output. A nil
// function leaves that part uncolored.
type Colors = formatter.Colors

// NewColors returns the default ANSI color scheme. Passing colors is an
// explicit request for them, so the scheme ignores color.NoColor and
// terminal detection.
func NewColors() *Colors {
	return &Colors{
		Comment: rgb(96, 96, 96),
		Section: rgb(255, 0, 196),
		Key:     rgb(128, 216, 236),
		Sep:     rgb(128, 168, 196),
		Value:   rgb(196, 96, 16),
		Block:   rgb(88, 158, 86),
	}
}

func rgb(r, g, b int) func(string, ...any) string {
	c := color.RGB(r, g, b)
	c.EnableColor()
	return c.SprintfFunc()
}
