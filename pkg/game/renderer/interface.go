// Package renderer draws the cage. Backends implement Renderer; the package
// level helpers forward to the active one.
package renderer

import (
	"fmt"

	"hamstercage/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleSubtle
	StyleOccupied
	StyleHouse
	StyleFood
	StyleWheel
	StyleTube
	StyleSpawner
	StyleHamster
	StyleObject
	StyleHeading
)

// Renderer defines the interface for cage rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders the map, status bar and message log
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup. Without a renderer the markup is
// left in place.
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return fmt.Sprintf(msg, args...)
}
