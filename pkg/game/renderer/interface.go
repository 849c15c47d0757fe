package renderer

import (
	"ruins/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleRoom
	StyleSubtle
	StyleSuccess
	StyleDenied
	StyleDanger
)

// Renderer defines the interface for game output backends.
// The game loop owns one and hands it every line it wants shown.
type Renderer interface {
	// Init prepares the renderer (colours, width)
	Init()

	// RenderFrame describes the player's current room
	RenderFrame(g *state.Game)

	// ShowMessage displays one line of narration in the given style
	ShowMessage(msg string, style TextStyle)

	// RenderMessages displays the game's message log for the turn
	RenderMessages(g *state.Game, style TextStyle)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// ShowMessages displays each line in order with the same style
func ShowMessages(r Renderer, msgs []string, style TextStyle) {
	for _, m := range msgs {
		r.ShowMessage(m, style)
	}
}
