package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"ruins/pkg/engine/terminal"
	"ruins/pkg/game/renderer"
	"ruins/pkg/game/state"
)

// Options controls how the TUI renderer writes
type Options struct {
	// Color enables ANSI styling. Ignored when Out is not a terminal
	// unless ForceColor is set.
	Color      bool
	ForceColor bool

	// StatusLine prints a compact exits summary under each room description
	StatusLine bool

	// Width of the separator rule; 0 uses the terminal width
	Width int
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	opts Options

	useColor bool
	width    int

	colorTitle   color.Style
	colorRoom    color.Style
	colorSubtle  color.Style
	colorSuccess color.Style
	colorDenied  color.Style
	colorDanger  color.Style
}

// New creates a new TUI renderer writing to out
func New(out io.Writer, opts Options) *TUIRenderer {
	return &TUIRenderer{out: out, opts: opts}
}

// Init initializes the TUI renderer (colors, width)
func (t *TUIRenderer) Init() {
	t.useColor = t.opts.Color && (t.opts.ForceColor || terminal.IsTerminal(t.out))

	t.width = t.opts.Width
	if t.width <= 0 {
		t.width = terminal.DefaultWidth
		if terminal.IsTerminal(t.out) {
			t.width = terminal.GetWidth()
		}
	}

	t.colorTitle = color.Style{color.FgYellow, color.OpBold}
	t.colorRoom = color.Style{color.FgCyan}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorSuccess = color.Style{color.FgGreen}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorDanger = color.Style{color.FgRed, color.BgBlack, color.OpBold}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if !t.useColor {
		return text
	}
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleDanger:
		return t.colorDanger.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string, style renderer.TextStyle) {
	fmt.Fprintln(t.out, t.StyleText(msg, style))
}

// RenderMessages prints the turn's message log
func (t *TUIRenderer) RenderMessages(g *state.Game, style renderer.TextStyle) {
	for _, msg := range g.Messages {
		t.ShowMessage(msg, style)
	}
}

// RenderFrame describes the current room
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	room := g.CurrentRoom()
	if room == nil {
		return
	}

	if t.opts.StatusLine {
		t.printRule()
	}

	style := renderer.StyleRoom
	if room.IsDeadly() {
		style = renderer.StyleDanger
	}
	t.ShowMessage(renderer.DescribeRoom(room), style)

	if t.opts.StatusLine {
		t.ShowMessage(renderer.ExitsStatusLine(room), renderer.StyleSubtle)
	}
}

// Prompt writes the input prompt without a newline
func (t *TUIRenderer) Prompt() {
	fmt.Fprint(t.out, t.StyleText("> ", renderer.StyleSubtle))
}

// printRule prints a horizontal separator across the output width
func (t *TUIRenderer) printRule() {
	t.ShowMessage(strings.Repeat("─", t.width), renderer.StyleSubtle)
}
