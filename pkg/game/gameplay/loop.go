package gameplay

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	engineinput "ruins/pkg/engine/input"
	"ruins/pkg/game/locale"
	"ruins/pkg/game/renderer"
	"ruins/pkg/game/state"
)

// CommandSource supplies player commands. Next blocks until a line is
// available.
type CommandSource interface {
	Next() (engineinput.Intent, error)
}

// prompter is implemented by renderers that can show an input prompt
type prompter interface {
	Prompt()
}

// Loop drives a game turn by turn
type Loop struct {
	Game  *state.Game
	Input CommandSource
	Out   renderer.Renderer
	Log   *zap.Logger

	// Prompt shows an input prompt before each read, if the renderer has one
	Prompt bool
}

// NewLoop wires a loop. A nil logger discards log output.
func NewLoop(g *state.Game, in CommandSource, out renderer.Renderer, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{Game: g, Input: in, Out: out, Log: log}
}

// Run plays turns until the game ends, then shows the closing line.
// Errors come only from the command source or a cancelled context.
func (l *Loop) Run(ctx context.Context) (Ending, error) {
	for l.Game.IsActive() {
		if err := ctx.Err(); err != nil {
			return EndingNone, err
		}
		if err := l.PlayTurn(); err != nil {
			return EndingNone, err
		}
	}

	ending := EndingOf(l.Game)
	style := renderer.StyleSuccess
	if !ending.Won() {
		style = renderer.StyleDanger
	}
	l.Out.ShowMessage(ending.Message(), style)

	l.Log.Info("game over",
		zap.Stringer("ending", ending),
		zap.Int("turns", l.Game.Turn),
		zap.Stringer("position", l.Game.Position),
	)
	return ending, nil
}

// PlayTurn describes the room, spreads the infestation, then reads and
// carries out one command
func (l *Loop) PlayTurn() error {
	g := l.Game
	g.Turn++
	g.ClearMessages()

	l.Out.RenderFrame(g)

	grown := Spread(g.Rooms)
	l.Log.Debug("infestation spread",
		zap.Int("turn", g.Turn),
		zap.Ints("grown", grown),
	)

	intent, err := l.readCommand()
	if err != nil {
		return fmt.Errorf("turn %d: %w", g.Turn, err)
	}

	res := ProcessIntent(g, intent)
	if ce := l.Log.Check(zap.DebugLevel, "command"); ce != nil {
		ce.Write(
			zap.Int("turn", g.Turn),
			zap.String("action", engineinput.ActionName(intent.Action)),
			zap.String("code", intent.Code),
			zap.Stringer("from", g.Position),
			zap.Stringer("to", res.Position),
			zap.Stringer("outcome", res.Outcome),
			zap.Int("open_rooms", g.Rooms.Reachable(res.Position).Size()),
		)
	}

	ApplyResult(g, res)

	style := renderer.StyleDenied
	if res.Outcome.Succeeded() {
		style = renderer.StyleSuccess
	}
	l.Out.RenderMessages(g, style)
	if g.IsDead() {
		l.Out.RenderFrame(g)
	}
	return nil
}

// readCommand reads until a turn-consuming command arrives. Help and
// unknown input are answered here and do not use up the turn.
func (l *Loop) readCommand() (engineinput.Intent, error) {
	for {
		if p, ok := l.Out.(prompter); ok && l.Prompt {
			p.Prompt()
		}

		intent, err := l.Input.Next()
		if err != nil {
			return engineinput.Intent{}, err
		}

		if intent.IsTurn() {
			return intent, nil
		}

		if intent.Action == engineinput.ActionHelp {
			renderer.ShowMessages(l.Out, renderer.HelpLines(), renderer.StyleSubtle)
			renderer.ShowMessages(l.Out, renderer.BindingLines(), renderer.StyleSubtle)
			continue
		}
		l.Log.Debug("unrecognised command", zap.String("code", intent.Code))
		l.Out.ShowMessage(locale.Get("UNKNOWN_COMMAND"), renderer.StyleDenied)
	}
}

// Intro shows the title banner
func Intro(out renderer.Renderer) {
	lines := renderer.Banner()
	for i, line := range lines {
		style := renderer.StyleNormal
		if i == 0 {
			style = renderer.StyleTitle
		}
		out.ShowMessage(line, style)
	}
}
