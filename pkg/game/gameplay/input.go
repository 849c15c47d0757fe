package gameplay

import (
	engineinput "ruins/pkg/engine/input"
	"ruins/pkg/game/state"
)

// ProcessIntent runs a turn-consuming command against the game and returns
// what happened. The game itself is not changed beyond the room graph;
// ApplyResult moves the player and finishes the game.
func ProcessIntent(g *state.Game, intent engineinput.Intent) Result {
	switch intent.Action {
	case engineinput.ActionMove:
		return AttemptMove(g.Rooms, g.Position, intent.Direction)

	case engineinput.ActionClear:
		return AttemptClear(g.Rooms, g.Position, intent.Direction)

	case engineinput.ActionTake:
		return Take(g.Rooms, g.Position)

	case engineinput.ActionLeave:
		return Leave(g.Rooms, g.Position)

	case engineinput.ActionNone, engineinput.ActionHelp:
	}

	return Result{Position: g.Position, Outcome: OutcomeNone}
}

// ApplyResult moves the player to the result's position and records the
// result's narration. Leaving or standing in a deadly room ends the game.
func ApplyResult(g *state.Game, res Result) {
	g.AddMessages(res.Messages)
	if res.Finished {
		g.Finished = true
	}
	g.Position = res.Position
	if g.IsDead() {
		g.Finished = true
	}
}
