// Package gameplay provides core game logic: movement, exit clearing,
// taking treasure, leaving, the infestation spread and the turn loop.
package gameplay

import (
	"ruins/pkg/engine/world"
)

// Outcome names which rule decided the result of a command
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVoid

	// Movement
	OutcomeMoved
	OutcomeNoExit
	OutcomeExitBlocked
	OutcomeNoRoom
	OutcomeNoEntrance
	OutcomeEntranceBlocked

	// Clearing
	OutcomeCleared
	OutcomeFarSideBlocked
	OutcomeClearNoEntrance
	OutcomeAlreadyClear

	// Take / leave
	OutcomeTaken
	OutcomeNothingToTake
	OutcomeLeft
	OutcomeNeedEntrance
	OutcomeMissingTreasure
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:            "none",
	OutcomeVoid:            "void",
	OutcomeMoved:           "moved",
	OutcomeNoExit:          "no-exit",
	OutcomeExitBlocked:     "exit-blocked",
	OutcomeNoRoom:          "no-room",
	OutcomeNoEntrance:      "no-entrance",
	OutcomeEntranceBlocked: "entrance-blocked",
	OutcomeCleared:         "cleared",
	OutcomeFarSideBlocked:  "far-side-blocked",
	OutcomeClearNoEntrance: "clear-no-entrance",
	OutcomeAlreadyClear:    "already-clear",
	OutcomeTaken:           "taken",
	OutcomeNothingToTake:   "nothing-to-take",
	OutcomeLeft:            "left",
	OutcomeNeedEntrance:    "need-entrance",
	OutcomeMissingTreasure: "missing-treasure",
}

// String returns a short name for logs
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Succeeded returns true if the command changed the world as asked
func (o Outcome) Succeeded() bool {
	switch o {
	case OutcomeMoved, OutcomeCleared, OutcomeTaken, OutcomeLeft:
		return true
	default:
		return false
	}
}

// Result is what a command produced: the player's new position, whether
// the game is over, and the narration for the player
type Result struct {
	Position world.Position
	Outcome  Outcome
	Finished bool
	Messages []string
}

// result builds a single-message result
func result(pos world.Position, outcome Outcome, msg string) Result {
	return Result{
		Position: pos,
		Outcome:  outcome,
		Messages: []string{msg},
	}
}
