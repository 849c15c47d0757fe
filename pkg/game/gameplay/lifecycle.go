package gameplay

import (
	"ruins/pkg/game/locale"
	"ruins/pkg/game/setup"
	"ruins/pkg/game/state"
)

// Ending is how a finished game ended
type Ending int

const (
	EndingNone Ending = iota
	EndingVoid
	EndingDead
	EndingEscaped
)

// String returns a short name for logs
func (e Ending) String() string {
	switch e {
	case EndingVoid:
		return "void"
	case EndingDead:
		return "dead"
	case EndingEscaped:
		return "escaped"
	default:
		return "none"
	}
}

// Message returns the closing line for the ending
func (e Ending) Message() string {
	switch e {
	case EndingVoid:
		return locale.Get("END_VOID")
	case EndingDead:
		return locale.Get("END_DEAD")
	case EndingEscaped:
		return locale.Get("END_ESCAPED")
	default:
		return ""
	}
}

// Won returns true for the treasure escape
func (e Ending) Won() bool {
	return e == EndingEscaped
}

// EndingOf classifies a game that is no longer active. The void wins over
// death, and death wins over a successful leave on the same turn.
func EndingOf(g *state.Game) Ending {
	switch {
	case g.IsActive():
		return EndingNone
	case g.InVoid():
		return EndingVoid
	case g.IsDead():
		return EndingDead
	default:
		return EndingEscaped
	}
}

// BuildGame creates a new game on a fresh copy of the map's rooms, with
// the player at the map's start
func BuildGame(m *setup.RuinsMap) *state.Game {
	return state.NewGame(m.NewGraph(), m.Start)
}
