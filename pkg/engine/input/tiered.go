package input

import (
	"sort"
	"strings"

	"ruins/pkg/engine/world"
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMove

	// Exit clearing
	ActionClear

	// Room interactions
	ActionTake
	ActionLeave

	// Meta
	ActionHelp
)

// Intent is the high‑level description of what the player wants to do.
// Direction is only meaningful for ActionMove and ActionClear.
type Intent struct {
	Action    Action
	Direction world.Direction
	Code      string
}

// IsTurn returns true if carrying out the intent consumes a turn
func (i Intent) IsTurn() bool {
	switch i.Action {
	case ActionMove, ActionClear, ActionTake, ActionLeave:
		return true
	default:
		return false
	}
}

// RawInput is an event emitted directly from the input source.
// Code is the line as typed, e.g. "cn" or "clear north".
type RawInput struct {
	Code string
}

// binding is the target of one input code
type binding struct {
	action Action
	dir    world.Direction
}

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]binding{
	// Movement
	"n":     {ActionMove, world.North},
	"north": {ActionMove, world.North},
	"e":     {ActionMove, world.East},
	"east":  {ActionMove, world.East},
	"s":     {ActionMove, world.South},
	"south": {ActionMove, world.South},
	"w":     {ActionMove, world.West},
	"west":  {ActionMove, world.West},

	// Clearing
	"cn":          {ActionClear, world.North},
	"clear north": {ActionClear, world.North},
	"ce":          {ActionClear, world.East},
	"clear east":  {ActionClear, world.East},
	"cs":          {ActionClear, world.South},
	"clear south": {ActionClear, world.South},
	"cw":          {ActionClear, world.West},
	"clear west":  {ActionClear, world.West},

	// Interactions
	"t":     {ActionTake, world.North},
	"take":  {ActionTake, world.North},
	"l":     {ActionLeave, world.North},
	"leave": {ActionLeave, world.North},

	// Help
	"help": {ActionHelp, world.North},
	"?":    {ActionHelp, world.North},
}

// normalize lowercases the code and collapses inner whitespace
func normalize(code string) string {
	return strings.Join(strings.Fields(strings.ToLower(code)), " ")
}

// MapToIntent applies the bindings to a raw input and returns an Intent.
func MapToIntent(ev RawInput) Intent {
	code := normalize(ev.Code)
	if b, ok := bindings[code]; ok {
		return Intent{Action: b.action, Direction: b.dir, Code: code}
	}
	return Intent{Action: ActionNone, Code: code}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionClear:
		return "Clear"
	case ActionTake:
		return "Take"
	case ActionLeave:
		return "Leave"
	case ActionHelp:
		return "Help"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bound codes grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, b := range bindings {
		result[b.action] = append(result[b.action], code)
	}
	// Stable ordering so help output doesn't shuffle between calls.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
