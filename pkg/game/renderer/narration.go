// Package renderer turns game state into narration and defines the output
// interface the game loop writes through.
package renderer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	engineinput "ruins/pkg/engine/input"
	"ruins/pkg/engine/world"
	"ruins/pkg/game/locale"
)

// titleCaser capitalises direction names for status lines
var titleCaser = cases.Title(language.English)

// DescribeRoom returns the full sentence describing a room
func DescribeRoom(r *world.Room) string {
	return locale.Get("ROOM_DESCRIPTION", DescribeStatus(r.Status), DescribeInfestation(r.Infestation), DescribeExits(r))
}

// DescribeStatus returns the noun phrase for a room status
func DescribeStatus(s world.RoomStatus) string {
	switch s {
	case world.Entrance:
		return locale.Get("ROOM_ENTRANCE")
	case world.TreasureFilled:
		return locale.Get("ROOM_TREASURE")
	case world.Empty:
		return locale.Get("ROOM_EMPTY")
	default:
		return locale.Get("ROOM_EMPTY")
	}
}

// DescribeInfestation returns the clause for an infestation level, or ""
// for a clean room. The last two levels before the limit are loud.
func DescribeInfestation(level int) string {
	switch {
	case level <= 0:
		return ""
	case level < world.DeadlyLimit-2:
		return locale.Get("INFESTATION_FAINT")
	case level < world.DeadlyLimit:
		return locale.Get("INFESTATION_MANY")
	default:
		return locale.Get("INFESTATION_SURROUNDED")
	}
}

// DescribeExits lists the exits of a room in N, E, S, W order:
// "There is one exit to the north, one blocked exit to the east and one
// exit to the west."
func DescribeExits(r *world.Room) string {
	dirs := r.ExitDirections()
	if len(dirs) == 0 {
		return locale.Get("EXITS_NONE")
	}

	var sb strings.Builder
	sb.WriteString(locale.Get("EXITS_PREFIX"))
	for i, dir := range dirs {
		blocked := ""
		if st, _ := r.Exit(dir); st == world.Blocked {
			blocked = locale.Get("EXIT_BLOCKED")
		}
		sb.WriteString(locale.Get("EXIT_ITEM", blocked, dir.Describe()))

		switch {
		case i+2 < len(dirs):
			sb.WriteString(", ")
		case i+2 == len(dirs):
			sb.WriteString(locale.Get("EXITS_AND"))
		default:
			sb.WriteString(".")
		}
	}
	return sb.String()
}

// ExitsStatusLine returns a compact exits summary, e.g.
// "Exits: North, East (blocked)"
func ExitsStatusLine(r *world.Room) string {
	dirs := r.ExitDirections()
	if len(dirs) == 0 {
		return locale.Get("EXITS_STATUS_NONE")
	}

	labels := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		label := titleCaser.String(dir.Describe())
		if st, _ := r.Exit(dir); st == world.Blocked {
			label += " (" + world.Blocked.String() + ")"
		}
		labels = append(labels, label)
	}
	return locale.Get("EXITS_STATUS", strings.Join(labels, ", "))
}

// Banner returns the title lines shown before the first turn
func Banner() []string {
	return []string{
		locale.Get("BANNER_TITLE"),
		"",
		locale.Get("BANNER_GOAL"),
		locale.Get("BANNER_LUCK"),
	}
}

// HelpLines returns the usage text for the help command
func HelpLines() []string {
	return []string{
		locale.Get("HELP_MOVE"),
		locale.Get("HELP_CLEAR"),
		locale.Get("HELP_TAKE"),
		locale.Get("HELP_LEAVE"),
	}
}

// helpActions is the order bindings are listed in
var helpActions = []engineinput.Action{
	engineinput.ActionMove,
	engineinput.ActionClear,
	engineinput.ActionTake,
	engineinput.ActionLeave,
	engineinput.ActionHelp,
}

// BindingLines lists every accepted command, grouped by action
func BindingLines() []string {
	byAction := engineinput.GetBindingsByAction()
	lines := make([]string, 0, len(helpActions))
	for _, a := range helpActions {
		lines = append(lines, locale.Get("HELP_BINDING", engineinput.ActionName(a), strings.Join(byAction[a], ", ")))
	}
	return lines
}
