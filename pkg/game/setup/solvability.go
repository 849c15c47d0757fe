package setup

import (
	"github.com/zyedidia/generic/mapset"

	"ruins/pkg/engine/world"
)

// getClearableRooms returns every room a player starting at start could
// walk into by clearing exits on the way. The player can only clear the
// side of a wall they stand on, so a step from A into B needs A to have an
// exit that way (in any state) and B's facing side to be cleared already.
func getClearableRooms(rooms *world.Graph, start world.Position) world.PositionSet {
	reachable := mapset.New[world.Position]()
	queue := []world.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		room := rooms.Room(current)
		if room == nil || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, dir := range room.ExitDirections() {
			next := dir.Go(current)
			nextRoom := rooms.Room(next)
			if nextRoom == nil || reachable.Has(next) {
				continue
			}
			if nextRoom.IsExitCleared(dir.Opposite()) {
				queue = append(queue, next)
			}
		}
	}

	return reachable
}

// TreasureOutOfReach lists treasure rooms no player could get to from the
// start, whatever exits they clear. A map with any is unwinnable.
func (m *RuinsMap) TreasureOutOfReach() []world.Position {
	reachable := getClearableRooms(m.template, m.Start)

	var out []world.Position
	for _, p := range m.template.Positions() {
		if m.template.Room(p).HasTreasure() && !reachable.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Solvable returns true if every treasure can be reached and carried back
// to the start, ignoring the infestation. Every passage a player opens on
// the way in can be walked back through.
func (m *RuinsMap) Solvable() bool {
	return len(m.TreasureOutOfReach()) == 0
}
