package gameplay

import (
	"ruins/pkg/engine/world"
)

// TicksPerTurn is how many times the infestation spreads before each
// command. The snakes move at twice the player's speed.
const TicksPerTurn = 2

// Tick advances the infestation by one step and returns how many rooms
// grew. Every decision is made against the infestation as it was before the
// tick, so the order rooms are visited in does not matter.
//
// A room grows if it is already infested, or if a neighbour it has an open
// passage to (cleared on both sides) is infested. Deadly rooms are full and
// do not count.
func Tick(rooms *world.Graph) int {
	infested := rooms.InfestedPositions()

	var grow []*world.Room
	rooms.ForEachRoom(func(p world.Position, r *world.Room) {
		if r.IsDeadly() {
			return
		}
		if infested.Has(p) {
			grow = append(grow, r)
			return
		}
		for _, n := range rooms.OpenNeighbors(p) {
			if infested.Has(n) {
				grow = append(grow, r)
				return
			}
		}
	})

	for _, r := range grow {
		r.Infest()
	}
	return len(grow)
}

// Spread runs one turn's worth of ticks and returns the rooms grown per tick
func Spread(rooms *world.Graph) []int {
	grown := make([]int, 0, TicksPerTurn)
	for i := 0; i < TicksPerTurn; i++ {
		grown = append(grown, Tick(rooms))
	}
	return grown
}
