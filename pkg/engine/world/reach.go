package world

import (
	"github.com/zyedidia/generic/mapset"
)

// PositionSet is a set of positions
type PositionSet = mapset.Set[Position]

// Reachable collects every room position reachable from start right now,
// through passages that are cleared on both sides
func (g *Graph) Reachable(start Position) PositionSet {
	return g.collect(start, g.OpenNeighbors)
}

// Connected collects every room position that could become reachable from
// start once blocked exits are cleared. Walls with an exit on one side only
// stay impassable.
func (g *Graph) Connected(start Position) PositionSet {
	return g.collect(start, g.linkedNeighbors)
}

// linkedNeighbors returns neighbours that share a wall with exits on both
// sides, whatever their status
func (g *Graph) linkedNeighbors(p Position) []Position {
	var out []Position
	room := g.Room(p)
	for _, dir := range AllDirections() {
		if !room.HasExit(dir) {
			continue
		}
		if g.Neighbor(p, dir).HasExit(dir.Opposite()) {
			out = append(out, dir.Go(p))
		}
	}
	return out
}

// collect runs a BFS from start using next to expand each position
func (g *Graph) collect(start Position, next func(Position) []Position) PositionSet {
	visited := mapset.New[Position]()
	if !g.Has(start) {
		return visited
	}
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		for _, n := range next(current) {
			if !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// InfestedPositions returns the set of positions whose room is infested
func (g *Graph) InfestedPositions() PositionSet {
	infested := mapset.New[Position]()
	g.ForEachRoom(func(p Position, r *Room) {
		if r.IsInfested() {
			infested.Put(p)
		}
	})
	return infested
}
