package world

import (
	"sort"
)

// Graph maps positions to rooms. Membership is fixed at construction; the
// rooms themselves stay mutable. Positions without a room are the void.
type Graph struct {
	rooms     map[Position]*Room
	positions []Position
}

// NewGraph creates a graph owning the given rooms
func NewGraph(rooms map[Position]*Room) *Graph {
	g := &Graph{
		rooms:     make(map[Position]*Room, len(rooms)),
		positions: make([]Position, 0, len(rooms)),
	}
	for pos, room := range rooms {
		if room == nil {
			continue
		}
		g.rooms[pos] = room
		g.positions = append(g.positions, pos)
	}
	sort.Slice(g.positions, func(i, j int) bool {
		a, b := g.positions[i], g.positions[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return g
}

// Len returns the number of rooms
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.rooms)
}

// Room returns the room at p, or nil if p is in the void
func (g *Graph) Room(p Position) *Room {
	if g == nil || g.rooms == nil {
		return nil
	}
	return g.rooms[p]
}

// Has returns true if there is a room at p
func (g *Graph) Has(p Position) bool {
	return g.Room(p) != nil
}

// Positions returns every room position ordered by y then x
func (g *Graph) Positions() []Position {
	if g == nil {
		return nil
	}
	out := make([]Position, len(g.positions))
	copy(out, g.positions)
	return out
}

// ForEachRoom iterates over all rooms in position order
func (g *Graph) ForEachRoom(fn func(p Position, r *Room)) {
	if g == nil {
		return
	}
	for _, p := range g.positions {
		fn(p, g.rooms[p])
	}
}

// AnyRoom returns true if pred holds for at least one room
func (g *Graph) AnyRoom(pred func(p Position, r *Room) bool) bool {
	if g == nil {
		return false
	}
	for _, p := range g.positions {
		if pred(p, g.rooms[p]) {
			return true
		}
	}
	return false
}

// Neighbor returns the room adjacent to p in dir, or nil
func (g *Graph) Neighbor(p Position, dir Direction) *Room {
	if !dir.IsValid() {
		return nil
	}
	return g.Room(dir.Go(p))
}

// CanPass returns true if a passage from p in dir is open on both sides:
// the exit of the room at p is cleared and the neighbour's exit in the
// opposite direction is cleared too.
func (g *Graph) CanPass(p Position, dir Direction) bool {
	if !g.Room(p).IsExitCleared(dir) {
		return false
	}
	next := g.Neighbor(p, dir)
	if next == nil {
		return false
	}
	return next.IsExitCleared(dir.Opposite())
}

// OpenNeighbors returns the positions reachable from p in one step
func (g *Graph) OpenNeighbors(p Position) []Position {
	var out []Position
	for _, dir := range AllDirections() {
		if g.CanPass(p, dir) {
			out = append(out, dir.Go(p))
		}
	}
	return out
}

// CountRooms returns the number of rooms for which pred holds
func (g *Graph) CountRooms(pred func(r *Room) bool) int {
	count := 0
	g.ForEachRoom(func(_ Position, r *Room) {
		if pred(r) {
			count++
		}
	})
	return count
}

// Clone returns a deep copy of the graph
func (g *Graph) Clone() *Graph {
	rooms := make(map[Position]*Room, g.Len())
	g.ForEachRoom(func(p Position, r *Room) {
		rooms[p] = r.Clone()
	})
	return NewGraph(rooms)
}
