// Package world provides the room graph primitives of the ruins: directions,
// positions, rooms with per-side exits, and the graph that holds them.
package world

// ExitStatus is the passability of one side of a wall
type ExitStatus int

const (
	Cleared ExitStatus = iota
	Blocked
)

// String returns the status name
func (s ExitStatus) String() string {
	switch s {
	case Cleared:
		return "cleared"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// RoomStatus marks what a room holds
type RoomStatus int

const (
	Entrance RoomStatus = iota
	Empty
	TreasureFilled
)

// String returns the status name
func (s RoomStatus) String() string {
	switch s {
	case Entrance:
		return "entrance"
	case Empty:
		return "empty"
	case TreasureFilled:
		return "treasure"
	default:
		return "unknown"
	}
}

// DeadlyLimit is the infestation level at which a room kills its occupant.
// Infestation never exceeds it.
const DeadlyLimit = 12

// Room is a node of the graph. Its position is the graph key and is not
// stored on the room itself.
//
// Exits are tracked per side: a room only knows whether its own side of a
// wall is passable. A missing entry means there is no exit in that
// direction at all.
type Room struct {
	Exits       map[Direction]ExitStatus
	Status      RoomStatus
	Infestation int
}

// NewRoom creates a room with the given status and exits
func NewRoom(status RoomStatus, exits map[Direction]ExitStatus) *Room {
	r := &Room{
		Exits:  make(map[Direction]ExitStatus, len(exits)),
		Status: status,
	}
	for dir, st := range exits {
		r.Exits[dir] = st
	}
	return r
}

// Exit returns the status of this room's exit in dir and whether it exists
func (r *Room) Exit(dir Direction) (ExitStatus, bool) {
	if r == nil {
		return Blocked, false
	}
	st, ok := r.Exits[dir]
	return st, ok
}

// HasExit returns true if the room has an exit (of any status) in dir
func (r *Room) HasExit(dir Direction) bool {
	_, ok := r.Exit(dir)
	return ok
}

// IsExitCleared returns true if the room has a cleared exit in dir
func (r *Room) IsExitCleared(dir Direction) bool {
	st, ok := r.Exit(dir)
	return ok && st == Cleared
}

// SetExit sets the status of this room's side of the wall in dir
func (r *Room) SetExit(dir Direction, status ExitStatus) {
	if r.Exits == nil {
		r.Exits = make(map[Direction]ExitStatus)
	}
	r.Exits[dir] = status
}

// ExitDirections returns the directions that have an exit, in N, E, S, W order
func (r *Room) ExitDirections() []Direction {
	var dirs []Direction
	for _, dir := range AllDirections() {
		if r.HasExit(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// IsInfested returns true if the infestation level is in [1, DeadlyLimit]
func (r *Room) IsInfested() bool {
	return r.Infestation >= 1 && r.Infestation <= DeadlyLimit
}

// IsDeadly returns true if the room is at the deadly limit
func (r *Room) IsDeadly() bool {
	return r.Infestation >= DeadlyLimit
}

// Infest raises the infestation by one, capped at DeadlyLimit
func (r *Room) Infest() {
	r.SetInfestation(r.Infestation + 1)
}

// SetInfestation sets the level, clamped to [0, DeadlyLimit]
func (r *Room) SetInfestation(level int) {
	switch {
	case level < 0:
		level = 0
	case level > DeadlyLimit:
		level = DeadlyLimit
	}
	r.Infestation = level
}

// HasTreasure returns true if the room still holds treasure
func (r *Room) HasTreasure() bool {
	return r.Status == TreasureFilled
}

// Clone returns a deep copy of the room
func (r *Room) Clone() *Room {
	c := NewRoom(r.Status, r.Exits)
	c.Infestation = r.Infestation
	return c
}
