// Package setup loads and validates the static room map the game starts from.
package setup

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ruins/pkg/engine/world"
)

//go:embed ruins.yaml
var defaultMap []byte

// Validation errors
var (
	ErrNoRooms          = errors.New("map has no rooms")
	ErrNoStartRoom      = errors.New("start position has no room")
	ErrStartNotEntrance = errors.New("start room is not an entrance")
	ErrDuplicateRoom    = errors.New("duplicate room position")
	ErrRoomStatus       = errors.New("unknown room status")
	ErrExitDirection    = errors.New("unknown exit direction")
	ErrExitStatus       = errors.New("unknown exit status")
	ErrInfestation      = errors.New("infestation out of range")
)

// PositionEntry is an x/y pair in map files
type PositionEntry struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RoomEntry defines one room of the map
type RoomEntry struct {
	X        int               `yaml:"x"`
	Y        int               `yaml:"y"`
	Status   string            `yaml:"status"`
	Infested int               `yaml:"infested"`
	Exits    map[string]string `yaml:"exits"`
}

// MapFile is the on-disk layout of a map
type MapFile struct {
	Name  string        `yaml:"name"`
	Start PositionEntry `yaml:"start"`
	Rooms []RoomEntry   `yaml:"rooms"`
}

// roomDef is a validated room definition
type roomDef struct {
	status   world.RoomStatus
	infested int
	exits    map[world.Direction]world.ExitStatus
}

// RuinsMap is the validated, immutable map definition. Each call to
// NewGraph hands out a fresh copy of its rooms.
type RuinsMap struct {
	Name  string
	Start world.Position

	// template is never given out; games play on clones of it
	template *world.Graph
}

// DefaultMap returns the built-in ruins
func DefaultMap() (*RuinsMap, error) {
	m, err := ParseMap(defaultMap)
	if err != nil {
		return nil, fmt.Errorf("built-in map: %w", err)
	}
	return m, nil
}

// LoadMap reads a map file from disk
func LoadMap(path string) (*RuinsMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	m, err := ParseMap(raw)
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	return m, nil
}

// ParseMap decodes and validates map YAML
func ParseMap(raw []byte) (*RuinsMap, error) {
	var f MapFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	return f.Build()
}

// Build validates the file contents and returns the map definition
func (f *MapFile) Build() (*RuinsMap, error) {
	if len(f.Rooms) == 0 {
		return nil, ErrNoRooms
	}

	m := &RuinsMap{
		Name:  f.Name,
		Start: world.Pos(f.Start.X, f.Start.Y),
	}

	defs := make(map[world.Position]roomDef, len(f.Rooms))
	for _, e := range f.Rooms {
		pos := world.Pos(e.X, e.Y)
		if _, dup := defs[pos]; dup {
			return nil, fmt.Errorf("room %v: %w", pos, ErrDuplicateRoom)
		}
		def, err := e.definition()
		if err != nil {
			return nil, fmt.Errorf("room %v: %w", pos, err)
		}
		defs[pos] = def
	}

	start, ok := defs[m.Start]
	if !ok {
		return nil, fmt.Errorf("start %v: %w", m.Start, ErrNoStartRoom)
	}
	if start.status != world.Entrance {
		return nil, fmt.Errorf("start %v: %w", m.Start, ErrStartNotEntrance)
	}

	rooms := make(map[world.Position]*world.Room, len(defs))
	for pos, def := range defs {
		room := world.NewRoom(def.status, def.exits)
		room.SetInfestation(def.infested)
		rooms[pos] = room
	}
	m.template = world.NewGraph(rooms)

	return m, nil
}

// definition converts a room entry, rejecting unknown names
func (e RoomEntry) definition() (roomDef, error) {
	status, err := parseRoomStatus(e.Status)
	if err != nil {
		return roomDef{}, err
	}
	if e.Infested < 0 || e.Infested > world.DeadlyLimit {
		return roomDef{}, fmt.Errorf("%d not in [0,%d]: %w", e.Infested, world.DeadlyLimit, ErrInfestation)
	}

	exits := make(map[world.Direction]world.ExitStatus, len(e.Exits))
	for name, st := range e.Exits {
		dir, ok := world.ParseDirection(name)
		if !ok {
			return roomDef{}, fmt.Errorf("%q: %w", name, ErrExitDirection)
		}
		exitStatus, err := parseExitStatus(st)
		if err != nil {
			return roomDef{}, fmt.Errorf("exit %s: %w", dir.Describe(), err)
		}
		exits[dir] = exitStatus
	}

	return roomDef{status: status, infested: e.Infested, exits: exits}, nil
}

func parseRoomStatus(s string) (world.RoomStatus, error) {
	switch s {
	case "entrance":
		return world.Entrance, nil
	case "empty", "":
		return world.Empty, nil
	case "treasure", "treasure-filled":
		return world.TreasureFilled, nil
	default:
		return world.Empty, fmt.Errorf("%q: %w", s, ErrRoomStatus)
	}
}

func parseExitStatus(s string) (world.ExitStatus, error) {
	switch s {
	case "cleared", "clear", "":
		return world.Cleared, nil
	case "blocked":
		return world.Blocked, nil
	default:
		return world.Blocked, fmt.Errorf("%q: %w", s, ErrExitStatus)
	}
}

// RoomCount returns the number of rooms in the map
func (m *RuinsMap) RoomCount() int {
	return m.template.Len()
}

// NewGraph returns a fresh copy of the map's rooms
func (m *RuinsMap) NewGraph() *world.Graph {
	return m.template.Clone()
}

// Unreachable returns rooms that can never be entered from the start, even
// after every blocked exit is cleared
func (m *RuinsMap) Unreachable() []world.Position {
	connected := m.template.Connected(m.Start)
	var out []world.Position
	for _, p := range m.template.Positions() {
		if !connected.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// TreasureCount returns the number of rooms that start with treasure
func (m *RuinsMap) TreasureCount() int {
	return m.template.CountRooms(func(r *world.Room) bool {
		return r.HasTreasure()
	})
}
