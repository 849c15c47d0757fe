package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruins/pkg/engine/world"
)

func TestDefaultMap(t *testing.T) {
	m, err := DefaultMap()
	require.NoError(t, err)

	assert.Equal(t, 12, m.RoomCount())
	assert.Equal(t, 2, m.TreasureCount())
	assert.Equal(t, world.Pos(0, 0), m.Start)
	assert.Empty(t, m.Unreachable(), "every room of the ruins can be reached once cleared")

	g := m.NewGraph()
	start := g.Room(m.Start)
	require.NotNil(t, start)
	assert.Equal(t, world.Entrance, start.Status)
	assert.True(t, start.IsExitCleared(world.North))

	st, ok := g.Room(world.Pos(0, 1)).Exit(world.North)
	assert.True(t, ok)
	assert.Equal(t, world.Blocked, st)
}

func TestNewGraph_IsFreshEachCall(t *testing.T) {
	m, err := DefaultMap()
	require.NoError(t, err)

	a := m.NewGraph()
	a.Room(world.Pos(0, 1)).Status = world.Empty
	a.Room(world.Pos(0, 1)).SetExit(world.North, world.Cleared)

	b := m.NewGraph()
	assert.Equal(t, world.TreasureFilled, b.Room(world.Pos(0, 1)).Status)
	assert.False(t, b.Room(world.Pos(0, 1)).IsExitCleared(world.North))
}

func TestParseMap_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"no rooms", "start: {x: 0, y: 0}\nrooms: []\n", ErrNoRooms},
		{"start missing", "start: {x: 5, y: 5}\nrooms:\n  - {x: 0, y: 0, status: entrance}\n", ErrNoStartRoom},
		{"start not entrance", "rooms:\n  - {x: 0, y: 0, status: empty}\n", ErrStartNotEntrance},
		{"duplicate", "rooms:\n  - {x: 0, y: 0, status: entrance}\n  - {x: 0, y: 0, status: empty}\n", ErrDuplicateRoom},
		{"bad status", "rooms:\n  - {x: 0, y: 0, status: lava}\n", ErrRoomStatus},
		{"bad direction", "rooms:\n  - {x: 0, y: 0, status: entrance, exits: {up: cleared}}\n", ErrExitDirection},
		{"bad exit status", "rooms:\n  - {x: 0, y: 0, status: entrance, exits: {north: ajar}}\n", ErrExitStatus},
		{"infestation", "rooms:\n  - {x: 0, y: 0, status: entrance, infested: 13}\n", ErrInfestation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMap([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseMap_BadYAML(t *testing.T) {
	_, err := ParseMap([]byte("rooms: [[[\n"))
	assert.Error(t, err)
}

func TestLoadMap_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	doc := `name: Tiny
start: {x: 0, y: 0}
rooms:
  - {x: 0, y: 0, status: entrance, exits: {east: cleared}}
  - {x: 1, y: 0, status: treasure, infested: 3, exits: {west: blocked}}
  - {x: 5, y: 5, status: empty}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	m, err := LoadMap(path)
	require.NoError(t, err)
	assert.Equal(t, "Tiny", m.Name)
	assert.Equal(t, []world.Position{world.Pos(5, 5)}, m.Unreachable())
	assert.Equal(t, 3, m.NewGraph().Room(world.Pos(1, 0)).Infestation)

	_, err = LoadMap(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewGraph_GamesDoNotChangeTheMap(t *testing.T) {
	m, err := DefaultMap()
	require.NoError(t, err)

	g := m.NewGraph()
	g.Room(world.Pos(0, 1)).Status = world.Empty
	g.Room(world.Pos(-1, 5)).Status = world.Empty
	g.Room(world.Pos(0, 5)).SetExit(world.South, world.Cleared)

	assert.Equal(t, 2, m.TreasureCount())
	assert.Equal(t, 12, m.RoomCount())
	assert.True(t, m.Solvable())
	assert.Equal(t, world.Blocked, func() world.ExitStatus {
		st, _ := m.NewGraph().Room(world.Pos(0, 5)).Exit(world.South)
		return st
	}())
}
