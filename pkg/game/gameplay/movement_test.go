package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruins/pkg/engine/world"
	"ruins/pkg/game/setup"
)

type exits = map[world.Direction]world.ExitStatus

// makeRooms builds a graph from a position -> room table
func makeRooms(t *testing.T, rooms map[world.Position]*world.Room) *world.Graph {
	t.Helper()
	g := world.NewGraph(rooms)
	require.Equal(t, len(rooms), g.Len())
	return g
}

// makePair creates two rooms stacked north-south with the given wall sides
func makePair(t *testing.T, southSide, northSide exits) *world.Graph {
	t.Helper()
	rooms := map[world.Position]*world.Room{
		world.Pos(0, 0): world.NewRoom(world.Entrance, southSide),
	}
	if northSide != nil {
		rooms[world.Pos(0, 1)] = world.NewRoom(world.Empty, northSide)
	}
	return makeRooms(t, rooms)
}

func TestAttemptMove(t *testing.T) {
	origin := world.Pos(0, 0)

	tests := []struct {
		name      string
		southSide exits
		northSide exits
		want      Outcome
		wantPos   world.Position
	}{
		{
			name:      "open passage",
			southSide: exits{world.North: world.Cleared},
			northSide: exits{world.South: world.Cleared},
			want:      OutcomeMoved,
			wantPos:   world.Pos(0, 1),
		},
		{
			name:      "no exit",
			southSide: exits{world.East: world.Cleared},
			northSide: exits{world.South: world.Cleared},
			want:      OutcomeNoExit,
			wantPos:   origin,
		},
		{
			name:      "exit blocked",
			southSide: exits{world.North: world.Blocked},
			northSide: exits{world.South: world.Cleared},
			want:      OutcomeExitBlocked,
			wantPos:   origin,
		},
		{
			name:      "nothing beyond",
			southSide: exits{world.North: world.Cleared},
			northSide: nil,
			want:      OutcomeNoRoom,
			wantPos:   origin,
		},
		{
			name:      "no entrance on far side",
			southSide: exits{world.North: world.Cleared},
			northSide: exits{world.East: world.Cleared},
			want:      OutcomeNoEntrance,
			wantPos:   origin,
		},
		{
			name:      "entrance blocked",
			southSide: exits{world.North: world.Cleared},
			northSide: exits{world.South: world.Blocked},
			want:      OutcomeEntranceBlocked,
			wantPos:   origin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := makePair(t, tt.southSide, tt.northSide)

			res := AttemptMove(rooms, origin, world.North)

			assert.Equal(t, tt.want, res.Outcome)
			assert.Equal(t, tt.wantPos, res.Position)
			assert.False(t, res.Finished)
			assert.Len(t, res.Messages, 1)
		})
	}
}

func TestAttemptMove_Void(t *testing.T) {
	rooms := makePair(t, exits{world.North: world.Cleared}, exits{world.South: world.Cleared})
	void := world.Pos(7, 7)

	res := AttemptMove(rooms, void, world.North)

	assert.Equal(t, OutcomeVoid, res.Outcome)
	assert.Equal(t, void, res.Position, "the void never moves the player")
}

func TestAttemptMove_Narration(t *testing.T) {
	rooms := makePair(t, exits{world.North: world.Cleared}, exits{world.South: world.Blocked})

	res := AttemptMove(rooms, world.Pos(0, 0), world.North)

	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0], "north")
}

func TestAttemptMove_DoesNotMutate(t *testing.T) {
	rooms := makePair(t, exits{world.North: world.Blocked}, exits{world.South: world.Blocked})
	before := rooms.Clone()

	AttemptMove(rooms, world.Pos(0, 0), world.North)

	assert.Equal(t, before, rooms)
}

func TestAttemptClear(t *testing.T) {
	origin := world.Pos(0, 0)

	tests := []struct {
		name      string
		southSide exits
		northSide exits
		want      Outcome
		wantExit  world.ExitStatus
	}{
		{
			name:      "blocked exit is cleared",
			southSide: exits{world.North: world.Blocked},
			northSide: exits{world.South: world.Cleared},
			want:      OutcomeCleared,
			wantExit:  world.Cleared,
		},
		{
			name:      "blocked exit into nothing is still cleared",
			southSide: exits{world.North: world.Blocked},
			northSide: nil,
			want:      OutcomeCleared,
			wantExit:  world.Cleared,
		},
		{
			name:      "far side blocked",
			southSide: exits{world.North: world.Cleared},
			northSide: exits{world.South: world.Blocked},
			want:      OutcomeFarSideBlocked,
			wantExit:  world.Cleared,
		},
		{
			name:      "far side has no entrance",
			southSide: exits{world.North: world.Cleared},
			northSide: exits{world.West: world.Cleared},
			want:      OutcomeClearNoEntrance,
			wantExit:  world.Cleared,
		},
		{
			name:      "already clear",
			southSide: exits{world.North: world.Cleared},
			northSide: exits{world.South: world.Cleared},
			want:      OutcomeAlreadyClear,
			wantExit:  world.Cleared,
		},
		{
			name:      "already clear into nothing",
			southSide: exits{world.North: world.Cleared},
			northSide: nil,
			want:      OutcomeAlreadyClear,
			wantExit:  world.Cleared,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := makePair(t, tt.southSide, tt.northSide)

			res := AttemptClear(rooms, origin, world.North)

			assert.Equal(t, tt.want, res.Outcome)
			assert.Equal(t, origin, res.Position, "clearing never moves the player")

			exit, ok := rooms.Room(origin).Exit(world.North)
			require.True(t, ok)
			assert.Equal(t, tt.wantExit, exit)
		})
	}
}

func TestAttemptClear_NoExit(t *testing.T) {
	rooms := makePair(t, exits{world.East: world.Blocked}, exits{world.South: world.Cleared})

	res := AttemptClear(rooms, world.Pos(0, 0), world.North)

	assert.Equal(t, OutcomeNoExit, res.Outcome)
	assert.False(t, rooms.Room(world.Pos(0, 0)).HasExit(world.North), "no exit is ever created")
}

func TestAttemptClear_Void(t *testing.T) {
	rooms := makePair(t, exits{world.North: world.Blocked}, nil)

	res := AttemptClear(rooms, world.Pos(3, 3), world.North)

	assert.Equal(t, OutcomeVoid, res.Outcome)
}

func TestAttemptClear_FarSideNeverMutated(t *testing.T) {
	rooms := makePair(t, exits{world.North: world.Blocked}, exits{world.South: world.Blocked})
	far := rooms.Room(world.Pos(0, 1))

	first := AttemptClear(rooms, world.Pos(0, 0), world.North)
	second := AttemptClear(rooms, world.Pos(0, 0), world.North)

	assert.Equal(t, OutcomeCleared, first.Outcome)
	assert.Equal(t, OutcomeFarSideBlocked, second.Outcome)

	exit, _ := far.Exit(world.South)
	assert.Equal(t, world.Blocked, exit)
	assert.False(t, rooms.CanPass(world.Pos(0, 0), world.North))

	// Clearing from the other side opens the passage
	third := AttemptClear(rooms, world.Pos(0, 1), world.South)
	assert.Equal(t, OutcomeCleared, third.Outcome)
	assert.True(t, rooms.CanPass(world.Pos(0, 0), world.North))
	assert.Equal(t, OutcomeMoved, AttemptMove(rooms, world.Pos(0, 0), world.North).Outcome)
}

func TestOutcome_Succeeded(t *testing.T) {
	for o := range outcomeNames {
		want := o == OutcomeMoved || o == OutcomeCleared || o == OutcomeTaken || o == OutcomeLeft
		assert.Equal(t, want, o.Succeeded(), "%s", o)
	}
	assert.Equal(t, "unknown", Outcome(-1).String())
}

func TestDefaultRuins_EntranceScenario(t *testing.T) {
	m, err := setup.DefaultMap()
	require.NoError(t, err)
	start := world.Pos(0, 0)

	t.Run("open entrance", func(t *testing.T) {
		rooms := m.NewGraph()

		res := AttemptMove(rooms, start, world.North)

		assert.Equal(t, OutcomeMoved, res.Outcome)
		assert.Equal(t, world.Pos(0, 1), res.Position)
	})

	t.Run("blocked entrance", func(t *testing.T) {
		rooms := m.NewGraph()
		rooms.Room(world.Pos(0, 1)).SetExit(world.South, world.Blocked)
		before := rooms.Clone()

		move := AttemptMove(rooms, start, world.North)
		cleared := AttemptClear(rooms, start, world.North)

		assert.Equal(t, OutcomeEntranceBlocked, move.Outcome)
		assert.Equal(t, start, move.Position)
		assert.Equal(t, OutcomeFarSideBlocked, cleared.Outcome)
		assert.Equal(t, before, rooms, "clearing from the wrong side changes nothing")
	})
}
