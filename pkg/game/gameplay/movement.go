package gameplay

import (
	"ruins/pkg/engine/world"
	"ruins/pkg/game/locale"
)

// AttemptMove tries to move from pos in dir. Both sides of the wall must be
// cleared: the exit of the current room and the entrance of the next one.
// On any failure the returned position is pos.
func AttemptMove(rooms *world.Graph, pos world.Position, dir world.Direction) Result {
	room := rooms.Room(pos)
	if room == nil {
		return result(pos, OutcomeVoid, locale.Get("VOID_TRAPPED"))
	}

	exit, ok := room.Exit(dir)
	if !ok {
		return result(pos, OutcomeNoExit, locale.Get("MOVE_NO_EXIT", dir.Describe()))
	}
	switch exit {
	case world.Blocked:
		return result(pos, OutcomeExitBlocked, locale.Get("MOVE_EXIT_BLOCKED", dir.Describe()))
	case world.Cleared:
	}

	next := dir.Go(pos)
	nextRoom := rooms.Room(next)
	if nextRoom == nil {
		return result(pos, OutcomeNoRoom, locale.Get("MOVE_NO_ROOM", dir.Describe()))
	}

	entrance, ok := nextRoom.Exit(dir.Opposite())
	if !ok {
		return result(pos, OutcomeNoEntrance, locale.Get("MOVE_NO_ENTRANCE", dir.Describe()))
	}
	switch entrance {
	case world.Blocked:
		return result(pos, OutcomeEntranceBlocked, locale.Get("MOVE_ENTRANCE_BLOCKED", dir.Describe()))
	case world.Cleared:
	}

	return result(next, OutcomeMoved, locale.Get("MOVE_OK", dir.Describe()))
}

// AttemptClear tries to clear the exit of the room at pos in dir. Clearing
// only ever changes the current room's side of the wall; a blocked
// entrance on the far side is reported but left alone.
func AttemptClear(rooms *world.Graph, pos world.Position, dir world.Direction) Result {
	room := rooms.Room(pos)
	if room == nil {
		return result(pos, OutcomeVoid, locale.Get("CLEAR_VOID"))
	}

	exit, ok := room.Exit(dir)
	if !ok {
		return result(pos, OutcomeNoExit, locale.Get("CLEAR_NO_EXIT", dir.Describe()))
	}
	switch exit {
	case world.Blocked:
		room.SetExit(dir, world.Cleared)
		return result(pos, OutcomeCleared, locale.Get("CLEAR_OK", dir.Describe()))
	case world.Cleared:
	}

	if nextRoom := rooms.Neighbor(pos, dir); nextRoom != nil {
		entrance, ok := nextRoom.Exit(dir.Opposite())
		if !ok {
			return result(pos, OutcomeClearNoEntrance, locale.Get("CLEAR_NO_ENTRANCE", dir.Describe()))
		}
		if entrance == world.Blocked {
			return result(pos, OutcomeFarSideBlocked, locale.Get("CLEAR_FAR_SIDE", dir.Describe()))
		}
	}

	return result(pos, OutcomeAlreadyClear, locale.Get("CLEAR_ALREADY", dir.Describe()))
}
