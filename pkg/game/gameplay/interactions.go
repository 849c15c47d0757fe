package gameplay

import (
	"ruins/pkg/engine/world"
	"ruins/pkg/game/locale"
)

// Take picks up the treasure in the room at pos. Disturbing the room seeds
// an infestation there if it had none; an existing level is left as is.
func Take(rooms *world.Graph, pos world.Position) Result {
	room := rooms.Room(pos)
	if room == nil {
		return result(pos, OutcomeVoid, locale.Get("VOID_TRAPPED"))
	}

	switch room.Status {
	case world.TreasureFilled:
		room.Status = world.Empty
		if room.Infestation < 1 {
			room.SetInfestation(1)
		}
		return result(pos, OutcomeTaken, locale.Get("TAKE_OK"))
	case world.Entrance, world.Empty:
	}

	return result(pos, OutcomeNothingToTake, locale.Get("TAKE_NOTHING"))
}

// Leave ends the game if the player is at an entrance and no treasure is
// left anywhere in the ruins
func Leave(rooms *world.Graph, pos world.Position) Result {
	atEntrance := false
	if room := rooms.Room(pos); room != nil {
		atEntrance = room.Status == world.Entrance
	}
	treasureLeft := rooms.AnyRoom(func(_ world.Position, r *world.Room) bool {
		return r.HasTreasure()
	})

	switch {
	case atEntrance && !treasureLeft:
		res := result(pos, OutcomeLeft, locale.Get("LEAVE_OK"))
		res.Finished = true
		return res
	case !treasureLeft:
		return result(pos, OutcomeNeedEntrance, locale.Get("LEAVE_NEED_ENTRANCE"))
	default:
		return result(pos, OutcomeMissingTreasure, locale.Get("LEAVE_MISSING_TREASURE"))
	}
}
