package state

import (
	"ruins/pkg/engine/world"
)

// maxMessages bounds the message log kept between turns
const maxMessages = 32

// Game represents the game state for The Ruins
type Game struct {
	// Position is where the player stands. It may be in the void.
	Position world.Position

	// Rooms is owned by the game; nothing else holds a reference.
	Rooms *world.Graph

	Finished bool

	Messages []string

	Turn int
}

// NewGame creates a new game at start over the given graph
func NewGame(rooms *world.Graph, start world.Position) *Game {
	return &Game{
		Position: start,
		Rooms:    rooms,
		Messages: make([]string, 0),
	}
}

// CurrentRoom returns the room at the player's position, or nil in the void
func (g *Game) CurrentRoom() *world.Room {
	return g.Rooms.Room(g.Position)
}

// InVoid returns true if the player stands where no room exists
func (g *Game) InVoid() bool {
	return g.CurrentRoom() == nil
}

// IsDead returns true if the player's room is deadly
func (g *Game) IsDead() bool {
	room := g.CurrentRoom()
	return room != nil && room.IsDeadly()
}

// IsActive returns true while turns should keep being played
func (g *Game) IsActive() bool {
	return !g.InVoid() && !g.Finished
}

// TreasureRemaining returns the number of rooms still holding treasure
func (g *Game) TreasureRemaining() int {
	return g.Rooms.CountRooms(func(r *world.Room) bool {
		return r.HasTreasure()
	})
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// AddMessages appends several messages in order
func (g *Game) AddMessages(msgs []string) {
	for _, m := range msgs {
		g.AddMessage(m)
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
