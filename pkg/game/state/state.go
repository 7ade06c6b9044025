// Package state holds the player-facing state of one maze run.
package state

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"darkmaze/pkg/engine/world"
)

// maxMessages is the length of the rolling message log
const maxMessages = 5

// Game represents the game state for one generated maze
type Game struct {
	Maze *world.Maze

	// StartCell is where the player is dropped once generation finishes
	StartCell *world.Cell

	CurrentCell *world.Cell
	Facing      world.Direction

	Messages []string

	// Moves counts successful steps between cells
	Moves int

	visibleRooms mapset.Set[world.RoomID]
	openDoors    mapset.Set[*world.Edge]
}

// NewGame creates a game on a finished maze with a random start cell.
// The player is not placed yet; see gameplay.SetLocation.
func NewGame(m *world.Maze, rng *rand.Rand) *Game {
	g := &Game{
		Maze:         m,
		Facing:       world.North,
		Messages:     make([]string, 0),
		visibleRooms: mapset.New[world.RoomID](),
		openDoors:    mapset.New[*world.Edge](),
	}
	if m != nil && m.Grid != nil {
		g.StartCell = m.Grid.GetCell(m.Grid.RandomCoordinates(rng))
	}
	return g
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// CurrentRoom returns the room the player stands in, or nil before placement
func (g *Game) CurrentRoom() *world.Room {
	if g.CurrentCell == nil || g.Maze == nil {
		return nil
	}
	return g.Maze.RoomOf(g.CurrentCell)
}

// IsRoomVisible returns true if the room is currently shown
func (g *Game) IsRoomVisible(id world.RoomID) bool {
	return g.visibleRooms.Has(id)
}

// IsCellVisible returns true if the cell's room is currently shown
func (g *Game) IsCellVisible(c *world.Cell) bool {
	return c != nil && g.visibleRooms.Has(c.Room())
}

// VisibleRoomCount returns how many rooms are shown
func (g *Game) VisibleRoomCount() int {
	return g.visibleRooms.Size()
}

// ShowRoom marks a room as visible
func (g *Game) ShowRoom(id world.RoomID) {
	g.visibleRooms.Put(id)
}

// HideRoom marks a room as hidden
func (g *Game) HideRoom(id world.RoomID) {
	g.visibleRooms.Remove(id)
}

// IsDoorOpen returns true if the door edge is swung open
func (g *Game) IsDoorOpen(e *world.Edge) bool {
	return g.openDoors.Has(e)
}

// OpenDoor swings both sides of a door open
func (g *Game) OpenDoor(e *world.Edge) {
	g.openDoors.Put(e)
	if other := e.OtherSide(); other != nil {
		g.openDoors.Put(other)
	}
}

// CloseDoor swings both sides of a door shut
func (g *Game) CloseDoor(e *world.Edge) {
	g.openDoors.Remove(e)
	if other := e.OtherSide(); other != nil {
		g.openDoors.Remove(other)
	}
}
