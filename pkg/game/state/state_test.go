package state

import (
	"math/rand"
	"testing"

	"darkmaze/pkg/engine/world"
)

func doorMaze() (*world.Maze, *world.Edge) {
	grid := world.NewGrid(2, 1)
	rooms := world.NewRooms()
	a := grid.Place(world.Coordinate{X: 0, Z: 0})
	b := grid.Place(world.Coordinate{X: 1, Z: 0})
	rooms.Create(0).Add(a)
	rooms.Create(1).Add(b)
	door := world.NewEdge(world.Door, a, b, world.East)
	a.SetEdge(world.East, door)
	far := world.NewEdge(world.Door, b, a, world.West)
	far.Mirrored = true
	b.SetEdge(world.West, far)
	return &world.Maze{Grid: grid, Rooms: rooms}, door
}

func TestNewGame_PicksStartCell(t *testing.T) {
	m, _ := doorMaze()
	g := NewGame(m, rand.New(rand.NewSource(3)))
	if g.StartCell == nil {
		t.Fatal("StartCell = nil")
	}
	if g.CurrentCell != nil {
		t.Error("CurrentCell set before placement")
	}
	if g.VisibleRoomCount() != 0 {
		t.Errorf("VisibleRoomCount() = %d, want 0", g.VisibleRoomCount())
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(nil, rand.New(rand.NewSource(1)))
	for _, msg := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddMessage(msg)
	}
	if len(g.Messages) != maxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(g.Messages), maxMessages)
	}
	if g.Messages[0] != "c" || g.Messages[4] != "g" {
		t.Errorf("Messages = %v, want [c d e f g]", g.Messages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("ClearMessages left %v", g.Messages)
	}
}

func TestDoorOpensBothSides(t *testing.T) {
	m, door := doorMaze()
	g := NewGame(m, rand.New(rand.NewSource(1)))

	g.OpenDoor(door)
	if !g.IsDoorOpen(door) || !g.IsDoorOpen(door.OtherSide()) {
		t.Error("OpenDoor did not open both sides")
	}
	g.CloseDoor(door.OtherSide())
	if g.IsDoorOpen(door) || g.IsDoorOpen(door.OtherSide()) {
		t.Error("CloseDoor did not close both sides")
	}
}

func TestRoomVisibility(t *testing.T) {
	m, door := doorMaze()
	g := NewGame(m, rand.New(rand.NewSource(1)))
	g.ShowRoom(door.Cell.Room())
	if !g.IsCellVisible(door.Cell) || g.IsCellVisible(door.Other) {
		t.Error("only the shown room should be visible")
	}
	g.HideRoom(door.Cell.Room())
	if g.IsRoomVisible(door.Cell.Room()) {
		t.Error("HideRoom left the room visible")
	}
}
