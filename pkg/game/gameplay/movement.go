package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/state"
	"darkmaze/pkg/game/theme"
)

// SetLocation moves the player onto cell. Leaving a cell hides its room,
// closes its doors and hides the rooms behind them; entering does the reverse.
func SetLocation(g *state.Game, cell *world.Cell) {
	if cell == nil {
		return
	}
	if g.CurrentCell != nil {
		exitCell(g, g.CurrentCell)
	}
	g.CurrentCell = cell
	enterCell(g, cell)
}

func enterCell(g *state.Game, cell *world.Cell) {
	g.ShowRoom(cell.Room())
	for _, e := range cell.Edges() {
		if e.Kind != world.Door || e.Other == nil {
			continue
		}
		g.OpenDoor(e)
		g.ShowRoom(e.Other.Room())
	}
}

func exitCell(g *state.Game, cell *world.Cell) {
	g.HideRoom(cell.Room())
	for _, e := range cell.Edges() {
		if e.Kind != world.Door || e.Other == nil {
			continue
		}
		g.CloseDoor(e)
		g.HideRoom(e.Other.Room())
	}
}

// CanEnter checks if the player can cross the current cell's side in dir
func CanEnter(g *state.Game, dir world.Direction) bool {
	if g.CurrentCell == nil {
		return false
	}
	e := g.CurrentCell.Edge(dir)
	return e != nil && e.Kind.IsPassable() && e.Other != nil
}

// Move steps the player through the side in dir if it is a passage or a
// door. Facing is unchanged. Returns true if the player moved.
func Move(g *state.Game, dir world.Direction) bool {
	if !CanEnter(g, dir) {
		logMessage(g, gotext.Get("BLOCKED"), dir)
		return false
	}
	from := g.CurrentCell.Room()
	SetLocation(g, g.CurrentCell.Edge(dir).Other)
	g.Moves++
	if room := g.CurrentRoom(); room != nil && room.ID != from {
		logMessage(g, gotext.Get("ENTERED_ROOM"), theme.RoomName(room), theme.Name(room.Theme))
	}
	return true
}

// Look turns the player to face dir without moving
func Look(g *state.Game, dir world.Direction) {
	if !dir.IsValid() {
		return
	}
	g.Facing = dir
}

// logMessage formats msg with a and adds it to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(msg, a...))
}
