package world

// Maze is a finished (or in-progress) generation result: the grid of cells,
// the room registry and the seed that reproduces it.
type Maze struct {
	Grid  *Grid
	Rooms *Rooms
	Seed  int64
}

// Width returns the grid width
func (m *Maze) Width() int {
	return m.Grid.Width()
}

// Depth returns the grid depth
func (m *Maze) Depth() int {
	return m.Grid.Depth()
}

// CellAt returns the cell at the given coordinates, or nil
func (m *Maze) CellAt(c Coordinate) *Cell {
	return m.Grid.GetCell(c)
}

// RoomOf returns the room owning the cell, or nil
func (m *Maze) RoomOf(c *Cell) *Room {
	if c == nil {
		return nil
	}
	return m.Rooms.Get(c.Room())
}
