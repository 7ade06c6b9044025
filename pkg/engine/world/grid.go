package world

import (
	"math/rand"
)

// Grid is the dense width x depth floor plan. Slots start empty and are
// filled lazily as generation reaches them.
type Grid struct {
	cells [][]*Cell // indexed [x][z]
	width int
	depth int
}

// NewGrid creates an empty grid with the given dimensions
func NewGrid(width, depth int) *Grid {
	if width <= 0 || depth <= 0 {
		panic("Grid dimensions must be positive")
	}
	cells := make([][]*Cell, width)
	for x := range cells {
		cells[x] = make([]*Cell, depth)
	}
	return &Grid{cells: cells, width: width, depth: depth}
}

// Width returns the number of columns (x axis)
func (g *Grid) Width() int {
	return g.width
}

// Depth returns the number of rows (z axis)
func (g *Grid) Depth() int {
	return g.depth
}

// Contains checks if a coordinate is within grid bounds
func (g *Grid) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Z >= 0 && c.Z < g.depth
}

// IsOnPerimeter checks if a coordinate lies on the outer ring of the grid
func (g *Grid) IsOnPerimeter(c Coordinate) bool {
	if !g.Contains(c) {
		return false
	}
	return c.X == 0 || c.Z == 0 || c.X == g.width-1 || c.Z == g.depth-1
}

// GetCell returns the cell at the given position, or nil if empty or out of bounds
func (g *Grid) GetCell(c Coordinate) *Cell {
	if !g.Contains(c) {
		return nil
	}
	return g.cells[c.X][c.Z]
}

// Place creates a cell at an empty in-bounds slot
func (g *Grid) Place(c Coordinate) *Cell {
	if !g.Contains(c) {
		invariant("Grid.Place", "coordinate %s outside %dx%d", c, g.width, g.depth)
	}
	if g.cells[c.X][c.Z] != nil {
		invariant("Grid.Place", "coordinate %s already has a cell", c)
	}
	cell := NewCell(c)
	g.cells[c.X][c.Z] = cell
	return cell
}

// GetCellRelative returns the cell adjacent to c in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	return g.GetCell(c.Coordinates.Step(dir))
}

// RandomCoordinates draws a uniformly random in-bounds coordinate
func (g *Grid) RandomCoordinates(rng *rand.Rand) Coordinate {
	return Coordinate{X: rng.Intn(g.width), Z: rng.Intn(g.depth)}
}

// CellCount returns the number of filled slots
func (g *Grid) CellCount() int {
	n := 0
	g.ForEachCell(func(*Cell) { n++ })
	return n
}

// ForEachCell calls fn for every filled slot, x-major then z
func (g *Grid) ForEachCell(fn func(cell *Cell)) {
	for x := 0; x < g.width; x++ {
		for z := 0; z < g.depth; z++ {
			if cell := g.cells[x][z]; cell != nil {
				fn(cell)
			}
		}
	}
}
