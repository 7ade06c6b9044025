package world

import "fmt"

// Coordinate is an integer position on the maze floor plan.
// It doubles as a displacement vector (see Direction.Delta).
type Coordinate struct {
	X int
	Z int
}

// Add returns the component-wise sum of two coordinates
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Z: c.Z + o.Z}
}

// Step returns the adjacent coordinate in the given direction
func (c Coordinate) Step(d Direction) Coordinate {
	return c.Add(d.Delta())
}

// String returns "x:z", the same naming scheme cells use
func (c Coordinate) String() string {
	return fmt.Sprintf("%v:%v", c.X, c.Z)
}
