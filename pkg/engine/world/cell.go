// Package world provides the 2D maze primitives: directions, coordinates,
// cells with write-once directional edges, rooms and the grid that owns them.
package world

import (
	"math/rand"
)

// Cell represents a single position in the grid.
// Each of its four sides is decided exactly once during generation.
type Cell struct {
	// Name is "x:z", handy in logs and dumps
	Name string

	// Grid position
	Coordinates Coordinate

	// Navigation - one decided edge per direction
	edges                [DirectionCount]*Edge
	initializedEdgeCount int

	// room is an index into the maze's room registry
	room RoomID
}

// NewCell creates a new cell at the given position, not yet owned by any room
func NewCell(coords Coordinate) *Cell {
	return &Cell{
		Name:        coords.String(),
		Coordinates: coords,
		room:        NoRoom,
	}
}

// Room returns the ID of the room owning this cell, or NoRoom
func (c *Cell) Room() RoomID {
	return c.room
}

// Edge returns the edge in the given direction, or nil if still undecided
func (c *Cell) Edge(dir Direction) *Edge {
	if c == nil || !dir.IsValid() {
		return nil
	}
	return c.edges[dir]
}

// SetEdge records the edge for a direction. Each direction is written once.
func (c *Cell) SetEdge(dir Direction, edge *Edge) {
	if !dir.IsValid() {
		invariant("SetEdge", "cell %s: invalid direction %d", c.Name, dir)
	}
	if edge == nil {
		invariant("SetEdge", "cell %s: nil edge for %v", c.Name, dir)
	}
	if c.edges[dir] != nil {
		invariant("SetEdge", "cell %s: %v already decided as %v", c.Name, dir, c.edges[dir].Kind)
	}
	c.edges[dir] = edge
	c.initializedEdgeCount++
}

// InitializedEdgeCount returns how many of the four sides are decided
func (c *Cell) InitializedEdgeCount() int {
	return c.initializedEdgeCount
}

// IsFullyInitialized returns true once all four sides are decided
func (c *Cell) IsFullyInitialized() bool {
	return c.initializedEdgeCount == DirectionCount
}

// RandomUninitializedDirection picks uniformly among the undecided directions
// using a single draw: skip that many holes while scanning North..West.
func (c *Cell) RandomUninitializedDirection(rng *rand.Rand) Direction {
	if c.IsFullyInitialized() {
		invariant("RandomUninitializedDirection", "cell %s has no uninitialized directions", c.Name)
	}
	skips := rng.Intn(DirectionCount - c.initializedEdgeCount)
	for _, dir := range AllDirections() {
		if c.edges[dir] != nil {
			continue
		}
		if skips == 0 {
			return dir
		}
		skips--
	}
	invariant("RandomUninitializedDirection", "cell %s: edge count %d out of sync", c.Name, c.initializedEdgeCount)
	return North
}

// Edges returns the decided edges in direction order
func (c *Cell) Edges() []*Edge {
	var edges []*Edge
	for _, e := range c.edges {
		if e != nil {
			edges = append(edges, e)
		}
	}
	return edges
}

// Neighbor returns the cell on the far side of a passable edge, or nil
func (c *Cell) Neighbor(dir Direction) *Cell {
	e := c.Edge(dir)
	if e == nil || !e.Kind.IsPassable() {
		return nil
	}
	return e.Other
}

// Neighbors returns all cells reachable in one step through passages and doors
func (c *Cell) Neighbors() []*Cell {
	var neighbors []*Cell
	for _, dir := range AllDirections() {
		if n := c.Neighbor(dir); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
