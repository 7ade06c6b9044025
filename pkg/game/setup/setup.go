// Package setup checks a freshly generated maze before it is handed to play.
package setup

import (
	"errors"
	"fmt"

	"darkmaze/pkg/engine/world"
)

// Violation describes one broken structural property of a maze
type Violation struct {
	Property string
	Detail   string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Property, v.Detail)
}

// Property names reported by Check
const (
	PropertyCoverage     = "coverage"
	PropertyCompleteness = "completeness"
	PropertyConsistency  = "consistency"
	PropertyBoundary     = "boundary"
	PropertyConnectivity = "connectivity"
	PropertyPartition    = "partition"
	PropertyRoomPassages = "room-passages"
)

// maxViolationsPerProperty keeps reports readable on badly broken mazes
const maxViolationsPerProperty = 5

type report struct {
	errs   []error
	counts map[string]int
}

func (r *report) add(property, format string, a ...any) {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[property]++
	if r.counts[property] > maxViolationsPerProperty {
		return
	}
	r.errs = append(r.errs, &Violation{Property: property, Detail: fmt.Sprintf(format, a...)})
}

// Check verifies every structural property of a finished maze and returns
// all violations joined, or nil.
func Check(m *world.Maze) error {
	if m == nil || m.Grid == nil || m.Rooms == nil {
		return &Violation{Property: PropertyCoverage, Detail: "maze is empty"}
	}
	r := &report{}
	checkCells(m, r)
	checkConnectivity(m, r)
	checkRoomPartition(m, r)
	checkRoomPassages(m, r)
	return errors.Join(r.errs...)
}

// checkCells covers coverage, completeness, boundary walls and pair consistency
func checkCells(m *world.Maze, r *report) {
	grid := m.Grid
	for x := 0; x < grid.Width(); x++ {
		for z := 0; z < grid.Depth(); z++ {
			coords := world.Coordinate{X: x, Z: z}
			cell := grid.GetCell(coords)
			if cell == nil {
				r.add(PropertyCoverage, "no cell at %v", coords)
				continue
			}
			if !cell.IsFullyInitialized() {
				r.add(PropertyCompleteness, "cell %s has %d/4 edges", cell.Name, cell.InitializedEdgeCount())
			}
			for _, dir := range world.AllDirections() {
				checkEdge(grid, cell, dir, r)
			}
		}
	}
}

func checkEdge(grid *world.Grid, cell *world.Cell, dir world.Direction, r *report) {
	edge := cell.Edge(dir)
	if edge == nil {
		return
	}
	if edge.Cell != cell || edge.Direction != dir {
		r.add(PropertyConsistency, "cell %s %v edge is owned by %s facing %v", cell.Name, dir, edge.Cell.Name, edge.Direction)
	}

	target := cell.Coordinates.Step(dir)
	if !grid.Contains(target) {
		if edge.Kind != world.Wall || !edge.IsBoundary() {
			r.add(PropertyBoundary, "cell %s %v faces outside but is %v", cell.Name, dir, edge.Kind)
		}
		return
	}

	neighbor := grid.GetCell(target)
	if edge.Other != neighbor {
		r.add(PropertyConsistency, "cell %s %v edge points at the wrong cell", cell.Name, dir)
		return
	}
	if neighbor == nil {
		return
	}
	back := neighbor.Edge(dir.Opposite())
	if back == nil {
		r.add(PropertyConsistency, "cell %s %v is %v but %s has no %v edge", cell.Name, dir, edge.Kind, neighbor.Name, dir.Opposite())
		return
	}
	if back.Kind != edge.Kind || back.Other != cell {
		r.add(PropertyConsistency, "cell %s %v is %v but %s %v is %v", cell.Name, dir, edge.Kind, neighbor.Name, dir.Opposite(), back.Kind)
	}
	if edge.Kind == world.Door && edge.Mirrored == back.Mirrored {
		r.add(PropertyConsistency, "door between %s and %s has no single primary side", cell.Name, neighbor.Name)
	}
}
