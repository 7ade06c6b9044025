package setup

import (
	"github.com/zyedidia/generic/mapset"

	"darkmaze/pkg/engine/world"
)

// GetReachableCells returns all cells reachable from start by BFS through
// passages and doors.
func GetReachableCells(start *world.Cell) mapset.Set[*world.Cell] {
	reachable := mapset.New[*world.Cell]()
	if start == nil {
		return reachable
	}
	queue := []*world.Cell{start}
	reachable.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.Neighbors() {
			if !reachable.Has(n) {
				reachable.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return reachable
}

// Components returns the number of connected regions formed by passable edges
func Components(m *world.Maze) int {
	seen := mapset.New[*world.Cell]()
	count := 0
	m.Grid.ForEachCell(func(cell *world.Cell) {
		if seen.Has(cell) {
			return
		}
		count++
		GetReachableCells(cell).Each(func(c *world.Cell) {
			seen.Put(c)
		})
	})
	return count
}

func checkConnectivity(m *world.Maze, r *report) {
	if n := Components(m); n > 1 {
		r.add(PropertyConnectivity, "maze splits into %d disconnected regions", n)
	}
}
