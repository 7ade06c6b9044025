package setup

import (
	"github.com/zyedidia/generic/mapset"

	"darkmaze/pkg/engine/world"
)

// checkRoomPartition verifies that live rooms partition the cells and that
// every cell's back-reference names the room holding it.
func checkRoomPartition(m *world.Maze, r *report) {
	owner := make(map[*world.Cell]world.RoomID)
	for _, room := range m.Rooms.Live() {
		if room.Size() == 0 {
			r.add(PropertyPartition, "live room %d is empty", room.ID)
		}
		for _, cell := range room.Members() {
			if prev, ok := owner[cell]; ok {
				r.add(PropertyPartition, "cell %s is in rooms %d and %d", cell.Name, prev, room.ID)
			}
			owner[cell] = room.ID
			if cell.Room() != room.ID {
				r.add(PropertyPartition, "cell %s is in room %d but points at %d", cell.Name, room.ID, cell.Room())
			}
		}
	}
	m.Grid.ForEachCell(func(cell *world.Cell) {
		if _, ok := owner[cell]; !ok {
			r.add(PropertyPartition, "cell %s belongs to no live room", cell.Name)
		}
	})
}

// checkRoomPassages verifies that plain passages never cross a room boundary
// and that each room is connected through its own passages.
func checkRoomPassages(m *world.Maze, r *report) {
	m.Grid.ForEachCell(func(cell *world.Cell) {
		for _, e := range cell.Edges() {
			if e.Kind == world.Passage && e.Other != nil && e.Other.Room() != cell.Room() {
				r.add(PropertyRoomPassages, "passage %s-%s joins rooms %d and %d", cell.Name, e.Other.Name, cell.Room(), e.Other.Room())
			}
		}
	})
	for _, room := range m.Rooms.Live() {
		members := room.Members()
		if len(members) == 0 {
			continue
		}
		if n := reachableWithinRoom(members[0]).Size(); n != len(members) {
			r.add(PropertyRoomPassages, "room %d: %d of %d cells reachable through its passages", room.ID, n, len(members))
		}
	}
}

// reachableWithinRoom walks plain passages only, staying inside start's room
func reachableWithinRoom(start *world.Cell) mapset.Set[*world.Cell] {
	reachable := mapset.New[*world.Cell]()
	queue := []*world.Cell{start}
	reachable.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range current.Edges() {
			n := e.Other
			if e.Kind != world.Passage || n == nil || n.Room() != start.Room() || reachable.Has(n) {
				continue
			}
			reachable.Put(n)
			queue = append(queue, n)
		}
	}
	return reachable
}
