package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// RoomID is a stable index into a room registry
type RoomID int

// NoRoom is the room of a cell that has not been assigned yet
const NoRoom RoomID = -1

// Room is a growable set of cells sharing one theme
type Room struct {
	ID    RoomID
	Theme int

	members   mapset.Set[*Cell]
	discarded bool
}

func newRoom(id RoomID, theme int) *Room {
	return &Room{
		ID:      id,
		Theme:   theme,
		members: mapset.New[*Cell](),
	}
}

// Add puts an unowned cell into this room. Cells change rooms only through
// Assimilate, so adding a cell owned by another room is an invariant fault.
func (r *Room) Add(c *Cell) {
	if c.room != NoRoom && c.room != r.ID {
		invariant("Room.Add", "cell %s already belongs to room %d, not %d", c.Name, c.room, r.ID)
	}
	r.put(c)
}

func (r *Room) put(c *Cell) {
	if r.discarded {
		invariant("Room.Add", "room %d was assimilated and cannot take cell %s", r.ID, c.Name)
	}
	c.room = r.ID
	r.members.Put(c)
}

// Assimilate moves every member of other into r. The caller must then
// drop other from its registry.
func (r *Room) Assimilate(other *Room) {
	if other == r {
		return
	}
	other.members.Each(func(c *Cell) {
		r.put(c)
	})
	other.members = mapset.New[*Cell]()
	other.discarded = true
}

// Has returns true if the cell is a member of this room
func (r *Room) Has(c *Cell) bool {
	return r.members.Has(c)
}

// Size returns the number of member cells
func (r *Room) Size() int {
	return r.members.Size()
}

// Members returns the member cells sorted by x, then z
func (r *Room) Members() []*Cell {
	cells := make([]*Cell, 0, r.members.Size())
	r.members.Each(func(c *Cell) {
		cells = append(cells, c)
	})
	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i].Coordinates, cells[j].Coordinates
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Z < b.Z
	})
	return cells
}

// Rooms is the registry of live rooms. IDs are never reused.
type Rooms struct {
	arena []*Room
	live  int
}

// NewRooms creates an empty registry
func NewRooms() *Rooms {
	return &Rooms{}
}

// Create registers a new empty room with the given theme
func (rs *Rooms) Create(theme int) *Room {
	r := newRoom(RoomID(len(rs.arena)), theme)
	rs.arena = append(rs.arena, r)
	rs.live++
	return r
}

// Get returns the live room with the given ID, or nil
func (rs *Rooms) Get(id RoomID) *Room {
	if id < 0 || int(id) >= len(rs.arena) {
		return nil
	}
	return rs.arena[id]
}

// Remove drops a room from the registry
func (rs *Rooms) Remove(id RoomID) {
	if rs.Get(id) == nil {
		return
	}
	rs.arena[id] = nil
	rs.live--
}

// Len returns the number of live rooms
func (rs *Rooms) Len() int {
	return rs.live
}

// Created returns how many rooms were ever registered
func (rs *Rooms) Created() int {
	return len(rs.arena)
}

// Live returns the live rooms in ID order
func (rs *Rooms) Live() []*Room {
	rooms := make([]*Room, 0, rs.live)
	for _, r := range rs.arena {
		if r != nil {
			rooms = append(rooms, r)
		}
	}
	return rooms
}
