package world

import "testing"

func TestRoom_AddSetsBackReference(t *testing.T) {
	rooms := NewRooms()
	r := rooms.Create(2)
	c := NewCell(Coordinate{X: 3, Z: 4})
	r.Add(c)
	if c.Room() != r.ID {
		t.Errorf("cell room = %d, want %d", c.Room(), r.ID)
	}
	if !r.Has(c) || r.Size() != 1 {
		t.Errorf("room membership = %v/%d, want true/1", r.Has(c), r.Size())
	}
}

func TestRoom_AssimilateMovesAllMembers(t *testing.T) {
	rooms := NewRooms()
	a := rooms.Create(0)
	b := rooms.Create(0)
	var moved []*Cell
	for x := 0; x < 3; x++ {
		c := NewCell(Coordinate{X: x})
		b.Add(c)
		moved = append(moved, c)
	}
	keep := NewCell(Coordinate{X: 9})
	a.Add(keep)

	a.Assimilate(b)
	rooms.Remove(b.ID)

	if a.Size() != 4 {
		t.Errorf("a.Size() = %d, want 4", a.Size())
	}
	if b.Size() != 0 {
		t.Errorf("b.Size() = %d after assimilation, want 0", b.Size())
	}
	for _, c := range moved {
		if c.Room() != a.ID {
			t.Errorf("cell %s room = %d, want %d", c.Name, c.Room(), a.ID)
		}
	}
	if rooms.Len() != 1 || rooms.Get(b.ID) != nil {
		t.Errorf("registry len = %d, Get(b) = %v, want 1, nil", rooms.Len(), rooms.Get(b.ID))
	}
	if rooms.Created() != 2 {
		t.Errorf("Created() = %d, want 2", rooms.Created())
	}
	expectInvariant(t, func() {
		b.Add(NewCell(Coordinate{X: 5}))
	})
}

func TestRoom_MembersSorted(t *testing.T) {
	r := NewRooms().Create(0)
	for _, c := range []Coordinate{{X: 2, Z: 1}, {X: 0, Z: 5}, {X: 2, Z: 0}} {
		r.Add(NewCell(c))
	}
	got := r.Members()
	want := []Coordinate{{X: 0, Z: 5}, {X: 2, Z: 0}, {X: 2, Z: 1}}
	for i := range want {
		if got[i].Coordinates != want[i] {
			t.Errorf("Members()[%d] = %v, want %v", i, got[i].Coordinates, want[i])
		}
	}
}

func TestRooms_LiveInIDOrder(t *testing.T) {
	rooms := NewRooms()
	for i := 0; i < 4; i++ {
		rooms.Create(i)
	}
	rooms.Remove(1)
	rooms.Remove(1) // second remove is a no-op
	live := rooms.Live()
	if len(live) != 3 || rooms.Len() != 3 {
		t.Fatalf("Live() len = %d, Len() = %d, want 3", len(live), rooms.Len())
	}
	for i, want := range []RoomID{0, 2, 3} {
		if live[i].ID != want {
			t.Errorf("Live()[%d].ID = %d, want %d", i, live[i].ID, want)
		}
	}
}

func TestRoom_AddOwnedCellIsInvariant(t *testing.T) {
	rooms := NewRooms()
	a := rooms.Create(0)
	b := rooms.Create(1)
	c := NewCell(Coordinate{})
	a.Add(c)
	a.Add(c) // same room again is harmless
	if a.Size() != 1 {
		t.Errorf("a.Size() = %d after re-adding, want 1", a.Size())
	}

	expectInvariant(t, func() { b.Add(c) })
	if b.Has(c) || c.Room() != a.ID {
		t.Errorf("failed Add changed ownership: b.Has=%v room=%d", b.Has(c), c.Room())
	}
}

func TestRoom_AssimilateEmptiesAbsorbedRoom(t *testing.T) {
	rooms := NewRooms()
	a := rooms.Create(0)
	b := rooms.Create(0)
	c := NewCell(Coordinate{X: 1})
	b.Add(c)

	a.Assimilate(b)
	if b.Has(c) || !a.Has(c) {
		t.Errorf("after Assimilate a.Has=%v b.Has=%v, want true/false", a.Has(c), b.Has(c))
	}
	count := 0
	b.members.Each(func(*Cell) { count++ })
	if count != 0 {
		t.Errorf("absorbed room still iterates %d cells", count)
	}
}
