package world

import "testing"

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range AllDirections() {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, got, d)
		}
		if d.Opposite() == d {
			t.Errorf("%v.Opposite() = %v, want a different direction", d, d)
		}
	}
}

func TestDirection_RotationsAreInverse(t *testing.T) {
	for _, d := range AllDirections() {
		if got := d.Clockwise().CounterClockwise(); got != d {
			t.Errorf("%v.Clockwise().CounterClockwise() = %v, want %v", d, got, d)
		}
		if got := d.Clockwise().Clockwise(); got != d.Opposite() {
			t.Errorf("%v turned right twice = %v, want %v", d, got, d.Opposite())
		}
	}
}

func TestDirection_ClockwiseCyclesAllFour(t *testing.T) {
	seen := map[Direction]bool{}
	d := North
	for i := 0; i < DirectionCount; i++ {
		seen[d] = true
		d = d.Clockwise()
	}
	if d != North {
		t.Errorf("four clockwise turns from North ended at %v", d)
	}
	if len(seen) != DirectionCount {
		t.Errorf("clockwise visited %d directions, want %d", len(seen), DirectionCount)
	}
}

func TestDirection_DeltaIsUnitAndOppositeCancels(t *testing.T) {
	for _, d := range AllDirections() {
		delta := d.Delta()
		if abs(delta.X)+abs(delta.Z) != 1 {
			t.Errorf("%v.Delta() = %+v, want a unit vector", d, delta)
		}
		if sum := delta.Add(d.Opposite().Delta()); sum != (Coordinate{}) {
			t.Errorf("%v delta + opposite delta = %+v, want zero", d, sum)
		}
	}
	if got := (Coordinate{X: 2, Z: 3}).Step(North); got != (Coordinate{X: 2, Z: 4}) {
		t.Errorf("(2,3).Step(North) = %v, want 2:4", got)
	}
}

func TestDirection_Rotation(t *testing.T) {
	want := map[Direction]int{North: 0, East: 90, South: 180, West: 270}
	for d, deg := range want {
		if got := d.Rotation(); got != deg {
			t.Errorf("%v.Rotation() = %d, want %d", d, got, deg)
		}
	}
	if Direction(7).IsValid() {
		t.Error("Direction(7).IsValid() = true, want false")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
