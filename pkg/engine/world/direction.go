package world

// Direction represents a cardinal direction
type Direction int

// Direction constants, in clockwise order
const (
	North Direction = iota
	East
	South
	West
)

// DirectionCount is the number of cardinal directions
const DirectionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Clockwise returns the next direction turning right
func (d Direction) Clockwise() Direction {
	return (d + 1) % DirectionCount
}

// CounterClockwise returns the next direction turning left
func (d Direction) CounterClockwise() Direction {
	return (d + DirectionCount - 1) % DirectionCount
}

// Delta returns the unit displacement for this direction.
// North grows z, east grows x.
func (d Direction) Delta() Coordinate {
	switch d {
	case North:
		return Coordinate{X: 0, Z: 1}
	case East:
		return Coordinate{X: 1, Z: 0}
	case South:
		return Coordinate{X: 0, Z: -1}
	case West:
		return Coordinate{X: -1, Z: 0}
	default:
		return Coordinate{}
	}
}

// Rotation returns the placement orientation in degrees (0, 90, 180 or 270)
func (d Direction) Rotation() int {
	if !d.IsValid() {
		return 0
	}
	return int(d) * 90
}
