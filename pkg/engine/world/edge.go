package world

// EdgeKind classifies the relationship a cell has with its neighbour in one direction
type EdgeKind int

// Edge kinds
const (
	Wall EdgeKind = iota
	Passage
	Door
)

// String returns the string representation of an edge kind
func (k EdgeKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Passage:
		return "Passage"
	case Door:
		return "Door"
	default:
		return "Unknown"
	}
}

// IsPassable returns true if the edge can be walked through
func (k EdgeKind) IsPassable() bool {
	return k == Passage || k == Door
}

// Edge is one cell's side of a decided adjacency.
// Non-boundary edges come in matched pairs, one owned by each cell.
type Edge struct {
	Kind      EdgeKind
	Direction Direction

	// Cell owns this edge; Other is the neighbour, nil at the grid boundary
	Cell  *Cell
	Other *Cell

	// Mirrored marks the second-created instance of a door pair
	Mirrored bool

	// Variant selects one of the configured wall styles (walls only)
	Variant int
}

// NewEdge creates an edge owned by cell, facing dir
func NewEdge(kind EdgeKind, cell, other *Cell, dir Direction) *Edge {
	return &Edge{
		Kind:      kind,
		Direction: dir,
		Cell:      cell,
		Other:     other,
	}
}

// IsBoundary returns true if the edge faces outside the grid
func (e *Edge) IsBoundary() bool {
	return e.Other == nil
}

// Neighbor returns the coordinates of the cell on the far side, if any
func (e *Edge) Neighbor() (Coordinate, bool) {
	if e.Other == nil {
		return Coordinate{}, false
	}
	return e.Other.Coordinates, true
}

// OtherSide returns the matched edge owned by the neighbour, or nil
func (e *Edge) OtherSide() *Edge {
	if e.Other == nil {
		return nil
	}
	return e.Other.Edge(e.Direction.Opposite())
}
