// Package renderer lays a maze out on a character grid shared by every
// backend: each cell is a floor tile with a wall tile on every side and
// corner posts between them. Row 0 is the north edge of the maze.
package renderer

import (
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/gameplay"
)

// TileKind classifies one position of the layout
type TileKind int

const (
	TileVoid   TileKind = iota // nothing decided yet
	TileCorner                 // post between wall tiles
	TileWall
	TileOpen // passage gap
	TileDoor
	TileFloor
)

// Tile is one position of the layout. Floor tiles carry their cell, side
// tiles carry the edge and the cells on both sides (Far is nil at the boundary).
type Tile struct {
	Kind TileKind
	Near *world.Cell
	Far  *world.Cell
	Edge *world.Edge

	// Horizontal is true for side tiles running east-west
	Horizontal bool
}

// Layout is the (2*width+1) x (2*depth+1) tile plan of a maze
type Layout struct {
	Cols  int
	Rows  int
	depth int
	tiles []Tile
}

// NewLayout lays out the cells and decided edges of m. It can be called on a
// maze that is still being generated.
func NewLayout(m *world.Maze) *Layout {
	l := &Layout{
		Cols:  2*m.Width() + 1,
		Rows:  2*m.Depth() + 1,
		depth: m.Depth(),
	}
	l.tiles = make([]Tile, l.Cols*l.Rows)

	m.Grid.ForEachCell(func(c *world.Cell) {
		col, row := l.CellPos(c.Coordinates)
		l.set(col, row, Tile{Kind: TileFloor, Near: c})
		for _, dir := range world.AllDirections() {
			e := c.Edge(dir)
			if e == nil {
				continue
			}
			delta := dir.Delta()
			// z grows northwards but rows grow downwards
			sc, sr := col+delta.X, row-delta.Z
			if l.at(sc, sr).Kind != TileVoid {
				continue
			}
			l.set(sc, sr, Tile{
				Kind:       sideKind(e.Kind),
				Near:       c,
				Far:        e.Other,
				Edge:       e,
				Horizontal: dir == world.North || dir == world.South,
			})
		}
	})

	for row := 0; row < l.Rows; row += 2 {
		for col := 0; col < l.Cols; col += 2 {
			if l.postNeeded(col, row) {
				l.set(col, row, Tile{Kind: TileCorner})
			}
		}
	}
	return l
}

func sideKind(k world.EdgeKind) TileKind {
	switch k {
	case world.Passage:
		return TileOpen
	case world.Door:
		return TileDoor
	default:
		return TileWall
	}
}

// CellPos returns the layout position of the floor tile of a cell
func (l *Layout) CellPos(c world.Coordinate) (col, row int) {
	return 2*c.X + 1, 2*(l.depth-1-c.Z) + 1
}

// At returns the tile at a layout position, or a void tile outside
func (l *Layout) At(col, row int) Tile {
	return l.at(col, row)
}

func (l *Layout) at(col, row int) Tile {
	if col < 0 || row < 0 || col >= l.Cols || row >= l.Rows {
		return Tile{}
	}
	return l.tiles[row*l.Cols+col]
}

func (l *Layout) set(col, row int, t Tile) {
	l.tiles[row*l.Cols+col] = t
}

// postNeeded reports whether any side tile next to a corner is a wall or door
func (l *Layout) postNeeded(col, row int) bool {
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		switch l.at(col+d[0], row+d[1]).Kind {
		case TileWall, TileDoor:
			return true
		}
	}
	return false
}

// Visibility decides which tiles a backend may draw for a session.
// Everything is shown while generating or when the session reveals the map.
type Visibility struct {
	s *gameplay.Session
}

// NewVisibility creates the visibility rules for the session's current maze
func NewVisibility(s *gameplay.Session) Visibility {
	return Visibility{s: s}
}

// All returns true when no tile is hidden
func (v Visibility) All() bool {
	return v.s.Reveal || !v.s.Ready()
}

// Cell returns true if the cell's room is shown
func (v Visibility) Cell(c *world.Cell) bool {
	if c == nil {
		return false
	}
	return v.All() || v.s.Game.IsCellVisible(c)
}

// Tile returns true if the tile at a layout position should be drawn
func (v Visibility) Tile(l *Layout, col, row int) bool {
	t := l.At(col, row)
	switch t.Kind {
	case TileVoid:
		return false
	case TileCorner:
		for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			n := l.At(col+d[0], row+d[1])
			if v.Cell(n.Near) || v.Cell(n.Far) {
				return true
			}
		}
		return false
	default:
		return v.Cell(t.Near) || v.Cell(t.Far)
	}
}

// DoorOpen returns true if the door tile is swung open for the player
func (v Visibility) DoorOpen(t Tile) bool {
	if t.Kind != TileDoor || !v.s.Ready() {
		return false
	}
	return v.s.Game.IsDoorOpen(t.Edge)
}
