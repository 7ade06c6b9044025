package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/theme"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.session == nil || e.monoFontSource == nil {
		return
	}
	s := e.session
	m := currentMaze(s)

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	l := renderer.NewLayout(m)
	tileSize := fitTileSize(screenWidth, screenHeight, l)
	face := e.getMonoFontFace(uiFontSize(tileSize))
	lineHeight := int(face.Size) + 4

	// Header
	e.drawText(screen, fmt.Sprintf(gotext.Get("TITLE"), s.Generation, m.Width(), m.Depth(), m.Seed), frameBorder, frameBorder, colorAction, face)

	// Map, centred below the header
	mapTop := frameBorder + headerLines*lineHeight + frameBorder
	mapW, mapH := l.Cols*tileSize, l.Rows*tileSize
	mapLeft := (screenWidth - mapW) / 2
	vector.DrawFilledRect(screen, float32(mapLeft), float32(mapTop), float32(mapW), float32(mapH), colorMapBackground, false)
	e.drawMap(screen, s, m, l, mapLeft, mapTop, tileSize)

	// Status and messages
	y := mapTop + mapH + frameBorder
	for _, line := range statusLines(s) {
		e.drawText(screen, line.text, frameBorder, y, line.color, face)
		y += lineHeight
	}
}

func currentMaze(s *gameplay.Session) *world.Maze {
	if s.Ready() {
		return s.Game.Maze
	}
	return s.Builder.Maze()
}

// fitTileSize picks the largest square tile that fits the map on screen
func fitTileSize(screenWidth, screenHeight int, l *renderer.Layout) int {
	face := uiFontSize(maxTileSize)
	reserved := frameBorder*4 + (headerLines+footerLines)*(int(face)+4)
	size := min((screenWidth-2*frameBorder)/l.Cols, (screenHeight-reserved)/l.Rows)
	return max(min(size, maxTileSize), minTileSize)
}

func (e *EbitenRenderer) drawMap(screen *ebiten.Image, s *gameplay.Session, m *world.Maze, l *renderer.Layout, left, top, tileSize int) {
	v := renderer.NewVisibility(s)
	ts := float32(tileSize)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			if !v.Tile(l, col, row) {
				continue
			}
			tile := l.At(col, row)
			clr, ok := tileColor(s, m, tile, v)
			if !ok {
				continue
			}
			x, y := float32(left+col*tileSize), float32(top+row*tileSize)
			vector.DrawFilledRect(screen, x, y, ts, ts, clr, false)

			if tile.Kind == renderer.TileFloor && s.Ready() && tile.Near == s.Game.CurrentCell {
				drawPlayer(screen, x, y, ts, s.Game.Facing)
			}
		}
	}
}

// tileColor returns the fill colour of a tile, or false if it stays empty
func tileColor(s *gameplay.Session, m *world.Maze, tile renderer.Tile, v renderer.Visibility) (color.Color, bool) {
	switch tile.Kind {
	case renderer.TileCorner:
		return wallColors[0], true
	case renderer.TileWall:
		return wallColors[tile.Edge.Variant%len(wallColors)], true
	case renderer.TileDoor:
		if v.DoorOpen(tile) {
			return colorDoorOpen, true
		}
		return colorDoorClosed, true
	case renderer.TileOpen:
		return themeColor(m, tile.Near), true
	case renderer.TileFloor:
		if !s.Ready() && tile.Near == s.Builder.Current() {
			return colorFrontier, true
		}
		return themeColor(m, tile.Near), true
	}
	return nil, false
}

func themeColor(m *world.Maze, c *world.Cell) color.Color {
	room := m.RoomOf(c)
	if room == nil {
		return colorSubtle
	}
	return themeColors[room.Theme%len(themeColors)]
}

// drawPlayer draws the player as a square with a notch on the side it faces
func drawPlayer(screen *ebiten.Image, x, y, ts float32, facing world.Direction) {
	inset := ts / 5
	vector.DrawFilledRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, colorPlayer, false)

	notch := ts / 5
	cx, cy := x+ts/2-notch/2, y+ts/2-notch/2
	switch facing {
	case world.North:
		cy = y
	case world.East:
		cx = x + ts - notch
	case world.South:
		cy = y + ts - notch
	case world.West:
		cx = x
	}
	vector.DrawFilledRect(screen, cx, cy, notch, notch, colorPlayer, false)
}

type statusLine struct {
	text  string
	color color.Color
}

// statusLines returns the lines drawn under the map
func statusLines(s *gameplay.Session) []statusLine {
	if !s.Ready() {
		stats := s.Builder.Stats()
		return []statusLine{{fmt.Sprintf(gotext.Get("GENERATING"), stats.Steps, stats.Cells, s.Builder.ActiveCount()), colorSubtle}}
	}
	g := s.Game
	lines := []statusLine{
		{fmt.Sprintf(gotext.Get("STATUS"), g.CurrentCell.Name, g.Facing, theme.RoomName(g.CurrentRoom()), g.Moves), colorSubtle},
		{gotext.Get("CONTROLS"), colorAction},
	}
	for _, msg := range g.Messages {
		lines = append(lines, statusLine{msg, colorText})
	}
	return lines
}

// drawText draws a line of text with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, msg string, x, y int, clr color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, face, op)
}
