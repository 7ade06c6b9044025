package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/theme"
)

// Icon constants
const (
	IconVoid     = " "
	IconCorner   = "+"
	IconFloor    = "·"
	IconFrontier = "*"
	IconDoorOpen = "'"
)

// playerIcons shows which way the player faces
var playerIcons = [world.DirectionCount]string{"▲", "▶", "▼", "◀"}

// wallIcons holds {horizontal, vertical} glyphs per wall variant
var wallIcons = [][2]string{
	{"─", "│"},
	{"═", "║"},
	{"┄", "┆"},
	{"━", "┃"},
}

// doorIcons holds the closed {horizontal, vertical} door glyphs
var doorIcons = [2]string{"▭", "▯"}

// themeColors tints floors and doors by room theme
var themeColors = []color.Color{
	color.FgCyan,
	color.FgYellow,
	color.FgMagenta,
	color.FgGreen,
	color.FgBlue,
	color.FgRed,
	color.FgLightCyan,
	color.FgLightYellow,
}

// StatusRows is the number of lines drawn below the map
const StatusRows = 8

// clearScreen homes the cursor and clears the terminal
const clearScreen = "\033[H\033[2J"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	// Pace is the delay between animated generation steps
	Pace time.Duration

	colorWall     color.Style
	colorOpen     color.Style
	colorPlayer   color.Style
	colorFrontier color.Style
	colorSubtle   color.Style
	colorAction   color.Style
	colorTitle    color.Style
}

// New creates a new TUI renderer writing to stdout
func New(pace time.Duration) *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, Pace: pace}
}

// Name returns the backend name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes the TUI renderer colours
func (t *TUIRenderer) Init() error {
	t.colorWall = color.Style{color.FgGray}
	t.colorOpen = color.Style{color.FgGreen, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorFrontier = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	return nil
}

// intentReader is the key source Run reads from
type intentReader interface {
	ReadIntent() (input.Intent, error)
}

type keyEvent struct {
	intent input.Intent
	err    error
}

// Run puts the terminal in raw mode, animates each maze and reads keys
// until the player quits
func (t *TUIRenderer) Run(s *gameplay.Session) error {
	restore, err := input.EnterRaw()
	if err != nil {
		return err
	}
	defer restore()
	return t.loop(s, input.NewKeyReader(os.Stdin))
}

func (t *TUIRenderer) loop(s *gameplay.Session, keys intentReader) error {
	events := make(chan keyEvent)
	go func() {
		for {
			intent, err := keys.ReadIntent()
			events <- keyEvent{intent: intent, err: err}
			if err != nil {
				return
			}
		}
	}()

	for {
		if !s.Ready() {
			quit, err := t.generate(s, events)
			if err != nil {
				return err
			}
			if quit {
				t.goodbye()
				return nil
			}
			continue
		}
		t.frame(s)

		ev := <-events
		if ev.err != nil {
			return ev.err
		}
		if s.Apply(ev.intent.Action) {
			t.goodbye()
			return nil
		}
	}
}

// generate carves the current maze, drawing a frame per step when paced.
// A key press stops the run after the current step and is applied then, so
// a restart throws the half-built maze away. Other keys resume the run.
func (t *TUIRenderer) generate(s *gameplay.Session, events <-chan keyEvent) (quit bool, err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pending *keyEvent
	err = s.Generate(ctx, t.Pace, func(*generator.Builder) {
		select {
		case ev := <-events:
			pending = &ev
			cancel()
		default:
		}
		if t.Pace > 0 {
			t.frame(s)
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return false, err
	}
	if pending == nil {
		return false, nil
	}
	if pending.err != nil {
		return false, pending.err
	}
	return s.Apply(pending.intent.Action), nil
}

func (t *TUIRenderer) goodbye() {
	fmt.Fprint(t.out, gotext.Get("GOODBYE")+"\r\n")
}

// frame clears the terminal and draws the session in one write. Lines end
// in CRLF because the terminal is in raw mode.
func (t *TUIRenderer) frame(s *gameplay.Session) {
	var buf bytes.Buffer
	buf.WriteString(clearScreen)
	t.Render(&buf, s)
	t.out.Write(bytes.ReplaceAll(buf.Bytes(), []byte("\n"), []byte("\r\n")))
}

// Render writes a complete frame: header, map, status bar and messages
func (t *TUIRenderer) Render(w io.Writer, s *gameplay.Session) {
	m := s.Builder.Maze()
	if s.Ready() {
		m = s.Game.Maze
	}

	fmt.Fprintln(w, t.colorTitle.Sprintf(gotext.Get("TITLE"), s.Generation, m.Width(), m.Depth(), m.Seed))
	fmt.Fprintln(w)
	t.renderMap(w, s, m)
	t.renderStatus(w, s)
	t.renderMessages(w, s)
}

func (t *TUIRenderer) renderMap(w io.Writer, s *gameplay.Session, m *world.Maze) {
	l := renderer.NewLayout(m)
	v := renderer.NewVisibility(s)
	for row := 0; row < l.Rows; row++ {
		var sb strings.Builder
		for col := 0; col < l.Cols; col++ {
			if !v.Tile(l, col, row) {
				sb.WriteString(IconVoid)
				continue
			}
			sb.WriteString(t.renderTile(s, m, l.At(col, row), v))
		}
		fmt.Fprintln(w, sb.String())
	}
}

// renderTile returns the styled glyph for one visible tile
func (t *TUIRenderer) renderTile(s *gameplay.Session, m *world.Maze, tile renderer.Tile, v renderer.Visibility) string {
	switch tile.Kind {
	case renderer.TileCorner:
		return t.colorWall.Sprint(IconCorner)
	case renderer.TileWall:
		glyphs := wallIcons[tile.Edge.Variant%len(wallIcons)]
		if tile.Horizontal {
			return t.colorWall.Sprint(glyphs[0])
		}
		return t.colorWall.Sprint(glyphs[1])
	case renderer.TileOpen:
		return t.themeStyle(m, tile.Near).Sprint(IconFloor)
	case renderer.TileDoor:
		if v.DoorOpen(tile) {
			return t.colorOpen.Sprint(IconDoorOpen)
		}
		glyph := doorIcons[1]
		if tile.Horizontal {
			glyph = doorIcons[0]
		}
		return t.themeStyle(m, tile.Near).Sprint(glyph)
	case renderer.TileFloor:
		if s.Ready() && tile.Near == s.Game.CurrentCell {
			return t.colorPlayer.Sprint(playerIcons[s.Game.Facing])
		}
		if !s.Ready() && tile.Near == s.Builder.Current() {
			return t.colorFrontier.Sprint(IconFrontier)
		}
		return t.themeStyle(m, tile.Near).Sprint(IconFloor)
	}
	return IconVoid
}

func (t *TUIRenderer) themeStyle(m *world.Maze, c *world.Cell) color.Style {
	room := m.RoomOf(c)
	if room == nil {
		return t.colorSubtle
	}
	return color.Style{themeColors[room.Theme%len(themeColors)]}
}

func (t *TUIRenderer) renderStatus(w io.Writer, s *gameplay.Session) {
	fmt.Fprintln(w)
	stats := s.Builder.Stats()
	if !s.Ready() {
		fmt.Fprintln(w, t.colorSubtle.Sprintf(gotext.Get("GENERATING"), stats.Steps, stats.Cells, s.Builder.ActiveCount()))
		return
	}
	g := s.Game
	fmt.Fprintln(w, t.colorSubtle.Sprintf(gotext.Get("STATUS"), g.CurrentCell.Name, g.Facing, theme.RoomName(g.CurrentRoom()), g.Moves))
	fmt.Fprintln(w, t.colorAction.Sprint(gotext.Get("CONTROLS")))
}

// renderMessages draws the message log pane
func (t *TUIRenderer) renderMessages(w io.Writer, s *gameplay.Session) {
	if !s.Ready() {
		return
	}
	label := " " + gotext.Get("MESSAGES") + " "
	fmt.Fprintln(w, t.colorSubtle.Sprint("──"+label+"──"))
	if len(s.Game.Messages) == 0 {
		fmt.Fprintln(w, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
		return
	}
	for _, msg := range s.Game.Messages {
		fmt.Fprintf(w, "  %s\n", msg)
	}
}
