package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/gookit/color"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/generator"
)

func newRenderer(t *testing.T) *TUIRenderer {
	t.Helper()
	r := New(0)
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	return r
}

func mapLines(out string, rows int) []string {
	lines := strings.Split(color.ClearCode(out), "\n")
	// title and blank line come first
	return lines[2 : 2+rows]
}

func TestRender_RevealedMazeHasClosedBorder(t *testing.T) {
	cfg := generator.Config{Width: 5, Depth: 4, DoorProbability: 0.3, ThemeCount: 3, WallVariants: 1, Seed: 21}
	s, err := gameplay.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(0); err != nil {
		t.Fatal(err)
	}
	s.Reveal = true

	var buf bytes.Buffer
	newRenderer(t).Render(&buf, s)
	lines := mapLines(buf.String(), 9)

	for i, line := range lines {
		if n := len([]rune(line)); n != 11 {
			t.Fatalf("map line %d is %d runes wide, want 11: %q", i, n, line)
		}
	}
	top := "+─+─+─+─+─+"
	if lines[0] != top || lines[8] != top {
		t.Errorf("border rows = %q / %q, want %q", lines[0], lines[8], top)
	}
	for i := 1; i < 8; i += 2 {
		r := []rune(lines[i])
		if r[0] != '│' || r[10] != '│' {
			t.Errorf("map line %d has no side walls: %q", i, lines[i])
		}
	}

	players := 0
	for _, line := range lines {
		players += strings.Count(line, playerIcons[s.Game.Facing])
	}
	if players != 1 {
		t.Errorf("%d player glyphs on the map, want 1", players)
	}
}

func TestRender_HiddenRoomsBlank(t *testing.T) {
	cfg := generator.Config{Width: 8, Depth: 8, DoorProbability: 1, ThemeCount: 8, WallVariants: 1, Seed: 5}
	s, _ := gameplay.NewSession(cfg)
	_ = s.Advance(0)

	var hidden, revealed bytes.Buffer
	r := newRenderer(t)
	r.Render(&hidden, s)
	s.Reveal = true
	r.Render(&revealed, s)

	count := func(out string) int {
		return strings.Count(color.ClearCode(out), IconFloor)
	}
	if count(hidden.String()) >= count(revealed.String()) {
		t.Error("hiding rooms did not blank any floor")
	}
}

func TestRender_WhileGenerating(t *testing.T) {
	cfg := generator.Config{Width: 4, Depth: 4, DoorProbability: 0, ThemeCount: 1, WallVariants: 1, Seed: 2}
	s, _ := gameplay.NewSession(cfg)
	_ = s.Advance(5)

	var buf bytes.Buffer
	newRenderer(t).Render(&buf, s)
	out := color.ClearCode(buf.String())
	if !strings.Contains(out, IconFrontier) {
		t.Errorf("frontier cell not marked:\n%s", out)
	}
}

// scriptedKeys replays a fixed list of actions, then reports EOF
type scriptedKeys struct {
	actions []input.Action
}

func (k *scriptedKeys) ReadIntent() (input.Intent, error) {
	if len(k.actions) == 0 {
		return input.Intent{}, io.EOF
	}
	a := k.actions[0]
	k.actions = k.actions[1:]
	return input.Intent{Action: a}, nil
}

func bigSession(t *testing.T) *gameplay.Session {
	t.Helper()
	cfg := generator.Config{Width: 30, Depth: 30, DoorProbability: 0.2, ThemeCount: 3, WallVariants: 1, Seed: 3}
	s, err := gameplay.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestGenerate_RestartStopsHalfBuiltMaze(t *testing.T) {
	s := bigSession(t)
	r := newRenderer(t)
	r.out = io.Discard

	events := make(chan keyEvent, 1)
	events <- keyEvent{intent: input.Intent{Action: input.ActionRestart}}
	quit, err := r.generate(s, events)
	if err != nil || quit {
		t.Fatalf("generate() = %v, %v", quit, err)
	}
	if s.Generation != 2 {
		t.Errorf("Generation = %d, want 2", s.Generation)
	}
	if s.Ready() || s.Builder.Stats().Steps != 0 {
		t.Errorf("restart left a used builder: ready=%v steps=%d", s.Ready(), s.Builder.Stats().Steps)
	}
}

func TestGenerate_OtherKeysResume(t *testing.T) {
	s := bigSession(t)
	r := newRenderer(t)
	r.out = io.Discard

	events := make(chan keyEvent, 1)
	events <- keyEvent{intent: input.Intent{Action: input.ActionReveal}}
	if _, err := r.generate(s, events); err != nil {
		t.Fatal(err)
	}
	if !s.Reveal || s.Ready() || s.Builder.Stats().Steps != 1 {
		t.Fatalf("reveal=%v ready=%v steps=%d, want true/false/1", s.Reveal, s.Ready(), s.Builder.Stats().Steps)
	}

	if _, err := r.generate(s, events); err != nil {
		t.Fatal(err)
	}
	if !s.Ready() || s.Generation != 1 {
		t.Errorf("ready=%v generation=%d, want the first maze finished", s.Ready(), s.Generation)
	}
}

func TestLoop_RestartThenQuit(t *testing.T) {
	s := bigSession(t)
	r := newRenderer(t)
	var out bytes.Buffer
	r.out = &out

	keys := &scriptedKeys{actions: []input.Action{input.ActionRestart, input.ActionQuit}}
	if err := r.loop(s, keys); err != nil {
		t.Fatal(err)
	}
	if s.Generation != 2 {
		t.Errorf("Generation = %d, want 2", s.Generation)
	}
	if !strings.HasSuffix(out.String(), "GOODBYE\r\n") {
		t.Errorf("output does not end with the goodbye line: %q", out.String()[max(0, out.Len()-40):])
	}
}

func TestLoop_InputErrorEndsRun(t *testing.T) {
	s := bigSession(t)
	r := newRenderer(t)
	r.out = io.Discard

	if err := r.loop(s, &scriptedKeys{}); err != io.EOF {
		t.Errorf("loop() = %v, want EOF", err)
	}
}
