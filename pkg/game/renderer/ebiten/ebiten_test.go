package ebiten

import (
	"testing"
	"time"

	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/renderer"
)

func testSession(t *testing.T) *gameplay.Session {
	t.Helper()
	cfg := generator.Config{Width: 6, Depth: 5, DoorProbability: 0.2, ThemeCount: 3, WallVariants: 2, Seed: 8}
	s, err := gameplay.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAdvance_PacedStepsFollowClock(t *testing.T) {
	s := testSession(t)
	e := New(10 * time.Millisecond)
	e.session = s
	start := time.Now()
	e.nextStep = start

	if err := e.advance(start.Add(-time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if got := s.Builder.Stats().Steps; got != 0 {
		t.Fatalf("steps before the first tick = %d, want 0", got)
	}
	if err := e.advance(start.Add(45 * time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if got := s.Builder.Stats().Steps; got != 5 {
		t.Errorf("steps after 45ms at 10ms pace = %d, want 5", got)
	}
}

func TestAdvance_UnpacedFinishesAtOnce(t *testing.T) {
	s := testSession(t)
	e := New(0)
	e.session = s
	if err := e.advance(time.Now()); err != nil {
		t.Fatal(err)
	}
	if !s.Ready() {
		t.Error("unpaced advance left the maze unfinished")
	}
}

func TestFitTileSize(t *testing.T) {
	s := testSession(t)
	l := renderer.NewLayout(s.Builder.Maze())
	size := fitTileSize(1024, 768, l)
	if size < minTileSize || size > maxTileSize {
		t.Fatalf("fitTileSize = %d, outside [%d, %d]", size, minTileSize, maxTileSize)
	}
	if got := fitTileSize(10, 10, l); got != minTileSize {
		t.Errorf("fitTileSize on a tiny screen = %d, want %d", got, minTileSize)
	}
}

func TestStatusLines(t *testing.T) {
	s := testSession(t)
	if n := len(statusLines(s)); n != 1 {
		t.Errorf("%d status lines while generating, want 1", n)
	}
	_ = s.Advance(0)
	if n := len(statusLines(s)); n != 2+len(s.Game.Messages) {
		t.Errorf("%d status lines, want %d", n, 2+len(s.Game.Messages))
	}
}
