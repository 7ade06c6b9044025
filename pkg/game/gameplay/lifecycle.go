// Package gameplay drives a maze run: animated generation, placing the
// player and the move/look rules with room visibility.
package gameplay

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/setup"
	"darkmaze/pkg/game/state"
)

// Session owns one maze at a time. While Game is nil the maze is still
// being carved by Builder.
type Session struct {
	Config  generator.Config
	Builder *generator.Builder
	Game    *state.Game

	// Generation counts mazes started in this session, the first being 1
	Generation int

	// Reveal draws every room regardless of visibility
	Reveal bool
}

// NewSession validates cfg and starts the first maze. Nothing is carved
// until Advance or Generate is called.
func NewSession(cfg generator.Config) (*Session, error) {
	s := &Session{Config: cfg}
	if err := s.Restart(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart throws the current maze away and starts a new one. A zero seed
// picks a fresh time-based seed.
func (s *Session) Restart(seed int64) error {
	cfg := s.Config
	cfg.Seed = seed
	b, err := generator.NewBuilder(cfg)
	if err != nil {
		return err
	}
	s.Builder = b
	s.Game = nil
	s.Generation++
	log.Printf("maze %d: %dx%d seed=%d", s.Generation, cfg.Width, cfg.Depth, b.Seed())
	return nil
}

// Ready returns true once the maze is finished and the player placed
func (s *Session) Ready() bool {
	return s.Game != nil
}

// Advance performs up to n generation steps, or all remaining steps when
// n <= 0. When the builder finishes the player is placed.
func (s *Session) Advance(n int) error {
	if s.Ready() {
		return nil
	}
	for i := 0; (n <= 0 || i < n) && !s.Builder.Done(); i++ {
		s.Builder.Step()
	}
	if s.Builder.Done() {
		return s.finish()
	}
	return nil
}

// Generate runs the builder to completion, one step per pace tick, calling
// onStep after each step. It returns ctx.Err() if cancelled first.
func (s *Session) Generate(ctx context.Context, pace time.Duration, onStep func(*generator.Builder)) error {
	if s.Ready() {
		return nil
	}
	if err := generator.Run(ctx, s.Builder, pace, onStep); err != nil {
		return err
	}
	return s.finish()
}

// finish checks the finished maze and drops the player on its start cell
func (s *Session) finish() error {
	m := s.Builder.Maze()
	if err := setup.Check(m); err != nil {
		return fmt.Errorf("maze %d (seed %d) failed checks: %w", s.Generation, m.Seed, err)
	}

	// The start cell is drawn from the maze seed so a seed replays fully.
	g := state.NewGame(m, rand.New(rand.NewSource(m.Seed)))
	SetLocation(g, g.StartCell)
	g.AddMessage(fmt.Sprintf(gotext.Get("MAZE_READY"), m.Width(), m.Depth(), m.Rooms.Len()))
	g.AddMessage(fmt.Sprintf(gotext.Get("SEED"), m.Seed))
	s.Game = g

	stats := s.Builder.Stats()
	log.Printf("maze %d ready: steps=%d rooms=%d merged=%d doors=%d", s.Generation, stats.Steps, m.Rooms.Len(), stats.RoomsMerged, stats.Doors)
	return nil
}
