package renderer

import (
	"darkmaze/pkg/game/gameplay"
)

// Renderer defines the interface for game rendering backends.
// The terminal and Ebiten backends both drive a gameplay.Session.
type Renderer interface {
	// Init prepares the backend (colours, fonts, window)
	Init() error

	// Run owns the main loop until the player quits. Generation is animated
	// through the session's builder before each maze is played.
	Run(s *gameplay.Session) error

	// Name is shown in logs and -help output
	Name() string
}
