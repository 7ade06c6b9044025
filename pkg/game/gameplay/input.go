package gameplay

import (
	"log"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/state"
)

// Apply handles one player action and reports whether the player asked to quit.
// Movement and looking are ignored while the maze is still generating.
func (s *Session) Apply(action engineinput.Action) (quit bool) {
	switch action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionQuit:
		return true

	case engineinput.ActionRestart:
		if err := s.Restart(0); err != nil {
			log.Printf("restart failed: %v", err)
		}
		return false

	case engineinput.ActionReveal:
		s.Reveal = !s.Reveal
		return false
	}

	if !s.Ready() {
		return false
	}
	ProcessIntent(s.Game, engineinput.Intent{Action: action})
	return false
}

// ProcessIntent applies a movement or look intent to a placed player.
// Movement is relative to where the player is facing.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if g.CurrentCell == nil {
		return
	}
	switch intent.Action {
	case engineinput.ActionForward:
		Move(g, g.Facing)
	case engineinput.ActionRight:
		Move(g, g.Facing.Clockwise())
	case engineinput.ActionBack:
		Move(g, g.Facing.Opposite())
	case engineinput.ActionLeft:
		Move(g, g.Facing.CounterClockwise())
	case engineinput.ActionLookLeft:
		Look(g, g.Facing.CounterClockwise())
	case engineinput.ActionLookRight:
		Look(g, g.Facing.Clockwise())
	}
}
