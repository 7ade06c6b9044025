package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
// Movement is relative to the way the player is facing.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionForward
	ActionRight
	ActionBack
	ActionLeft

	// Turning on the spot
	ActionLookLeft
	ActionLookRight

	// Meta
	ActionRestart
	ActionReveal
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device-independent key name (e.g. "w", "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is a raw event after deduplication. Both backends deliver
// one event per key press, so this only drops the timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps key codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"w":           ActionForward,
	"arrow_up":    ActionForward,
	"d":           ActionRight,
	"arrow_right": ActionRight,
	"s":           ActionBack,
	"arrow_down":  ActionBack,
	"a":           ActionLeft,
	"arrow_left":  ActionLeft,

	"q": ActionLookLeft,
	"e": ActionLookRight,

	"space": ActionRestart,
	"r":     ActionReveal,

	"x":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent applies the bindings to a debounced input.
func MapToIntent(ev DebouncedInput) Intent {
	return Intent{Action: MapToAction(ev.Code)}
}

// MapToAction returns the action bound to a key code, or ActionNone
func MapToAction(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionForward:
		return "Forward"
	case ActionRight:
		return "Step Right"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Step Left"
	case ActionLookLeft:
		return "Turn Left"
	case ActionLookRight:
		return "Turn Right"
	case ActionRestart:
		return "New Maze"
	case ActionReveal:
		return "Reveal Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
