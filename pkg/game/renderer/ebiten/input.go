package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "darkmaze/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the device-independent codes bindings use
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyW, "w"},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyE, "e"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyX, "x"},
	{ebiten.KeyEscape, "escape"},
}

// repeatable lists the actions that auto-repeat while held
var repeatable = map[engineinput.Action]bool{
	engineinput.ActionForward: true,
	engineinput.ActionRight:   true,
	engineinput.ActionBack:    true,
	engineinput.ActionLeft:    true,
}

// checkInput returns the intent for the first key pressed (or repeating) this tick
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range keyCodes {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      k.code,
			Timestamp: time.Now(),
		}))
		if repeatable[intent.Action] {
			key := k.key
			if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, k.code) {
				return intent
			}
			continue
		}
		if inpututil.IsKeyJustPressed(k.key) {
			return intent
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]
	if !isPressed() {
		// Key released - clean up state
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}
