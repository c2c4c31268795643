package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/sonicswirl/internal/entity"
)

// holdWindow is how long a key counts as held after its last press or repeat.
// Terminals report presses only, so a key is released when its repeats stop.
const holdWindow = 300 * time.Millisecond

type action int

const (
	actLeft action = iota
	actRight
	actUp
	actDown
	actJump
	actionCount
)

// opposite cancels the reverse direction as soon as a direction is pressed.
var opposite = map[action]action{
	actLeft:  actRight,
	actRight: actLeft,
	actUp:    actDown,
	actDown:  actUp,
}

// Keyboard turns terminal key events into per-tick player input.
type Keyboard struct {
	now         func() time.Time
	pressed     [actionCount]time.Time
	jumpPressed bool
	debugToggle bool
	debugRotate bool
}

// NewKeyboard creates a keyboard reading the wall clock.
func NewKeyboard() *Keyboard {
	return &Keyboard{now: time.Now}
}

// HandleKey records a key event. It returns true when the key asks to quit.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) (quit bool) {
	return k.handle(ev.Key(), ev.Rune())
}

func (k *Keyboard) handle(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		k.press(actLeft)
	case tcell.KeyRight:
		k.press(actRight)
	case tcell.KeyUp:
		k.press(actUp)
	case tcell.KeyDown:
		k.press(actDown)
	case tcell.KeyRune:
		switch r {
		case ' ', 'z', 'Z':
			if !k.held(actJump) {
				k.jumpPressed = true
			}
			k.press(actJump)
		case 'q', 'Q':
			k.debugToggle = true
		case 'e', 'E':
			k.debugRotate = true
		}
	}
	return false
}

func (k *Keyboard) press(a action) {
	k.pressed[a] = k.now()
	if o, ok := opposite[a]; ok {
		k.pressed[o] = time.Time{}
	}
}

func (k *Keyboard) held(a action) bool {
	t := k.pressed[a]
	return !t.IsZero() && k.now().Sub(t) < holdWindow
}

// Input returns the input for the next tick and clears one-shot presses.
func (k *Keyboard) Input() entity.Input {
	in := entity.Input{
		Left:            k.held(actLeft),
		Right:           k.held(actRight),
		Up:              k.held(actUp),
		Down:            k.held(actDown),
		JumpHeld:        k.held(actJump) || k.jumpPressed,
		JumpJustPressed: k.jumpPressed,
		DebugToggle:     k.debugToggle,
		DebugRotate:     k.debugRotate,
	}
	k.jumpPressed = false
	k.debugToggle = false
	k.debugRotate = false
	return in
}
