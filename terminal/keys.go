package terminal

import (
	"time"

	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/gdamore/tcell/v2"
)

// Terminals report presses and auto-repeats, never releases, so an action
// counts as held until HoldTimeout passes without another press.
const HoldTimeout = 180 * time.Millisecond

var runeActions = map[rune]cfg.ActionID{
	'a': cfg.ActionMoveLeft,
	'd': cfg.ActionMoveRight,
	'w': cfg.ActionJump,
	' ': cfg.ActionJump,
	'b': cfg.ActionBreak,
	'1': cfg.ActionThrowKetchup,
	'j': cfg.ActionThrowKetchup,
	'2': cfg.ActionThrowMustard,
	'k': cfg.ActionThrowMustard,
	'3': cfg.ActionThrowRelish,
	'l': cfg.ActionThrowRelish,
}

var keyActions = map[tcell.Key]cfg.ActionID{
	tcell.KeyLeft:  cfg.ActionMoveLeft,
	tcell.KeyRight: cfg.ActionMoveRight,
	tcell.KeyUp:    cfg.ActionJump,
	tcell.KeyDown:  cfg.ActionBreak,
}

// ActionForKey maps a key event to the game action bound to it.
func ActionForKey(ev *tcell.EventKey) (cfg.ActionID, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := runeActions[ev.Rune()]
		return a, ok
	}
	a, ok := keyActions[ev.Key()]
	return a, ok
}

type KeyState struct {
	timeout time.Duration
	pressed [cfg.ActionCount]time.Time
}

func NewKeyState(timeout time.Duration) *KeyState {
	return &KeyState{timeout: timeout}
}

func (k *KeyState) Press(a cfg.ActionID, now time.Time) {
	k.pressed[a] = now
}

// Held reports every action pressed within the timeout of now.
func (k *KeyState) Held(now time.Time) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	for a, at := range k.pressed {
		held[a] = !at.IsZero() && now.Sub(at) < k.timeout
	}
	return held
}

func (k *KeyState) Clear() {
	k.pressed = [cfg.ActionCount]time.Time{}
}
