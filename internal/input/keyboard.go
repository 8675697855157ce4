package input

import "github.com/vovakirdan/joysnake/internal/core"

// Keyboard is the fallback source. The platform layer feeds it key names as
// reported by the terminal and the state machine polls it once per tick.
type Keyboard struct {
	left, right, up, down bool
	pause                 bool
}

// NewKeyboard creates an idle keyboard source.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Press records a key press. It returns false for keys the source ignores.
func (k *Keyboard) Press(key string) bool {
	switch key {
	case "left", "a":
		k.left = true
	case "right", "d":
		k.right = true
	case "up", "w":
		k.up = true
	case "down", "s":
		k.down = true
	case "p":
		k.pause = true
	default:
		return false
	}
	return true
}

// PollDirection returns the pressed direction with priority left, right, up,
// down, or current when nothing was pressed. Presses are consumed.
func (k *Keyboard) PollDirection(current core.Direction) core.Direction {
	dir := current
	switch {
	case k.left:
		dir = core.Left
	case k.right:
		dir = core.Right
	case k.up:
		dir = core.Up
	case k.down:
		dir = core.Down
	}
	k.left, k.right, k.up, k.down = false, false, false, false
	return dir
}

// PollPauseToggle reports and consumes a pending pause toggle.
func (k *Keyboard) PollPauseToggle() bool {
	t := k.pause
	k.pause = false
	return t
}

// Name returns "keyboard".
func (k *Keyboard) Name() string {
	return "keyboard"
}

// Close is a no-op.
func (k *Keyboard) Close() error {
	return nil
}
