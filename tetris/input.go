package tetris

// Key is a discrete player command decoded from a key-press edge.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyDown
	KeyHardDrop
	KeyRotate
	// KeyOther is any other key; it only matters as a game-over acknowledgment.
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyHardDrop:
		return "hard_drop"
	case KeyRotate:
		return "rotate"
	default:
		return "other"
	}
}

// Input is polled once per frame.
type Input interface {
	// Pressed returns the key pressed since the last poll, or KeyNone.
	Pressed() Key
	// SoftDropHeld reports whether the soft-drop key is held down.
	SoftDropHeld() bool
}

// StaticInput is an Input with fixed answers, handy for scripted play.
type StaticInput struct {
	Key  Key
	Held bool
}

func (s StaticInput) Pressed() Key       { return s.Key }
func (s StaticInput) SoftDropHeld() bool { return s.Held }
