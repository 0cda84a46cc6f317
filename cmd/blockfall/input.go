package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/tetris"
)

var keyMap = map[ebiten.Key]tetris.Key{
	ebiten.KeyArrowLeft:  tetris.KeyLeft,
	ebiten.KeyArrowRight: tetris.KeyRight,
	ebiten.KeyArrowDown:  tetris.KeyDown,
	ebiten.KeyArrowUp:    tetris.KeyHardDrop,
	ebiten.KeyR:          tetris.KeyRotate,
}

// keyboard polls Ebitengine key state. It reads nothing while captured
// reports true, so typing into the overlay does not steer the piece.
type keyboard struct {
	captured func() bool
	pressed  []ebiten.Key
}

func newKeyboard(captured func() bool) *keyboard {
	return &keyboard{captured: captured}
}

// Pressed returns the first key that went down this tick. Unmapped keys
// come back as KeyOther so they can acknowledge a game over.
func (k *keyboard) Pressed() tetris.Key {
	if k.captured() {
		return tetris.KeyNone
	}
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	if len(k.pressed) == 0 {
		return tetris.KeyNone
	}
	for _, key := range k.pressed {
		if mapped, ok := keyMap[key]; ok {
			return mapped
		}
	}
	return tetris.KeyOther
}

func (k *keyboard) SoftDropHeld() bool {
	if k.captured() {
		return false
	}
	return ebiten.IsKeyPressed(ebiten.KeyArrowDown)
}
