package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/blockfall/tetris"
)

// keyboard reads raylib's key queue, one key per frame.
type keyboard struct{}

func (keyboard) Pressed() tetris.Key {
	switch key := rl.GetKeyPressed(); key {
	case 0:
		return tetris.KeyNone
	case rl.KeyLeft:
		return tetris.KeyLeft
	case rl.KeyRight:
		return tetris.KeyRight
	case rl.KeyDown:
		return tetris.KeyDown
	case rl.KeyUp:
		return tetris.KeyHardDrop
	case rl.KeyR:
		return tetris.KeyRotate
	default:
		return tetris.KeyOther
	}
}

func (keyboard) SoftDropHeld() bool {
	return rl.IsKeyDown(rl.KeyDown)
}
