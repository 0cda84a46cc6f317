package main

import "github.com/plus3/blockfall/tetris"

// pendingInput carries one key message into a single frame. Terminals
// report no key-up events, so every down-arrow message counts as one held
// soft-drop step.
type pendingInput struct {
	key  tetris.Key
	held bool
}

func (p *pendingInput) Pressed() tetris.Key { return p.key }
func (p *pendingInput) SoftDropHeld() bool  { return p.held }

func (p *pendingInput) set(key tetris.Key) {
	p.key = key
	p.held = key == tetris.KeyDown
}

func (p *pendingInput) reset() {
	p.key = tetris.KeyNone
	p.held = false
}

// keyFor maps a bubbletea key string to a game key.
func keyFor(s string) tetris.Key {
	switch s {
	case "left", "h":
		return tetris.KeyLeft
	case "right", "l":
		return tetris.KeyRight
	case "down", "j":
		return tetris.KeyDown
	case "up", " ":
		return tetris.KeyHardDrop
	case "r", "x":
		return tetris.KeyRotate
	default:
		return tetris.KeyOther
	}
}
