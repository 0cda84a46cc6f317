package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

var botKeys = []tetris.Key{
	tetris.KeyNone,
	tetris.KeyNone,
	tetris.KeyNone,
	tetris.KeyLeft,
	tetris.KeyRight,
	tetris.KeyRotate,
	tetris.KeyHardDrop,
}

// bot presses a random key each frame and sometimes holds soft drop. It is
// seeded so that a soak run can be replayed.
type bot struct {
	rng  *rand.Rand
	key  tetris.Key
	held bool
}

func newBot(seed uint64) *bot {
	return &bot{rng: rand.New(tetris.NewXoshiro256(seed))}
}

// roll picks the input for the next frame.
func (b *bot) roll() {
	b.key = botKeys[b.rng.IntN(len(botKeys))]
	b.held = b.rng.IntN(8) == 0
}

func (b *bot) Pressed() tetris.Key { return b.key }
func (b *bot) SoftDropHeld() bool  { return b.held }
