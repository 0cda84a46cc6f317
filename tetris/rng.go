package tetris

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// Xoshiro256 is a xoshiro256** generator seeded through splitmix64. It
// implements rand.Source so it can drive a *rand.Rand.
type Xoshiro256 struct {
	s [4]uint64
}

// NewXoshiro256 expands a 64-bit seed into the generator state.
func NewXoshiro256(seed uint64) *Xoshiro256 {
	x := &Xoshiro256{}
	x.Seed(seed)
	return x
}

// Seed resets the state from a 64-bit seed.
func (x *Xoshiro256) Seed(seed uint64) {
	sm := seed
	for i := range x.s {
		sm += 0x9e3779b97f4a7c15
		z := sm
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		x.s[i] = z ^ (z >> 31)
	}
}

func (x *Xoshiro256) Uint64() uint64 {
	s := &x.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// Randomizer picks the shape of each new piece.
type Randomizer interface {
	Next() ShapeID
}

// RandomizerKind names a Randomizer implementation.
type RandomizerKind string

const (
	// RandomizerUniform draws each shape independently with equal odds.
	RandomizerUniform RandomizerKind = "uniform"
	// RandomizerBag deals shuffled bags of all seven shapes.
	RandomizerBag RandomizerKind = "bag"
)

// NewRandomizer builds a seeded randomizer of the given kind.
func NewRandomizer(kind RandomizerKind, seed uint64) (Randomizer, error) {
	switch kind {
	case RandomizerUniform, "":
		return NewUniformRandomizer(seed), nil
	case RandomizerBag:
		return NewBagRandomizer(seed), nil
	default:
		return nil, fmt.Errorf("unknown randomizer %q", kind)
	}
}

// UniformRandomizer chooses among the seven shapes with equal probability.
type UniformRandomizer struct {
	rng *rand.Rand
}

func NewUniformRandomizer(seed uint64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(NewXoshiro256(seed))}
}

func (u *UniformRandomizer) Next() ShapeID {
	return Shapes[u.rng.IntN(ShapeCount)]
}

// BagRandomizer deals every shape once per shuffled bag.
type BagRandomizer struct {
	rng *rand.Rand
	bag []ShapeID
}

func NewBagRandomizer(seed uint64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(NewXoshiro256(seed))}
}

func (b *BagRandomizer) Next() ShapeID {
	if len(b.bag) == 0 {
		b.bag = append(b.bag[:0], Shapes[:]...)
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}
	id := b.bag[0]
	b.bag = b.bag[1:]
	return id
}
