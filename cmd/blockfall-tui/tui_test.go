package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

type onlyShape tetris.ShapeID

func (s onlyShape) Next() tetris.ShapeID { return tetris.ShapeID(s) }

func newTestModel(id tetris.ShapeID, interval time.Duration) model {
	logger, _ := test.NewNullLogger()
	world := systems.NewWorld(systems.Options{
		Game:         tetris.Options{Randomizer: onlyShape(id), Logger: logger},
		TickInterval: interval,
	})
	return newModel(world, func() time.Time { return time.Unix(100, 0) })
}

func press(t *testing.T, m model, msg tea.KeyMsg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func TestKeyFor(t *testing.T) {
	tests := map[string]tetris.Key{
		"left":  tetris.KeyLeft,
		"h":     tetris.KeyLeft,
		"right": tetris.KeyRight,
		"down":  tetris.KeyDown,
		"up":    tetris.KeyHardDrop,
		" ":     tetris.KeyHardDrop,
		"r":     tetris.KeyRotate,
		"enter": tetris.KeyOther,
	}
	for in, want := range tests {
		assert.Equal(t, want, keyFor(in), in)
	}
}

func TestModelKeys(t *testing.T) {
	t.Run("left moves the piece without gravity", func(t *testing.T) {
		m := newTestModel(tetris.ShapeO, time.Second)
		m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})

		assert.Equal(t, 3, m.world.Game.Current().ColumnOffset)
		assert.Equal(t, 0, m.world.Game.Current().RowOffset)
		assert.Equal(t, int64(0), m.world.Gravity().Ticks)
	})

	t.Run("down is one soft drop step", func(t *testing.T) {
		m := newTestModel(tetris.ShapeO, time.Second)
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

		assert.Equal(t, 2, m.world.Game.Current().RowOffset)
		assert.Equal(t, 2, m.world.Game.Score())
	})

	t.Run("input is cleared after each key", func(t *testing.T) {
		m := newTestModel(tetris.ShapeO, time.Second)
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, tetris.KeyNone, m.input.Pressed())
		assert.False(t, m.input.SoftDropHeld())
	})

	t.Run("space hard drops", func(t *testing.T) {
		m := newTestModel(tetris.ShapeO, time.Second)
		m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		assert.Equal(t, 4, m.world.Game.Field().Occupied())
	})

	t.Run("quit", func(t *testing.T) {
		m := newTestModel(tetris.ShapeO, time.Second)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}

type fakeMixer struct {
	enabled bool
	volume  float64
}

func (f *fakeMixer) SetEnabled(enabled bool)  { f.enabled = enabled }
func (f *fakeMixer) SetVolume(volume float64) { f.volume = volume }

func TestModelSound(t *testing.T) {
	t.Run("starting settings are applied", func(t *testing.T) {
		mx := &fakeMixer{}
		newTestModel(tetris.ShapeO, time.Second).withMixer(mx, true, 1.5)
		assert.False(t, mx.enabled)
		assert.Equal(t, 1.0, mx.volume)
	})

	t.Run("m toggles mute", func(t *testing.T) {
		mx := &fakeMixer{}
		m := newTestModel(tetris.ShapeO, time.Second).withMixer(mx, false, 0.5)
		require.True(t, mx.enabled)

		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
		assert.False(t, mx.enabled)
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
		assert.True(t, mx.enabled)
		assert.Equal(t, 0, m.world.Game.Current().RowOffset)
	})

	t.Run("volume keys step and clamp", func(t *testing.T) {
		mx := &fakeMixer{}
		m := newTestModel(tetris.ShapeO, time.Second).withMixer(mx, false, 0.5)

		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
		assert.InDelta(t, 0.6, mx.volume, 1e-9)
		for range 10 {
			m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
		}
		assert.Zero(t, mx.volume)
	})

	t.Run("sound keys do not acknowledge game over", func(t *testing.T) {
		mx := &fakeMixer{}
		m := newTestModel(tetris.ShapeO, time.Second).withMixer(mx, false, 0.5)
		for i := 0; i < 30 && !m.world.Game.IsOver(); i++ {
			m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		}
		require.True(t, m.world.Game.IsOver())
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
		assert.True(t, m.world.Game.IsOver())
	})

	t.Run("without a mixer the keys reach the game", func(t *testing.T) {
		m := newTestModel(tetris.ShapeO, time.Second)
		assert.False(t, m.adjustSound("m"))
	})
}

func TestModelFrames(t *testing.T) {
	m := newTestModel(tetris.ShapeO, 100*time.Millisecond)
	start := m.last

	next, cmd := m.Update(frameMsg(start.Add(60 * time.Millisecond)))
	m = next.(model)
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, m.world.Game.Current().RowOffset)

	next, _ = m.Update(frameMsg(start.Add(120 * time.Millisecond)))
	m = next.(model)
	assert.Equal(t, 1, m.world.Game.Current().RowOffset)
	assert.Equal(t, 0, m.world.Game.Score(), "gravity scores nothing")
}

func TestBoard(t *testing.T) {
	m := newTestModel(tetris.ShapeO, time.Second)
	g := m.world.Game

	b := board(g)
	assert.Equal(t, cell{kind: cellPiece, shape: tetris.ShapeO}, b[0][4])
	assert.Equal(t, cell{kind: cellPiece, shape: tetris.ShapeO}, b[1][5])
	assert.Equal(t, cellGhost, b[19][4].kind)
	assert.Equal(t, cellGhost, b[18][5].kind)
	assert.Equal(t, cellEmpty, b[10][0].kind)

	g.HardDrop()
	b = board(g)
	assert.Equal(t, cell{kind: cellLocked, shape: tetris.ShapeO}, b[19][4])
	assert.Equal(t, cellGhost, b[17][4].kind)
}

func TestPreview(t *testing.T) {
	i := preview(tetris.NewPiece(tetris.ShapeI))
	assert.Equal(t, [4]tetris.ShapeID{tetris.ShapeI, tetris.ShapeI, tetris.ShapeI, tetris.ShapeI}, i[0])
	assert.Equal(t, [4]tetris.ShapeID{}, i[1])

	tp := preview(tetris.NewPiece(tetris.ShapeT))
	assert.Equal(t, [4]tetris.ShapeID{tetris.Empty, tetris.ShapeT, tetris.Empty, tetris.Empty}, tp[0])
	assert.Equal(t, [4]tetris.ShapeID{tetris.ShapeT, tetris.ShapeT, tetris.ShapeT, tetris.Empty}, tp[1])
}

func TestView(t *testing.T) {
	m := newTestModel(tetris.ShapeO, time.Second)
	out := m.View()
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "Next")
	assert.NotContains(t, out, "GAME OVER")

	for !m.world.Game.IsOver() {
		m.world.Game.HardDrop()
	}
	assert.Contains(t, m.View(), "GAME OVER")
}
