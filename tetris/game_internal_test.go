package tetris

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixed ShapeID

func (f fixed) Next() ShapeID { return ShapeID(f) }

// partlyAbove returns a game whose T piece pokes one row above the field
// and is blocked directly underneath.
func partlyAbove(t *testing.T) (*Game, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	g := New(Options{Randomizer: fixed(ShapeT), Logger: logger})

	g.current.RowOffset = -1
	g.field.Lock([]Position{{Row: 1, Column: 4}}, ShapeZ)

	require.Equal(t, -1, g.current.Cells()[0].Row)
	return g, hook
}

func TestMoveDownDoesNotLockAboveField(t *testing.T) {
	g, hook := partlyAbove(t)
	before := g.current

	g.MoveDown()

	assert.Equal(t, before, g.current)
	assert.Equal(t, 1, g.field.Occupied())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "piece blocked above the field, not locking", hook.LastEntry().Message)
}

func TestHardDropAboveFieldSkipsHiddenCells(t *testing.T) {
	g, hook := partlyAbove(t)

	g.HardDrop()

	assert.Equal(t, 4, g.field.Occupied())
	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
			assert.Equal(t, 1, entry.Data["skipped"])
		}
	}
	assert.True(t, warned)
}
