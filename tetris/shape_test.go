package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellSet(l tetris.Layout) map[tetris.Position]bool {
	set := make(map[tetris.Position]bool, len(l))
	for _, c := range l {
		set[c] = true
	}
	return set
}

func TestEveryRotationHasFourDistinctCells(t *testing.T) {
	for _, id := range tetris.Shapes {
		t.Run(id.String(), func(t *testing.T) {
			rotations := tetris.Rotations(id)
			require.Len(t, rotations, 4)
			for i, l := range rotations {
				assert.Len(t, cellSet(l), 4, "rotation %d", i)
				for _, c := range l {
					assert.GreaterOrEqual(t, c.Row, 0)
					assert.GreaterOrEqual(t, c.Column, 0)
				}
			}
		})
	}
}

// Each state must be the previous one turned 90 degrees clockwise inside the
// shape's bounding box.
func TestRotationStatesAreQuarterTurns(t *testing.T) {
	for _, id := range tetris.Shapes {
		t.Run(id.String(), func(t *testing.T) {
			rotations := tetris.Rotations(id)

			size := 0
			for _, l := range rotations {
				for _, c := range l {
					size = max(size, c.Row+1, c.Column+1)
				}
			}

			for i, l := range rotations {
				turned := make(map[tetris.Position]bool, 4)
				for _, c := range l {
					turned[tetris.Position{Row: c.Column, Column: size - 1 - c.Row}] = true
				}
				next := rotations[(i+1)%4]
				assert.Equal(t, cellSet(next), turned, "rotation %d -> %d", i, (i+1)%4)
			}
		})
	}
}

func TestSquareReportsIdenticalStates(t *testing.T) {
	rotations := tetris.Rotations(tetris.ShapeO)
	for i := 1; i < 4; i++ {
		assert.Equal(t, rotations[0], rotations[i])
	}
}

func TestSpawnOffsets(t *testing.T) {
	tests := []struct {
		id    tetris.ShapeID
		spawn tetris.Position
	}{
		{tetris.ShapeL, tetris.Position{Row: 0, Column: 3}},
		{tetris.ShapeJ, tetris.Position{Row: 0, Column: 3}},
		{tetris.ShapeI, tetris.Position{Row: -1, Column: 3}},
		{tetris.ShapeO, tetris.Position{Row: 0, Column: 4}},
		{tetris.ShapeS, tetris.Position{Row: 0, Column: 3}},
		{tetris.ShapeT, tetris.Position{Row: 0, Column: 3}},
		{tetris.ShapeZ, tetris.Position{Row: 0, Column: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			assert.Equal(t, tt.spawn, tetris.SpawnOffset(tt.id))
		})
	}
}

func TestShapeIds(t *testing.T) {
	assert.Equal(t, tetris.ShapeID(1), tetris.ShapeL)
	assert.Equal(t, tetris.ShapeID(7), tetris.ShapeZ)
	assert.False(t, tetris.Empty.Valid())
	assert.False(t, tetris.ShapeID(8).Valid())
	assert.Equal(t, "ShapeID(9)", tetris.ShapeID(9).String())

	assert.Panics(t, func() { tetris.Rotations(tetris.Empty) })
	assert.Panics(t, func() { tetris.SpawnOffset(tetris.ShapeID(8)) })
}
