package tetris_test

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// sequence deals shapes in a fixed order, repeating from the start.
type sequence struct {
	ids []tetris.ShapeID
	i   int
}

func deal(ids ...tetris.ShapeID) *sequence {
	return &sequence{ids: ids}
}

func (s *sequence) Next() tetris.ShapeID {
	id := s.ids[s.i%len(s.ids)]
	s.i++
	return id
}

type drawnCell struct {
	row, column int
	color       color.RGBA
}

type recorder struct {
	cells []drawnCell
}

func (r *recorder) FillCell(row, column int, c color.RGBA) {
	r.cells = append(r.cells, drawnCell{row: row, column: column, color: c})
}

func newTestGame(ids ...tetris.ShapeID) (*tetris.Game, *tetris.EventQueue, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	events := &tetris.EventQueue{}
	g := tetris.New(tetris.Options{
		Randomizer: deal(ids...),
		Events:     events,
		Logger:     logger,
	})
	return g, events, hook
}

// fillRow occupies every cell of a row except the listed columns.
func fillRow(f *tetris.Playfield, row int, id tetris.ShapeID, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	var cells []tetris.Position
	for column := range tetris.Columns {
		if !skip[column] {
			cells = append(cells, tetris.Position{Row: row, Column: column})
		}
	}
	f.Lock(cells, id)
}

func rowValues(f *tetris.Playfield, row int) []tetris.ShapeID {
	values := make([]tetris.ShapeID, tetris.Columns)
	for column := range values {
		values[column] = f.Cell(row, column)
	}
	return values
}
