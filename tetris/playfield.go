package tetris

import "fmt"

// Playfield dimensions.
const (
	Rows    = 20
	Columns = 10
)

// Playfield is the fixed grid of locked cells. A cell holds Empty or the id
// of the shape that was locked into it.
type Playfield struct {
	cells [Rows][Columns]ShapeID
}

// NewPlayfield returns an empty playfield.
func NewPlayfield() *Playfield {
	return &Playfield{}
}

// Reset empties every cell.
func (f *Playfield) Reset() {
	f.cells = [Rows][Columns]ShapeID{}
}

func (f *Playfield) Rows() int    { return Rows }
func (f *Playfield) Columns() int { return Columns }

// IsOutside reports whether the coordinate lies beyond the grid.
func (f *Playfield) IsOutside(row, column int) bool {
	return row < 0 || column < 0 || row >= Rows || column >= Columns
}

// IsEmpty reports whether an in-bounds cell is unoccupied. Callers must
// bounds-check first; an out-of-range coordinate panics.
func (f *Playfield) IsEmpty(row, column int) bool {
	return f.Cell(row, column) == Empty
}

// Cell returns the value stored at an in-bounds coordinate.
func (f *Playfield) Cell(row, column int) ShapeID {
	f.mustContain(row, column)
	return f.cells[row][column]
}

func (f *Playfield) mustContain(row, column int) {
	if f.IsOutside(row, column) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d playfield", row, column, Rows, Columns))
	}
}

// Lock writes id into each cell. Cells with a negative row or column are
// skipped; the number skipped is returned so the caller can report it.
func (f *Playfield) Lock(cells []Position, id ShapeID) (skipped int) {
	if !id.Valid() {
		panic(fmt.Sprintf("tetris: cannot lock invalid shape id %d", uint8(id)))
	}
	for _, c := range cells {
		if c.Row < 0 || c.Column < 0 {
			skipped++
			continue
		}
		f.mustContain(c.Row, c.Column)
		f.cells[c.Row][c.Column] = id
	}
	return skipped
}

// ClearFullRows removes every full row and compacts the rows above it in a
// single bottom-up pass. It returns the number of rows removed.
func (f *Playfield) ClearFullRows() int {
	completed := 0
	for row := Rows - 1; row >= 0; row-- {
		if f.isRowFull(row) {
			f.clearRow(row)
			completed++
		} else if completed > 0 {
			f.moveRowDown(row, completed)
		}
	}
	return completed
}

func (f *Playfield) isRowFull(row int) bool {
	for _, cell := range f.cells[row] {
		if cell == Empty {
			return false
		}
	}
	return true
}

func (f *Playfield) clearRow(row int) {
	f.cells[row] = [Columns]ShapeID{}
}

func (f *Playfield) moveRowDown(row, by int) {
	f.cells[row+by] = f.cells[row]
	f.clearRow(row)
}

// Occupied returns the number of non-empty cells.
func (f *Playfield) Occupied() int {
	n := 0
	for row := range f.cells {
		for _, cell := range f.cells[row] {
			if cell != Empty {
				n++
			}
		}
	}
	return n
}

// Draw fills every cell, empty ones included, with its palette colour.
func (f *Playfield) Draw(r Renderer) {
	for row := range Rows {
		for column := range Columns {
			r.FillCell(row, column, Palette[f.cells[row][column]])
		}
	}
}
