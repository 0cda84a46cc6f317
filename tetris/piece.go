package tetris

// Piece is a falling instance of a shape. Its offset and rotation are
// mutated freely; callers validate the result against the playfield and
// revert with the inverse operation when it does not fit.
type Piece struct {
	Shape        ShapeID
	Rotation     int
	RowOffset    int
	ColumnOffset int
}

// NewPiece returns a piece of the given shape at its spawn offset.
func NewPiece(id ShapeID) Piece {
	spawn := SpawnOffset(id)
	return Piece{
		Shape:        id,
		RowOffset:    spawn.Row,
		ColumnOffset: spawn.Column,
	}
}

// Move translates the piece. It never fails.
func (p *Piece) Move(rows, columns int) {
	p.RowOffset += rows
	p.ColumnOffset += columns
}

// Cells returns the absolute positions the piece occupies.
func (p Piece) Cells() [4]Position {
	layout := mustShape(p.Shape).rotations[p.Rotation]
	var cells [4]Position
	for i, c := range layout {
		cells[i] = c.Add(p.RowOffset, p.ColumnOffset)
	}
	return cells
}

// Rotate advances to the next rotation state, wrapping after the last.
func (p *Piece) Rotate() {
	p.Rotation++
	if p.Rotation == len(shapes[p.Shape].rotations) {
		p.Rotation = 0
	}
}

// UndoRotation is the exact inverse of Rotate.
func (p *Piece) UndoRotation() {
	if p.Rotation == 0 {
		p.Rotation = len(shapes[p.Shape].rotations) - 1
	} else {
		p.Rotation--
	}
}

// Draw fills the piece's cells with its shape colour.
func (p Piece) Draw(r Renderer) {
	c := ColorOf(p.Shape)
	for _, cell := range p.Cells() {
		r.FillCell(cell.Row, cell.Column, c)
	}
}
