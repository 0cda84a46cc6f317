package tetris

import "fmt"

// Position is a cell coordinate on the playfield. Rows grow downward and
// may be negative while a piece is still entering from above.
type Position struct {
	Row    int
	Column int
}

// Add returns p translated by the given row and column deltas.
func (p Position) Add(row, column int) Position {
	return Position{Row: p.Row + row, Column: p.Column + column}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}
