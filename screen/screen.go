// Package screen holds the pixel layout shared by the windowed frontends:
// a 500x620 window with the playfield on the left and score and next-piece
// panels on the right.
package screen

import "github.com/plus3/blockfall/tetris"

const (
	Width  = 500
	Height = 620
	Title  = "Blockfall"

	// CellSize is the pitch of one grid cell. Cells are drawn one pixel
	// smaller so the background shows through as grid lines.
	CellSize = 30

	// Origin of the playfield in pixels.
	FieldX = 11
	FieldY = 11

	FontSize    = 38
	FontSpacing = 2
)

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Panels and labels to the right of the playfield.
var (
	ScorePanel = Rect{X: 320, Y: 55, W: 170, H: 60}
	NextPanel  = Rect{X: 320, Y: 215, W: 170, H: 180}

	ScoreLabel    = Point{X: 365, Y: 15}
	NextLabel     = Point{X: 370, Y: 175}
	GameOverLabel = Point{X: 320, Y: 450}
	LinesLabel    = Point{X: 320, Y: 405}
	ScoreTextY    = float32(65)
)

// Point is a pixel position.
type Point struct {
	X, Y float32
}

// CellRect returns the rectangle of a grid cell drawn relative to an origin.
func CellRect(row, column int, originX, originY int) Rect {
	return Rect{
		X: float32(column*CellSize + originX),
		Y: float32(row*CellSize + originY),
		W: CellSize - 1,
		H: CellSize - 1,
	}
}

// FieldCell returns the rectangle of a playfield cell.
func FieldCell(row, column int) Rect {
	return CellRect(row, column, FieldX, FieldY)
}

// PreviewOrigin returns the origin at which the next piece is drawn so that
// it sits centred in NextPanel. The piece keeps its spawn offset, so the I
// and O pieces, whose offsets and widths differ, need their own origins.
func PreviewOrigin(id tetris.ShapeID) (x, y int) {
	switch id {
	case tetris.ShapeI:
		return 255, 290
	case tetris.ShapeO:
		return 255, 280
	default:
		return 270, 270
	}
}

// PreviewCells returns the pixel rectangles of the next piece preview.
func PreviewCells(p tetris.Piece) [4]Rect {
	x, y := PreviewOrigin(p.Shape)
	var rects [4]Rect
	for i, c := range p.Cells() {
		rects[i] = CellRect(c.Row, c.Column, x, y)
	}
	return rects
}

// CenterX returns the x at which text of the given width is centred in r.
func (r Rect) CenterX(textWidth float32) float32 {
	return r.X + (r.W-textWidth)/2
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
