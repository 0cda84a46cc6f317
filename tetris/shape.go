package tetris

import "fmt"

// ShapeID identifies one of the seven tetrominoes. It doubles as the cell
// value stored in the playfield, so Empty (0) marks an unoccupied cell.
type ShapeID uint8

const (
	Empty ShapeID = iota
	ShapeL
	ShapeJ
	ShapeI
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of playable shapes.
const ShapeCount = 7

// Shapes lists every playable shape in id order.
var Shapes = [ShapeCount]ShapeID{ShapeL, ShapeJ, ShapeI, ShapeO, ShapeS, ShapeT, ShapeZ}

// Layout is one rotation state: the four cells of a piece relative to its offset.
type Layout [4]Position

type shape struct {
	name      string
	rotations [4]Layout
	spawn     Position
}

var square = Layout{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

var shapes = [ShapeCount + 1]shape{
	Empty: {name: "empty"},
	ShapeL: {
		name: "L",
		rotations: [4]Layout{
			{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		},
		spawn: Position{Row: 0, Column: 3},
	},
	ShapeJ: {
		name: "J",
		rotations: [4]Layout{
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
		},
		spawn: Position{Row: 0, Column: 3},
	},
	ShapeI: {
		name: "I",
		rotations: [4]Layout{
			{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		},
		spawn: Position{Row: -1, Column: 3},
	},
	ShapeO: {
		name:      "O",
		rotations: [4]Layout{square, square, square, square},
		spawn:     Position{Row: 0, Column: 4},
	},
	ShapeS: {
		name: "S",
		rotations: [4]Layout{
			{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		},
		spawn: Position{Row: 0, Column: 3},
	},
	ShapeT: {
		name: "T",
		rotations: [4]Layout{
			{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
			{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
		},
		spawn: Position{Row: 0, Column: 3},
	},
	ShapeZ: {
		name: "Z",
		rotations: [4]Layout{
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
			{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
		},
		spawn: Position{Row: 0, Column: 3},
	},
}

// Valid reports whether id names a playable shape.
func (id ShapeID) Valid() bool {
	return id >= ShapeL && id <= ShapeZ
}

func (id ShapeID) String() string {
	if int(id) >= len(shapes) {
		return fmt.Sprintf("ShapeID(%d)", uint8(id))
	}
	return shapes[id].name
}

func mustShape(id ShapeID) *shape {
	if !id.Valid() {
		panic(fmt.Sprintf("tetris: invalid shape id %d", uint8(id)))
	}
	return &shapes[id]
}

// Rotations returns the four rotation layouts of a shape. The square reports
// the same layout four times.
func Rotations(id ShapeID) [4]Layout {
	return mustShape(id).rotations
}

// SpawnOffset returns the offset a fresh piece of the given shape starts at.
func SpawnOffset(id ShapeID) Position {
	return mustShape(id).spawn
}
