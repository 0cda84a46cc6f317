package tetris

import "image/color"

// Renderer fills a single grid cell. Frontends translate grid coordinates
// into pixels or terminal cells; the core never draws anything else.
type Renderer interface {
	FillCell(row, column int, c color.RGBA)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(row, column int, c color.RGBA)

func (f RendererFunc) FillCell(row, column int, c color.RGBA) {
	f(row, column, c)
}

// Palette maps a cell value to its fill colour. Index 0 is the empty cell.
var Palette = [ShapeCount + 1]color.RGBA{
	Empty:  {R: 26, G: 31, B: 40, A: 255},
	ShapeL: {R: 47, G: 230, B: 23, A: 255},
	ShapeJ: {R: 232, G: 18, B: 18, A: 255},
	ShapeI: {R: 226, G: 116, B: 17, A: 255},
	ShapeO: {R: 237, G: 234, B: 4, A: 255},
	ShapeS: {R: 166, G: 0, B: 247, A: 255},
	ShapeT: {R: 21, G: 204, B: 209, A: 255},
	ShapeZ: {R: 13, G: 64, B: 216, A: 255},
}

// Panel colours used by frontends around the playfield.
var (
	LightBlue = color.RGBA{R: 59, G: 85, B: 162, A: 255}
	DarkBlue  = color.RGBA{R: 44, G: 44, B: 127, A: 255}
)

// ColorOf returns the palette entry for a cell value.
func ColorOf(id ShapeID) color.RGBA {
	if int(id) >= len(Palette) {
		panic("tetris: no colour for " + id.String())
	}
	return Palette[id]
}
