package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/screen"
	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

// ebitenutil's debug font is 6x16 pixels per glyph.
const glyphWidth = 6

// game implements ebiten.Game. The world steps in Update; drawing reads
// the game state in Draw.
type game struct {
	world   *systems.World
	input   *keyboard
	overlay *debugui_ebiten.ImguiBackend
	stats   *debugui.PerformanceStats
}

func (g *game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	if g.overlay == nil {
		g.world.Step(dt)
		return nil
	}
	g.stats.Record(dt.Seconds())
	g.overlay.Frame(func() {
		g.world.Step(dt)
	})
	return nil
}

func (g *game) Draw(dst *ebiten.Image) {
	dst.Fill(tetris.DarkBlue)
	state := g.world.Game

	fillRect(dst, screen.ScorePanel, tetris.LightBlue)
	fillRect(dst, screen.NextPanel, tetris.LightBlue)
	printAt(dst, "Score", screen.ScoreLabel)
	printAt(dst, "Next", screen.NextLabel)

	score := fmt.Sprintf("%d", state.Score())
	printAt(dst, score, screen.Point{
		X: screen.ScorePanel.CenterX(float32(len(score) * glyphWidth)),
		Y: screen.ScoreTextY,
	})
	printAt(dst, fmt.Sprintf("Lines %d", state.LinesCleared()), screen.LinesLabel)
	if state.IsOver() {
		printAt(dst, "GAME OVER", screen.GameOverLabel)
	}

	drawPlay(state, fieldRenderer(dst), func(cells [4]tetris.Position, id tetris.ShapeID) {
		drawGhost(dst, cells, id)
	})

	next := state.Next()
	for _, r := range screen.PreviewCells(next) {
		fillRect(dst, r, tetris.ColorOf(next.Shape))
	}

	if g.overlay != nil {
		g.overlay.Overlay(dst)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return screen.Width, screen.Height
}

// drawPlay draws the field and the current piece. The ghost is only drawn
// while the round runs; after game over the piece that blocked is still shown.
func drawPlay(state *tetris.Game, field tetris.Renderer, ghost func([4]tetris.Position, tetris.ShapeID)) {
	state.Field().Draw(field)
	current := state.Current()
	if !state.IsOver() {
		ghost(state.GhostCells(), current.Shape)
	}
	current.Draw(field)
}

func fieldRenderer(dst *ebiten.Image) tetris.Renderer {
	return tetris.RendererFunc(func(row, column int, c color.RGBA) {
		fillRect(dst, screen.FieldCell(row, column), c)
	})
}

func drawGhost(dst *ebiten.Image, cells [4]tetris.Position, id tetris.ShapeID) {
	base := tetris.ColorOf(id)
	ghost := color.NRGBA{R: base.R, G: base.G, B: base.B, A: 70}
	for _, c := range cells {
		if c.Row < 0 {
			continue
		}
		fillRect(dst, screen.FieldCell(c.Row, c.Column), ghost)
	}
}

func fillRect(dst *ebiten.Image, r screen.Rect, c color.Color) {
	vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, c, false)
}

func printAt(dst *ebiten.Image, s string, p screen.Point) {
	ebitenutil.DebugPrintAt(dst, s, int(p.X), int(p.Y))
}
