package main

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/blockfall/screen"
	"github.com/plus3/blockfall/tetris"
)

// view draws one frame. frame, if set, runs before drawing; the music
// stream is fed from there.
type view struct {
	font  rl.Font
	frame func()
}

func (v *view) draw(g *tetris.Game) {
	if v.frame != nil {
		v.frame()
	}

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(tetris.DarkBlue)

	v.text("Score", screen.ScoreLabel)
	v.text("Next", screen.NextLabel)
	if g.IsOver() {
		v.text("GAME OVER", screen.GameOverLabel)
	}

	rounded(screen.ScorePanel)
	score := fmt.Sprintf("%d", g.Score())
	size := rl.MeasureTextEx(v.font, score, screen.FontSize, screen.FontSpacing)
	v.text(score, screen.Point{X: screen.ScorePanel.CenterX(size.X), Y: screen.ScoreTextY})
	rounded(screen.NextPanel)

	g.Draw(tetris.RendererFunc(func(row, column int, c color.RGBA) {
		fill(screen.FieldCell(row, column), c)
	}))

	next := g.Next()
	for _, r := range screen.PreviewCells(next) {
		fill(r, tetris.ColorOf(next.Shape))
	}
}

func (v *view) text(s string, p screen.Point) {
	rl.DrawTextEx(v.font, s, rl.NewVector2(p.X, p.Y), screen.FontSize, screen.FontSpacing, rl.White)
}

func rounded(r screen.Rect) {
	rl.DrawRectangleRounded(rl.NewRectangle(r.X, r.Y, r.W, r.H), 0.3, 6, tetris.LightBlue)
}

func fill(r screen.Rect, c color.RGBA) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), c)
}
