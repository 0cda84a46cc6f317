package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// GameInspector shows the state of a game: phase, score, pieces and the
// playfield contents.
type GameInspector struct {
	game *tetris.Game
}

func NewGameInspector(game *tetris.Game) *GameInspector {
	return &GameInspector{game: game}
}

func (gi *GameInspector) Item() ImguiItem {
	return ImguiItem{Name: "Game Inspector", Render: gi.Render}
}

func (gi *GameInspector) Render() {
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := gi.game
	imgui.Text(fmt.Sprintf("Session: %s", g.Session()))
	imgui.Text(fmt.Sprintf("State: %s", g.State()))
	imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
	imgui.Text(fmt.Sprintf("Lines: %d", g.LinesCleared()))
	imgui.Separator()
	imgui.Text("Current: " + describePiece(g.Current()))
	imgui.Text("Next:    " + describePiece(g.Next()))
	imgui.Text(fmt.Sprintf("Fits: %t  Outside: %t", g.BlockFits(), g.IsBlockOutside()))

	if imgui.TreeNodeStr(fmt.Sprintf("Playfield (%d occupied)", g.Field().Occupied())) {
		for i, row := range fieldRows(g.Field()) {
			imgui.Text(fmt.Sprintf("%2d %s", i, row))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func describePiece(p tetris.Piece) string {
	return fmt.Sprintf("%s rot=%d offset=(%d,%d)", p.Shape, p.Rotation, p.RowOffset, p.ColumnOffset)
}

// fieldRows draws the playfield as text, one line per row. Empty cells are
// dots, filled cells the letter of their shape.
func fieldRows(f *tetris.Playfield) []string {
	rows := make([]string, f.Rows())
	var b strings.Builder
	for r := range f.Rows() {
		b.Reset()
		for c := range f.Columns() {
			id := f.Cell(r, c)
			if id == tetris.Empty {
				b.WriteByte('.')
				continue
			}
			b.WriteString(id.String())
		}
		rows[r] = b.String()
	}
	return rows
}
