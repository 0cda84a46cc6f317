package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/blockfall/tetris"
)

// cellKind is what a terminal cell shows.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellLocked
	cellPiece
	cellGhost
)

type cell struct {
	kind  cellKind
	shape tetris.ShapeID
}

// board composes the playfield, the ghost and the falling piece. Cells of
// the piece above the field are dropped.
func board(g *tetris.Game) [tetris.Rows][tetris.Columns]cell {
	var b [tetris.Rows][tetris.Columns]cell
	f := g.Field()
	for r := range tetris.Rows {
		for c := range tetris.Columns {
			if id := f.Cell(r, c); id != tetris.Empty {
				b[r][c] = cell{kind: cellLocked, shape: id}
			}
		}
	}

	current := g.Current()
	if !g.IsOver() {
		for _, p := range g.GhostCells() {
			if p.Row >= 0 && b[p.Row][p.Column].kind == cellEmpty {
				b[p.Row][p.Column] = cell{kind: cellGhost, shape: current.Shape}
			}
		}
	}
	for _, p := range current.Cells() {
		if p.Row >= 0 && p.Row < tetris.Rows && p.Column >= 0 && p.Column < tetris.Columns {
			b[p.Row][p.Column] = cell{kind: cellPiece, shape: current.Shape}
		}
	}
	return b
}

// preview lays out the next piece on a 2x4 grid.
func preview(p tetris.Piece) [2][4]tetris.ShapeID {
	var grid [2][4]tetris.ShapeID
	rows, cols := 2, 4
	cells := p.Cells()
	minRow, minCol := cells[0].Row, cells[0].Column
	for _, c := range cells[1:] {
		minRow = min(minRow, c.Row)
		minCol = min(minCol, c.Column)
	}
	for _, c := range cells {
		r, k := c.Row-minRow, c.Column-minCol
		if r < rows && k < cols {
			grid[r][k] = p.Shape
		}
	}
	return grid
}

type styles struct {
	border lipgloss.Style
	panel  lipgloss.Style
	title  lipgloss.Style
	alert  lipgloss.Style
	help   lipgloss.Style
	empty  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(hexColor(tetris.LightBlue)),
		panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(hexColor(tetris.LightBlue)).Padding(0, 1).Width(14),
		title:  lipgloss.NewStyle().Bold(true),
		alert:  lipgloss.NewStyle().Bold(true).Foreground(hexColor(tetris.Palette[tetris.ShapeJ])),
		help:   lipgloss.NewStyle().Faint(true),
		empty:  lipgloss.NewStyle().Foreground(hexColor(tetris.Palette[tetris.Empty])),
	}
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (s styles) block(id tetris.ShapeID) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(hexColor(tetris.ColorOf(id)))
}

func (s styles) renderCell(c cell) string {
	switch c.kind {
	case cellLocked, cellPiece:
		return s.block(c.shape).Render("██")
	case cellGhost:
		return s.block(c.shape).Render("░░")
	default:
		return s.empty.Render(" ·")
	}
}

func (s styles) renderBoard(g *tetris.Game) string {
	b := board(g)
	lines := make([]string, len(b))
	var row strings.Builder
	for r := range b {
		row.Reset()
		for _, c := range b[r] {
			row.WriteString(s.renderCell(c))
		}
		lines[r] = row.String()
	}
	return s.border.Render(strings.Join(lines, "\n"))
}

func (s styles) renderPreview(p tetris.Piece) string {
	grid := preview(p)
	lines := make([]string, len(grid))
	for r := range grid {
		var row strings.Builder
		for _, id := range grid[r] {
			if id == tetris.Empty {
				row.WriteString("  ")
				continue
			}
			row.WriteString(s.block(id).Render("██"))
		}
		lines[r] = row.String()
	}
	return strings.Join(lines, "\n")
}

func (s styles) render(g *tetris.Game, width, height int) string {
	side := []string{
		s.panel.Render(s.title.Render("Score") + "\n" + fmt.Sprintf("%d", g.Score())),
		s.panel.Render(s.title.Render("Lines") + "\n" + fmt.Sprintf("%d", g.LinesCleared())),
		s.panel.Render(s.title.Render("Next") + "\n" + s.renderPreview(g.Next())),
	}
	if g.IsOver() {
		side = append(side, s.alert.Render("GAME OVER"), s.help.Render("any key to restart"))
	}
	side = append(side, s.help.Render("←/→ move  ↓ soft drop\n↑ drop  r rotate  q quit"))

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		s.renderBoard(g),
		" ",
		lipgloss.JoinVertical(lipgloss.Left, side...),
	)
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
