package tetris

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State is the phase of a game.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "playing"
}

// Points awarded per lock by number of rows cleared. Four rows, like zero,
// award nothing.
var lineClearPoints = map[int]int{
	1: 100,
	2: 300,
	3: 500,
}

// LineClearPoints returns the bonus for clearing the given number of rows at once.
func LineClearPoints(rows int) int {
	return lineClearPoints[rows]
}

// Options configures a Game. Zero values select defaults.
type Options struct {
	// Randomizer picks each new piece. Defaults to a uniform randomizer
	// seeded from the wall clock.
	Randomizer Randomizer
	// Events receives rotation, row-clear and lifecycle notifications.
	Events Events
	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// Game is the falling-block state machine. It owns the playfield, the
// current and next pieces, and the score. It is not safe for concurrent use.
type Game struct {
	field   *Playfield
	current Piece
	next    Piece
	score   int
	lines   int
	state   State
	session uuid.UUID

	rand   Randomizer
	events Events
	base   logrus.FieldLogger
	log    logrus.FieldLogger
}

// New creates a game with two freshly drawn pieces.
func New(opts Options) *Game {
	g := &Game{
		field:  NewPlayfield(),
		rand:   opts.Randomizer,
		events: opts.Events,
		base:   opts.Logger,
	}
	if g.rand == nil {
		g.rand = NewUniformRandomizer(uint64(time.Now().UnixNano()))
	}
	if g.events == nil {
		g.events = NopEvents{}
	}
	if g.base == nil {
		g.base = logrus.StandardLogger()
	}
	g.start()
	return g
}

func (g *Game) start() {
	g.field.Reset()
	g.current = g.spawn()
	g.next = g.spawn()
	g.score = 0
	g.lines = 0
	g.state = Playing
	g.session = uuid.New()
	g.log = g.base.WithField("session", g.session.String())
}

func (g *Game) spawn() Piece {
	return NewPiece(g.rand.Next())
}

// Reset starts a new round in place: empty field, zero score, two new pieces.
func (g *Game) Reset() {
	g.start()
	g.log.Info("game reset")
	g.events.GameReset()
}

// Field returns the playfield. Callers may inspect it; mutating it while a
// round is in progress bypasses the game rules.
func (g *Game) Field() *Playfield { return g.field }

// Current returns a copy of the falling piece.
func (g *Game) Current() Piece { return g.current }

// Next returns a copy of the piece that spawns after the current one locks.
func (g *Game) Next() Piece { return g.next }

// Score returns the points earned this round.
func (g *Game) Score() int { return g.score }

// LinesCleared returns the number of rows removed this round.
func (g *Game) LinesCleared() int { return g.lines }

// State reports whether the round is running or over.
func (g *Game) State() State { return g.state }

// IsOver reports whether the round has ended.
func (g *Game) IsOver() bool { return g.state == GameOver }

// Session identifies the current round. Reset assigns a new one.
func (g *Game) Session() uuid.UUID { return g.session }

// HandleInput applies one frame of player input. While the game is over any
// key press acknowledges it and starts a new round. Otherwise a held soft
// drop steps the piece down for one point, then the pressed key is applied.
func (g *Game) HandleInput(in Input) {
	key := in.Pressed()

	if g.state == GameOver {
		if key != KeyNone {
			g.Reset()
		}
		return
	}

	if in.SoftDropHeld() {
		g.MoveDown()
		g.addScore(0, 1)
	}

	switch key {
	case KeyLeft:
		g.MoveLeft()
	case KeyRight:
		g.MoveRight()
	case KeyHardDrop:
		g.HardDrop()
	case KeyRotate:
		g.Rotate()
	}
}

// Tick is the automatic fall step. It scores nothing.
func (g *Game) Tick() {
	g.MoveDown()
}

// MoveLeft shifts the piece one column left unless it would not fit.
func (g *Game) MoveLeft() {
	if g.state == GameOver {
		return
	}
	g.current.Move(0, -1)
	if !g.valid(&g.current) {
		g.current.Move(0, 1)
	}
}

// MoveRight shifts the piece one column right unless it would not fit.
func (g *Game) MoveRight() {
	if g.state == GameOver {
		return
	}
	g.current.Move(0, 1)
	if !g.valid(&g.current) {
		g.current.Move(0, -1)
	}
}

// MoveDown steps the piece one row. A blocked piece locks, unless part of it
// is still above the field, in which case it stays where it is.
func (g *Game) MoveDown() {
	if g.state == GameOver {
		return
	}
	g.current.Move(1, 0)
	if g.valid(&g.current) {
		return
	}
	g.current.Move(-1, 0)

	for _, c := range g.current.Cells() {
		if c.Row < 0 {
			g.log.WithFields(logrus.Fields{
				"shape": g.current.Shape.String(),
				"cell":  c.String(),
			}).Debug("piece blocked above the field, not locking")
			return
		}
	}
	g.lockBlock()
}

// HardDrop moves the piece down until it is blocked and locks it, even if it
// did not move at all.
func (g *Game) HardDrop() {
	if g.state == GameOver {
		return
	}
	for {
		g.current.Move(1, 0)
		if !g.valid(&g.current) {
			g.current.Move(-1, 0)
			break
		}
	}
	g.lockBlock()
}

// Rotate advances the piece's rotation, undoing it when the result does not fit.
func (g *Game) Rotate() {
	if g.state == GameOver {
		return
	}
	g.current.Rotate()
	if !g.valid(&g.current) {
		g.current.UndoRotation()
		return
	}
	g.events.RotationAccepted()
}

// BlockFits reports whether every cell of the current piece is above the
// field or on an empty in-bounds cell.
func (g *Game) BlockFits() bool {
	return g.fits(&g.current)
}

// IsBlockOutside reports whether any cell of the current piece lies outside
// the grid, counting negative rows as outside.
func (g *Game) IsBlockOutside() bool {
	return g.outside(&g.current)
}

func (g *Game) valid(p *Piece) bool {
	return !g.outside(p) && g.fits(p)
}

func (g *Game) fits(p *Piece) bool {
	for _, c := range p.Cells() {
		if c.Row < 0 {
			continue
		}
		if c.Row >= Rows || c.Column < 0 || c.Column >= Columns {
			return false
		}
		if !g.field.IsEmpty(c.Row, c.Column) {
			return false
		}
	}
	return true
}

func (g *Game) outside(p *Piece) bool {
	for _, c := range p.Cells() {
		if g.field.IsOutside(c.Row, c.Column) {
			g.log.WithField("cell", c.String()).Debug("block outside grid")
			return true
		}
	}
	return false
}

// lockBlock commits the current piece, promotes the next one and clears
// rows. Rows are cleared and scored even when the promoted piece ends the game.
func (g *Game) lockBlock() {
	cells := g.current.Cells()
	if skipped := g.field.Lock(cells[:], g.current.Shape); skipped > 0 {
		g.log.WithFields(logrus.Fields{
			"shape":   g.current.Shape.String(),
			"skipped": skipped,
		}).Warn("invalid tile position during lock")
	}

	g.current = g.next
	if !g.BlockFits() {
		g.state = GameOver
		g.log.WithField("score", g.score).Info("game over")
		g.events.GameOver()
	}

	g.next = g.spawn()
	rows := g.field.ClearFullRows()
	if rows > 0 {
		g.lines += rows
		g.log.WithField("rows", rows).Debug("rows cleared")
		g.events.RowsCleared(rows)
		g.addScore(rows, 0)
	}
}

func (g *Game) addScore(linesCleared, moveDownPoints int) {
	g.score += LineClearPoints(linesCleared)
	g.score += moveDownPoints
}

// GhostCells returns where the current piece would land if hard-dropped.
func (g *Game) GhostCells() [4]Position {
	ghost := g.current
	for {
		ghost.Move(1, 0)
		if !g.valid(&ghost) {
			ghost.Move(-1, 0)
			return ghost.Cells()
		}
	}
}

// Draw renders the playfield and the current piece.
func (g *Game) Draw(r Renderer) {
	g.field.Draw(r)
	g.current.Draw(r)
}
