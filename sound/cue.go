package sound

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueRotate Cue = iota
	CueClear1
	CueClear2
	CueClear3
	CueClear4
	CueGameOver
	CueReset
)

func (c Cue) String() string {
	switch c {
	case CueRotate:
		return "rotate"
	case CueClear1:
		return "clear1"
	case CueClear2:
		return "clear2"
	case CueClear3:
		return "clear3"
	case CueClear4:
		return "clear4"
	case CueGameOver:
		return "game_over"
	case CueReset:
		return "reset"
	}
	return "unknown"
}

// ClearCue returns the cue for clearing rows at once. Clears beyond four
// share the four-row cue.
func ClearCue(rows int) Cue {
	switch {
	case rows <= 1:
		return CueClear1
	case rows == 2:
		return CueClear2
	case rows == 3:
		return CueClear3
	default:
		return CueClear4
	}
}

// Tones returns the synthesized sequence for a cue.
func Tones(c Cue) []Tone {
	ms := time.Millisecond
	switch c {
	case CueRotate:
		return []Tone{{520, 40 * ms, 0.25}}
	case CueClear1:
		return []Tone{{440, 90 * ms, 0.3}}
	case CueClear2:
		return []Tone{{440, 70 * ms, 0.3}, {660, 90 * ms, 0.3}}
	case CueClear3:
		return []Tone{{440, 70 * ms, 0.3}, {660, 70 * ms, 0.3}, {880, 90 * ms, 0.3}}
	case CueClear4:
		return []Tone{{660, 80 * ms, 0.3}, {880, 80 * ms, 0.3}, {990, 120 * ms, 0.3}}
	case CueGameOver:
		return []Tone{{180, 160 * ms, 0.28}}
	case CueReset:
		return []Tone{{260, 60 * ms, 0.2}, {520, 70 * ms, 0.2}}
	}
	return nil
}

// Player plays cues.
type Player interface {
	Play(c Cue)
}

// PlayerFunc adapts a function to Player.
type PlayerFunc func(c Cue)

func (f PlayerFunc) Play(c Cue) { f(c) }

// Presenter maps game events to cues. It satisfies tetris.Events.
type Presenter struct {
	Player Player
	// OnReset and OnGameOver let frontends restart or stop music.
	OnReset    func()
	OnGameOver func()
}

var _ tetris.Events = (*Presenter)(nil)

func (p *Presenter) RotationAccepted() {
	p.Player.Play(CueRotate)
}

func (p *Presenter) RowsCleared(rows int) {
	p.Player.Play(ClearCue(rows))
}

func (p *Presenter) GameOver() {
	p.Player.Play(CueGameOver)
	if p.OnGameOver != nil {
		p.OnGameOver()
	}
}

func (p *Presenter) GameReset() {
	p.Player.Play(CueReset)
	if p.OnReset != nil {
		p.OnReset()
	}
}
