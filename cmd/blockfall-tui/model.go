package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/systems"
)

// frameInterval is how often the terminal redraws and gravity advances.
const frameInterval = 33 * time.Millisecond

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// volumeStep is how much one +/- key press changes the volume.
const volumeStep = 0.1

// mixer controls sound playback; *sound.Engine implements it.
type mixer interface {
	SetEnabled(enabled bool)
	SetVolume(volume float64)
}

type model struct {
	world  *systems.World
	input  *pendingInput
	mixer  mixer
	muted  bool
	volume float64
	last   time.Time
	width  int
	height int
	styles styles
}

func newModel(world *systems.World, now func() time.Time) model {
	input := &pendingInput{}
	world.SetInput(input)
	return model{
		world:  world,
		input:  input,
		last:   now(),
		styles: defaultStyles(),
	}
}

// withMixer attaches sound controls and applies the starting settings.
func (m model) withMixer(mx mixer, muted bool, volume float64) model {
	m.mixer = mx
	m.muted = muted
	m.volume = sound.ClampVolume(volume)
	mx.SetEnabled(!muted)
	mx.SetVolume(m.volume)
	return m
}

// adjustSound handles the mute and volume keys. It reports whether key was
// one of them.
func (m *model) adjustSound(key string) bool {
	if m.mixer == nil {
		return false
	}
	switch key {
	case "m":
		m.muted = !m.muted
		m.mixer.SetEnabled(!m.muted)
	case "+", "=":
		m.volume = sound.ClampVolume(m.volume + volumeStep)
		m.mixer.SetVolume(m.volume)
	case "-":
		m.volume = sound.ClampVolume(m.volume - volumeStep)
		m.mixer.SetVolume(m.volume)
	default:
		return false
	}
	return true
}

func (m model) Init() tea.Cmd {
	return frameCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		if m.adjustSound(msg.String()) {
			return m, nil
		}
		// Apply the key at once without advancing gravity.
		m.input.set(keyFor(msg.String()))
		m.world.Step(0)
		m.input.reset()
		return m, nil
	case frameMsg:
		now := time.Time(msg)
		m.world.Step(now.Sub(m.last))
		m.last = now
		return m, frameCmd()
	}
	return m, nil
}

func (m model) View() string {
	return m.styles.render(m.world.Game, m.width, m.height)
}
