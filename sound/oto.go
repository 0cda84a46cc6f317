package sound

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/sirupsen/logrus"
)

// Engine plays cues through an oto context. Cue buffers are rendered once
// and reused.
type Engine struct {
	ctx        *oto.Context
	sampleRate int
	log        logrus.FieldLogger

	mu      sync.RWMutex
	enabled bool
	volume  float64
	cache   map[Cue][]byte
}

// NewEngine opens the audio device. It blocks until the device is ready.
func NewEngine(sampleRate int, volume float64, logger logrus.FieldLogger) (*Engine, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready
	return &Engine{
		ctx:        ctx,
		sampleRate: sampleRate,
		log:        logger,
		enabled:    true,
		volume:     ClampVolume(volume),
		cache:      make(map[Cue][]byte),
	}, nil
}

func (e *Engine) SetEnabled(enabled bool) {
	e.mu.Lock()
	e.enabled = enabled
	e.mu.Unlock()
}

func (e *Engine) SetVolume(volume float64) {
	e.mu.Lock()
	e.volume = ClampVolume(volume)
	clear(e.cache)
	e.mu.Unlock()
}

func (e *Engine) buffer(c Cue) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	if buf, ok := e.cache[c]; ok {
		return buf
	}
	buf := Render(Tones(c), e.sampleRate, e.volume)
	e.cache[c] = buf
	return buf
}

// Play starts the cue and returns immediately.
func (e *Engine) Play(c Cue) {
	e.mu.RLock()
	enabled := e.enabled
	e.mu.RUnlock()
	if !enabled {
		return
	}

	buf := e.buffer(c)
	if len(buf) == 0 {
		return
	}

	go func() {
		player := e.ctx.NewPlayer(bytes.NewReader(buf))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			e.log.WithError(err).WithField("cue", c.String()).Debug("closing player")
		}
	}()
}
