package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/sound"
)

const musicFile = "A-Type.mp3"

// audioPlayer plays synthesized cues and, when the sounds directory holds
// it, looping background music.
type audioPlayer struct {
	ctx   *audio.Context
	cues  map[sound.Cue]*audio.Player
	music *audio.Player
	log   logrus.FieldLogger
}

func newAudioPlayer(sampleRate int, volume float64, soundsDir string, logger logrus.FieldLogger) (*audioPlayer, error) {
	p := &audioPlayer{
		ctx:  audio.NewContext(sampleRate),
		cues: make(map[sound.Cue]*audio.Player),
		log:  logger,
	}
	for c := sound.CueRotate; c <= sound.CueReset; c++ {
		p.cues[c] = p.ctx.NewPlayerFromBytes(sound.Render(sound.Tones(c), sampleRate, volume))
	}

	path := filepath.Join(soundsDir, musicFile)
	music, err := p.loadMusic(path, sampleRate)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.WithField("path", path).Info("no music file, playing without music")
	case err != nil:
		return nil, err
	default:
		music.SetVolume(sound.ClampVolume(volume))
		p.music = music
	}
	return p, nil
}

func (p *audioPlayer) loadMusic(path string, sampleRate int) (*audio.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stream, err := mp3.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	player, err := p.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating music player: %w", err)
	}
	return player, nil
}

func (p *audioPlayer) Play(c sound.Cue) {
	player, ok := p.cues[c]
	if !ok {
		return
	}
	if err := player.SetPosition(0); err != nil {
		p.log.WithError(err).WithField("cue", c.String()).Warn("rewinding cue")
		return
	}
	player.Play()
}

// RestartMusic plays the music from the beginning.
func (p *audioPlayer) RestartMusic() {
	if p.music == nil {
		return
	}
	if err := p.music.SetPosition(0); err != nil {
		p.log.WithError(err).Warn("rewinding music")
	}
	p.music.Play()
}
