package main

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/sound"
)

// sounds plays the music stream and effect files from the sounds directory.
// Missing files are skipped.
type sounds struct {
	music     *rl.Music
	rotate    *rl.Sound
	clearRows *rl.Sound
}

func loadSounds(dir string, volume float32, logger logrus.FieldLogger) *sounds {
	s := &sounds{}
	exists := func(name string) (string, bool) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			logger.WithField("path", path).Info("sound file not found")
			return path, false
		}
		return path, true
	}

	if path, ok := exists("A-Type.mp3"); ok {
		music := rl.LoadMusicStream(path)
		rl.SetMusicVolume(music, volume)
		s.music = &music
	}
	if path, ok := exists("rotate.mp3"); ok {
		snd := rl.LoadSound(path)
		rl.SetSoundVolume(snd, volume)
		s.rotate = &snd
	}
	if path, ok := exists("clear.mp3"); ok {
		snd := rl.LoadSound(path)
		rl.SetSoundVolume(snd, volume)
		s.clearRows = &snd
	}
	return s
}

func (s *sounds) Play(c sound.Cue) {
	switch c {
	case sound.CueRotate:
		play(s.rotate)
	case sound.CueClear1, sound.CueClear2, sound.CueClear3, sound.CueClear4:
		play(s.clearRows)
	}
}

func play(snd *rl.Sound) {
	if snd != nil {
		rl.PlaySound(*snd)
	}
}

func (s *sounds) update() {
	if s.music != nil {
		rl.UpdateMusicStream(*s.music)
	}
}

func (s *sounds) restartMusic() {
	if s.music == nil {
		return
	}
	rl.StopMusicStream(*s.music)
	rl.PlayMusicStream(*s.music)
}

func (s *sounds) unload() {
	if s.music != nil {
		rl.UnloadMusicStream(*s.music)
	}
	if s.rotate != nil {
		rl.UnloadSound(*s.rotate)
	}
	if s.clearRows != nil {
		rl.UnloadSound(*s.clearRows)
	}
}
