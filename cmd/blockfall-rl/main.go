// Command blockfall-rl runs the game in a raylib window using the monogram
// font and mp3 sound files when they are present.
package main

import (
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/screen"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/systems"
)

const fontPath = "fonts/monogram.ttf"

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("loading configuration")
	}
	logger := cfg.Logger()

	gameOpts, err := cfg.GameOptions(logger, time.Now())
	if err != nil {
		logger.WithError(err).Fatal("configuring game")
	}

	rl.InitWindow(screen.Width, screen.Height, screen.Title)
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	font := loadFont(logger)
	v := &view{font: font}

	world := systems.NewWorld(systems.Options{
		Game:         gameOpts,
		TickInterval: cfg.TickInterval,
		Input:        keyboard{},
		Draw:         v.draw,
	})

	if !cfg.Mute {
		rl.InitAudioDevice()
		defer rl.CloseAudioDevice()

		sfx := loadSounds(cfg.SoundsDir, float32(cfg.Volume), logger)
		defer sfx.unload()
		world.SetPresenter(&sound.Presenter{Player: sfx, OnReset: sfx.restartMusic})
		v.frame = sfx.update
		sfx.restartMusic()
	}

	logger.WithField("session", world.Game.Session().String()).Info("starting")

	for !rl.WindowShouldClose() {
		world.Step(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
	}
}

func loadFont(logger logrus.FieldLogger) rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		logger.WithField("path", fontPath).Info("font not found, using the raylib default")
		return rl.GetFontDefault()
	}
	return rl.LoadFont(fontPath)
}
