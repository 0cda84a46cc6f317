// Command blockfall-tui runs the game in a terminal.
package main

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/systems"
)

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("loading configuration")
	}

	// The terminal belongs to the UI, so logs go to a file.
	logger := cfg.Logger()
	logPath := filepath.Join(os.TempDir(), "blockfall-tui.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.WithError(err).Fatal("opening log file")
	}
	defer logFile.Close()
	logger.SetOutput(logFile)

	gameOpts, err := cfg.GameOptions(logger, time.Now())
	if err != nil {
		logger.WithError(err).Fatal("configuring game")
	}

	world := systems.NewWorld(systems.Options{
		Game:         gameOpts,
		TickInterval: cfg.TickInterval,
	})

	m := newModel(world, time.Now)
	// The engine is opened even when muted so that sound can be toggled.
	engine, err := sound.NewEngine(sound.DefaultSampleRate, cfg.Volume, logger)
	if err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	} else {
		world.SetPresenter(&sound.Presenter{Player: engine})
		m = m.withMixer(engine, cfg.Mute, cfg.Volume)
	}

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.WithError(err).Fatal("running program")
	}
	logger.WithField("score", world.Game.Score()).Info("exiting")
}
