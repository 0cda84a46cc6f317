// Command blockfall runs the game in an Ebitengine window.
package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/screen"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/systems"
)

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

	world := systems.NewWorld(systems.Options{
		Game:         gameOpts,
		TickInterval: cfg.TickInterval,
		Register:     debugui.RegisterResources,
	})

	g := &game{world: world}
	g.input = newKeyboard(func() bool { return debugui.KeyboardCaptured(world.Resources) })
	world.SetInput(g.input)

	if !cfg.Mute {
		player, err := newAudioPlayer(sound.DefaultSampleRate, cfg.Volume, cfg.SoundsDir, logger)
		if err != nil {
			logger.WithError(err).Fatal("initializing audio")
		}
		world.SetPresenter(&sound.Presenter{Player: player, OnReset: player.RestartMusic})
		player.RestartMusic()
	}

	if cfg.DebugUI {
		g.overlay = debugui_ebiten.NewImguiBackend(screen.Title, screen.Width, screen.Height)
		g.stats = debugui.NewPerformanceStats(world.Scheduler, 120)
		world.Scheduler.Register(&debugui.ImguiSystem{})
		debugui.Add(world.Resources, debugui.NewGameInspector(world.Game).Item())
		debugui.Add(world.Resources, g.stats.Item())
	} else {
		ebiten.SetWindowSize(screen.Width, screen.Height)
		ebiten.SetWindowTitle(screen.Title)
	}

	logger.WithFields(logrus.Fields{
		"tick":     cfg.TickInterval.String(),
		"debug_ui": cfg.DebugUI,
		"session":  world.Game.Session().String(),
	}).Info("starting")

	if err := ebiten.RunGame(g); err != nil {
		logger.WithError(err).Fatal("running game")
	}
}
