// Command blockfall-soak plays the game headless with a random bot and
// prints timing, memory and game statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	frames := flag.Int64("frames", 0, "Stop after this many frames (0 runs for the full duration).")
	frameTime := flag.Duration("frame-time", time.Second/60, "Simulated time per frame.")
	flag.Parse()

	// Game settings come from .env and BLOCKFALL_* variables only; the
	// command line belongs to the soak.
	cfg, err := config.Load(".env", nil)
	if err != nil {
		logrus.WithError(err).Fatal("loading configuration")
	}
	logger := cfg.Logger()
	// Per-move debug logging would dominate the timings.
	logger.SetLevel(min(cfg.LogLevel, logrus.InfoLevel))

	opts, err := newSoakOptions(cfg, *duration, *frames, *frameTime, logger, time.Now())
	if err != nil {
		logger.WithError(err).Fatal("configuring game")
	}

	logger.WithFields(logrus.Fields{
		"duration": duration.String(),
		"seed":     opts.Seed,
	}).Info("starting soak")

	report := soak(context.Background(), opts)

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.WithError(err).Fatal("generating report")
	}
	fmt.Println("--- End of Report ---")
}

// newSoakOptions pins the seed before building the game. The bot and the
// piece randomizer share it, and it is the seed the report prints.
func newSoakOptions(cfg config.Config, duration time.Duration, frames int64, frameTime time.Duration, logger logrus.FieldLogger, now time.Time) (soakOptions, error) {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(now.UnixNano())
	}
	gameOpts, err := cfg.GameOptions(logger, now)
	if err != nil {
		return soakOptions{}, err
	}
	return soakOptions{
		Duration:  duration,
		MaxFrames: frames,
		FrameTime: frameTime,
		Seed:      cfg.Seed,
		Game:      gameOpts,
		Tick:      cfg.TickInterval,
		Logger:    logger,
	}, nil
}
