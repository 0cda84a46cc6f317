// Package config loads frontend settings from a .env file, BLOCKFALL_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

// Environment variable names.
const (
	EnvSeed         = "BLOCKFALL_SEED"
	EnvTickInterval = "BLOCKFALL_TICK_INTERVAL"
	EnvRandomizer   = "BLOCKFALL_RANDOMIZER"
	EnvLogLevel     = "BLOCKFALL_LOG_LEVEL"
	EnvDebugUI      = "BLOCKFALL_DEBUG_UI"
	EnvSoundsDir    = "BLOCKFALL_SOUNDS_DIR"
	EnvVolume       = "BLOCKFALL_VOLUME"
	EnvMute         = "BLOCKFALL_MUTE"
)

// Config holds the settings shared by every frontend.
type Config struct {
	// Seed for the piece randomizer; zero means seed from the clock.
	Seed         uint64
	TickInterval time.Duration
	Randomizer   tetris.RandomizerKind
	LogLevel     logrus.Level
	DebugUI      bool
	SoundsDir    string
	Volume       float64
	Mute         bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		TickInterval: systems.DefaultTickInterval,
		Randomizer:   tetris.RandomizerUniform,
		LogLevel:     logrus.InfoLevel,
		SoundsDir:    "sounds",
		Volume:       0.7,
	}
}

// Load reads envFile (if it exists), the environment and args. A missing
// env file is not an error.
func Load(envFile string, args []string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var err error
	if v, ok := lookup(EnvSeed); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if v, ok := lookup(EnvTickInterval); ok {
		if c.TickInterval, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
	}
	if v, ok := lookup(EnvRandomizer); ok {
		c.Randomizer = tetris.RandomizerKind(v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if c.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v, ok := lookup(EnvDebugUI); ok {
		if c.DebugUI, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%s: %w", EnvDebugUI, err)
		}
	}
	if v, ok := lookup(EnvSoundsDir); ok {
		c.SoundsDir = v
	}
	if v, ok := lookup(EnvVolume); ok {
		if c.Volume, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
	}
	if v, ok := lookup(EnvMute); ok {
		if c.Mute, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%s: %w", EnvMute, err)
		}
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	set := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	seed := set.Uint64("seed", c.Seed, "piece randomizer seed (0 seeds from the clock)")
	tick := set.Duration("tick", c.TickInterval, "automatic fall interval")
	randomizer := set.String("randomizer", string(c.Randomizer), "piece randomizer: uniform or bag")
	level := set.String("log-level", c.LogLevel.String(), "log level")
	debugUI := set.Bool("debug-ui", c.DebugUI, "show the debug overlay where supported")
	sounds := set.String("sounds", c.SoundsDir, "directory holding optional music and effect files")
	volume := set.Float64("volume", c.Volume, "audio volume between 0 and 1")
	mute := set.Bool("mute", c.Mute, "disable audio")

	if err := set.Parse(args); err != nil {
		return err
	}

	parsed, err := logrus.ParseLevel(*level)
	if err != nil {
		return fmt.Errorf("-log-level: %w", err)
	}

	c.Seed = *seed
	c.TickInterval = *tick
	c.Randomizer = tetris.RandomizerKind(*randomizer)
	c.LogLevel = parsed
	c.DebugUI = *debugUI
	c.SoundsDir = *sounds
	c.Volume = *volume
	c.Mute = *mute
	return nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %g", c.Volume)
	}
	if _, err := tetris.NewRandomizer(c.Randomizer, 0); err != nil {
		return err
	}
	return nil
}

// NewRandomizer builds the configured randomizer, seeding from now when no
// seed is set.
func (c Config) NewRandomizer(now time.Time) (tetris.Randomizer, uint64, error) {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	r, err := tetris.NewRandomizer(c.Randomizer, seed)
	return r, seed, err
}

// Logger returns a logrus logger at the configured level.
func (c Config) Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}

// GameOptions assembles tetris options from the configuration.
func (c Config) GameOptions(logger logrus.FieldLogger, now time.Time) (tetris.Options, error) {
	r, seed, err := c.NewRandomizer(now)
	if err != nil {
		return tetris.Options{}, err
	}
	logger.WithFields(logrus.Fields{
		"seed":       seed,
		"randomizer": string(c.Randomizer),
	}).Info("piece randomizer ready")
	return tetris.Options{Randomizer: r, Logger: logger}, nil
}
