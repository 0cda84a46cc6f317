package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
)

var allEnv = []string{
	config.EnvSeed,
	config.EnvTickInterval,
	config.EnvRandomizer,
	config.EnvLogLevel,
	config.EnvDebugUI,
	config.EnvSoundsDir,
	config.EnvVolume,
	config.EnvMute,
}

// clearEnv unsets every BLOCKFALL_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range allEnv {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := config.Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		assert.Equal(t, 200*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, tetris.RandomizerUniform, cfg.Randomizer)
		assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		clearEnv(t)
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.env"), nil)
		assert.NoError(t, err)
	})

	t.Run("environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvSeed, "42")
		t.Setenv(config.EnvTickInterval, "150ms")
		t.Setenv(config.EnvRandomizer, "bag")
		t.Setenv(config.EnvLogLevel, "debug")
		t.Setenv(config.EnvDebugUI, "true")
		t.Setenv(config.EnvSoundsDir, "/tmp/sfx")
		t.Setenv(config.EnvVolume, "0.25")
		t.Setenv(config.EnvMute, "1")

		cfg, err := config.Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.Equal(t, 150*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, tetris.RandomizerBag, cfg.Randomizer)
		assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
		assert.True(t, cfg.DebugUI)
		assert.Equal(t, "/tmp/sfx", cfg.SoundsDir)
		assert.Equal(t, 0.25, cfg.Volume)
		assert.True(t, cfg.Mute)
	})

	t.Run("flags override environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvSeed, "42")
		t.Setenv(config.EnvRandomizer, "bag")

		cfg, err := config.Load("", []string{"-seed", "7", "-randomizer", "uniform", "-tick", "1s", "-log-level", "warn"})
		require.NoError(t, err)
		assert.Equal(t, uint64(7), cfg.Seed)
		assert.Equal(t, tetris.RandomizerUniform, cfg.Randomizer)
		assert.Equal(t, time.Second, cfg.TickInterval)
		assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
	})

	t.Run("env file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("BLOCKFALL_SEED=99\nBLOCKFALL_VOLUME=0.5\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv(config.EnvSeed)
			os.Unsetenv(config.EnvVolume)
		})

		cfg, err := config.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(99), cfg.Seed)
		assert.Equal(t, 0.5, cfg.Volume)
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name string
			env  map[string]string
			args []string
		}{
			{name: "seed", env: map[string]string{config.EnvSeed: "-1"}},
			{name: "tick", env: map[string]string{config.EnvTickInterval: "soon"}},
			{name: "non-positive tick", args: []string{"-tick", "0s"}},
			{name: "randomizer", env: map[string]string{config.EnvRandomizer: "weighted"}},
			{name: "log level", env: map[string]string{config.EnvLogLevel: "loud"}},
			{name: "log level flag", args: []string{"-log-level", "loud"}},
			{name: "debug ui", env: map[string]string{config.EnvDebugUI: "maybe"}},
			{name: "volume", env: map[string]string{config.EnvVolume: "1.5"}},
			{name: "mute", env: map[string]string{config.EnvMute: "loudly"}},
			{name: "unknown flag", args: []string{"-fast"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				clearEnv(t)
				for k, v := range tt.env {
					t.Setenv(k, v)
				}
				_, err := config.Load("", tt.args)
				assert.Error(t, err)
			})
		}
	})

	t.Run("env errors name the variable", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvVolume, "loud")
		_, err := config.Load("", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.EnvVolume)
	})
}

func TestConfigRandomizer(t *testing.T) {
	now := time.Unix(0, 12345)

	t.Run("configured seed is deterministic", func(t *testing.T) {
		cfg := config.Default()
		cfg.Seed = 5
		cfg.Randomizer = tetris.RandomizerBag

		a, seedA, err := cfg.NewRandomizer(now)
		require.NoError(t, err)
		b, seedB, err := cfg.NewRandomizer(now.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, uint64(5), seedA)
		assert.Equal(t, seedA, seedB)
		for range 14 {
			assert.Equal(t, a.Next(), b.Next())
		}
	})

	t.Run("zero seed uses the clock", func(t *testing.T) {
		cfg := config.Default()
		_, seed, err := cfg.NewRandomizer(now)
		require.NoError(t, err)
		assert.Equal(t, uint64(12345), seed)
	})

	t.Run("game options", func(t *testing.T) {
		cfg := config.Default()
		cfg.Seed = 1
		logger := cfg.Logger()
		opts, err := cfg.GameOptions(logger, now)
		require.NoError(t, err)
		assert.NotNil(t, opts.Randomizer)
		assert.Same(t, logger, opts.Logger)
	})

	t.Run("logger level", func(t *testing.T) {
		cfg := config.Default()
		cfg.LogLevel = logrus.ErrorLevel
		assert.Equal(t, logrus.ErrorLevel, cfg.Logger().GetLevel())
	})
}
