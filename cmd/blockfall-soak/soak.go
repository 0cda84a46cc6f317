package main

import (
	"context"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/systems"
	"github.com/plus3/blockfall/tetris"
)

type soakOptions struct {
	Duration time.Duration
	// MaxFrames stops the run early when positive.
	MaxFrames int64
	FrameTime time.Duration
	Seed      uint64
	Game      tetris.Options
	Tick      time.Duration
	Logger    logrus.FieldLogger
}

// results tallies finished rounds. It is the world's event presenter.
type results struct {
	games     int
	rotations int
	clears    map[int]int
	scores    []int
	world     *systems.World
}

func (r *results) RotationAccepted() { r.rotations++ }
func (r *results) RowsCleared(n int) { r.clears[n]++ }
func (r *results) GameReset()        {}

func (r *results) GameOver() {
	r.games++
	r.scores = append(r.scores, r.world.Game.Score())
}

// soak plays with a bot as fast as possible until the context is done, the
// duration elapses or MaxFrames frames have run.
func soak(ctx context.Context, opts soakOptions) *Report {
	b := newBot(opts.Seed)
	world := systems.NewWorld(systems.Options{
		Game:         opts.Game,
		TickInterval: opts.Tick,
		Input:        b,
	})
	res := &results{clears: make(map[int]int), world: world}
	world.SetPresenter(res)

	report := &Report{
		Duration:  opts.Duration,
		FrameTime: opts.FrameTime,
		Seed:      opts.Seed,
		Tick:      opts.Tick,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	start := time.Now()
	var frames int64
Loop:
	for opts.MaxFrames <= 0 || frames < opts.MaxFrames {
		select {
		case <-ctx.Done():
			break Loop
		default:
			b.roll()
			updateStart := time.Now()
			world.Step(opts.FrameTime)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			frames++
		}
	}

	report.TotalTime = time.Since(start)
	report.TotalUpdates = frames
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Games = res.games
	report.Rotations = res.rotations
	report.Clears = res.clears
	report.Scores.Add(res.scores...)
	report.Lines = world.Game.LinesCleared()
	report.Systems = world.Scheduler.GetStats().Systems

	opts.Logger.WithFields(logrus.Fields{
		"frames": frames,
		"games":  res.games,
	}).Info("soak finished")
	return report
}

