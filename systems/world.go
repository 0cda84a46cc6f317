package systems

import (
	"time"

	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
)

// DefaultTickInterval is the automatic fall period, five steps a second.
const DefaultTickInterval = 200 * time.Millisecond

// Options configures a World.
type Options struct {
	Game         tetris.Options
	TickInterval time.Duration
	Input        tetris.Input
	Presenter    tetris.Events
	Draw         func(g *tetris.Game)
	// Register adds resource types needed by extra systems, such as an
	// overlay registered after NewWorld returns.
	Register func(registry *sched.ResourceRegistry)
}

// World bundles a game with the scheduler that drives it. Systems run in
// the order input, gravity, events, render.
type World struct {
	Scheduler *sched.Scheduler
	Resources *sched.Resources
	Game      *tetris.Game
}

// NewWorld builds the resources and registers the standard systems. The
// game's events are routed through a queue regardless of opts.Game.Events.
func NewWorld(opts Options) *World {
	registry := sched.NewResourceRegistry()
	RegisterResources(registry)
	if opts.Register != nil {
		opts.Register(registry)
	}
	resources := sched.NewResources(registry)

	queue := &tetris.EventQueue{}
	gameOpts := opts.Game
	gameOpts.Events = queue
	game := tetris.New(gameOpts)

	interval := opts.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	sched.Insert(resources, Session{Game: game, Events: queue})
	sched.Insert(resources, Gravity{Interval: interval.Seconds()})
	sched.Insert(resources, InputSource{Input: opts.Input})
	sched.Insert(resources, Presenter{Events: opts.Presenter})
	sched.Insert(resources, Canvas{Draw: opts.Draw})

	scheduler := sched.NewScheduler(resources)
	scheduler.Register(&InputSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&EventSystem{})
	scheduler.Register(&RenderSystem{})

	return &World{
		Scheduler: scheduler,
		Resources: resources,
		Game:      game,
	}
}

// Step runs one frame.
func (w *World) Step(dt time.Duration) {
	w.Scheduler.Once(dt.Seconds())
}

// SetInput replaces the input poller.
func (w *World) SetInput(in tetris.Input) {
	sched.Get[InputSource](w.Resources).Input = in
}

// SetPresenter replaces the event sink.
func (w *World) SetPresenter(ev tetris.Events) {
	sched.Get[Presenter](w.Resources).Events = ev
}

// Gravity returns the fall timer.
func (w *World) Gravity() *Gravity {
	return sched.Get[Gravity](w.Resources)
}
