package systems

import (
	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
)

// Session holds the running game and the queue its events are recorded in.
type Session struct {
	Game   *tetris.Game
	Events *tetris.EventQueue
}

// InputSource wraps the frontend's input poller.
type InputSource struct {
	tetris.Input
}

// Gravity drives the automatic fall.
type Gravity struct {
	Interval    float64
	Accumulator float64
	Ticks       int64
}

// Presenter receives game events after the frame that produced them.
type Presenter struct {
	tetris.Events
}

// Canvas draws the game once per frame.
type Canvas struct {
	Draw func(g *tetris.Game)
}

// RegisterResources registers every resource type used by the systems.
func RegisterResources(registry *sched.ResourceRegistry) {
	sched.RegisterResource[Session](registry)
	sched.RegisterResource[InputSource](registry)
	sched.RegisterResource[Gravity](registry)
	sched.RegisterResource[Presenter](registry)
	sched.RegisterResource[Canvas](registry)
}
