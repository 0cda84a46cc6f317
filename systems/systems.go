// Package systems adapts the tetris state machine to the frame scheduler.
package systems

import (
	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
)

// InputSystem applies one poll of player input per frame.
type InputSystem struct {
	Session sched.Singleton[Session]
	Input   sched.Singleton[InputSource]
}

func (s *InputSystem) Execute(frame *sched.UpdateFrame) {
	session := s.Session.Get()
	if session == nil {
		return
	}

	input := s.Input.Get()
	if input == nil || input.Input == nil {
		return
	}

	session.Game.HandleInput(input.Input)
}

// GravitySystem steps the piece down once per elapsed interval.
type GravitySystem struct {
	Session sched.Singleton[Session]
	Gravity sched.Singleton[Gravity]
}

func (s *GravitySystem) Execute(frame *sched.UpdateFrame) {
	session := s.Session.Get()
	if session == nil {
		return
	}

	gravity := s.Gravity.Get()
	if gravity == nil || gravity.Interval <= 0 {
		return
	}

	gravity.Accumulator += frame.DeltaTime
	if gravity.Accumulator >= gravity.Interval {
		gravity.Accumulator = 0
		gravity.Ticks++
		session.Game.Tick()
	}
}

// EventSystem hands the frame's game events to the presenter once every
// system has finished, so presentation never runs inside a game step.
type EventSystem struct {
	Session   sched.Singleton[Session]
	Presenter sched.Singleton[Presenter]
}

func (s *EventSystem) Execute(frame *sched.UpdateFrame) {
	session := s.Session.Get()
	if session == nil || session.Events.Len() == 0 {
		return
	}

	presenter := s.Presenter.Get()
	if presenter == nil || presenter.Events == nil {
		session.Events.Drain(tetris.NopEvents{})
		return
	}

	queue, sink := session.Events, presenter.Events
	frame.Commands.Defer(func() {
		queue.Drain(sink)
	})
}

// RenderSystem calls the canvas draw function.
type RenderSystem struct {
	Session sched.Singleton[Session]
	Canvas  sched.Singleton[Canvas]
}

func (s *RenderSystem) Execute(frame *sched.UpdateFrame) {
	session := s.Session.Get()
	canvas := s.Canvas.Get()
	if session == nil || canvas == nil || canvas.Draw == nil {
		return
	}
	canvas.Draw(session.Game)
}
