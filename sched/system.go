// Package sched runs an ordered list of systems once per frame over a shared
// set of typed resources, deferring side effects until every system has run.
package sched

// System is one step of a frame. Systems may declare Singleton fields; the
// Scheduler binds them to its resources on registration.
type System interface {
	Execute(frame *UpdateFrame)
}
