package sched_test

import "github.com/plus3/blockfall/sched"

// Common test resource types
type Counter struct {
	Value int
}

type Clock struct {
	Elapsed float64
}

type Log struct {
	Lines []string
}

type Unregistered struct{}

func newTestRegistry() *sched.ResourceRegistry {
	registry := sched.NewResourceRegistry()
	sched.RegisterResource[Counter](registry)
	sched.RegisterResource[Clock](registry)
	sched.RegisterResource[Log](registry)
	return registry
}
