package sched

// UpdateFrame is passed to every system during one Scheduler.Once call.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Resources: resources,
	}
}
