package tetris

// Events receives fire-and-forget notifications from the game. Implementations
// must not call back into the Game that emitted them.
type Events interface {
	RotationAccepted()
	RowsCleared(rows int)
	GameOver()
	GameReset()
}

// NopEvents discards every notification.
type NopEvents struct{}

func (NopEvents) RotationAccepted() {}
func (NopEvents) RowsCleared(int)   {}
func (NopEvents) GameOver()         {}
func (NopEvents) GameReset()        {}

// EventKind tags a queued Event.
type EventKind int

const (
	EventRotationAccepted EventKind = iota
	EventRowsCleared
	EventGameOver
	EventGameReset
)

func (k EventKind) String() string {
	switch k {
	case EventRotationAccepted:
		return "rotation_accepted"
	case EventRowsCleared:
		return "rows_cleared"
	case EventGameOver:
		return "game_over"
	case EventGameReset:
		return "game_reset"
	default:
		return "unknown"
	}
}

// Event is a recorded notification.
type Event struct {
	Kind EventKind
	Rows int
}

// EventQueue buffers notifications so they can be delivered after the tick
// that produced them has finished.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) RotationAccepted() {
	q.events = append(q.events, Event{Kind: EventRotationAccepted})
}

func (q *EventQueue) RowsCleared(rows int) {
	q.events = append(q.events, Event{Kind: EventRowsCleared, Rows: rows})
}

func (q *EventQueue) GameOver() {
	q.events = append(q.events, Event{Kind: EventGameOver})
}

func (q *EventQueue) GameReset() {
	q.events = append(q.events, Event{Kind: EventGameReset})
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Pending returns a copy of the queued events without consuming them.
func (q *EventQueue) Pending() []Event {
	return append([]Event(nil), q.events...)
}

// Drain delivers queued events to sink in order and empties the queue.
func (q *EventQueue) Drain(sink Events) {
	events := q.events
	q.events = nil
	for _, e := range events {
		switch e.Kind {
		case EventRotationAccepted:
			sink.RotationAccepted()
		case EventRowsCleared:
			sink.RowsCleared(e.Rows)
		case EventGameOver:
			sink.GameOver()
		case EventGameReset:
			sink.GameReset()
		}
	}
}
