package core

// Action represents a semantic game action, abstracted from physical key presses.
// Key bindings live in the platform layer; the game only sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Up, W
	ActionFire         // Space - also starts a session from Idle/GameOver
	ActionClose        // Esc, Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// EventQueue buffers actions between frames.
// Actions are delivered in the order they were pushed. Once a Close has been
// pushed the queue is closed for good: later pushes are dropped and further
// Close actions are not delivered again.
type EventQueue struct {
	events []Action
	closed bool
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Action, 0, 8)}
}

// Push appends an action. ActionNone is ignored.
func (q *EventQueue) Push(a Action) {
	if a == ActionNone || q.closed {
		return
	}
	if a == ActionClose {
		q.closed = true
	}
	q.events = append(q.events, a)
}

// Drain returns all pending actions in order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Action {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Action, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Closed reports whether a Close action has been pushed.
func (q *EventQueue) Closed() bool {
	return q.closed
}
