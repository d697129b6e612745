package ecs

// CollisionPhase distinguishes the start and end of a contact.
type CollisionPhase int

const (
	CollisionStarted CollisionPhase = iota
	CollisionStopped
)

func (p CollisionPhase) String() string {
	if p == CollisionStopped {
		return "stopped"
	}
	return "started"
}

// CollisionFlags describe the kind of contact that produced an event.
type CollisionFlags uint8

const (
	// CollisionSensor marks an overlap involving a sensor shape.
	CollisionSensor CollisionFlags = 1 << iota
)

// CollisionEvent is published by the physics step for contacts involving
// entity-backed shapes.
type CollisionEvent struct {
	Phase CollisionPhase
	A     Entity
	B     Entity
	Flags CollisionFlags
}

// Sensor reports whether the contact was a sensor-only overlap.
func (e CollisionEvent) Sensor() bool {
	return e.Flags&CollisionSensor != 0
}

// Involves reports whether e names ent on either side of the pair.
func (e CollisionEvent) Involves(ent Entity) bool {
	return e.A == ent || e.B == ent
}

// EventQueue is a FIFO produced by one stage of the tick and drained by a
// later stage. Arrival order is preserved and each event is handed out once.
type EventQueue[T any] struct {
	items []T
}

// Push adds an event.
func (q *EventQueue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *EventQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue[T]) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
