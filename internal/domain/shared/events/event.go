package events

import "time"

// DomainEvent is anything the dispatcher can route. Events are best-effort
// notifications emitted after a transaction commits; no business invariant
// may depend on their delivery.
type DomainEvent interface {
	EventType() string
	OccurredAtTime() time.Time
}

// Handler processes one event. Handlers run outside the request path and
// must tolerate redelivery gaps (at-most-once semantics).
type Handler func(event DomainEvent) error

// Publisher is the side use cases see.
type Publisher interface {
	Publish(event DomainEvent)
}
