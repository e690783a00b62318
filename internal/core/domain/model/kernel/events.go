package kernel

// DomainEvent is a fact recorded by an aggregate when its state changes.
// Events are pulled by the unit of work once the aggregate is persisted and
// handed to the application event dispatcher.
type DomainEvent interface {
	EventName() string
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	PullDomainEvents() []DomainEvent
}

// EventRecorder is embedded by aggregates to collect events between saves.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// PullDomainEvents returns the recorded events and forgets them, so an
// event is dispatched at most once.
func (r *EventRecorder) PullDomainEvents() []DomainEvent {
	events := r.events
	r.events = nil
	return events
}
