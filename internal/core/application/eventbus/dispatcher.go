package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/ports"
)

// Policy decides what a handler failure does to the triggering action.
type Policy int

const (
	// Abort runs the handler in the transaction; failure aborts the action.
	Abort Policy = iota + 1
	// BestEffort runs the handler after commit; failure is only logged.
	BestEffort
)

func (p Policy) String() string {
	switch p {
	case Abort:
		return "abort"
	case BestEffort:
		return "best-effort"
	default:
		return "unknown"
	}
}

// Handler reacts to one event within the unit of work that recorded it.
type Handler func(ctx context.Context, uow ports.UnitOfWork, event kernel.DomainEvent) error

type subscription struct {
	name   string
	policy Policy
	handle Handler
}

// Dispatcher holds the subscriptions. It is configured once at start-up and
// is safe for concurrent use afterwards.
type Dispatcher struct {
	subscriptions map[string][]subscription
	logger        *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		subscriptions: make(map[string][]subscription),
		logger:        logger.With("component", "event_dispatcher"),
	}
}

// Subscribe appends handler to the list for eventName. Handlers of one event
// run in subscription order. name identifies the handler in logs and errors.
func (d *Dispatcher) Subscribe(eventName, name string, policy Policy, handler Handler) {
	d.subscriptions[eventName] = append(d.subscriptions[eventName], subscription{
		name:   name,
		policy: policy,
		handle: handler,
	})
}

// NewSession binds the dispatcher to one unit of work.
func (d *Dispatcher) NewSession(uow ports.UnitOfWork) *Session {
	return &Session{dispatcher: d, uow: uow}
}

type deferredCall struct {
	sub   subscription
	event kernel.DomainEvent
}

// Session dispatches the events of a single unit of work and remembers the
// best-effort work to do after commit. It is not safe for concurrent use.
type Session struct {
	dispatcher *Dispatcher
	uow        ports.UnitOfWork
	deferred   []deferredCall
}

// Flush pulls pending events from the unit of work and dispatches them until
// none are left. The first Abort handler error is returned.
func (s *Session) Flush(ctx context.Context) error {
	for {
		events := s.uow.PullDomainEvents()
		if len(events) == 0 {
			return nil
		}
		for _, event := range events {
			if err := s.dispatch(ctx, event); err != nil {
				return err
			}
		}
	}
}

func (s *Session) dispatch(ctx context.Context, event kernel.DomainEvent) error {
	for _, sub := range s.dispatcher.subscriptions[event.EventName()] {
		if sub.policy == BestEffort {
			s.deferred = append(s.deferred, deferredCall{sub: sub, event: event})
			continue
		}

		if err := sub.handle(ctx, s.uow, event); err != nil {
			return fmt.Errorf("%s handler %s: %w", event.EventName(), sub.name, err)
		}
		if err := s.Flush(ctx); err != nil {
			return err
		}
	}
	return nil
}

// AfterCommit runs the queued best-effort handlers in order. Failures are
// logged; they never undo the committed change.
func (s *Session) AfterCommit(ctx context.Context) {
	calls := s.deferred
	s.deferred = nil
	for _, call := range calls {
		if err := call.sub.handle(ctx, s.uow, call.event); err != nil {
			s.dispatcher.logger.WarnContext(ctx, "best-effort handler failed",
				"event", call.event.EventName(),
				"handler", call.sub.name,
				"error", err,
			)
		}
	}
}

// Discard drops queued best-effort work, used when the transaction is
// rolled back.
func (s *Session) Discard() {
	s.deferred = nil
}
