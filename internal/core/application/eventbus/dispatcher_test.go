package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"kayakoyan/internal/core/application/eventbus"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent string

func (e testEvent) EventName() string { return string(e) }

// queueUoW hands out queued events; the repositories are never used.
type queueUoW struct {
	ports.UnitOfWork
	pending []kernel.DomainEvent
}

func (u *queueUoW) PullDomainEvents() []kernel.DomainEvent {
	events := u.pending
	u.pending = nil
	return events
}

func (u *queueUoW) record(events ...kernel.DomainEvent) {
	u.pending = append(u.pending, events...)
}

func newDispatcher() *eventbus.Dispatcher {
	return eventbus.NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSession_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("should run abort handlers in subscription order and defer best effort", func(t *testing.T) {
		var calls []string
		d := newDispatcher()
		d.Subscribe("a", "first", eventbus.Abort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "first")
			return nil
		})
		d.Subscribe("a", "later", eventbus.BestEffort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "later")
			return nil
		})
		d.Subscribe("a", "second", eventbus.Abort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "second")
			return nil
		})
		uow := &queueUoW{}
		uow.record(testEvent("a"))
		session := d.NewSession(uow)

		require.NoError(t, session.Flush(ctx))
		assert.Equal(t, []string{"first", "second"}, calls)

		session.AfterCommit(ctx)
		assert.Equal(t, []string{"first", "second", "later"}, calls)
	})

	t.Run("should dispatch cascaded events depth first", func(t *testing.T) {
		var calls []string
		d := newDispatcher()
		uow := &queueUoW{}
		d.Subscribe("a", "a1", eventbus.Abort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "a1")
			uow.record(testEvent("b"))
			return nil
		})
		d.Subscribe("a", "a2", eventbus.Abort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "a2")
			return nil
		})
		d.Subscribe("b", "b1", eventbus.Abort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "b1")
			return nil
		})
		uow.record(testEvent("a"))

		require.NoError(t, d.NewSession(uow).Flush(ctx))
		assert.Equal(t, []string{"a1", "b1", "a2"}, calls)
	})

	t.Run("should stop at the first abort failure", func(t *testing.T) {
		boom := errors.New("boom")
		var calls []string
		d := newDispatcher()
		d.Subscribe("a", "failing", eventbus.Abort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "failing")
			return boom
		})
		d.Subscribe("a", "skipped", eventbus.Abort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "skipped")
			return nil
		})
		uow := &queueUoW{}
		uow.record(testEvent("a"))

		err := d.NewSession(uow).Flush(ctx)

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "a handler failing")
		assert.Equal(t, []string{"failing"}, calls)
	})

	t.Run("should ignore events nobody subscribed to", func(t *testing.T) {
		uow := &queueUoW{}
		uow.record(testEvent("nobody"))

		require.NoError(t, newDispatcher().NewSession(uow).Flush(ctx))
	})
}

func TestSession_AfterCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep going after a best effort failure", func(t *testing.T) {
		var calls []string
		d := newDispatcher()
		d.Subscribe("a", "failing", eventbus.BestEffort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "failing")
			return errors.New("smtp down")
		})
		d.Subscribe("a", "next", eventbus.BestEffort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			calls = append(calls, "next")
			return nil
		})
		uow := &queueUoW{}
		uow.record(testEvent("a"))
		session := d.NewSession(uow)
		require.NoError(t, session.Flush(ctx))

		session.AfterCommit(ctx)
		session.AfterCommit(ctx)

		assert.Equal(t, []string{"failing", "next"}, calls)
	})

	t.Run("should drop deferred work on discard", func(t *testing.T) {
		called := false
		d := newDispatcher()
		d.Subscribe("a", "deferred", eventbus.BestEffort, func(context.Context, ports.UnitOfWork, kernel.DomainEvent) error {
			called = true
			return nil
		})
		uow := &queueUoW{}
		uow.record(testEvent("a"))
		session := d.NewSession(uow)
		require.NoError(t, session.Flush(ctx))

		session.Discard()
		session.AfterCommit(ctx)

		assert.False(t, called)
	})
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "abort", eventbus.Abort.String())
	assert.Equal(t, "best-effort", eventbus.BestEffort.String())
	assert.Equal(t, "unknown", eventbus.Policy(0).String())
}
