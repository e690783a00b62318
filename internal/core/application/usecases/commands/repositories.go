// Package commands contains business operations that modify system state.
// Every handler runs inside one unit of work: it validates the command,
// loads and changes aggregates through the repositories, lets the event
// dispatcher run the lifecycle handlers, and commits.
package commands

import (
	"context"

	"kayakoyan/internal/core/application/eventbus"
	"kayakoyan/internal/core/ports"
)

// UoWFactory creates a fresh unit of work per command.
type UoWFactory interface {
	Create() ports.UnitOfWork
}

// Transactor runs a command body in a unit of work.
//
// Example:
//
//	tx := NewTransactor(uowFactory, dispatcher)
//	err := tx.Do(ctx, func(uow ports.UnitOfWork) error {
//	    o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	    if err != nil {
//	        return err
//	    }
//	    if err = o.TransitionTo(order.InProgress); err != nil {
//	        return err
//	    }
//	    return uow.OrderRepository().Update(ctx, o)
//	})
//
// After the body returns, the events recorded by tracked aggregates are
// dispatched: abort handlers inside the transaction, best-effort handlers
// once it has committed. Any error rolls everything back.
type Transactor struct {
	uowFactory UoWFactory
	dispatcher *eventbus.Dispatcher
}

func NewTransactor(uowFactory UoWFactory, dispatcher *eventbus.Dispatcher) *Transactor {
	return &Transactor{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

func (t *Transactor) Do(ctx context.Context, fn func(uow ports.UnitOfWork) error) error {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	session := t.dispatcher.NewSession(uow)
	committed := false
	defer func() {
		if !committed {
			session.Discard()
		}
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}
	if err := session.Flush(ctx); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}
	committed = true

	session.AfterCommit(ctx)
	return nil
}
