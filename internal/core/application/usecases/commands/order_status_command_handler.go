package commands

import (
	"context"

	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
)

// OrderStatusCommandHandler locks the order, checks the policy for the
// command's action and performs the transition. A concurrent writer that
// got there first makes the update fail with errs.ErrConcurrentModification.
type OrderStatusCommandHandler struct {
	tx *Transactor
}

func NewOrderStatusCommandHandler(tx *Transactor) OrderStatusCommandHandler {
	return OrderStatusCommandHandler{tx: tx}
}

func (h *OrderStatusCommandHandler) Handle(ctx context.Context, cmd OrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		orders := uow.OrderRepository()
		o, err := orders.GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		if err = policies.AuthorizeOrder(cmd.Actor(), cmd.Action(), o); err != nil {
			return err
		}
		if err = o.TransitionTo(cmd.Target()); err != nil {
			return err
		}
		return orders.Update(ctx, o)
	})
}
