package commands

import (
	"context"
	"time"

	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
)

// PlaceOrderCommandHandler creates a PendingPayment order for a listing.
// The listing's type and price are copied onto the order; the worker is
// notified once the order is committed.
type PlaceOrderCommandHandler struct {
	tx *Transactor
}

func NewPlaceOrderCommandHandler(tx *Transactor) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{tx: tx}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		l, err := uow.ListingRepository().Get(ctx, cmd.ListingID())
		if err != nil {
			return err
		}
		if err = policies.AuthorizeListing(cmd.Actor(), policies.OrderListing, l); err != nil {
			return err
		}

		o, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID(), l, time.Now().UTC())
		if err != nil {
			return err
		}
		return uow.OrderRepository().Add(ctx, o)
	})
}
