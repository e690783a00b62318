package commands

import (
	"context"
	"time"

	"kayakoyan/internal/core/domain/model/delivery"
	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
)

// SubmitDeliveryCommandHandler saves a delivery. Saving it moves the order
// to Delivered and posts the delivery notice to the order chat; the customer
// is notified after commit. An order that cannot become Delivered (a
// PaymentReceived service order, or a digital product) keeps no delivery.
type SubmitDeliveryCommandHandler struct {
	tx *Transactor
}

func NewSubmitDeliveryCommandHandler(tx *Transactor) SubmitDeliveryCommandHandler {
	return SubmitDeliveryCommandHandler{tx: tx}
}

func (h *SubmitDeliveryCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		if err = policies.AuthorizeOrder(cmd.Actor(), policies.DeliverOrder, o); err != nil {
			return err
		}

		d, err := delivery.NewDelivery(cmd.DeliveryID(), o.ID(), cmd.Notes(), cmd.Files(), time.Now().UTC())
		if err != nil {
			return err
		}
		return uow.DeliveryRepository().Add(ctx, d)
	})
}
