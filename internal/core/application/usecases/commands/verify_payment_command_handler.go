package commands

import (
	"context"

	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
)

// VerifyPaymentCommandHandler applies the worker's review. A verified
// payment moves the order to PaymentReceived and notifies the customer; a
// rejected one leaves the order in PaymentSubmitted.
type VerifyPaymentCommandHandler struct {
	tx *Transactor
}

func NewVerifyPaymentCommandHandler(tx *Transactor) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{tx: tx}
}

func (h *VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		if err = policies.AuthorizeOrder(cmd.Actor(), policies.VerifyPayment, o); err != nil {
			return err
		}

		payments := uow.PaymentRepository()
		p, err := payments.GetLatestForOrder(ctx, o.ID())
		if err != nil {
			return err
		}
		if cmd.Approve() {
			err = p.Verify()
		} else {
			err = p.Reject()
		}
		if err != nil {
			return err
		}
		return payments.Update(ctx, p)
	})
}
