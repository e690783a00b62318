package commands

import (
	"context"
	"time"

	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/core/ports"
)

// SubmitPaymentCommandHandler records a payment for a PendingPayment order.
// Saving the payment moves the order to PaymentSubmitted and notifies the
// worker in the same transaction; if the move is illegal nothing is saved.
type SubmitPaymentCommandHandler struct {
	tx *Transactor
}

func NewSubmitPaymentCommandHandler(tx *Transactor) SubmitPaymentCommandHandler {
	return SubmitPaymentCommandHandler{tx: tx}
}

func (h *SubmitPaymentCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		if err = policies.AuthorizeOrder(cmd.Actor(), policies.PayOrder, o); err != nil {
			return err
		}

		p, err := payment.NewPayment(
			cmd.PaymentID(),
			o.ID(),
			cmd.Method(),
			o.TotalPrice(),
			cmd.ProofPath(),
			cmd.ReferenceNumber(),
			time.Now().UTC(),
		)
		if err != nil {
			return err
		}
		return uow.PaymentRepository().Add(ctx, p)
	})
}
