package commands

import (
	"errors"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"
)

var ErrSubmitPaymentCommandIsNotConstructed = errors.New(
	"SubmitPaymentCommand must be created via NewSubmitPaymentCommand constructor",
)

// SubmitPaymentCommand carries the customer's proof of a manual transfer.
// The amount is always the order total.
type SubmitPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID       kernel.UUID
	actor           user.Actor
	orderID         kernel.UUID
	method          payment.Method
	proofPath       string
	referenceNumber string

	guard guard.ConstructorGuard
}

func NewSubmitPaymentCommand(
	paymentID kernel.UUID,
	actor user.Actor,
	orderID kernel.UUID,
	method payment.Method,
	proofPath, referenceNumber string,
) (SubmitPaymentCommand, error) {
	if err := errors.Join(
		paymentID.Validate(),
		actor.Validate(),
		orderID.Validate(),
		method.Validate(),
	); err != nil {
		return SubmitPaymentCommand{}, err
	}

	return SubmitPaymentCommand{
		paymentID:       paymentID,
		actor:           actor,
		orderID:         orderID,
		method:          method,
		proofPath:       proofPath,
		referenceNumber: referenceNumber,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentCommandIsNotConstructed)
}

func (c SubmitPaymentCommand) PaymentID() kernel.UUID  { return c.paymentID }
func (c SubmitPaymentCommand) Actor() user.Actor       { return c.actor }
func (c SubmitPaymentCommand) OrderID() kernel.UUID    { return c.orderID }
func (c SubmitPaymentCommand) Method() payment.Method  { return c.method }
func (c SubmitPaymentCommand) ProofPath() string       { return c.proofPath }
func (c SubmitPaymentCommand) ReferenceNumber() string { return c.referenceNumber }
