package commands

import (
	"errors"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand is the worker's review of the latest payment of an
// order: approve verifies it, otherwise it is rejected.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID
	approve bool

	guard guard.ConstructorGuard
}

func NewVerifyPaymentCommand(actor user.Actor, orderID kernel.UUID, approve bool) (VerifyPaymentCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return VerifyPaymentCommand{}, err
	}
	return VerifyPaymentCommand{
		actor:   actor,
		orderID: orderID,
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

func (c VerifyPaymentCommand) Actor() user.Actor    { return c.actor }
func (c VerifyPaymentCommand) OrderID() kernel.UUID { return c.orderID }
func (c VerifyPaymentCommand) Approve() bool        { return c.approve }
