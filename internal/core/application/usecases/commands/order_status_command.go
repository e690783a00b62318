package commands

import (
	"errors"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/core/domain/policies"
	"kayakoyan/internal/pkg/guard"
)

var ErrOrderStatusCommandIsNotConstructed = errors.New(
	"OrderStatusCommand must be created via one of the order status command constructors",
)

// OrderStatusCommand moves an order along one edge of the status graph on
// behalf of an actor. Each constructor pairs the policy action with its
// target status:
//
//	NewStartWorkCommand      PaymentReceived -> InProgress   (worker, services)
//	NewAcceptOrderCommand    Delivered -> Completed          (customer)
//	NewCompleteOrderCommand  PaymentReceived -> Completed    (worker, digital products)
//	NewCancelOrderCommand    PendingPayment|PaymentSubmitted -> Cancelled
type OrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID
	action  policies.OrderAction
	target  order.Status

	guard guard.ConstructorGuard
}

func newOrderStatusCommand(
	actor user.Actor,
	orderID kernel.UUID,
	action policies.OrderAction,
	target order.Status,
) (OrderStatusCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return OrderStatusCommand{}, err
	}
	return OrderStatusCommand{
		actor:   actor,
		orderID: orderID,
		action:  action,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func NewStartWorkCommand(actor user.Actor, orderID kernel.UUID) (OrderStatusCommand, error) {
	return newOrderStatusCommand(actor, orderID, policies.StartWork, order.InProgress)
}

func NewAcceptOrderCommand(actor user.Actor, orderID kernel.UUID) (OrderStatusCommand, error) {
	return newOrderStatusCommand(actor, orderID, policies.AcceptOrder, order.Completed)
}

func NewCompleteOrderCommand(actor user.Actor, orderID kernel.UUID) (OrderStatusCommand, error) {
	return newOrderStatusCommand(actor, orderID, policies.CompleteOrder, order.Completed)
}

func NewCancelOrderCommand(actor user.Actor, orderID kernel.UUID) (OrderStatusCommand, error) {
	return newOrderStatusCommand(actor, orderID, policies.CancelOrder, order.Cancelled)
}

func (c OrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrOrderStatusCommandIsNotConstructed)
}

func (c OrderStatusCommand) Actor() user.Actor            { return c.actor }
func (c OrderStatusCommand) OrderID() kernel.UUID         { return c.orderID }
func (c OrderStatusCommand) Action() policies.OrderAction { return c.action }
func (c OrderStatusCommand) Target() order.Status         { return c.target }
