package commands

import (
	"errors"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer buying a listing.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), actor, listingID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(tx)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     user.Actor
	listingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(orderID kernel.UUID, actor user.Actor, listingID kernel.UUID) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		listingID.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	cmd.listingID = listingID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID   { return c.orderID }
func (c PlaceOrderCommand) Actor() user.Actor      { return c.actor }
func (c PlaceOrderCommand) ListingID() kernel.UUID { return c.listingID }
