package commands

import (
	"errors"
	"slices"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"
)

var ErrSubmitDeliveryCommandIsNotConstructed = errors.New(
	"SubmitDeliveryCommand must be created via NewSubmitDeliveryCommand constructor",
)

// SubmitDeliveryCommand carries the worker's finished work for a service
// order: optional notes and the delivered files.
type SubmitDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      user.Actor
	orderID    kernel.UUID
	notes      string
	files      []string

	guard guard.ConstructorGuard
}

func NewSubmitDeliveryCommand(
	deliveryID kernel.UUID,
	actor user.Actor,
	orderID kernel.UUID,
	notes string,
	files []string,
) (SubmitDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		actor.Validate(),
		orderID.Validate(),
	); err != nil {
		return SubmitDeliveryCommand{}, err
	}
	return SubmitDeliveryCommand{
		deliveryID: deliveryID,
		actor:      actor,
		orderID:    orderID,
		notes:      notes,
		files:      slices.Clone(files),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryCommandIsNotConstructed)
}

func (c SubmitDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c SubmitDeliveryCommand) Actor() user.Actor       { return c.actor }
func (c SubmitDeliveryCommand) OrderID() kernel.UUID    { return c.orderID }
func (c SubmitDeliveryCommand) Notes() string           { return c.notes }
func (c SubmitDeliveryCommand) Files() []string         { return slices.Clone(c.files) }
