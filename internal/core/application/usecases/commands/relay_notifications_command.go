package commands

import (
	"errors"

	"kayakoyan/internal/pkg/errs"
	"kayakoyan/internal/pkg/guard"
)

var ErrRelayNotificationsCommandIsNotConstructed = errors.New(
	"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
)

// RelayNotificationsCommand asks for one pass over the notification outbox.
type RelayNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

func NewRelayNotificationsCommand(batchSize, maxAttempts int) (RelayNotificationsCommand, error) {
	var err error
	if batchSize <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("batch size"))
	}
	if maxAttempts <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("max attempts"))
	}
	if err != nil {
		return RelayNotificationsCommand{}, err
	}

	return RelayNotificationsCommand{
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}

func (c RelayNotificationsCommand) BatchSize() int   { return c.batchSize }
func (c RelayNotificationsCommand) MaxAttempts() int { return c.maxAttempts }
