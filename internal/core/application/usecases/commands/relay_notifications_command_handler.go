package commands

import (
	"context"
	"log/slog"
	"time"

	"kayakoyan/internal/core/ports"
)

// RelayNotificationsCommandHandler hands pending outbox entries to the
// notification transport. A transport failure is recorded on the entry and
// retried on the next pass until the attempt limit; it never fails the
// batch.
type RelayNotificationsCommandHandler struct {
	tx        *Transactor
	transport ports.NotificationTransport
	logger    *slog.Logger
}

func NewRelayNotificationsCommandHandler(
	tx *Transactor,
	transport ports.NotificationTransport,
	logger *slog.Logger,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		tx:        tx,
		transport: transport,
		logger:    logger.With("component", "notification_relay"),
	}
}

func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		repo := uow.NotificationRepository()
		pending, err := repo.GetPending(ctx, cmd.BatchSize())
		if err != nil {
			return err
		}

		for _, n := range pending {
			if deliverErr := h.transport.Deliver(ctx, n); deliverErr != nil {
				n.MarkAttemptFailed(deliverErr, cmd.MaxAttempts())
				h.logger.WarnContext(ctx, "notification delivery failed",
					"notification_id", n.ID().String(),
					"kind", n.Kind().String(),
					"attempts", n.Attempts(),
					"error", deliverErr,
				)
			} else {
				n.MarkSent(time.Now().UTC())
			}

			if err = repo.Update(ctx, n); err != nil {
				return err
			}
		}
		return nil
	})
}
