// Package notifications implements the Notifier port on top of the
// notification outbox.
package notifications

import (
	"context"
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/notification"
	"kayakoyan/internal/core/ports"
)

// OutboxNotifier writes one pending outbox entry per call. Bound to a
// transactional repository, the entry commits or rolls back together with
// the change that caused it; the relay job delivers it later.
type OutboxNotifier struct {
	repo ports.NotificationRepository
}

func NewOutboxNotifier(repo ports.NotificationRepository) *OutboxNotifier {
	return &OutboxNotifier{repo: repo}
}

func (n *OutboxNotifier) Notify(
	ctx context.Context,
	recipientID kernel.UUID,
	kind notification.Kind,
	orderID kernel.UUID,
) error {
	entry, err := notification.NewNotification(kernel.NewUUID(), recipientID, orderID, kind, time.Now().UTC())
	if err != nil {
		return err
	}
	return n.repo.Add(ctx, entry)
}

// ForUnitOfWork returns a notifier writing through the outbox repository of
// uow.
func ForUnitOfWork(uow ports.UnitOfWork) ports.Notifier {
	return NewOutboxNotifier(uow.NotificationRepository())
}
