package ports

import (
	"context"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/notification"
)

// Notifier is the fire-and-forget notification sink used by the order
// lifecycle. It does not wait for delivery.
type Notifier interface {
	Notify(ctx context.Context, recipientID kernel.UUID, kind notification.Kind, orderID kernel.UUID) error
}

// NotificationTransport hands an outbox entry to the outside world (queue,
// mail, log).
type NotificationTransport interface {
	Deliver(ctx context.Context, n *notification.Notification) error
}
