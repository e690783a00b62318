package notify

import (
	"context"
	"log/slog"

	"kayakoyan/internal/core/domain/model/notification"
)

// LogTransport writes notifications to the log instead of sending them.
type LogTransport struct {
	logger *slog.Logger
}

func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger.With("component", "notification_log")}
}

func (t *LogTransport) Deliver(ctx context.Context, n *notification.Notification) error {
	p := newPayload(n)
	t.logger.InfoContext(ctx, "notification",
		"notification_id", p.NotificationID,
		"recipient_id", p.RecipientID,
		"order_id", p.OrderID,
		"kind", p.Kind,
		"subject", p.Subject,
		"body", p.Body,
	)
	return nil
}
