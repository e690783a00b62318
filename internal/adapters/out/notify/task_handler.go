package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

// Sender performs the final hand-off of a notification, e.g. an email.
type Sender interface {
	Send(ctx context.Context, p Payload) error
}

// TaskHandler consumes TaskDeliverNotification tasks.
type TaskHandler struct {
	sender Sender
	logger *slog.Logger
}

func NewTaskHandler(sender Sender, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{sender: sender, logger: logger.With("component", "notification_worker")}
}

// ProcessTask implements asynq.Handler. A malformed payload is not retried.
func (h *TaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p Payload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	if err := h.sender.Send(ctx, p); err != nil {
		h.logger.WarnContext(ctx, "notification send failed", "notification_id", p.NotificationID, "error", err)
		return err
	}
	return nil
}

// NewServeMux routes notification tasks to h.
func (h *TaskHandler) NewServeMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(TaskDeliverNotification, h)
	return mux
}

// LogSender is a Sender that only logs, standing in for a mail gateway.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "notification_sender")}
}

func (s *LogSender) Send(ctx context.Context, p Payload) error {
	s.logger.InfoContext(ctx, "notification sent",
		"recipient_id", p.RecipientID,
		"kind", p.Kind,
		"subject", p.Subject,
	)
	return nil
}
