package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kayakoyan/internal/core/domain/model/notification"

	"github.com/hibiken/asynq"
)

const QueueNotifications = "notifications"

// enqueuer is the part of *asynq.Client the transport uses.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueTransport enqueues one task per outbox entry. The notification ID
// is the task ID, so an entry relayed twice is queued once.
type QueueTransport struct {
	client   enqueuer
	maxRetry int
}

func NewQueueTransport(client enqueuer, maxRetry int) *QueueTransport {
	return &QueueTransport{client: client, maxRetry: maxRetry}
}

func (t *QueueTransport) Deliver(ctx context.Context, n *notification.Notification) error {
	b, err := json.Marshal(newPayload(n))
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskDeliverNotification, b)
	_, err = t.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueNotifications),
		asynq.TaskID(n.ID().String()),
		asynq.MaxRetry(t.maxRetry),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue notification %s: %w", n.ID(), err)
	}
	return nil
}
