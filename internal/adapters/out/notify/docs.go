// Package notify holds the notification transports the outbox relay hands
// entries to: an asynq (Redis) queue for production and a structured log
// sink for local runs. The queue side also provides the task handler that
// consumes the enqueued notifications.
package notify
