package jobs

import (
	"context"
	"log/slog"

	"kayakoyan/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayNotificationsCommand) error
}

// RelayConfig tunes the outbox relay.
type RelayConfig struct {
	Schedule    string
	BatchSize   int
	MaxAttempts int
}

// NotificationRelayJob runs the outbox relay on a cron schedule. With
// cron.SkipIfStillRunning a slow pass never overlaps the next one.
type NotificationRelayJob struct {
	handler relayHandler
	config  RelayConfig
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewNotificationRelayJob(handler relayHandler, config RelayConfig, logger *slog.Logger) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler: handler,
		config:  config,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "notification_relay_job"),
	}
}

// Start validates the configuration and schedules the relay.
func (j *NotificationRelayJob) Start() error {
	cmd, err := commands.NewRelayNotificationsCommand(j.config.BatchSize, j.config.MaxAttempts)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.config.Schedule, func() {
		ctx := context.Background()
		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Notification relay failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started", "schedule", j.config.Schedule)
	return nil
}

// Stop waits for a running pass to finish.
func (j *NotificationRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
