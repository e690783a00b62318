// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// NotificationRelayJob drains the notification outbox: on each tick it runs
// RelayNotificationsCommand, which hands pending entries to the configured
// transport and records the outcome on each entry.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, jobs.RelayConfig{
//		Schedule:    "*/5 * * * * *",
//		BatchSize:   50,
//		MaxAttempts: 5,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed tick is logged and the next tick retries; failures of single
// notifications are recorded on the outbox entries, not returned.
package jobs
