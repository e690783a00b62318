package cmd

import "time"

// Notification transports selectable with NOTIFICATION_TRANSPORT.
const (
	TransportQueue = "queue"
	TransportLog   = "log"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr             string
	NotificationTransport string
	NotificationRetries   int
	WorkerConcurrency     int

	RelaySchedule    string
	RelayBatchSize   int
	RelayMaxAttempts int
}

// UsesQueue reports whether notifications go through the asynq queue.
func (c Config) UsesQueue() bool {
	return c.NotificationTransport == TransportQueue
}
