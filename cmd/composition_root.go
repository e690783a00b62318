package cmd

import (
	"fmt"
	"log/slog"

	httpin "kayakoyan/internal/adapters/in/http"
	"kayakoyan/internal/adapters/out/notify"
	"kayakoyan/internal/adapters/out/postgres"
	"kayakoyan/internal/core/application/eventbus"
	"kayakoyan/internal/core/application/lifecycle"
	"kayakoyan/internal/core/application/notifications"
	"kayakoyan/internal/core/application/usecases/commands"
	"kayakoyan/internal/core/application/usecases/queries"
	"kayakoyan/internal/core/ports"
	"kayakoyan/internal/jobs"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	tx         *commands.Transactor
	logger     *slog.Logger

	queueClient *asynq.Client
}

// NewCompositionRoot wires the lifecycle handlers onto a fresh dispatcher
// and builds the transactor every command shares.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	dispatcher := eventbus.NewDispatcher(logger)
	lifecycle.NewObservers(notifications.ForUnitOfWork, logger).Register(dispatcher)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		tx:         commands.NewTransactor(uowFactory, dispatcher),
		logger:     logger,
	}
}

func (c *CompositionRoot) redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: c.config.RedisAddr}
}

func (c *CompositionRoot) CreateNotificationTransport() (ports.NotificationTransport, error) {
	switch c.config.NotificationTransport {
	case TransportQueue:
		if c.queueClient == nil {
			c.queueClient = asynq.NewClient(c.redisOpt())
		}
		return notify.NewQueueTransport(c.queueClient, c.config.NotificationRetries), nil
	case TransportLog, "":
		return notify.NewLogTransport(c.logger), nil
	default:
		return nil, fmt.Errorf("unknown notification transport %q", c.config.NotificationTransport)
	}
}

// CreateNotificationWorker builds the asynq server consuming the
// notification queue. Start it with the returned mux.
func (c *CompositionRoot) CreateNotificationWorker() (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(c.redisOpt(), asynq.Config{
		Concurrency: c.config.WorkerConcurrency,
		Queues:      map[string]int{notify.QueueNotifications: 1},
	})
	handler := notify.NewTaskHandler(notify.NewLogSender(c.logger), c.logger)
	return srv, handler.NewServeMux()
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	transport, err := c.CreateNotificationTransport()
	if err != nil {
		return nil, err
	}
	relay := commands.NewRelayNotificationsCommandHandler(c.tx, transport, c.logger)
	return jobs.NewJobManager(&relay, jobs.RelayConfig{
		Schedule:    c.config.RelaySchedule,
		BatchSize:   c.config.RelayBatchSize,
		MaxAttempts: c.config.RelayMaxAttempts,
	}, c.logger), nil
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers(), c.CreateTokenIssuer())
}

func (c *CompositionRoot) CreateTokenIssuer() *httpin.TokenIssuer {
	return httpin.NewTokenIssuer(c.config.JWTSecret, c.config.JWTTTL)
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterUser:    commands.NewRegisterUserCommandHandler(c.tx),
		CreateListing:   commands.NewCreateListingCommandHandler(c.tx),
		PlaceOrder:      commands.NewPlaceOrderCommandHandler(c.tx),
		SubmitPayment:   commands.NewSubmitPaymentCommandHandler(c.tx),
		VerifyPayment:   commands.NewVerifyPaymentCommandHandler(c.tx),
		OrderStatus:     commands.NewOrderStatusCommandHandler(c.tx),
		SubmitDelivery:  commands.NewSubmitDeliveryCommandHandler(c.tx),
		SendChatMessage: commands.NewSendChatMessageCommandHandler(c.tx),

		AuthenticateUser:       queries.NewAuthenticateUserQueryHandler(c.uowFactory),
		GetOrder:               queries.NewGetOrderQueryHandler(c.uowFactory),
		ListOrderMessages:      queries.NewListOrderMessagesQueryHandler(c.uowFactory),
		DownloadDigitalProduct: queries.NewDownloadDigitalProductQueryHandler(c.uowFactory),
		GetWorkerStats:         queries.NewGetWorkerStatsQueryHandler(c.gormDB),
	}
}

// Close releases the queue client, if one was opened.
func (c *CompositionRoot) Close() error {
	if c.queueClient != nil {
		return c.queueClient.Close()
	}
	return nil
}
