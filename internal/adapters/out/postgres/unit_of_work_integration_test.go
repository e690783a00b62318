package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "kayakoyan/internal/adapters/out/postgres"
	"kayakoyan/internal/core/application/eventbus"
	"kayakoyan/internal/core/application/lifecycle"
	"kayakoyan/internal/core/application/notifications"
	"kayakoyan/internal/core/application/usecases/commands"
	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/delivery"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/notification"
	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/core/ports"
	"kayakoyan/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work, the transactor and
// the lifecycle handlers against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	tx        *commands.Transactor
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := eventbus.NewDispatcher(logger)
	lifecycle.NewObservers(notifications.ForUnitOfWork, logger).Register(dispatcher)
	suite.tx = commands.NewTransactor(suite.factory, dispatcher)
}

// SetupTest truncates every table so tests do not see each other's rows.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE users, listings, listing_images, orders, payments,
		deliveries, delivery_files, chat_messages, notifications`).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.PaymentRepository())
	suite.NotNil(uow2.NotificationRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	o := suite.newOrder(listing.Service, order.PendingPayment)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(uow.PullDomainEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PullsEventsOfTrackedAggregates() {
	ctx := context.Background()
	o := suite.newOrder(listing.Service, order.PaymentReceived)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.TransitionTo(order.InProgress))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))

	events := uow.PullDomainEvents()
	suite.Require().Len(events, 1)
	suite.Equal(order.StatusChangedEventName, events[0].EventName())
	suite.Empty(uow.PullDomainEvents())
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactor_PaymentFlow() {
	ctx := context.Background()
	o := suite.newOrder(listing.Service, order.PendingPayment)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	err := suite.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), payment.BankTransfer, o.TotalPrice(), "proof.png", "BT-77", time.Now().UTC())
		if err != nil {
			return err
		}
		return uow.PaymentRepository().Add(ctx, p)
	})
	suite.Require().NoError(err)
	suite.Equal(order.PaymentSubmitted, suite.status(o.ID()))

	err = suite.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		p, err := uow.PaymentRepository().GetLatestForOrder(ctx, o.ID())
		if err != nil {
			return err
		}
		if err = p.Verify(); err != nil {
			return err
		}
		return uow.PaymentRepository().Update(ctx, p)
	})
	suite.Require().NoError(err)
	suite.Equal(order.PaymentReceived, suite.status(o.ID()))

	suite.Equal([]notification.Kind{notification.PaymentSubmitted, notification.PaymentReceived}, suite.pendingKinds())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactor_DeliveryPostsNoticeOnce() {
	ctx := context.Background()
	o := suite.newOrder(listing.Service, order.InProgress)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	deliver := func() error {
		return suite.tx.Do(ctx, func(uow ports.UnitOfWork) error {
			d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), "Source files inside", []string{"a.ai", "b.pdf"}, time.Now().UTC())
			if err != nil {
				return err
			}
			return uow.DeliveryRepository().Add(ctx, d)
		})
	}

	suite.Require().NoError(deliver())
	suite.Require().ErrorIs(deliver(), errs.ErrObjectAlreadyExists)

	suite.Equal(order.Delivered, suite.status(o.ID()))
	msgs, err := suite.factory.Create().ChatRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(msgs, 1)
	suite.Equal(chat.DeliveryNotice, msgs[0].Type())
	suite.Equal("Source files inside", msgs[0].Body())

	d, err := suite.factory.Create().DeliveryRepository().GetByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal([]string{"a.ai", "b.pdf"}, d.Files())
	suite.Equal([]notification.Kind{notification.WorkDelivered}, suite.pendingKinds())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactor_AbortRollsBackTheTrigger() {
	ctx := context.Background()
	o := suite.newOrder(listing.Service, order.Cancelled)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	err := suite.tx.Do(ctx, func(uow ports.UnitOfWork) error {
		p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), payment.Maya, o.TotalPrice(), "proof.png", "", time.Now().UTC())
		if err != nil {
			return err
		}
		return uow.PaymentRepository().Add(ctx, p)
	})

	suite.Require().ErrorIs(err, errs.ErrIllegalTransition)
	_, err = suite.factory.Create().PaymentRepository().GetLatestForOrder(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(suite.pendingKinds())
}

// TestTransactor_ConcurrentCommandsHaveOneWinner races payment verification
// against cancellation. The row lock serialises them and the loser sees the
// new status.
func (suite *UnitOfWorkIntegrationTestSuite) TestTransactor_ConcurrentCommandsHaveOneWinner() {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		o := suite.newOrder(listing.Service, order.PaymentSubmitted)
		suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))
		p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), payment.GCash, o.TotalPrice(), "proof.png", "", time.Now().UTC())
		suite.Require().NoError(err)
		suite.Require().NoError(suite.factory.Create().PaymentRepository().Add(ctx, p))

		worker, err := user.NewActor(o.WorkerID(), user.Worker)
		suite.Require().NoError(err)
		verifyCmd, err := commands.NewVerifyPaymentCommand(worker, o.ID(), true)
		suite.Require().NoError(err)
		cancelCmd, err := commands.NewCancelOrderCommand(worker, o.ID())
		suite.Require().NoError(err)

		verify := commands.NewVerifyPaymentCommandHandler(suite.tx)
		cancel := commands.NewOrderStatusCommandHandler(suite.tx)

		results := make([]error, 2)
		var g errgroup.Group
		g.Go(func() error {
			results[0] = verify.Handle(ctx, verifyCmd)
			return nil
		})
		g.Go(func() error {
			results[1] = cancel.Handle(ctx, cancelCmd)
			return nil
		})
		suite.Require().NoError(g.Wait())

		suite.Require().True((results[0] == nil) != (results[1] == nil), "verify: %v, cancel: %v", results[0], results[1])
		if results[0] == nil {
			suite.ErrorIs(results[1], errs.ErrUnauthorizedAction)
			suite.Equal(order.PaymentReceived, suite.status(o.ID()))
		} else {
			suite.ErrorIs(results[0], errs.ErrUnauthorizedAction)
			suite.Equal(order.Cancelled, suite.status(o.ID()))
		}
	}
}

// TestTransactor_StaleReadLosesCompareAndSwap lets both writers read the
// order without a lock before either writes.
func (suite *UnitOfWorkIntegrationTestSuite) TestTransactor_StaleReadLosesCompareAndSwap() {
	ctx := context.Background()
	o := suite.newOrder(listing.Service, order.PaymentSubmitted)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	readA, readB := make(chan struct{}), make(chan struct{})
	move := func(target order.Status, mine, theirs chan struct{}) error {
		return suite.tx.Do(ctx, func(uow ports.UnitOfWork) error {
			loaded, err := uow.OrderRepository().Get(ctx, o.ID())
			close(mine)
			if err != nil {
				return err
			}
			<-theirs
			if err = loaded.TransitionTo(target); err != nil {
				return err
			}
			return uow.OrderRepository().Update(ctx, loaded)
		})
	}

	results := make([]error, 2)
	var g errgroup.Group
	g.Go(func() error {
		results[0] = move(order.PaymentReceived, readA, readB)
		return nil
	})
	g.Go(func() error {
		results[1] = move(order.Cancelled, readB, readA)
		return nil
	})
	suite.Require().NoError(g.Wait())

	suite.Require().True((results[0] == nil) != (results[1] == nil), "first: %v, second: %v", results[0], results[1])
	if results[0] == nil {
		suite.ErrorIs(results[1], errs.ErrConcurrentModification)
		suite.Equal(order.PaymentReceived, suite.status(o.ID()))
	} else {
		suite.ErrorIs(results[0], errs.ErrConcurrentModification)
		suite.Equal(order.Cancelled, suite.status(o.ID()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNotificationRepository_GetPendingOldestFirst() {
	ctx := context.Background()
	repo := suite.factory.Create().NotificationRepository()
	base := time.Now().UTC()
	for i, kind := range []notification.Kind{notification.OrderCompleted, notification.OrderPlaced} {
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kind, base.Add(-time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(ctx, n))
	}

	pending, err := repo.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(notification.OrderPlaced, pending[0].Kind())

	pending[0].MarkSent(time.Now().UTC())
	suite.Require().NoError(repo.Update(ctx, pending[0]))
	suite.Equal([]notification.Kind{notification.OrderCompleted}, suite.pendingKinds())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUserRepository_DuplicateEmail() {
	ctx := context.Background()
	repo := suite.factory.Create().UserRepository()
	first, err := user.NewUser(kernel.NewUUID(), "Ana", "ana@example.com", "secret123", user.Worker)
	suite.Require().NoError(err)
	second, err := user.NewUser(kernel.NewUUID(), "Ana Again", "ana@example.com", "secret456", user.Customer)
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(ctx, first))
	suite.Require().ErrorIs(repo.Add(ctx, second), errs.ErrObjectAlreadyExists)

	found, err := repo.GetByEmail(ctx, "ana@example.com")
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(first.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(listingType listing.Type, status order.Status) *order.Order {
	price, err := kernel.MoneyFromString("850")
	suite.Require().NoError(err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		listingType, price, status, time.Now().UTC(), nil,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) status(id kernel.UUID) order.Status {
	o, err := suite.factory.Create().OrderRepository().Get(context.Background(), id)
	suite.Require().NoError(err)
	return o.Status()
}

func (suite *UnitOfWorkIntegrationTestSuite) pendingKinds() []notification.Kind {
	pending, err := suite.factory.Create().NotificationRepository().GetPending(context.Background(), 100)
	suite.Require().NoError(err)
	kinds := make([]notification.Kind, 0, len(pending))
	for _, n := range pending {
		kinds = append(kinds, n.Kind())
	}
	return kinds
}
