package lifecycle_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kayakoyan/internal/adapters/out/memory"
	"kayakoyan/internal/core/application/eventbus"
	"kayakoyan/internal/core/application/lifecycle"
	"kayakoyan/internal/core/application/notifications"
	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/delivery"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/notification"
	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/ports"
	"kayakoyan/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ObserversTestSuite struct {
	suite.Suite
	ctx        context.Context
	factory    *memory.UnitOfWorkFactory
	dispatcher *eventbus.Dispatcher
}

func TestObserversTestSuite(t *testing.T) {
	suite.Run(t, new(ObserversTestSuite))
}

func (s *ObserversTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.dispatcher = eventbus.NewDispatcher(logger)
	lifecycle.NewObservers(notifications.ForUnitOfWork, logger).Register(s.dispatcher)
}

// seedOrder stores an order already in status.
func (s *ObserversTestSuite) seedOrder(listingType listing.Type, status order.Status) *order.Order {
	price, err := kernel.MoneyFromString("1200")
	s.Require().NoError(err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		listingType, price, status, time.Now().UTC(), nil,
	)
	s.Require().NoError(err)
	uow := s.factory.Create()
	s.Require().NoError(uow.OrderRepository().Add(s.ctx, o))
	uow.PullDomainEvents()
	return o
}

// commit runs fn and the dispatch cycle in one transaction, the way the
// command transactor does.
func (s *ObserversTestSuite) commit(fn func(uow ports.UnitOfWork) error) error {
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	session := s.dispatcher.NewSession(uow)

	err := fn(uow)
	if err == nil {
		err = session.Flush(s.ctx)
	}
	if err != nil {
		session.Discard()
		s.Require().NoError(uow.Rollback(s.ctx))
		return err
	}
	s.Require().NoError(uow.Commit(s.ctx))
	session.AfterCommit(s.ctx)
	return nil
}

func (s *ObserversTestSuite) status(id kernel.UUID) order.Status {
	o, err := s.factory.Create().OrderRepository().Get(s.ctx, id)
	s.Require().NoError(err)
	return o.Status()
}

func (s *ObserversTestSuite) pending() []*notification.Notification {
	found, err := s.factory.Create().NotificationRepository().GetPending(s.ctx, 100)
	s.Require().NoError(err)
	return found
}

func (s *ObserversTestSuite) messages(orderID kernel.UUID) []*chat.Message {
	found, err := s.factory.Create().ChatRepository().ListByOrder(s.ctx, orderID)
	s.Require().NoError(err)
	return found
}

func (s *ObserversTestSuite) submitPayment(o *order.Order) *payment.Payment {
	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), payment.GCash, o.TotalPrice(), "proof.jpg", "", time.Now())
	s.Require().NoError(err)
	return p
}

func (s *ObserversTestSuite) Test_PaymentCreated_SubmitsPaymentAndNotifiesWorker() {
	o := s.seedOrder(listing.Service, order.PendingPayment)

	err := s.commit(func(uow ports.UnitOfWork) error {
		return uow.PaymentRepository().Add(s.ctx, s.submitPayment(o))
	})

	s.Require().NoError(err)
	s.Equal(order.PaymentSubmitted, s.status(o.ID()))
	pending := s.pending()
	s.Require().Len(pending, 1)
	s.Equal(notification.PaymentSubmitted, pending[0].Kind())
	s.True(pending[0].RecipientID().IsEqual(o.WorkerID()))
}

func (s *ObserversTestSuite) Test_PaymentCreated_OnPaidOrderAbortsEverything() {
	o := s.seedOrder(listing.Service, order.PaymentReceived)

	err := s.commit(func(uow ports.UnitOfWork) error {
		return uow.PaymentRepository().Add(s.ctx, s.submitPayment(o))
	})

	s.Require().ErrorIs(err, errs.ErrIllegalTransition)
	s.Equal(order.PaymentReceived, s.status(o.ID()))
	s.Empty(s.pending())
	_, err = s.factory.Create().PaymentRepository().GetLatestForOrder(s.ctx, o.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *ObserversTestSuite) Test_PaymentVerified_ReceivesPaymentAndNotifiesCustomer() {
	o := s.seedOrder(listing.Service, order.PaymentSubmitted)
	p := s.submitPayment(o)
	s.Require().NoError(s.factory.Create().PaymentRepository().Add(s.ctx, p))
	p.PullDomainEvents()

	err := s.commit(func(uow ports.UnitOfWork) error {
		s.Require().NoError(p.Verify())
		return uow.PaymentRepository().Update(s.ctx, p)
	})

	s.Require().NoError(err)
	s.Equal(order.PaymentReceived, s.status(o.ID()))
	pending := s.pending()
	s.Require().Len(pending, 1)
	s.Equal(notification.PaymentReceived, pending[0].Kind())
	s.True(pending[0].RecipientID().IsEqual(o.CustomerID()))
}

func (s *ObserversTestSuite) Test_PaymentRejected_LeavesOrderParked() {
	o := s.seedOrder(listing.Service, order.PaymentSubmitted)
	p := s.submitPayment(o)
	s.Require().NoError(s.factory.Create().PaymentRepository().Add(s.ctx, p))
	p.PullDomainEvents()

	err := s.commit(func(uow ports.UnitOfWork) error {
		s.Require().NoError(p.Reject())
		return uow.PaymentRepository().Update(s.ctx, p)
	})

	s.Require().NoError(err)
	s.Equal(order.PaymentSubmitted, s.status(o.ID()))
	s.Empty(s.pending())
}

func (s *ObserversTestSuite) Test_DeliveryCreated_DeliversAndPostsNotice() {
	o := s.seedOrder(listing.Service, order.InProgress)

	err := s.commit(func(uow ports.UnitOfWork) error {
		d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), "", []string{"final.zip"}, time.Now())
		s.Require().NoError(err)
		return uow.DeliveryRepository().Add(s.ctx, d)
	})

	s.Require().NoError(err)
	s.Equal(order.Delivered, s.status(o.ID()))

	msgs := s.messages(o.ID())
	s.Require().Len(msgs, 1)
	s.Equal(chat.DeliveryNotice, msgs[0].Type())
	s.Equal(chat.DefaultDeliveryNotice, msgs[0].Body())
	s.True(msgs[0].SenderID().IsEqual(o.WorkerID()))

	pending := s.pending()
	s.Require().Len(pending, 1)
	s.Equal(notification.WorkDelivered, pending[0].Kind())
	s.True(pending[0].RecipientID().IsEqual(o.CustomerID()))
}

func (s *ObserversTestSuite) Test_DeliveryCreated_RefusedForDigitalProducts() {
	o := s.seedOrder(listing.DigitalProduct, order.PaymentReceived)

	err := s.commit(func(uow ports.UnitOfWork) error {
		d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), "here", nil, time.Now())
		s.Require().NoError(err)
		return uow.DeliveryRepository().Add(s.ctx, d)
	})

	s.Require().ErrorIs(err, lifecycle.ErrDeliveryNotAllowed)
	s.Equal(order.PaymentReceived, s.status(o.ID()))
	s.Empty(s.messages(o.ID()))
}

func (s *ObserversTestSuite) Test_DeliveryCreated_IllegalTransitionPostsNothing() {
	o := s.seedOrder(listing.Service, order.PendingPayment)

	err := s.commit(func(uow ports.UnitOfWork) error {
		d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), "early", nil, time.Now())
		s.Require().NoError(err)
		return uow.DeliveryRepository().Add(s.ctx, d)
	})

	s.Require().ErrorIs(err, errs.ErrIllegalTransition)
	s.Equal(order.PendingPayment, s.status(o.ID()))
	s.Empty(s.messages(o.ID()))
	_, err = s.factory.Create().DeliveryRepository().GetByOrder(s.ctx, o.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *ObserversTestSuite) Test_OrderCreated_NotifiesWorkerAfterCommit() {
	price, err := kernel.MoneyFromString("300")
	s.Require().NoError(err)
	l, err := listing.NewListing(kernel.NewUUID(), kernel.NewUUID(), listing.Service, "Resume review", "", price, nil, "")
	s.Require().NoError(err)

	err = s.commit(func(uow ports.UnitOfWork) error {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), l, time.Now())
		s.Require().NoError(err)
		return uow.OrderRepository().Add(s.ctx, o)
	})

	s.Require().NoError(err)
	pending := s.pending()
	s.Require().Len(pending, 1)
	s.Equal(notification.OrderPlaced, pending[0].Kind())
	s.True(pending[0].RecipientID().IsEqual(l.WorkerID()))
}

func (s *ObserversTestSuite) Test_OrderCompleted_NotifiesWorker() {
	o := s.seedOrder(listing.Service, order.Delivered)

	err := s.commit(func(uow ports.UnitOfWork) error {
		loaded, err := uow.OrderRepository().GetForUpdate(s.ctx, o.ID())
		s.Require().NoError(err)
		s.Require().NoError(loaded.TransitionTo(order.Completed))
		return uow.OrderRepository().Update(s.ctx, loaded)
	})

	s.Require().NoError(err)
	pending := s.pending()
	s.Require().Len(pending, 1)
	s.Equal(notification.OrderCompleted, pending[0].Kind())
	s.True(pending[0].RecipientID().IsEqual(o.WorkerID()))
}

func (s *ObserversTestSuite) Test_OtherTransitions_NotifyNobody() {
	o := s.seedOrder(listing.Service, order.PaymentReceived)

	err := s.commit(func(uow ports.UnitOfWork) error {
		loaded, err := uow.OrderRepository().GetForUpdate(s.ctx, o.ID())
		s.Require().NoError(err)
		s.Require().NoError(loaded.TransitionTo(order.InProgress))
		return uow.OrderRepository().Update(s.ctx, loaded)
	})

	s.Require().NoError(err)
	s.Empty(s.pending())
}
