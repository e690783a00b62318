// Package lifecycle wires the order lifecycle side effects onto the event
// dispatcher:
//
//	payment.created         -> order PaymentSubmitted, notify worker       (abort)
//	payment.status_changed  -> Verified: order PaymentReceived, notify      (abort)
//	                           customer; Rejected: nothing
//	order.created           -> notify worker OrderPlaced                   (best effort)
//	order.status_changed    -> Delivered: notify customer WorkDelivered;   (best effort)
//	                           Completed: notify worker OrderCompleted
//	delivery.created        -> order Delivered, post delivery notice       (abort)
//
// In every abort row the transition comes first, so a failed transition
// prevents the notification or chat message.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kayakoyan/internal/core/application/eventbus"
	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/delivery"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/notification"
	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/ports"
)

var ErrDeliveryNotAllowed = errors.New("deliveries are only accepted for service orders")

// NotifierFactory returns the notifier bound to a unit of work.
type NotifierFactory func(uow ports.UnitOfWork) ports.Notifier

// Observers holds the lifecycle handlers.
type Observers struct {
	notifierFor NotifierFactory
	logger      *slog.Logger
}

func NewObservers(notifierFor NotifierFactory, logger *slog.Logger) *Observers {
	return &Observers{
		notifierFor: notifierFor,
		logger:      logger.With("component", "order_lifecycle"),
	}
}

// Register subscribes the handlers. The subscription order is the dispatch
// order.
func (o *Observers) Register(d *eventbus.Dispatcher) {
	d.Subscribe(payment.CreatedEventName, "submit_order_payment", eventbus.Abort, o.onPaymentCreated)
	d.Subscribe(payment.StatusChangedEventName, "receive_order_payment", eventbus.Abort, o.onPaymentStatusChanged)
	d.Subscribe(order.CreatedEventName, "notify_order_placed", eventbus.BestEffort, o.onOrderCreated)
	d.Subscribe(order.StatusChangedEventName, "notify_order_status", eventbus.BestEffort, o.onOrderStatusChanged)
	d.Subscribe(delivery.CreatedEventName, "deliver_order", eventbus.Abort, o.onDeliveryCreated)
}

func unexpectedEvent(event kernel.DomainEvent) error {
	return fmt.Errorf("unexpected event %T for %s", event, event.EventName())
}

// transition locks the order, moves it to target and saves it.
func transition(ctx context.Context, uow ports.UnitOfWork, orderID kernel.UUID, target order.Status) (*order.Order, error) {
	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if target == order.PaymentReceived {
		err = o.MarkPaymentReceived()
	} else {
		err = o.TransitionTo(target)
	}
	if err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Observers) onPaymentCreated(ctx context.Context, uow ports.UnitOfWork, event kernel.DomainEvent) error {
	e, ok := event.(payment.Created)
	if !ok {
		return unexpectedEvent(event)
	}

	ord, err := transition(ctx, uow, e.OrderID, order.PaymentSubmitted)
	if err != nil {
		return err
	}
	return o.notifierFor(uow).Notify(ctx, ord.WorkerID(), notification.PaymentSubmitted, ord.ID())
}

func (o *Observers) onPaymentStatusChanged(ctx context.Context, uow ports.UnitOfWork, event kernel.DomainEvent) error {
	e, ok := event.(payment.StatusChanged)
	if !ok {
		return unexpectedEvent(event)
	}

	switch e.To {
	case payment.Verified:
		ord, err := transition(ctx, uow, e.OrderID, order.PaymentReceived)
		if err != nil {
			return err
		}
		return o.notifierFor(uow).Notify(ctx, ord.CustomerID(), notification.PaymentReceived, ord.ID())
	case payment.Rejected:
		// The order stays in PaymentSubmitted until the worker cancels it.
		o.logger.InfoContext(ctx, "payment rejected", "payment_id", e.PaymentID.String(), "order_id", e.OrderID.String())
		return nil
	default:
		return nil
	}
}

func (o *Observers) onOrderCreated(ctx context.Context, uow ports.UnitOfWork, event kernel.DomainEvent) error {
	e, ok := event.(order.Created)
	if !ok {
		return unexpectedEvent(event)
	}
	return o.notifierFor(uow).Notify(ctx, e.WorkerID, notification.OrderPlaced, e.OrderID)
}

func (o *Observers) onOrderStatusChanged(ctx context.Context, uow ports.UnitOfWork, event kernel.DomainEvent) error {
	e, ok := event.(order.StatusChanged)
	if !ok {
		return unexpectedEvent(event)
	}

	//nolint:exhaustive // only two statuses notify
	switch e.To {
	case order.Delivered:
		return o.notifierFor(uow).Notify(ctx, e.CustomerID, notification.WorkDelivered, e.OrderID)
	case order.Completed:
		return o.notifierFor(uow).Notify(ctx, e.WorkerID, notification.OrderCompleted, e.OrderID)
	default:
		return nil
	}
}

func (o *Observers) onDeliveryCreated(ctx context.Context, uow ports.UnitOfWork, event kernel.DomainEvent) error {
	e, ok := event.(delivery.Created)
	if !ok {
		return unexpectedEvent(event)
	}

	repo := uow.OrderRepository()
	ord, err := repo.GetForUpdate(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if ord.ListingType() != listing.Service {
		return ErrDeliveryNotAllowed
	}
	if err = ord.TransitionTo(order.Delivered); err != nil {
		return err
	}
	if err = repo.Update(ctx, ord); err != nil {
		return err
	}

	notice, err := chat.NewDeliveryNotice(kernel.NewUUID(), ord.ID(), ord.WorkerID(), e.Notes, time.Now().UTC())
	if err != nil {
		return err
	}
	return uow.ChatRepository().Add(ctx, notice)
}
