package memory

import (
	"context"
	"errors"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/ports"
)

var ErrNoTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

type UnitOfWork struct {
	store    *Store
	active   bool
	snapshot tables
	tracked  []kernel.EventSource
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.store.mu.Lock()
	uow.snapshot = uow.store.data.clone()
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.active = false
	uow.snapshot = tables{}
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.store.data = uow.snapshot
	uow.active = false
	uow.snapshot = tables{}
	uow.tracked = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) PullDomainEvents() []kernel.DomainEvent {
	var events []kernel.DomainEvent
	for _, source := range uow.tracked {
		events = append(events, source.PullDomainEvents()...)
	}
	return events
}

func (uow *UnitOfWork) track(source kernel.EventSource) {
	uow.tracked = append(uow.tracked, source)
}

// with runs fn against the store data, taking the lock unless the unit of
// work already holds it.
func (uow *UnitOfWork) with(fn func(data *tables) error) error {
	if !uow.active {
		uow.store.mu.Lock()
		defer uow.store.mu.Unlock()
	}
	return fn(&uow.store.data)
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderRepository{uow: uow}
}

func (uow *UnitOfWork) ListingRepository() ports.ListingRepository {
	return listingRepository{uow: uow}
}

func (uow *UnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentRepository{uow: uow}
}

func (uow *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryRepository{uow: uow}
}

func (uow *UnitOfWork) ChatRepository() ports.ChatRepository {
	return chatRepository{uow: uow}
}

func (uow *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationRepository{uow: uow}
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return userRepository{uow: uow}
}
