package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/delivery"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/notification"
	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/errs"
)

type orderRepository struct{ uow *UnitOfWork }

func (r orderRepository) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	err := r.uow.with(func(data *tables) error {
		if _, ok := data.orders[o.ID()]; ok {
			return fmt.Errorf("%w: order %s", errs.ErrObjectAlreadyExists, o.ID())
		}
		data.orders[o.ID()] = copyOrder(o)
		return nil
	})
	if err != nil {
		return err
	}
	o.MarkPersisted()
	r.uow.track(o)
	return nil
}

func (r orderRepository) Update(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	err := r.uow.with(func(data *tables) error {
		stored, ok := data.orders[o.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("order", o.ID().String())
		}
		if stored.Status() != o.PersistedStatus() {
			return fmt.Errorf("%w: order %s is no longer %s",
				errs.ErrConcurrentModification, o.ID(), o.PersistedStatus())
		}
		data.orders[o.ID()] = copyOrder(o)
		return nil
	})
	if err != nil {
		return err
	}
	o.MarkPersisted()
	r.uow.track(o)
	return nil
}

func (r orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var found *order.Order
	err := r.uow.with(func(data *tables) error {
		stored, ok := data.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		found = copyOrder(stored)
		return nil
	})
	return found, err
}

// GetForUpdate needs no extra locking: transactions already run one at a
// time.
func (r orderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

type listingRepository struct{ uow *UnitOfWork }

func (r listingRepository) Add(_ context.Context, l *listing.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(data *tables) error {
		if _, ok := data.listings[l.ID()]; ok {
			return fmt.Errorf("%w: listing %s", errs.ErrObjectAlreadyExists, l.ID())
		}
		data.listings[l.ID()] = copyListing(l)
		return nil
	})
}

func (r listingRepository) Get(_ context.Context, id kernel.UUID) (*listing.Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var found *listing.Listing
	err := r.uow.with(func(data *tables) error {
		stored, ok := data.listings[id]
		if !ok {
			return errs.NewObjectNotFoundError("listing", id.String())
		}
		found = copyListing(stored)
		return nil
	})
	return found, err
}

type paymentRepository struct{ uow *UnitOfWork }

func (r paymentRepository) Add(_ context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := r.uow.with(func(data *tables) error {
		data.payments = append(data.payments, copyPayment(p))
		return nil
	}); err != nil {
		return err
	}
	r.uow.track(p)
	return nil
}

func (r paymentRepository) Update(_ context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	err := r.uow.with(func(data *tables) error {
		i := slices.IndexFunc(data.payments, func(stored *payment.Payment) bool {
			return stored.ID().IsEqual(p.ID())
		})
		if i < 0 {
			return errs.NewObjectNotFoundError("payment", p.ID().String())
		}
		data.payments[i] = copyPayment(p)
		return nil
	})
	if err != nil {
		return err
	}
	r.uow.track(p)
	return nil
}

func (r paymentRepository) GetLatestForOrder(_ context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	var found *payment.Payment
	err := r.uow.with(func(data *tables) error {
		for i := len(data.payments) - 1; i >= 0; i-- {
			if data.payments[i].OrderID().IsEqual(orderID) {
				found = copyPayment(data.payments[i])
				return nil
			}
		}
		return errs.NewObjectNotFoundError("payment for order", orderID.String())
	})
	return found, err
}

type deliveryRepository struct{ uow *UnitOfWork }

func (r deliveryRepository) Add(_ context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := r.uow.with(func(data *tables) error {
		if _, ok := data.deliveries[d.OrderID()]; ok {
			return fmt.Errorf("%w: delivery for order %s", errs.ErrObjectAlreadyExists, d.OrderID())
		}
		data.deliveries[d.OrderID()] = copyDelivery(d)
		return nil
	}); err != nil {
		return err
	}
	r.uow.track(d)
	return nil
}

func (r deliveryRepository) GetByOrder(_ context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	var found *delivery.Delivery
	err := r.uow.with(func(data *tables) error {
		stored, ok := data.deliveries[orderID]
		if !ok {
			return errs.NewObjectNotFoundError("delivery for order", orderID.String())
		}
		found = copyDelivery(stored)
		return nil
	})
	return found, err
}

type chatRepository struct{ uow *UnitOfWork }

func (r chatRepository) Add(_ context.Context, m *chat.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(data *tables) error {
		data.messages = append(data.messages, copyMessage(m))
		return nil
	})
}

func (r chatRepository) ListByOrder(_ context.Context, orderID kernel.UUID) ([]*chat.Message, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	var found []*chat.Message
	err := r.uow.with(func(data *tables) error {
		for _, m := range data.messages {
			if m.OrderID().IsEqual(orderID) {
				found = append(found, copyMessage(m))
			}
		}
		return nil
	})
	return found, err
}

type notificationRepository struct{ uow *UnitOfWork }

func (r notificationRepository) Add(_ context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(data *tables) error {
		data.notifications = append(data.notifications, copyNotification(n))
		return nil
	})
}

func (r notificationRepository) Update(_ context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(data *tables) error {
		i := slices.IndexFunc(data.notifications, func(stored *notification.Notification) bool {
			return stored.ID().IsEqual(n.ID())
		})
		if i < 0 {
			return errs.NewObjectNotFoundError("notification", n.ID().String())
		}
		data.notifications[i] = copyNotification(n)
		return nil
	})
}

func (r notificationRepository) GetPending(_ context.Context, limit int) ([]*notification.Notification, error) {
	var found []*notification.Notification
	err := r.uow.with(func(data *tables) error {
		for _, n := range data.notifications {
			if len(found) == limit {
				break
			}
			if n.Status() == notification.Pending {
				found = append(found, copyNotification(n))
			}
		}
		return nil
	})
	return found, err
}

type userRepository struct{ uow *UnitOfWork }

func (r userRepository) Add(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(data *tables) error {
		for _, stored := range data.users {
			if stored.Email() == u.Email() {
				return fmt.Errorf("%w: user %s", errs.ErrObjectAlreadyExists, u.Email())
			}
		}
		data.users[u.ID()] = copyUser(u)
		return nil
	})
}

func (r userRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var found *user.User
	err := r.uow.with(func(data *tables) error {
		for _, stored := range data.users {
			if stored.Email() == email {
				found = copyUser(stored)
				return nil
			}
		}
		return errs.NewObjectNotFoundError("user", email)
	})
	return found, err
}
