package ports

import (
	"context"

	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/delivery"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/notification"
	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/domain/model/user"
)

type ListingRepository interface {
	Add(ctx context.Context, aggregate *listing.Listing) error
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)
}

// PaymentRepository stores payments. Payments are never deleted.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error
	Update(ctx context.Context, aggregate *payment.Payment) error

	// GetLatestForOrder returns the current (most recent) payment of an order.
	GetLatestForOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}

type DeliveryRepository interface {
	// Add fails when the order already has a delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}

type ChatRepository interface {
	Add(ctx context.Context, message *chat.Message) error

	// ListByOrder returns the order's messages, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*chat.Message, error)
}

// NotificationRepository is the notification outbox.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error
	Update(ctx context.Context, n *notification.Notification) error

	// GetPending returns up to limit pending entries, oldest first, locked
	// so that concurrent relays skip them.
	GetPending(ctx context.Context, limit int) ([]*notification.Notification, error)
}

type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
