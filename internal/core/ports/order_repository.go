// Package ports defines the contracts between the core and its adapters:
// repositories bound to a unit of work, and the notification sinks.
package ports

import (
	"context"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the current status and completion time with a
	// compare-and-swap on the status the aggregate was loaded with. When
	// another writer changed the status first, it returns
	// errs.ErrConcurrentModification and writes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the end of
	// the current transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
