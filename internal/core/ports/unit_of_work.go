package ports

import (
	"context"

	"kayakoyan/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained from it share the transaction started by Begin; once
// the transaction is committed or rolled back they fall back to the plain
// connection.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// PullDomainEvents returns the events recorded by every aggregate added
	// or updated through this unit of work since the last call.
	PullDomainEvents() []kernel.DomainEvent

	OrderRepository() OrderRepository
	ListingRepository() ListingRepository
	PaymentRepository() PaymentRepository
	DeliveryRepository() DeliveryRepository
	ChatRepository() ChatRepository
	NotificationRepository() NotificationRepository
	UserRepository() UserRepository
}
