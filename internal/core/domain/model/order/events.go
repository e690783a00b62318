package order

import "kayakoyan/internal/core/domain/model/kernel"

const (
	CreatedEventName       = "order.created"
	StatusChangedEventName = "order.status_changed"
)

// Created is recorded when a customer places an order.
type Created struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	WorkerID   kernel.UUID
}

func (Created) EventName() string { return CreatedEventName }

// StatusChanged is recorded once per successful transition.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	WorkerID   kernel.UUID
	From       Status
	To         Status
}

func (StatusChanged) EventName() string { return StatusChangedEventName }
