package payment

import "kayakoyan/internal/core/domain/model/kernel"

const (
	CreatedEventName       = "payment.created"
	StatusChangedEventName = "payment.status_changed"
)

// Created is recorded when a customer submits proof of payment.
type Created struct {
	PaymentID kernel.UUID
	OrderID   kernel.UUID
}

func (Created) EventName() string { return CreatedEventName }

// StatusChanged is recorded only when the status value actually changes.
type StatusChanged struct {
	PaymentID kernel.UUID
	OrderID   kernel.UUID
	From      Status
	To        Status
}

func (StatusChanged) EventName() string { return StatusChangedEventName }
