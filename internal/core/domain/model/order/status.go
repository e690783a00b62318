package order

import (
	"fmt"

	"kayakoyan/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PendingPayment ──> PaymentSubmitted ──> PaymentReceived ──> InProgress ──> Delivered ──> Completed
//	      │                  │                    │                                           ▲
//	      └──> Cancelled <───┘                    └───────────────────────────────────────────┘
//	                                                   (digital products)
//
// Completed and Cancelled are final: nothing is reachable from them, and no
// status is reachable from itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status of a placed order.
	PendingPayment

	// PaymentSubmitted means the customer uploaded proof of payment and
	// the worker has to verify it.
	PaymentSubmitted

	// PaymentReceived means the worker verified the payment.
	PaymentReceived

	// InProgress means the worker started on a service order.
	InProgress

	// Delivered means the worker submitted the delivery and the customer
	// has to accept it.
	Delivered

	// Completed is final.
	Completed

	// Cancelled is final.
	Cancelled
)

// transitions is the authoritative transition graph.
var transitions = map[Status][]Status{
	PendingPayment:   {PaymentSubmitted, Cancelled},
	PaymentSubmitted: {PaymentReceived, Cancelled},
	PaymentReceived:  {InProgress, Completed},
	InProgress:       {Delivered},
	Delivered:        {Completed},
	Completed:        {},
	Cancelled:        {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		PendingPayment:   "PendingPayment",
		PaymentSubmitted: "PaymentSubmitted",
		PaymentReceived:  "PaymentReceived",
		InProgress:       "InProgress",
		Delivered:        "Delivered",
		Completed:        "Completed",
		Cancelled:        "Cancelled",
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{PendingPayment, PaymentSubmitted, PaymentReceived, InProgress, Delivered, Completed, Cancelled}
}

// Validate checks that s is one of the seven lifecycle states. Values read
// from the database or an API go through it before use.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// AllowedTransitions returns the statuses reachable from s in one step.
// Invalid statuses have none.
func (s Status) AllowedTransitions() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsActive reports whether the order is still moving through its lifecycle.
func (s Status) IsActive() bool {
	switch s {
	case PendingPayment, PaymentSubmitted, PaymentReceived, InProgress, Delivered:
		return true
	default:
		return false
	}
}

// IsFinal reports whether s is Completed or Cancelled.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// HasReachedPayment reports whether the worker has verified payment at some
// point, i.e. s is PaymentReceived or any later non-cancelled state.
func (s Status) HasReachedPayment() bool {
	switch s {
	case PaymentReceived, InProgress, Delivered, Completed:
		return true
	default:
		return false
	}
}
