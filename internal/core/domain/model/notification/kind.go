package notification

import (
	"fmt"

	"kayakoyan/internal/pkg/errs"
)

// Kind selects the message a recipient receives about an order.
type Kind int

const (
	UnknownKind Kind = iota
	OrderPlaced
	PaymentSubmitted
	PaymentReceived
	WorkDelivered
	OrderCompleted
)

type template struct {
	token   string
	subject string
	body    string
}

func templates() map[Kind]template {
	//nolint:exhaustive // UnknownKind has no template
	return map[Kind]template{
		OrderPlaced:      {"order_placed", "New order received", "A customer placed order %s. Wait for their proof of payment."},
		PaymentSubmitted: {"payment_submitted", "Payment submitted", "The customer submitted proof of payment for order %s. Please verify it."},
		PaymentReceived:  {"payment_received", "Payment received", "Your payment for order %s was verified."},
		WorkDelivered:    {"work_delivered", "Work delivered", "The worker delivered order %s. Please review and accept it."},
		OrderCompleted:   {"order_completed", "Order completed", "Order %s was completed."},
	}
}

func (k Kind) String() string {
	if t, ok := templates()[k]; ok {
		return t.token
	}
	return "unknown"
}

func (k Kind) Validate() error {
	if _, ok := templates()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("notification kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// Subject is the short title shown to the recipient.
func (k Kind) Subject() string {
	return templates()[k].subject
}

// Body renders the message for the given order reference.
func (k Kind) Body(orderRef string) string {
	t, ok := templates()[k]
	if !ok {
		return ""
	}
	return fmt.Sprintf(t.body, orderRef)
}
