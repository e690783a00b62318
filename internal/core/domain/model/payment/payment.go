package payment

import (
	"errors"
	"strings"
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")

// Payment is a customer's proof of a manual transfer for an order. It is
// never deleted; the latest payment of an order is its current one.
type Payment struct {
	kernel.EventRecorder

	id              kernel.UUID
	orderID         kernel.UUID
	method          Method
	amount          kernel.Money
	proofPath       string
	referenceNumber string
	status          Status
	createdAt       time.Time
	reviewedAt      *time.Time

	isConstructed bool
}

// NewPayment records a Pending payment and the Created event.
func NewPayment(
	id, orderID kernel.UUID,
	method Method,
	amount kernel.Money,
	proofPath, referenceNumber string,
	now time.Time,
) (*Payment, error) {
	if strings.TrimSpace(proofPath) == "" {
		return nil, errs.NewValueIsRequiredError("proof of payment")
	}
	p, err := RestorePayment(id, orderID, method, amount, proofPath, referenceNumber, Pending, now, nil)
	if err != nil {
		return nil, err
	}
	p.Record(Created{PaymentID: p.id, OrderID: p.orderID})
	return p, nil
}

func RestorePayment(
	id, orderID kernel.UUID,
	method Method,
	amount kernel.Money,
	proofPath, referenceNumber string,
	status Status,
	createdAt time.Time,
	reviewedAt *time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		method.Validate(),
		amount.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Payment{
		id:              id,
		orderID:         orderID,
		method:          method,
		amount:          amount,
		proofPath:       strings.TrimSpace(proofPath),
		referenceNumber: strings.TrimSpace(referenceNumber),
		status:          status,
		createdAt:       createdAt,
		reviewedAt:      reviewedAt,
		isConstructed:   true,
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID         { return p.id }
func (p *Payment) OrderID() kernel.UUID    { return p.orderID }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) Amount() kernel.Money    { return p.amount }
func (p *Payment) ProofPath() string       { return p.proofPath }
func (p *Payment) ReferenceNumber() string { return p.referenceNumber }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) ReviewedAt() *time.Time  { return p.reviewedAt }

// ChangeStatus applies a worker's review.
//
// Setting the status it already has is a no-op and records nothing, so a
// repeated save never re-triggers downstream handlers. Otherwise only
// Pending -> Verified and Pending -> Rejected are allowed.
func (p *Payment) ChangeStatus(target Status) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if target == p.status {
		return nil
	}
	if p.status != Pending || !target.IsTerminal() {
		return errs.NewIllegalTransitionError(p.status, target)
	}

	from := p.status
	now := time.Now().UTC()
	p.status = target
	p.reviewedAt = &now
	p.Record(StatusChanged{PaymentID: p.id, OrderID: p.orderID, From: from, To: target})
	return nil
}

func (p *Payment) Verify() error {
	return p.ChangeStatus(Verified)
}

func (p *Payment) Reject() error {
	return p.ChangeStatus(Rejected)
}
