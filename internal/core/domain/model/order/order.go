package order

import (
	"errors"
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOwnListing is returned when a worker tries to order their own listing.
	ErrOwnListing = errors.New("a worker cannot order their own listing")
)

// Order is the aggregate root of the marketplace. A customer buys a listing
// from the worker who owns it; the order then moves along the status graph
// through payment, work and delivery.
//
// Invariants:
//   - status only ever changes through TransitionTo (or MarkPaymentReceived),
//     which enforces the transition graph
//   - completedAt is stamped whenever the order reaches Completed
//   - the listing type and total price are snapshots taken at placement
type Order struct {
	kernel.EventRecorder

	id          kernel.UUID
	customerID  kernel.UUID
	workerID    kernel.UUID
	listingID   kernel.UUID
	listingType listing.Type
	totalPrice  kernel.Money
	status      Status
	createdAt   time.Time
	completedAt *time.Time

	// persistedStatus is the status the aggregate was loaded or last saved
	// with. Repositories use it as the compare-and-swap precondition.
	persistedStatus Status

	isConstructed bool
}

// NewOrder places an order for l on behalf of customerID. The order starts in
// PendingPayment with the listing price as total, and records Created.
func NewOrder(id, customerID kernel.UUID, l *listing.Listing, now time.Time) (*Order, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.IsOwnedBy(customerID) {
		return nil, ErrOwnListing
	}

	o, err := RestoreOrder(id, customerID, l.WorkerID(), l.ID(), l.Type(), l.Price(), PendingPayment, now, nil)
	if err != nil {
		return nil, err
	}
	o.Record(Created{OrderID: o.id, CustomerID: o.customerID, WorkerID: o.workerID})
	return o, nil
}

// RestoreOrder rebuilds an order from persistence without recording events.
func RestoreOrder(
	id, customerID, workerID, listingID kernel.UUID,
	listingType listing.Type,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		workerID.Validate(),
		listingID.Validate(),
		listingType.Validate(),
		totalPrice.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		workerID:        workerID,
		listingID:       listingID,
		listingType:     listingType,
		totalPrice:      totalPrice,
		status:          status,
		createdAt:       createdAt,
		completedAt:     completedAt,
		persistedStatus: status,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) CustomerID() kernel.UUID        { return o.customerID }
func (o *Order) WorkerID() kernel.UUID          { return o.workerID }
func (o *Order) ListingID() kernel.UUID         { return o.listingID }
func (o *Order) ListingType() listing.Type      { return o.listingType }
func (o *Order) TotalPrice() kernel.Money       { return o.totalPrice }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) CompletedAt() *time.Time        { return o.completedAt }
func (o *Order) PersistedStatus() Status        { return o.persistedStatus }
func (o *Order) IsCustomer(id kernel.UUID) bool { return o.customerID.IsEqual(id) }
func (o *Order) IsWorker(id kernel.UUID) bool   { return o.workerID.IsEqual(id) }

// TransitionTo moves the order to target.
//
// The move must be an edge of the transition graph; otherwise an
// *errs.IllegalTransitionError carrying (current, target) is returned and the
// order is left untouched. Reaching Completed stamps completedAt, whatever
// the previous status. Each successful call records exactly one
// StatusChanged event.
func (o *Order) TransitionTo(target Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(target) {
		return errs.NewIllegalTransitionError(o.status, target)
	}

	from := o.status
	o.status = target
	if target == Completed {
		now := time.Now().UTC()
		o.completedAt = &now
	}

	o.Record(StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		WorkerID:   o.workerID,
		From:       from,
		To:         target,
	})
	return nil
}

// MarkPaymentReceived is TransitionTo(PaymentReceived), used when a worker
// verifies a payment.
func (o *Order) MarkPaymentReceived() error {
	return o.TransitionTo(PaymentReceived)
}

// CanDownloadDigitalProduct reports whether the customer may fetch the
// purchased file: the listing must be a digital product and the payment
// must have been verified. Cancelled orders never qualify.
func (o *Order) CanDownloadDigitalProduct() bool {
	return o.listingType == listing.DigitalProduct && o.status.HasReachedPayment()
}

// MarkPersisted records that the current status has been written, making it
// the precondition for the next compare-and-swap update.
func (o *Order) MarkPersisted() {
	o.persistedStatus = o.status
}
