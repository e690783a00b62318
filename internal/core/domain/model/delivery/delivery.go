package delivery

import (
	"errors"
	"slices"
	"strings"
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

const CreatedEventName = "delivery.created"

// Created is recorded when the worker submits a delivery.
type Created struct {
	DeliveryID kernel.UUID
	OrderID    kernel.UUID
	Notes      string
}

func (Created) EventName() string { return CreatedEventName }

// Delivery is the worker's hand-over of a service order: optional notes and
// an ordered list of file references. It is created once and never changed.
type Delivery struct {
	kernel.EventRecorder

	id        kernel.UUID
	orderID   kernel.UUID
	notes     string
	files     []string
	createdAt time.Time

	isConstructed bool
}

// NewDelivery creates a delivery and records Created. Blank file
// references are dropped; order is preserved.
func NewDelivery(id, orderID kernel.UUID, notes string, files []string, now time.Time) (*Delivery, error) {
	d, err := RestoreDelivery(id, orderID, notes, files, now)
	if err != nil {
		return nil, err
	}
	d.Record(Created{DeliveryID: d.id, OrderID: d.orderID, Notes: d.notes})
	return d, nil
}

func RestoreDelivery(id, orderID kernel.UUID, notes string, files []string, createdAt time.Time) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	cleaned := make([]string, 0, len(files))
	for _, f := range files {
		if f = strings.TrimSpace(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}
	return &Delivery{
		id:            id,
		orderID:       orderID,
		notes:         strings.TrimSpace(notes),
		files:         cleaned,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID      { return d.id }
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }
func (d *Delivery) Notes() string        { return d.notes }
func (d *Delivery) HasNotes() bool       { return d.notes != "" }
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// Files returns a copy of the ordered file references.
func (d *Delivery) Files() []string {
	return slices.Clone(d.files)
}
