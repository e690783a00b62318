package notification

import (
	"errors"
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Status of an outbox entry.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Sent
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Notification is an outbox entry: a message for one recipient about one
// order, written in the same transaction as the change it reports and handed
// to the transport later by the relay job.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	orderID     kernel.UUID
	kind        Kind
	status      Status
	attempts    int
	lastError   string
	createdAt   time.Time
	sentAt      *time.Time

	isConstructed bool
}

func NewNotification(id, recipientID, orderID kernel.UUID, kind Kind, now time.Time) (*Notification, error) {
	return RestoreNotification(id, recipientID, orderID, kind, Pending, 0, "", now, nil)
}

func RestoreNotification(
	id, recipientID, orderID kernel.UUID,
	kind Kind,
	status Status,
	attempts int,
	lastError string,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), recipientID.Validate(), orderID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	return &Notification{
		id:            id,
		recipientID:   recipientID,
		orderID:       orderID,
		kind:          kind,
		status:        status,
		attempts:      attempts,
		lastError:     lastError,
		createdAt:     createdAt,
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }
func (n *Notification) OrderID() kernel.UUID     { return n.orderID }
func (n *Notification) Kind() Kind               { return n.kind }
func (n *Notification) Status() Status           { return n.status }
func (n *Notification) Attempts() int            { return n.attempts }
func (n *Notification) LastError() string        { return n.lastError }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
func (n *Notification) SentAt() *time.Time       { return n.sentAt }

// MarkSent records a successful hand-over to the transport.
func (n *Notification) MarkSent(now time.Time) {
	n.attempts++
	n.status = Sent
	n.lastError = ""
	n.sentAt = &now
}

// MarkAttemptFailed records a failed hand-over. The entry stays Pending
// until maxAttempts is reached, then becomes Failed.
func (n *Notification) MarkAttemptFailed(cause error, maxAttempts int) {
	n.attempts++
	n.lastError = cause.Error()
	if n.attempts >= maxAttempts {
		n.status = Failed
	}
}
