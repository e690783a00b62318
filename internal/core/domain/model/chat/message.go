package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/pkg/errs"
)

var (
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage, NewDeliveryNotice or RestoreMessage")
	ErrSystemMessageType       = errors.New("delivery notices are posted by the system only")
)

// DefaultDeliveryNotice is the body of the delivery notice when the worker
// left no notes.
const DefaultDeliveryNotice = "Your order has been delivered. Please review the delivery and accept the order."

// MessageType tags a chat message.
type MessageType int

const (
	UnknownType MessageType = iota
	Text
	File
	DeliveryNotice
)

func (t MessageType) String() string {
	switch t {
	case Text:
		return "text"
	case File:
		return "file"
	case DeliveryNotice:
		return "delivery_notice"
	default:
		return "unknown"
	}
}

func ParseMessageType(s string) (MessageType, error) {
	for _, t := range []MessageType{Text, File, DeliveryNotice} {
		if t.String() == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("message type", fmt.Errorf("%q is not a message type", s))
}

func (t MessageType) Validate() error {
	if t < Text || t > DeliveryNotice {
		return errs.NewValueIsInvalidErrorWithCause("message type", fmt.Errorf("%d is not a valid message type", t))
	}
	return nil
}

// Message is a chat entry on an order, visible to its customer and worker.
type Message struct {
	id          kernel.UUID
	orderID     kernel.UUID
	senderID    kernel.UUID
	body        string
	attachment  string
	messageType MessageType
	createdAt   time.Time

	isConstructed bool
}

// NewMessage builds a message typed by a user. Text needs a body, File an
// attachment; DeliveryNotice is refused.
func NewMessage(id, orderID, senderID kernel.UUID, messageType MessageType, body, attachment string, now time.Time) (*Message, error) {
	switch messageType {
	case DeliveryNotice:
		return nil, ErrSystemMessageType
	case Text:
		if strings.TrimSpace(body) == "" {
			return nil, errs.NewValueIsRequiredError("message body")
		}
	case File:
		if strings.TrimSpace(attachment) == "" {
			return nil, errs.NewValueIsRequiredError("attachment")
		}
	case UnknownType:
		// rejected by RestoreMessage
	}
	return RestoreMessage(id, orderID, senderID, messageType, body, attachment, now)
}

// NewDeliveryNotice builds the system message posted when a delivery is
// submitted. An empty body falls back to DefaultDeliveryNotice.
func NewDeliveryNotice(id, orderID, workerID kernel.UUID, notes string, now time.Time) (*Message, error) {
	body := strings.TrimSpace(notes)
	if body == "" {
		body = DefaultDeliveryNotice
	}
	return RestoreMessage(id, orderID, workerID, DeliveryNotice, body, "", now)
}

func RestoreMessage(
	id, orderID, senderID kernel.UUID,
	messageType MessageType,
	body, attachment string,
	createdAt time.Time,
) (*Message, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), senderID.Validate(), messageType.Validate()); err != nil {
		return nil, err
	}
	return &Message{
		id:            id,
		orderID:       orderID,
		senderID:      senderID,
		body:          strings.TrimSpace(body),
		attachment:    strings.TrimSpace(attachment),
		messageType:   messageType,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID       { return m.id }
func (m *Message) OrderID() kernel.UUID  { return m.orderID }
func (m *Message) SenderID() kernel.UUID { return m.senderID }
func (m *Message) Body() string          { return m.body }
func (m *Message) Attachment() string    { return m.attachment }
func (m *Message) Type() MessageType     { return m.messageType }
func (m *Message) CreatedAt() time.Time  { return m.createdAt }
