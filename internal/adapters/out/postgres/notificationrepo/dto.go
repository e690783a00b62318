// Package notificationrepo is the notification outbox table.
package notificationrepo

import (
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Kind        int       `gorm:"not null"`
	Status      int       `gorm:"index:idx_outbox_pending,priority:1;not null"`
	Attempts    int       `gorm:"not null;default:0"`
	LastError   string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index:idx_outbox_pending,priority:2;not null"`
	SentAt      *time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		RecipientID: n.RecipientID().Bytes(),
		OrderID:     n.OrderID().Bytes(),
		Kind:        int(n.Kind()),
		Status:      int(n.Status()),
		Attempts:    n.Attempts(),
		LastError:   n.LastError(),
		CreatedAt:   n.CreatedAt(),
		SentAt:      n.SentAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		recipientID,
		orderID,
		notification.Kind(dto.Kind),
		notification.Status(dto.Status),
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt,
		dto.SentAt,
	)
}
