// Package chatrepo persists order chat messages.
package chatrepo

import (
	"time"

	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index:idx_chat_order_created,priority:1;not null"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null"`
	Type       string    `gorm:"type:varchar(32);not null"`
	Body       string    `gorm:"type:text"`
	Attachment string    `gorm:"type:varchar(1024)"`
	CreatedAt  time.Time `gorm:"index:idx_chat_order_created,priority:2;not null"`
}

func (MessageDTO) TableName() string {
	return "chat_messages"
}

func fromDomain(m *chat.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID().Bytes(),
		OrderID:    m.OrderID().Bytes(),
		SenderID:   m.SenderID().Bytes(),
		Type:       m.Type().String(),
		Body:       m.Body(),
		Attachment: m.Attachment(),
		CreatedAt:  m.CreatedAt(),
	}
}

func toDomain(dto MessageDTO) (*chat.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	messageType, err := chat.ParseMessageType(dto.Type)
	if err != nil {
		return nil, err
	}

	return chat.RestoreMessage(id, orderID, senderID, messageType, dto.Body, dto.Attachment, dto.CreatedAt)
}
