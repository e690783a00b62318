// Package deliveryrepo persists deliveries and their files. An order has at
// most one delivery.
package deliveryrepo

import (
	"time"

	"kayakoyan/internal/core/domain/model/delivery"
	"kayakoyan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID         `gorm:"type:uuid;uniqueIndex;not null"`
	Notes     string            `gorm:"type:text"`
	CreatedAt time.Time         `gorm:"not null"`
	Files     []DeliveryFileDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

type DeliveryFileDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	Path       string    `gorm:"type:varchar(1024);not null"`
}

func (DeliveryFileDTO) TableName() string {
	return "delivery_files"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	id := d.ID().Bytes()
	files := make([]DeliveryFileDTO, 0, len(d.Files()))
	for i, path := range d.Files() {
		files = append(files, DeliveryFileDTO{DeliveryID: id, Position: i, Path: path})
	}

	return DeliveryDTO{
		ID:        id,
		OrderID:   d.OrderID().Bytes(),
		Notes:     d.Notes(),
		CreatedAt: d.CreatedAt(),
		Files:     files,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(dto.Files))
	for _, f := range dto.Files {
		files = append(files, f.Path)
	}

	return delivery.RestoreDelivery(id, orderID, dto.Notes, files, dto.CreatedAt)
}
