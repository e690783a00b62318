// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table. Listing type and price are the snapshot
// taken when the order was placed.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	WorkerID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	ListingID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ListingType string          `gorm:"type:varchar(32);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      int             `gorm:"index;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	CompletedAt *time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Bytes(),
		CustomerID:  o.CustomerID().Bytes(),
		WorkerID:    o.WorkerID().Bytes(),
		ListingID:   o.ListingID().Bytes(),
		ListingType: o.ListingType().String(),
		TotalPrice:  o.TotalPrice().Amount(),
		Status:      int(o.Status()),
		CreatedAt:   o.CreatedAt(),
		CompletedAt: o.CompletedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}
	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}
	listingType, err := listing.ParseType(dto.ListingType)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		workerID,
		listingID,
		listingType,
		price,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.CompletedAt,
	)
}
