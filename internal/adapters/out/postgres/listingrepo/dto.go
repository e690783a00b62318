// Package listingrepo persists listings and their ordered images.
package listingrepo

import (
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ListingDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	WorkerID    uuid.UUID         `gorm:"type:uuid;index;not null"`
	Type        string            `gorm:"type:varchar(32);not null"`
	Title       string            `gorm:"type:varchar(255);not null"`
	Description string            `gorm:"type:text"`
	Price       decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	FilePath    string            `gorm:"type:varchar(1024)"`
	Images      []ListingImageDTO `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

func (ListingDTO) TableName() string {
	return "listings"
}

// ListingImageDTO is one image reference; Position keeps upload order.
type ListingImageDTO struct {
	ListingID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	Path      string    `gorm:"type:varchar(1024);not null"`
}

func (ListingImageDTO) TableName() string {
	return "listing_images"
}

func fromDomain(l *listing.Listing) ListingDTO {
	id := l.ID().Bytes()
	images := make([]ListingImageDTO, 0, len(l.Images()))
	for i, path := range l.Images() {
		images = append(images, ListingImageDTO{ListingID: id, Position: i, Path: path})
	}

	return ListingDTO{
		ID:          id,
		WorkerID:    l.WorkerID().Bytes(),
		Type:        l.Type().String(),
		Title:       l.Title(),
		Description: l.Description(),
		Price:       l.Price().Amount(),
		FilePath:    l.FilePath(),
		Images:      images,
	}
}

func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}
	listingType, err := listing.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(dto.Images))
	for _, img := range dto.Images {
		images = append(images, img.Path)
	}

	return listing.RestoreListing(id, workerID, listingType, dto.Title, dto.Description, price, images, dto.FilePath)
}
