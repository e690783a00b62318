// Package paymentrepo persists payments.
package paymentrepo

import (
	"time"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	Method          string          `gorm:"type:varchar(32);not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ProofPath       string          `gorm:"type:varchar(1024);not null"`
	ReferenceNumber string          `gorm:"type:varchar(255)"`
	Status          int             `gorm:"not null"`
	CreatedAt       time.Time       `gorm:"index;not null"`
	ReviewedAt      *time.Time
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:              p.ID().Bytes(),
		OrderID:         p.OrderID().Bytes(),
		Method:          p.Method().String(),
		Amount:          p.Amount().Amount(),
		ProofPath:       p.ProofPath(),
		ReferenceNumber: p.ReferenceNumber(),
		Status:          int(p.Status()),
		CreatedAt:       p.CreatedAt(),
		ReviewedAt:      p.ReviewedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	method, err := payment.ParseMethod(dto.Method)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		method,
		amount,
		dto.ProofPath,
		dto.ReferenceNumber,
		payment.Status(dto.Status),
		dto.CreatedAt,
		dto.ReviewedAt,
	)
}
