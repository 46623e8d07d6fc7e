// Package paymentrepo provides data transfer objects and mapping functions
// for payment intent persistence.
package paymentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment intents.
// The gateway reference is unique: one local record per provider intent.
type PaymentDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID       `gorm:"type:uuid;index"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status         string          `gorm:"index"`
	GatewayRef     string          `gorm:"uniqueIndex"`
	TransactionRef string
	RefundRef      string
	FailureReason  string
	CreatedAt      time.Time
}

// TableName specifies the database table name for payment intent entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment intent aggregate to its database representation.
func fromDomain(aggregate *payment.PaymentIntent) PaymentDTO {
	return PaymentDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		Amount:         aggregate.Amount(),
		Status:         aggregate.Status().String(),
		GatewayRef:     aggregate.GatewayRef(),
		TransactionRef: aggregate.TransactionRef(),
		RefundRef:      aggregate.RefundRef(),
		FailureReason:  aggregate.FailureReason(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment intent aggregate using
// RestorePaymentIntent.
func toDomain(dto PaymentDTO) (*payment.PaymentIntent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePaymentIntent(
		id, orderID, dto.Amount, status,
		dto.GatewayRef, dto.TransactionRef, dto.RefundRef, dto.FailureReason,
		dto.CreatedAt,
	)
}
