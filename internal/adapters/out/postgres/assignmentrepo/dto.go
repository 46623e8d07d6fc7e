// Package assignmentrepo provides data transfer objects and mapping functions
// for delivery assignment persistence.
package assignmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting delivery
// assignments. The unique index on order_id enforces one assignment per
// order at the storage level.
type AssignmentDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PartnerID            uuid.UUID `gorm:"type:uuid;index"`
	Status               string    `gorm:"index"`
	PickupAddress        string
	DeliveryAddress      string
	DeliveryInstructions string
	AssignedAt           time.Time
	PickedUpAt           *time.Time
	DeliveredAt          *time.Time
	FailureReason        string
	CustomerRating       *int
	CustomerFeedback     string
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(aggregate *assignment.DeliveryAssignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                   aggregate.ID().Bytes(),
		OrderID:              aggregate.OrderID().Bytes(),
		PartnerID:            aggregate.PartnerID().Bytes(),
		Status:               aggregate.Status().String(),
		PickupAddress:        aggregate.PickupAddress(),
		DeliveryAddress:      aggregate.DeliveryAddress(),
		DeliveryInstructions: aggregate.DeliveryInstructions(),
		AssignedAt:           aggregate.AssignedAt(),
		PickedUpAt:           aggregate.PickedUpAt(),
		DeliveredAt:          aggregate.DeliveredAt(),
		FailureReason:        aggregate.FailureReason(),
		CustomerRating:       aggregate.CustomerRating(),
		CustomerFeedback:     aggregate.CustomerFeedback(),
	}
}

// toDomain converts a database DTO to an assignment aggregate using
// RestoreDeliveryAssignment.
func toDomain(dto AssignmentDTO) (*assignment.DeliveryAssignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreDeliveryAssignment(
		id, orderID, partnerID, status,
		dto.PickupAddress, dto.DeliveryAddress, dto.DeliveryInstructions,
		dto.AssignedAt, dto.PickedUpAt, dto.DeliveredAt,
		dto.FailureReason, dto.CustomerRating, dto.CustomerFeedback,
	)
}
