package assignmentrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
// The unique index on order_id turns a concurrent double dispatch into
// Conflict here even when both writers passed the existence check.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.DeliveryAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order already has an assignment", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.DeliveryAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "PickedUpAt", "DeliveredAt", "FailureReason",
			"CustomerRating", "CustomerFeedback").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.DeliveryAssignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the assignment covering an order.
// Returns (nil, nil) when the order has never been dispatched.
func (r *GormAssignmentRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*assignment.DeliveryAssignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByPartnerID retrieves a partner's assignments, newest first.
func (r *GormAssignmentRepository) GetAllByPartnerID(
	ctx context.Context,
	partnerID kernel.UUID,
) ([]*assignment.DeliveryAssignment, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID.Bytes()).
		Order("assigned_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*assignment.DeliveryAssignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// HasOpenForPartner reports whether the partner carries an assignment that
// has not reached a terminal status.
func (r *GormAssignmentRepository) HasOpenForPartner(
	ctx context.Context,
	partnerID kernel.UUID,
) (bool, error) {
	if err := partnerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("partner_id = ? AND status NOT IN ?",
			partnerID.Bytes(),
			[]string{assignment.Delivered.String(), assignment.Failed.String()}).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
