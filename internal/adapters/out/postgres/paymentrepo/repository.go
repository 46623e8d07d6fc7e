package paymentrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment intent to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.PaymentIntent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment intent to the database.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.PaymentIntent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "TransactionRef", "RefundRef", "FailureReason").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment intent by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.PaymentIntent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByGatewayRef retrieves a payment intent by its gateway reference.
func (r *GormPaymentRepository) GetByGatewayRef(
	ctx context.Context,
	gatewayRef string,
) (*payment.PaymentIntent, error) {
	if gatewayRef == "" {
		return nil, errs.NewValueIsRequiredError("gatewayRef")
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).First(&dto, "gateway_ref = ?", gatewayRef).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("gatewayRef", gatewayRef)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrderID retrieves the order's Pending or Completed intent.
// Returns (nil, nil) when the order has no active intent.
func (r *GormPaymentRepository) GetActiveByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*payment.PaymentIntent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status IN ?",
			orderID.Bytes(),
			[]string{payment.Pending.String(), payment.Completed.String()}).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
