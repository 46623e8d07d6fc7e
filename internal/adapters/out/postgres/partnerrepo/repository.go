package partnerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner to the database.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.DeliveryPartner) error {
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

// Update saves an existing partner to the database.
// Booleans and coordinates go through Select so flips to false and cleared
// positions are written rather than skipped as zero values.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Select("Verified", "Available", "Latitude", "Longitude",
			"Rating", "TotalDeliveries", "Vehicle", "VehicleNumber").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a partner by registry name.
func (r *GormPartnerRepository) GetByName(ctx context.Context, name string) (*partner.DeliveryPartner, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("name", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailableVerified retrieves the dispatchable pool.
func (r *GormPartnerRepository) GetAllAvailableVerified(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Where("available = ? AND verified = ?", true, true).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	partners := make([]*partner.DeliveryPartner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, nil
}

// ReserveAvailable flips the partner's availability off, but only if it is
// still on. A row already flipped by a concurrent dispatch yields Conflict,
// which callers treat as "try the next candidate".
func (r *GormPartnerRepository) ReserveAvailable(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ? AND available = ?", id.Bytes(), true).
		Update("available", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("partner is no longer available")
	}

	return nil
}
