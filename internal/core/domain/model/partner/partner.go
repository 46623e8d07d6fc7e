package partner

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// RatingMin is the lowest rating a partner can carry once rated.
	RatingMin = 1.0
	// RatingMax is the highest rating a partner can carry.
	RatingMax = 5.0
)

// Domain errors for delivery partner operations.
var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCredentialHashIsRequired is returned when the credential hash is empty.
	// Hashing happens in the use case layer; the aggregate never sees plaintext.
	ErrCredentialHashIsRequired = errs.NewValueIsRequiredError("credentialHash")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New(
		"DeliveryPartner must be created via NewDeliveryPartner constructor")
	// ErrPartnerIsAlreadyVerified is returned when verifying an already verified partner.
	ErrPartnerIsAlreadyVerified = errs.NewConflictError("partner is already verified")
	// ErrPartnerIsNotVerified is returned when an unverified partner tries to go available.
	ErrPartnerIsNotVerified = errs.NewInvalidStateError("go available", "unverified")
)

// DeliveryPartner represents a courier working for the platform.
// It is an aggregate root that manages partner identity, verification,
// availability for dispatch, location reports, and the running delivery stats.
//
// Business rules:
//   - A partner starts unverified, unavailable, with no location and rating 0
//   - Only verified partners may flip themselves available
//   - The credential hash is opaque to the domain and never serialized outward
//   - Rating stays within [1..5] once the first rating lands; 0 means unrated
type DeliveryPartner struct {
	id              kernel.UUID
	name            string
	credentialHash  string
	verified        bool
	available       bool
	location        *kernel.GeoPoint
	rating          float64
	totalDeliveries int
	vehicle         Vehicle
	vehicleNumber   string

	guard guard.ConstructorGuard
}

// NewDeliveryPartner creates a new partner in the initial registry state:
// unverified, unavailable, unrated and without a known location.
// credentialHash must already be a bcrypt hash produced by the caller.
func NewDeliveryPartner(
	id kernel.UUID,
	name string,
	credentialHash string,
	vehicle Vehicle,
	vehicleNumber string,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		vehicleNumber: vehicleNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCredentialHash(credentialHash),
		p.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPartner reconstructs a DeliveryPartner aggregate from
// persistent storage. The restored partner behaves identically to one created
// through normal domain operations.
func RestoreDeliveryPartner(
	id kernel.UUID,
	name string,
	credentialHash string,
	verified bool,
	available bool,
	location *kernel.GeoPoint,
	rating float64,
	totalDeliveries int,
	vehicle Vehicle,
	vehicleNumber string,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		verified:      verified,
		available:     available,
		vehicleNumber: vehicleNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCredentialHash(credentialHash),
		p.setVehicle(vehicle),
		p.setTotalDeliveries(totalDeliveries),
		p.setRating(rating),
	); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		p.location = &loc
	}

	return p, nil
}

// Validate checks whether the DeliveryPartner was properly constructed.
// The zero value is invalid and fails this validation.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by identity.
func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *DeliveryPartner) Name() string {
	return p.name
}

// CredentialHash returns the stored bcrypt hash.
// Only the authentication path reads it; it never crosses the API boundary.
func (p *DeliveryPartner) CredentialHash() string {
	return p.credentialHash
}

// IsVerified reports whether the partner passed platform verification.
func (p *DeliveryPartner) IsVerified() bool {
	return p.verified
}

// IsAvailable reports whether the partner currently accepts assignments.
func (p *DeliveryPartner) IsAvailable() bool {
	return p.available
}

// Location returns the last reported position, or nil when the partner has
// never reported one. The returned value is a copy.
func (p *DeliveryPartner) Location() *kernel.GeoPoint {
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// Rating returns the running average customer rating, 0 until first rated.
func (p *DeliveryPartner) Rating() float64 {
	return p.rating
}

// TotalDeliveries returns the number of completed deliveries.
func (p *DeliveryPartner) TotalDeliveries() int {
	return p.totalDeliveries
}

// VehicleType returns the partner's vehicle kind.
func (p *DeliveryPartner) VehicleType() Vehicle {
	return p.vehicle
}

// VehicleNumber returns the license plate or registration number, may be empty.
func (p *DeliveryPartner) VehicleNumber() string {
	return p.vehicleNumber
}

// Verify marks the partner as verified by the platform.
// Returns Conflict when the partner is already verified.
func (p *DeliveryPartner) Verify() error {
	if p.verified {
		return ErrPartnerIsAlreadyVerified
	}

	p.verified = true
	return nil
}

// SetAvailable flips the partner into the dispatchable pool.
// Returns InvalidState when the partner has not been verified.
// Callers must additionally ensure no open assignment exists; that rule spans
// other aggregates and lives in the use case layer.
func (p *DeliveryPartner) SetAvailable() error {
	if !p.verified {
		return ErrPartnerIsNotVerified
	}

	p.available = true
	return nil
}

// SetUnavailable takes the partner out of the dispatchable pool.
func (p *DeliveryPartner) SetUnavailable() {
	p.available = false
}

// UpdateLocation records the partner's current position.
func (p *DeliveryPartner) UpdateLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	loc := location
	p.location = &loc
	return nil
}

// RecordDelivery increments the completed delivery counter.
// Called when an assignment carried by this partner reaches Delivered.
func (p *DeliveryPartner) RecordDelivery() {
	p.totalDeliveries++
}

// UpdateRating replaces the running average with a newly computed value.
// The arithmetic lives in the RatingAggregator domain service; this method
// only enforces the [1..5] band.
func (p *DeliveryPartner) UpdateRating(newRating float64) error {
	if newRating < RatingMin || newRating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", newRating, RatingMin, RatingMax)
	}

	p.rating = newRating
	return nil
}

func (p *DeliveryPartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *DeliveryPartner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *DeliveryPartner) setCredentialHash(credentialHash string) error {
	if credentialHash == "" {
		return ErrCredentialHashIsRequired
	}

	p.credentialHash = credentialHash
	return nil
}

func (p *DeliveryPartner) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	p.vehicle = vehicle
	return nil
}

func (p *DeliveryPartner) setTotalDeliveries(totalDeliveries int) error {
	if totalDeliveries < 0 {
		return errs.NewValueIsInvalidError("totalDeliveries is negative")
	}

	p.totalDeliveries = totalDeliveries
	return nil
}

// setRating accepts the persisted rating. Zero means never rated; anything
// else must sit inside the rating band.
func (p *DeliveryPartner) setRating(rating float64) error {
	if rating == 0 {
		p.rating = 0
		return nil
	}
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}

	p.rating = rating
	return nil
}
