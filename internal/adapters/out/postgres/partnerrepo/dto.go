// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence.
package partnerrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting delivery
// partners. A partner without a reported position keeps NULL coordinates;
// the registry name is unique.
type PartnerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"uniqueIndex"`
	CredentialHash  string
	Verified        bool `gorm:"index"`
	Available       bool `gorm:"index"`
	Latitude        *float64
	Longitude       *float64
	Rating          float64
	TotalDeliveries int
	Vehicle         string
	VehicleNumber   string
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner aggregate to its database representation.
func fromDomain(aggregate *partner.DeliveryPartner) PartnerDTO {
	var latitude, longitude *float64
	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		long := location.Longitude()
		latitude = &lat
		longitude = &long
	}

	return PartnerDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		CredentialHash:  aggregate.CredentialHash(),
		Verified:        aggregate.IsVerified(),
		Available:       aggregate.IsAvailable(),
		Latitude:        latitude,
		Longitude:       longitude,
		Rating:          aggregate.Rating(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		Vehicle:         aggregate.VehicleType().String(),
		VehicleNumber:   aggregate.VehicleNumber(),
	}
}

// toDomain converts a database DTO to a partner aggregate using
// RestoreDeliveryPartner.
func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	vehicle, err := partner.VehicleFromString(dto.Vehicle)
	if err != nil {
		return nil, err
	}

	return partner.RestoreDeliveryPartner(
		id, dto.Name, dto.CredentialHash,
		dto.Verified, dto.Available, location,
		dto.Rating, dto.TotalDeliveries,
		vehicle, dto.VehicleNumber,
	)
}
