// Package partnerrepo provides data transfer objects and mapping functions
// for partner persistence. It implements the repository pattern for the
// partner domain aggregate.
package partnerrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
)

// PartnerDTO represents the database structure for persisting partner
// aggregates. Availability flags are indexed because every dispatch pass
// filters on them.
type PartnerDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	VehicleType          string
	VehicleNumber        string
	VehicleModel         string
	IsAvailable          bool `gorm:"index"`
	IsOnline             bool `gorm:"index"`
	LastActive           time.Time
	CurrentLat           *decimal.Decimal `gorm:"type:decimal(10,8)"`
	CurrentLng           *decimal.Decimal `gorm:"type:decimal(11,8)"`
	Rating               float64
	TotalDeliveries      int
	SuccessfulDeliveries int
	CancelledDeliveries  int
	HourlyRate           decimal.Decimal `gorm:"type:decimal(10,2)"`
	MaxDistanceKm        float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database
// representation.
func fromDomain(p *partner.Partner) PartnerDTO {
	var currentLat, currentLng *decimal.Decimal
	if location := p.Location(); location != nil {
		lat := location.Lat()
		lng := location.Lng()
		currentLat = &lat
		currentLng = &lng
	}

	return PartnerDTO{
		ID:                   p.ID().Bytes(),
		UserID:               p.UserID().Bytes(),
		VehicleType:          p.VehicleType().String(),
		VehicleNumber:        p.VehicleNumber(),
		VehicleModel:         p.VehicleModel(),
		IsAvailable:          p.IsAvailable(),
		IsOnline:             p.IsOnline(),
		LastActive:           p.LastActive(),
		CurrentLat:           currentLat,
		CurrentLng:           currentLng,
		Rating:               p.Rating(),
		TotalDeliveries:      p.TotalDeliveries(),
		SuccessfulDeliveries: p.SuccessfulDeliveries(),
		CancelledDeliveries:  p.CancelledDeliveries(),
		HourlyRate:           p.HourlyRate(),
		MaxDistanceKm:        p.MaxDistanceKm(),
		CreatedAt:            p.CreatedAt(),
		UpdatedAt:            p.UpdatedAt(),
	}
}

// toDomain converts a database row back into a partner aggregate using
// RestorePartner, which re-validates rating bounds and counters.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := partner.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.CurrentLat != nil && dto.CurrentLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.CurrentLat, *dto.CurrentLng)
		if pointErr != nil {
			return nil, pointErr
		}

		location = &point
	}

	return partner.RestorePartner(partner.RestorePartnerParams{
		ID:                   id,
		UserID:               userID,
		VehicleType:          vehicleType,
		VehicleNumber:        dto.VehicleNumber,
		VehicleModel:         dto.VehicleModel,
		IsAvailable:          dto.IsAvailable,
		IsOnline:             dto.IsOnline,
		LastActive:           dto.LastActive,
		Location:             location,
		Rating:               dto.Rating,
		TotalDeliveries:      dto.TotalDeliveries,
		SuccessfulDeliveries: dto.SuccessfulDeliveries,
		CancelledDeliveries:  dto.CancelledDeliveries,
		HourlyRate:           dto.HourlyRate,
		MaxDistanceKm:        dto.MaxDistanceKm,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
	})
}
