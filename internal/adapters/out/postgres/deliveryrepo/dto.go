// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery job persistence. It implements the repository pattern for the
// delivery aggregate, converting between domain entities and database rows.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
)

// DeliveryJobDTO represents the database structure for persisting delivery
// job aggregates. Coordinates use fixed-point columns so stored positions
// survive round-trips without float drift. The (customer_id, local_id) pair
// is unique for synced rows, which is what makes offline reconciliation
// idempotent at the storage level.
type DeliveryJobDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID           uuid.UUID  `gorm:"type:uuid;index;index:idx_deliveries_customer_local,unique,where:local_id <> ''"`
	PartnerID            *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress        string
	DropoffAddress       string
	PickupLat            *decimal.Decimal `gorm:"type:decimal(10,8)"`
	PickupLng            *decimal.Decimal `gorm:"type:decimal(11,8)"`
	DropoffLat           *decimal.Decimal `gorm:"type:decimal(10,8)"`
	DropoffLng           *decimal.Decimal `gorm:"type:decimal(11,8)"`
	CustomerName         string
	CustomerPhone        string
	DeliveryNotes        string
	Status               string `gorm:"index"`
	EstimatedDistanceKm  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	EstimatedDurationMin *int
	ActualDistanceKm     *decimal.Decimal `gorm:"type:decimal(10,2)"`
	ActualDurationMin    *int
	IsSynced             bool
	LocalID              string `gorm:"index:idx_deliveries_customer_local,unique,where:local_id <> ''"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the database table name for delivery job entities.
func (DeliveryJobDTO) TableName() string {
	return "deliveries"
}

// SyncRecordDTO represents the database structure for sync audit records.
type SyncRecordDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID   uuid.UUID `gorm:"type:uuid;index"`
	Status       string
	ErrorMessage string
	RetryCount   int
	SyncedAt     *time.Time
	CreatedAt    time.Time
}

// TableName specifies the database table name for sync records.
func (SyncRecordDTO) TableName() string {
	return "sync_records"
}

// fromDomain converts a delivery job aggregate to its database
// representation.
func fromDomain(job *delivery.DeliveryJob) DeliveryJobDTO {
	var partnerID *uuid.UUID
	if id := job.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	pickupLat, pickupLng := pointToColumns(job.Pickup())
	dropoffLat, dropoffLng := pointToColumns(job.Dropoff())

	return DeliveryJobDTO{
		ID:                   job.ID().Bytes(),
		CustomerID:           job.CustomerID().Bytes(),
		PartnerID:            partnerID,
		PickupAddress:        job.PickupAddress(),
		DropoffAddress:       job.DropoffAddress(),
		PickupLat:            pickupLat,
		PickupLng:            pickupLng,
		DropoffLat:           dropoffLat,
		DropoffLng:           dropoffLng,
		CustomerName:         job.CustomerName(),
		CustomerPhone:        job.CustomerPhone(),
		DeliveryNotes:        job.DeliveryNotes(),
		Status:               job.Status().String(),
		EstimatedDistanceKm:  job.EstimatedDistanceKm(),
		EstimatedDurationMin: job.EstimatedDurationMin(),
		ActualDistanceKm:     job.ActualDistanceKm(),
		ActualDurationMin:    job.ActualDurationMin(),
		IsSynced:             job.IsSynced(),
		LocalID:              job.LocalID(),
		CreatedAt:            job.CreatedAt(),
		UpdatedAt:            job.UpdatedAt(),
	}
}

// toDomain converts a database row back into a delivery job aggregate using
// RestoreDeliveryJob, which re-validates status and partner consistency.
func toDomain(dto DeliveryJobDTO) (*delivery.DeliveryJob, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pickup, err := pointFromColumns(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}

	dropoff, err := pointFromColumns(dto.DropoffLat, dto.DropoffLng)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDeliveryJob(delivery.RestoreDeliveryJobParams{
		ID:                   id,
		CustomerID:           customerID,
		PartnerID:            partnerID,
		PickupAddress:        dto.PickupAddress,
		DropoffAddress:       dto.DropoffAddress,
		Pickup:               pickup,
		Dropoff:              dropoff,
		CustomerName:         dto.CustomerName,
		CustomerPhone:        dto.CustomerPhone,
		DeliveryNotes:        dto.DeliveryNotes,
		Status:               status,
		EstimatedDistanceKm:  dto.EstimatedDistanceKm,
		EstimatedDurationMin: dto.EstimatedDurationMin,
		ActualDistanceKm:     dto.ActualDistanceKm,
		ActualDurationMin:    dto.ActualDurationMin,
		IsSynced:             dto.IsSynced,
		LocalID:              dto.LocalID,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
	})
}

// syncRecordFromDomain converts a sync record to its database representation.
func syncRecordFromDomain(record *delivery.SyncRecord) SyncRecordDTO {
	return SyncRecordDTO{
		ID:           record.ID().Bytes(),
		DeliveryID:   record.DeliveryID().Bytes(),
		Status:       record.Status().String(),
		ErrorMessage: record.ErrorMessage(),
		RetryCount:   record.RetryCount(),
		SyncedAt:     record.SyncedAt(),
		CreatedAt:    record.CreatedAt(),
	}
}

// pointToColumns splits an optional point into its column pair.
func pointToColumns(point *kernel.GeoPoint) (*decimal.Decimal, *decimal.Decimal) {
	if point == nil {
		return nil, nil
	}

	lat := point.Lat()
	lng := point.Lng()
	return &lat, &lng
}

// pointFromColumns rebuilds an optional point from its column pair. A row
// with exactly one half present is corrupt and rejected.
func pointFromColumns(lat, lng *decimal.Decimal) (*kernel.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, kernel.ErrIncompleteCoordinatePair
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}

	return &point, nil
}
