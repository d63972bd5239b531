package deliveryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

// activeStatuses are the lifecycle states during which a job occupies its
// partner.
var activeStatuses = []string{
	delivery.Assigned.String(),
	delivery.PickedUp.String(),
	delivery.InTransit.String(),
}

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery job to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.DeliveryJob) error {
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

// Update saves an existing delivery job to the database.
// Select("*") forces every column through, so fields returning to NULL,
// like the partner reference after a cancellation, are written as well.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.DeliveryJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryJobDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery job by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryJobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLocalID retrieves the job a customer synced under the given
// client-side local ID.
func (r *GormDeliveryRepository) GetByLocalID(
	ctx context.Context,
	customerID kernel.UUID,
	localID string,
) (*delivery.DeliveryJob, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if localID == "" {
		return nil, errs.NewValueIsRequiredError("local_id")
	}

	var dto DeliveryJobDTO
	err := r.db.WithContext(ctx).
		First(&dto, "customer_id = ? AND local_id = ?", customerID.Bytes(), localID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", localID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves jobs awaiting partner assignment, oldest first.
func (r *GormDeliveryRepository) GetAllPending(ctx context.Context) ([]*delivery.DeliveryJob, error) {
	var dtos []DeliveryJobDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ?", delivery.Pending.String()).
		Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*delivery.DeliveryJob, 0, len(dtos))
	for _, dto := range dtos {
		job, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// CountActiveByPartner counts jobs currently occupying the partner.
func (r *GormDeliveryRepository) CountActiveByPartner(
	ctx context.Context,
	partnerID kernel.UUID,
) (int64, error) {
	if err := partnerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryJobDTO{}).
		Where("partner_id = ? AND status IN ?", partnerID.Bytes(), activeStatuses).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// AddSyncRecord appends a sync audit record.
func (r *GormDeliveryRepository) AddSyncRecord(ctx context.Context, record *delivery.SyncRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := syncRecordFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
