package partnerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
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
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
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
// Select("*") forces every column through so flags dropping back to false
// and a cleared location are persisted.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
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

// Get retrieves a partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
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

// GetForUpdate retrieves a partner by ID holding a row-level lock until the
// surrounding transaction completes. Concurrent assignment attempts on the
// same partner serialize on this lock.
func (r *GormPartnerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ?", id.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllEligible retrieves partners open for new work: available, online,
// and holding no active job. Busy-ness is derived from live job rows, not a
// stored flag. Results are ordered by creation time, which is the candidate
// discovery order dispatch uses to break score ties.
func (r *GormPartnerRepository) GetAllEligible(ctx context.Context) ([]*partner.Partner, error) {
	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Where("is_available AND is_online").
		Where(`NOT EXISTS (
			SELECT 1 FROM deliveries
			WHERE deliveries.partner_id = partners.id
			  AND deliveries.status IN ?
		)`, activeStatuses()).
		Order("created_at").
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, nil
}

// activeStatuses are the delivery states during which a partner is occupied.
func activeStatuses() []string {
	return []string{
		delivery.Assigned.String(),
		delivery.PickedUp.String(),
		delivery.InTransit.String(),
	}
}
