package partner

import (
	"errors"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultMaxDistanceKm is the delivery radius assigned to partners that have
// not configured their own.
const DefaultMaxDistanceKm = 50.0

// Rating bounds.
const (
	RatingMin = 0.0
	RatingMax = 5.0
)

// ErrPartnerIsNotConstructed is returned when a Partner instance was not
// created through the NewPartner factory method.
var ErrPartnerIsNotConstructed = errors.New(
	"Partner must be created via NewPartner constructor")

// Partner represents one courier in the system. It is an aggregate root
// holding the partner's vehicle, shift state, live position, and performance
// counters.
//
// Invariants:
//   - rating stays within [RatingMin, RatingMax]
//   - delivery counters never decrease
//   - maxDistanceKm is strictly positive
//
// Whether a partner is busy is not stored here: it is derived from live job
// status by the repository layer so the flag can never go stale. A partner is
// eligible for new assignment only when available, online, and not busy.
type Partner struct {
	id     kernel.UUID
	userID kernel.UUID

	vehicleType   VehicleType
	vehicleNumber string
	vehicleModel  string

	isAvailable bool
	isOnline    bool
	lastActive  time.Time

	location *kernel.GeoPoint

	rating               float64
	totalDeliveries      int
	successfulDeliveries int
	cancelledDeliveries  int

	hourlyRate    decimal.Decimal
	maxDistanceKm float64

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewPartner creates a new Partner with validation.
// New partners start available but offline, with no recorded position, a zero
// rating, and the default delivery radius.
func NewPartner(
	id kernel.UUID,
	userID kernel.UUID,
	vehicleType VehicleType,
	now time.Time,
) (*Partner, error) {
	p := &Partner{
		isAvailable:   true,
		isOnline:      false,
		lastActive:    now.UTC(),
		maxDistanceKm: DefaultMaxDistanceKm,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartnerParams carries the persisted state of a partner for
// reconstruction from storage.
type RestorePartnerParams struct {
	ID                   kernel.UUID
	UserID               kernel.UUID
	VehicleType          VehicleType
	VehicleNumber        string
	VehicleModel         string
	IsAvailable          bool
	IsOnline             bool
	LastActive           time.Time
	Location             *kernel.GeoPoint
	Rating               float64
	TotalDeliveries      int
	SuccessfulDeliveries int
	CancelledDeliveries  int
	HourlyRate           decimal.Decimal
	MaxDistanceKm        float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RestorePartner reconstructs a partner from persistence, re-validating
// rating bounds, counters, and the delivery radius.
func RestorePartner(params RestorePartnerParams) (*Partner, error) {
	p, err := NewPartner(params.ID, params.UserID, params.VehicleType, params.CreatedAt)
	if err != nil {
		return nil, err
	}

	if params.Rating < RatingMin || params.Rating > RatingMax {
		return nil, errs.NewValueIsOutOfRangeError("rating", params.Rating, RatingMin, RatingMax)
	}
	if params.TotalDeliveries < 0 || params.SuccessfulDeliveries < 0 || params.CancelledDeliveries < 0 {
		return nil, errs.NewValueIsInvalidError("delivery counters must not be negative")
	}
	if params.MaxDistanceKm <= 0 {
		return nil, errs.NewValueIsInvalidError("max_distance must be positive")
	}
	if params.Location != nil {
		if err = params.Location.Validate(); err != nil {
			return nil, err
		}
	}

	p.vehicleNumber = params.VehicleNumber
	p.vehicleModel = params.VehicleModel
	p.isAvailable = params.IsAvailable
	p.isOnline = params.IsOnline
	p.lastActive = params.LastActive
	p.location = params.Location
	p.rating = params.Rating
	p.totalDeliveries = params.TotalDeliveries
	p.successfulDeliveries = params.SuccessfulDeliveries
	p.cancelledDeliveries = params.CancelledDeliveries
	p.hourlyRate = params.HourlyRate
	p.maxDistanceKm = params.MaxDistanceKm
	p.createdAt = params.CreatedAt
	p.updatedAt = params.UpdatedAt

	return p, nil
}

// Validate ensures the Partner instance was properly constructed through
// NewPartner.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// UserID returns the linked user identity.
func (p *Partner) UserID() kernel.UUID {
	return p.userID
}

// VehicleType returns the partner's vehicle category.
func (p *Partner) VehicleType() VehicleType {
	return p.vehicleType
}

// VehicleNumber returns the registration number of the vehicle.
func (p *Partner) VehicleNumber() string {
	return p.vehicleNumber
}

// VehicleModel returns the model description of the vehicle.
func (p *Partner) VehicleModel() string {
	return p.vehicleModel
}

// IsAvailable reports whether the partner accepts new work.
func (p *Partner) IsAvailable() bool {
	return p.isAvailable
}

// IsOnline reports whether the partner is currently on shift.
func (p *Partner) IsOnline() bool {
	return p.isOnline
}

// LastActive returns the time of the partner's last activity
// (position update or shift change).
func (p *Partner) LastActive() time.Time {
	return p.lastActive
}

// Location returns the partner's last known position, or nil when none
// has been recorded.
func (p *Partner) Location() *kernel.GeoPoint {
	return p.location
}

// Rating returns the partner's rating in [RatingMin, RatingMax].
func (p *Partner) Rating() float64 {
	return p.rating
}

// TotalDeliveries returns the count of deliveries the partner has taken on.
func (p *Partner) TotalDeliveries() int {
	return p.totalDeliveries
}

// SuccessfulDeliveries returns the count of completed deliveries.
func (p *Partner) SuccessfulDeliveries() int {
	return p.successfulDeliveries
}

// CancelledDeliveries returns the count of cancelled or failed deliveries.
func (p *Partner) CancelledDeliveries() int {
	return p.cancelledDeliveries
}

// HourlyRate returns the partner's hourly rate in local currency.
func (p *Partner) HourlyRate() decimal.Decimal {
	return p.hourlyRate
}

// MaxDistanceKm returns the partner's delivery radius in kilometres.
func (p *Partner) MaxDistanceKm() float64 {
	return p.maxDistanceKm
}

// CreatedAt returns the creation timestamp.
func (p *Partner) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (p *Partner) UpdatedAt() time.Time {
	return p.updatedAt
}

// SuccessRate returns the fraction of taken deliveries that completed
// successfully, in [0, 1]. Partners with no deliveries score 0.
func (p *Partner) SuccessRate() float64 {
	if p.totalDeliveries == 0 {
		return 0
	}
	return float64(p.successfulDeliveries) / float64(p.totalDeliveries)
}

// IsEligible reports whether the partner's own flags permit new assignment.
// The busy check is computed from live job status by the repository layer and
// is not part of this method.
func (p *Partner) IsEligible() bool {
	return p.isAvailable && p.isOnline
}

// IsWithinRange reports whether the given point lies within radiusKm of the
// partner's current position. A radius of zero or less means the partner's
// own delivery radius. Partners without a recorded position are never in
// range.
func (p *Partner) IsWithinRange(point kernel.GeoPoint, radiusKm float64) bool {
	if p.location == nil {
		return false
	}

	if radiusKm <= 0 {
		radiusKm = p.maxDistanceKm
	}

	distance, err := p.location.DistanceKm(point)
	if err != nil {
		return false
	}

	return distance <= radiusKm
}

// UpdateLocation records a new position and refreshes the last-active
// timestamp.
func (p *Partner) UpdateLocation(point kernel.GeoPoint, now time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}

	p.location = &point
	p.lastActive = now.UTC()
	p.touch(now)
	return nil
}

// GoOnline puts the partner on shift: online, available, and active now.
func (p *Partner) GoOnline(now time.Time) {
	p.isOnline = true
	p.isAvailable = true
	p.lastActive = now.UTC()
	p.touch(now)
}

// GoOffline takes the partner off shift: offline and unavailable.
func (p *Partner) GoOffline(now time.Time) {
	p.isOnline = false
	p.isAvailable = false
	p.touch(now)
}

// SetAvailability toggles whether the partner accepts new work while on shift.
func (p *Partner) SetAvailability(available bool, now time.Time) {
	p.isAvailable = available
	p.touch(now)
}

// UpdateRating sets the partner's rating, clamping the value into
// [RatingMin, RatingMax].
func (p *Partner) UpdateRating(rating float64, now time.Time) {
	p.rating = clampRating(rating)
	p.touch(now)
}

// RecordDeliveryOutcome updates the partner's counters and rating after a job
// reaches a terminal status. Successful deliveries nudge the rating up by
// 0.1; cancelled or failed ones pull it down by 0.2. The rating stays within
// its bounds.
func (p *Partner) RecordDeliveryOutcome(successful bool, now time.Time) {
	p.totalDeliveries++
	if successful {
		p.successfulDeliveries++
		p.rating = clampRating(p.rating + 0.1)
	} else {
		p.cancelledDeliveries++
		p.rating = clampRating(p.rating - 0.2)
	}
	p.touch(now)
}

// SetVehicleDetails records the vehicle registration number and model.
func (p *Partner) SetVehicleDetails(number string, model string) {
	p.vehicleNumber = number
	p.vehicleModel = model
}

// SetMaxDistanceKm sets the partner's delivery radius.
// The radius must be strictly positive.
func (p *Partner) SetMaxDistanceKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return errs.NewValueIsInvalidError("max_distance must be positive")
	}
	p.maxDistanceKm = radiusKm
	return nil
}

// SetHourlyRate sets the partner's hourly rate.
// The rate must not be negative.
func (p *Partner) SetHourlyRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidError("hourly_rate must not be negative")
	}
	p.hourlyRate = rate
	return nil
}

func (p *Partner) touch(now time.Time) {
	p.updatedAt = now.UTC()
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	p.userID = userID
	return nil
}

func (p *Partner) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	p.vehicleType = vehicleType
	return nil
}

func clampRating(rating float64) float64 {
	if rating < RatingMin {
		return RatingMin
	}
	if rating > RatingMax {
		return RatingMax
	}
	return rating
}
