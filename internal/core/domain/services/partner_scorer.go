package services

import (
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
)

// RecencyWindow is how recently a partner must have been active to earn the
// recency bonus.
const RecencyWindow = 300 * time.Second

// Scoring weights. Each term is independent and additive; higher totals rank
// better.
const (
	ratingWeight       = 10.0
	successRateWeight  = 0.1
	experienceWeight   = 0.01
	experienceCap      = 5.0
	proximityNumerator = 10.0
	recencyBonus       = 2.0
	motorcycleBonus    = 1.0
	bicycleBonus       = 0.5
)

// PartnerScorer computes a ranking score for a (partner, job) pair.
//
// The score is the sum of:
//   - rating term: rating * 10 (0-50)
//   - success-rate term: success rate percent * 0.1 (0-10)
//   - experience term: total deliveries * 0.01, capped at 5.0
//   - proximity term: 10 / distanceKm when both the job's pickup point and
//     the partner's position are known and the distance is positive; a
//     distance of exactly zero contributes nothing rather than an unbounded
//     bonus
//   - recency term: +2.0 when the partner was active within RecencyWindow
//     of the evaluation time
//   - vehicle term: +1.0 for motorcycles, +0.5 for bicycles
//
// For fixed inputs and evaluation time the score is reproducible. The
// recency term is the only time-dependent component; callers ranking several
// partners must pass the same captured "now" for every candidate so one
// ranking pass stays internally consistent.
type PartnerScorer struct{}

// NewPartnerScorer creates a new PartnerScorer instance.
func NewPartnerScorer() PartnerScorer {
	return PartnerScorer{}
}

// Score computes the ranking score for assigning job to p, evaluated at now.
// Higher is better.
func (s PartnerScorer) Score(p *partner.Partner, job *delivery.DeliveryJob, now time.Time) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := job.Validate(); err != nil {
		return 0, err
	}

	score := p.Rating() * ratingWeight
	score += p.SuccessRate() * 100 * successRateWeight
	score += min(float64(p.TotalDeliveries())*experienceWeight, experienceCap)

	if pickup := job.Pickup(); pickup != nil && p.Location() != nil {
		distance, err := p.Location().DistanceKm(*pickup)
		if err != nil {
			return 0, err
		}
		if distance > 0 {
			score += proximityNumerator / distance
		}
	}

	if now.Sub(p.LastActive()) < RecencyWindow {
		score += recencyBonus
	}

	switch p.VehicleType() {
	case partner.Motorcycle:
		score += motorcycleBonus
	case partner.Bicycle:
		score += bicycleBonus
	default:
	}

	return score, nil
}
