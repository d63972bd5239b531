package services

import (
	"errors"
	"sort"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
)

// ErrNoPartnerAvailable is returned when no suitable partner exists for a
// job. Absence of capacity is an expected outcome, not a system failure:
// callers leave the job pending and retry later.
var ErrNoPartnerAvailable = errors.New("no available partner found")

// Dispatcher is the domain service that selects the best partner for a
// pending delivery job.
//
// Selection algorithm:
//  1. When the job has pickup coordinates, candidates are narrowed to those
//     within their own delivery radius of the pickup point, then ranked by
//     PartnerScorer using a single captured evaluation time. Ties keep the
//     order candidates were discovered in (stable sort).
//  2. When the job has no coordinates, or the radius filter leaves nothing,
//     selection falls back to "best available": all candidates ordered by
//     rating, then total deliveries, both descending.
//
// The dispatcher operates on an in-memory candidate slice. Callers are
// responsible for supplying only eligible partners (available, online, not
// busy) and for making the final assignment transactional.
type Dispatcher struct {
	scorer PartnerScorer
}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{scorer: NewPartnerScorer()}
}

// SelectBest picks the best partner for the job from candidates without
// mutating anything. Returns ErrNoPartnerAvailable when candidates is empty
// or no candidate can be ranked.
//
// The evaluation time now is used for every candidate's recency term, so one
// call produces an internally consistent ranking.
func (d Dispatcher) SelectBest(
	job *delivery.DeliveryJob,
	candidates []*partner.Partner,
	now time.Time,
) (*partner.Partner, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	if pickup := job.Pickup(); pickup != nil {
		inRange := make([]*partner.Partner, 0, len(candidates))
		for _, c := range candidates {
			if c.IsWithinRange(*pickup, 0) {
				inRange = append(inRange, c)
			}
		}

		if len(inRange) > 0 {
			return d.pickByScore(job, inRange, now)
		}
	}

	return pickBestAvailable(candidates)
}

// Dispatch selects the best partner for the job and assigns it, moving the
// job from Pending to Assigned. The job must be valid and assignable.
//
// Returns ErrNoPartnerAvailable and leaves the job untouched when no
// candidate qualifies.
func (d Dispatcher) Dispatch(
	job *delivery.DeliveryJob,
	candidates []*partner.Partner,
	now time.Time,
) (*partner.Partner, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	if err := job.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	best, err := d.SelectBest(job, candidates, now)
	if err != nil {
		return nil, err
	}

	if err = job.Assign(best.ID(), now); err != nil {
		return nil, err
	}

	return best, nil
}

// pickByScore ranks candidates by score descending and returns the first.
// The sort is stable so equally scored candidates keep discovery order.
func (d Dispatcher) pickByScore(
	job *delivery.DeliveryJob,
	candidates []*partner.Partner,
	now time.Time,
) (*partner.Partner, error) {
	type scored struct {
		partner *partner.Partner
		score   float64
	}

	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		score, err := d.scorer.Score(c, job, now)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, scored{partner: c, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	return ranked[0].partner, nil
}

// pickBestAvailable orders candidates by rating, then total deliveries, both
// descending, and returns the first. Used when the job carries no pickup
// coordinates or the radius filter excluded everyone.
func pickBestAvailable(candidates []*partner.Partner) (*partner.Partner, error) {
	if len(candidates) == 0 {
		return nil, ErrNoPartnerAvailable
	}

	ordered := make([]*partner.Partner, len(candidates))
	copy(ordered, candidates)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Rating() != ordered[j].Rating() {
			return ordered[i].Rating() > ordered[j].Rating()
		}
		return ordered[i].TotalDeliveries() > ordered[j].TotalDeliveries()
	})

	return ordered[0], nil
}
