package commands

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/services"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

// averageSpeedKmh is the assumed travel speed used to derive duration
// estimates from route distance.
const averageSpeedKmh = 30.0

// assignAttempts bounds how many times an assignment pass is retried after
// losing a race for the selected partner.
const assignAttempts = 2

// assignPendingJob runs one dispatch pass for a pending job inside the
// caller's transaction. The selected partner's row is locked and its workload
// re-checked before assignment, so two concurrent passes cannot hand the same
// partner two active jobs. Losing the race restarts the pass once with a
// fresh candidate set.
//
// Returns the assigned partner, or nil when no eligible partner has capacity.
// The job stays pending in that case.
func assignPendingJob(
	ctx context.Context,
	uow UoW,
	dispatcher services.Dispatcher,
	job *delivery.DeliveryJob,
	now time.Time,
) (*partner.Partner, error) {
	for attempt := 0; attempt < assignAttempts; attempt++ {
		candidates, err := uow.PartnerRepository().GetAllEligible(ctx)
		if err != nil {
			return nil, err
		}

		best, err := dispatcher.SelectBest(job, candidates, now)
		if err != nil {
			if errors.Is(err, services.ErrNoPartnerAvailable) {
				return nil, nil
			}
			return nil, err
		}

		locked, err := uow.PartnerRepository().GetForUpdate(ctx, best.ID())
		if err != nil {
			return nil, err
		}

		busy, err := partnerIsBusy(ctx, uow, locked)
		if err != nil {
			return nil, err
		}
		if busy {
			// Another transaction claimed this partner first.
			continue
		}

		if err := job.Assign(locked.ID(), now); err != nil {
			return nil, err
		}
		if err := uow.DeliveryRepository().Update(ctx, job); err != nil {
			return nil, err
		}
		return locked, nil
	}
	return nil, nil
}

// partnerIsBusy reports whether the partner already carries an active job or
// went offline since the candidate set was loaded.
func partnerIsBusy(ctx context.Context, uow UoW, p *partner.Partner) (bool, error) {
	if !p.IsEligible() {
		return true, nil
	}
	active, err := uow.DeliveryRepository().CountActiveByPartner(ctx, p.ID())
	if err != nil {
		return false, err
	}
	return active > 0, nil
}

// applyRouteEstimates fills in the estimated distance and duration for a job
// whose pickup and dropoff coordinates are both known. Jobs without full
// coordinates keep nil estimates.
func applyRouteEstimates(job *delivery.DeliveryJob) error {
	pickup := job.Pickup()
	dropoff := job.Dropoff()
	if pickup == nil || dropoff == nil {
		return nil
	}

	distanceKm, err := pickup.DistanceKm(*dropoff)
	if err != nil {
		return err
	}

	durationMin := int(math.Ceil(distanceKm / averageSpeedKmh * 60))
	return job.SetEstimates(decimal.NewFromFloat(distanceKm).Round(2), durationMin)
}

// isNotFound reports whether err means the requested object does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}
