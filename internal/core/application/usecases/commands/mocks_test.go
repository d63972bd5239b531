package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/commands"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
	"github.com/prabhatghimire/sajiloLife/internal/core/ports"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, job *delivery.DeliveryJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, job *delivery.DeliveryJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.DeliveryJob), args.Error(1)
}

func (m *MockDeliveryRepository) GetByLocalID(
	ctx context.Context, customerID kernel.UUID, localID string,
) (*delivery.DeliveryJob, error) {
	args := m.Called(ctx, customerID, localID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.DeliveryJob), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllPending(ctx context.Context) ([]*delivery.DeliveryJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.DeliveryJob), args.Error(1)
}

func (m *MockDeliveryRepository) CountActiveByPartner(ctx context.Context, partnerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, partnerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryRepository) AddSyncRecord(ctx context.Context, record *delivery.SyncRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAllEligible(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPartnerUoW struct{ mock.Mock }

func (m *MockPartnerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

// newPendingJob builds a valid pending job with pickup and dropoff
// coordinates for handler tests.
func newPendingJob(t *testing.T) *delivery.DeliveryJob {
	t.Helper()

	job, err := delivery.NewDeliveryJob(
		kernel.NewUUID(), kernel.NewUUID(),
		"12 Thamel Marg", "88 Patan Road",
		"Asha Shrestha", "+977-9841000000",
		time.Now().UTC(),
	)
	require.NoError(t, err)

	pickup, err := kernel.GeoPointFromFloats(27.7172, 85.3240)
	require.NoError(t, err)
	dropoff, err := kernel.GeoPointFromFloats(27.6710, 85.3188)
	require.NoError(t, err)
	require.NoError(t, job.SetRoute(&pickup, &dropoff))

	return job
}

// newEligiblePartner builds a partner that is available, online, recently
// active, and positioned near the test pickup point.
func newEligiblePartner(t *testing.T) *partner.Partner {
	t.Helper()

	location, err := kernel.GeoPointFromFloats(27.7100, 85.3200)
	require.NoError(t, err)
	now := time.Now().UTC()

	p, err := partner.RestorePartner(partner.RestorePartnerParams{
		ID:                   kernel.NewUUID(),
		UserID:               kernel.NewUUID(),
		VehicleType:          partner.Motorcycle,
		IsAvailable:          true,
		IsOnline:             true,
		LastActive:           now,
		Location:             &location,
		Rating:               4.5,
		TotalDeliveries:      80,
		SuccessfulDeliveries: 72,
		HourlyRate:           decimal.NewFromInt(400),
		MaxDistanceKm:        partner.DefaultMaxDistanceKm,
		CreatedAt:            now,
		UpdatedAt:            now,
	})
	require.NoError(t, err)
	return p
}
