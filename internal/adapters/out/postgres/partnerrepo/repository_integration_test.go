package partnerrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/prabhatghimire/sajiloLife/internal/adapters/out/postgres/deliveryrepo"
	"github.com/prabhatghimire/sajiloLife/internal/adapters/out/postgres/partnerrepo"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// PartnerRepositoryIntegrationTestSuite provides integration tests for
// PartnerRepository using PostgreSQL containers to verify persistence and
// eligibility filtering.
type PartnerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container          *postgres.PostgresContainer
	db                 *gorm.DB
	partnerRepository  *partnerrepo.GormPartnerRepository
	deliveryRepository *deliveryrepo.GormDeliveryRepository
	tracker            *MockAggregateTracker
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&partnerrepo.PartnerDTO{},
		&deliveryrepo.DeliveryJobDTO{},
		&deliveryrepo.SyncRecordDTO{},
	))
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, sync_records, partners").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.partnerRepository = partnerrepo.NewGormPartnerRepository(suite.db, suite.tracker)
	suite.deliveryRepository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAdd_ValidPartner_Success() {
	ctx := context.Background()

	p := suite.createOnlinePartner(time.Now().UTC())
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()

	err := suite.partnerRepository.Add(ctx, p)
	suite.Require().NoError(err)

	suite.assertPartnerCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_ExistingPartner_RoundTripsAllFields() {
	ctx := context.Background()
	now := time.Now().UTC()

	location, err := kernel.GeoPointFromFloats(27.7100, 85.3200)
	suite.Require().NoError(err)

	original, err := partner.RestorePartner(partner.RestorePartnerParams{
		ID:                   kernel.NewUUID(),
		UserID:               kernel.NewUUID(),
		VehicleType:          partner.Motorcycle,
		IsAvailable:          true,
		IsOnline:             true,
		LastActive:           now,
		Location:             &location,
		Rating:               4.2,
		TotalDeliveries:      120,
		SuccessfulDeliveries: 110,
		CancelledDeliveries:  10,
		HourlyRate:           decimal.NewFromFloat(450.50),
		MaxDistanceKm:        25,
		CreatedAt:            now,
		UpdatedAt:            now,
	})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.partnerRepository.Add(ctx, original))

	retrieved, err := suite.partnerRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.UserID(), retrieved.UserID())
	suite.Equal(partner.Motorcycle, retrieved.VehicleType())
	suite.True(retrieved.IsAvailable())
	suite.True(retrieved.IsOnline())
	suite.InDelta(4.2, retrieved.Rating(), 0.0001)
	suite.Equal(120, retrieved.TotalDeliveries())
	suite.Equal(110, retrieved.SuccessfulDeliveries())
	suite.Equal(10, retrieved.CancelledDeliveries())
	suite.True(retrieved.HourlyRate().Equal(decimal.NewFromFloat(450.50)))
	suite.InDelta(25, retrieved.MaxDistanceKm(), 0.0001)

	suite.Require().NotNil(retrieved.Location())
	equal, err := retrieved.Location().IsEqual(location)
	suite.Require().NoError(err)
	suite.True(equal)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_NonExistentPartner_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.partnerRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_GoingOfflinePersistsClearedFlags() {
	ctx := context.Background()
	now := time.Now().UTC()

	p := suite.createOnlinePartner(now)
	suite.tracker.On("TrackAggregate", p.ID(), p).Twice()
	suite.Require().NoError(suite.partnerRepository.Add(ctx, p))

	p.GoOffline(now.Add(time.Minute))
	suite.Require().NoError(suite.partnerRepository.Update(ctx, p))

	retrieved, err := suite.partnerRepository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsOnline())
	suite.False(retrieved.IsAvailable())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_NonExistentPartner_ReturnsError() {
	ctx := context.Background()

	p := suite.createOnlinePartner(time.Now().UTC())

	err := suite.partnerRepository.Update(ctx, p)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsPartner() {
	ctx := context.Background()

	p := suite.createOnlinePartner(time.Now().UTC())
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.partnerRepository.Add(ctx, p))

	retrieved, err := suite.partnerRepository.GetForUpdate(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAllEligible_ExcludesOfflineAndUnavailable() {
	ctx := context.Background()
	now := time.Now().UTC()

	eligible := suite.createOnlinePartner(now)

	offline := suite.createOnlinePartner(now)
	offline.GoOffline(now)

	unavailable := suite.createOnlinePartner(now)
	unavailable.SetAvailability(false, now)

	for _, p := range []*partner.Partner{eligible, offline, unavailable} {
		suite.tracker.On("TrackAggregate", p.ID(), p).Once()
		suite.Require().NoError(suite.partnerRepository.Add(ctx, p))
	}

	candidates, err := suite.partnerRepository.GetAllEligible(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(candidates, 1)
	suite.Equal(eligible.ID(), candidates[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAllEligible_ExcludesPartnersWithActiveJobs() {
	ctx := context.Background()
	now := time.Now().UTC()

	busy := suite.createOnlinePartner(now)
	free := suite.createOnlinePartner(now)
	finished := suite.createOnlinePartner(now)

	for _, p := range []*partner.Partner{busy, free, finished} {
		suite.tracker.On("TrackAggregate", p.ID(), p).Once()
		suite.Require().NoError(suite.partnerRepository.Add(ctx, p))
	}

	activeJob := suite.createTestJob(now)
	suite.Require().NoError(activeJob.Assign(busy.ID(), now))

	deliveredJob := suite.createTestJob(now)
	suite.Require().NoError(deliveredJob.Assign(finished.ID(), now))
	suite.Require().NoError(deliveredJob.TransitionTo(delivery.PickedUp, now))
	suite.Require().NoError(deliveredJob.TransitionTo(delivery.InTransit, now))
	suite.Require().NoError(deliveredJob.TransitionTo(delivery.Delivered, now))

	for _, job := range []*delivery.DeliveryJob{activeJob, deliveredJob} {
		suite.tracker.On("TrackAggregate", job.ID(), job).Once()
		suite.Require().NoError(suite.deliveryRepository.Add(ctx, job))
	}

	candidates, err := suite.partnerRepository.GetAllEligible(ctx)
	suite.Require().NoError(err)

	ids := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		ids[candidate.ID().String()] = true
	}

	suite.Len(candidates, 2)
	suite.True(ids[free.ID().String()], "partner without jobs should be eligible")
	suite.True(ids[finished.ID().String()], "partner with only finished jobs should be eligible")
	suite.False(ids[busy.ID().String()], "partner with an active job should be excluded")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAllEligible_OrdersByCreationTime() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	second := suite.createOnlinePartnerAt(base.Add(10 * time.Minute))
	first := suite.createOnlinePartnerAt(base)
	third := suite.createOnlinePartnerAt(base.Add(20 * time.Minute))

	for _, p := range []*partner.Partner{second, first, third} {
		suite.tracker.On("TrackAggregate", p.ID(), p).Once()
		suite.Require().NoError(suite.partnerRepository.Add(ctx, p))
	}

	candidates, err := suite.partnerRepository.GetAllEligible(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(candidates, 3)
	suite.Equal(first.ID(), candidates[0].ID())
	suite.Equal(second.ID(), candidates[1].ID())
	suite.Equal(third.ID(), candidates[2].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createOnlinePartner builds a partner that is online and available.
func (suite *PartnerRepositoryIntegrationTestSuite) createOnlinePartner(now time.Time) *partner.Partner {
	return suite.createOnlinePartnerAt(now)
}

func (suite *PartnerRepositoryIntegrationTestSuite) createOnlinePartnerAt(created time.Time) *partner.Partner {
	p, err := partner.NewPartner(kernel.NewUUID(), kernel.NewUUID(), partner.Motorcycle, created)
	suite.Require().NoError(err)
	p.GoOnline(created)
	return p
}

// createTestJob builds a valid pending job.
func (suite *PartnerRepositoryIntegrationTestSuite) createTestJob(now time.Time) *delivery.DeliveryJob {
	job, err := delivery.NewDeliveryJob(
		kernel.NewUUID(), kernel.NewUUID(),
		"12 Thamel Marg", "88 Patan Road",
		"Asha Shrestha", "+977-9841000000",
		now,
	)
	suite.Require().NoError(err)
	return job
}

// assertPartnerCount verifies the number of partner rows in the database.
func (suite *PartnerRepositoryIntegrationTestSuite) assertPartnerCount(expected int) {
	var count int64
	err := suite.db.Model(&partnerrepo.PartnerDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestPartnerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerRepositoryIntegrationTestSuite))
}
