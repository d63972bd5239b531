package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	pgadapter "github.com/prabhatghimire/sajiloLife/internal/adapters/out/postgres"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
	"github.com/prabhatghimire/sajiloLife/internal/core/ports"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes a PostgreSQL container and database connection for
// all tests, and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(pgadapter.AutoMigrate(db))

	suite.factory = pgadapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries, sync_records, partners").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory produces isolated
// instances that each expose both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow1.PartnerRepository())
	suite.NotNil(uow2.DeliveryRepository())
	suite.NotNil(uow2.PartnerRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback
// operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_CommitWithoutBegin verifies commit and rollback require an
// open transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_CommitMakesChangesVisible verifies aggregates written inside
// a committed transaction are visible to subsequent readers.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitMakesChangesVisible() {
	ctx := context.Background()

	job := suite.createTestJob()
	p := suite.createTestPartner()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, job))
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, p))

	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()

	retrievedJob, err := reader.DeliveryRepository().Get(ctx, job.ID())
	suite.Require().NoError(err)
	suite.Equal(job.ID(), retrievedJob.ID())

	retrievedPartner, err := reader.PartnerRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.ID(), retrievedPartner.ID())
}

// TestUnitOfWork_RollbackDiscardsChanges verifies aggregates written inside a
// rolled-back transaction never become visible.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()

	job := suite.createTestJob()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, job))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()

	retrieved, err := reader.DeliveryRepository().Get(ctx, job.ID())
	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_CrossAggregateAtomicity verifies a rollback covers writes to
// both repositories in the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CrossAggregateAtomicity() {
	ctx := context.Background()

	job := suite.createTestJob()
	p := suite.createTestPartner()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, job))
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, p))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()

	_, err := reader.DeliveryRepository().Get(ctx, job.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = reader.PartnerRepository().Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestJob builds a valid pending job.
func (suite *UnitOfWorkIntegrationTestSuite) createTestJob() *delivery.DeliveryJob {
	job, err := delivery.NewDeliveryJob(
		kernel.NewUUID(), kernel.NewUUID(),
		"12 Thamel Marg", "88 Patan Road",
		"Asha Shrestha", "+977-9841000000",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return job
}

// createTestPartner builds a valid partner.
func (suite *UnitOfWorkIntegrationTestSuite) createTestPartner() *partner.Partner {
	p, err := partner.NewPartner(kernel.NewUUID(), kernel.NewUUID(), partner.Bicycle, time.Now().UTC())
	suite.Require().NoError(err)
	return p
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
