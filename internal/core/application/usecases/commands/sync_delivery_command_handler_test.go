package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/commands"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

func TestSyncDeliveryCommandHandler_Handle_NewPayload(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	captured := time.Now().UTC().Add(-2 * time.Hour)
	payload := validSyncPayload()
	payload.PickupLat = decimalPtr(27.7172)
	payload.PickupLng = decimalPtr(85.3240)
	payload.DropoffLat = decimalPtr(27.6710)
	payload.DropoffLng = decimalPtr(85.3188)
	payload.CreatedAt = &captured
	cmd, err := commands.NewSyncDeliveryCommand(customerID, payload)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("PartnerRepository").Return(partnerRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	mock.InOrder(
		deliveryRepo.On("GetByLocalID", ctx, customerID, "offline-42").
			Return(nil, errs.NewObjectNotFoundError("local_id", "offline-42")).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.DeliveryJob")).Return(nil).Once(),
		deliveryRepo.On("AddSyncRecord", ctx, mock.AnythingOfType("*delivery.SyncRecord")).Return(nil).Once(),
		partnerRepo.On("GetAllEligible", ctx).Return([]*partner.Partner{}, nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSyncDeliveryCommandHandler(factory)
	job, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Pending, job.Status())
	assert.True(t, job.IsSynced())
	assert.Equal(t, "offline-42", job.LocalID())
	// The client capture time survives as the job's creation time.
	assert.Equal(t, captured, job.CreatedAt())
	require.NotNil(t, job.EstimatedDistanceKm())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	// The sync record was resolved as successful before persisting.
	recordCall := deliveryRepo.Calls[2]
	record := recordCall.Arguments[1].(*delivery.SyncRecord)
	assert.Equal(t, delivery.SyncSuccess, record.Status())
	assert.True(t, record.DeliveryID().IsEqual(job.ID()))
	require.NotNil(t, record.SyncedAt())
}

func TestSyncDeliveryCommandHandler_Handle_ReplayReturnsExistingJob(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	existing := newPendingJob(t)
	cmd, err := commands.NewSyncDeliveryCommand(customerID, validSyncPayload())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("GetByLocalID", ctx, customerID, "offline-42").Return(existing, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSyncDeliveryCommandHandler(factory)
	job, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, existing, job)
	deliveryRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	deliveryRepo.AssertNotCalled(t, "AddSyncRecord", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSyncDeliveryCommandHandler_Handle_FutureCaptureTimeIgnored(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	future := time.Now().UTC().Add(time.Hour)
	payload := validSyncPayload()
	payload.CreatedAt = &future
	cmd, err := commands.NewSyncDeliveryCommand(customerID, payload)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("PartnerRepository").Return(partnerRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("GetByLocalID", ctx, customerID, "offline-42").
		Return(nil, errs.NewObjectNotFoundError("local_id", "offline-42")).Once()
	deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.DeliveryJob")).Return(nil).Once()
	deliveryRepo.On("AddSyncRecord", ctx, mock.AnythingOfType("*delivery.SyncRecord")).Return(nil).Once()
	partnerRepo.On("GetAllEligible", ctx).Return([]*partner.Partner{}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSyncDeliveryCommandHandler(factory)
	job, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, job.CreatedAt().Before(future))
}

func TestSyncDeliveryCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewSyncDeliveryCommand(customerID, validSyncPayload())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("GetByLocalID", ctx, customerID, "offline-42").
		Return(nil, assert.AnError).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSyncDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
}

func TestSyncDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SyncDeliveryCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewSyncDeliveryCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSyncDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
