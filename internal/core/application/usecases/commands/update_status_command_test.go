package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/commands"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
)

func TestNewUpdateStatusCommand_ValidInput(t *testing.T) {
	// Arrange
	jobID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewUpdateStatusCommand(jobID, delivery.PickedUp)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.JobID().IsEqual(jobID))
	assert.Equal(t, delivery.PickedUp, cmd.Target())
}

func TestNewUpdateStatusCommand_UnknownStatus(t *testing.T) {
	// Act
	_, err := commands.NewUpdateStatusCommand(kernel.NewUUID(), delivery.Unknown)

	// Assert
	require.Error(t, err)
}

func TestNewUpdateStatusCommand_InvalidJobID(t *testing.T) {
	// Act
	_, err := commands.NewUpdateStatusCommand(kernel.UUID{}, delivery.Delivered)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateStatusCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.UpdateStatusCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateStatusCommandIsNotConstructed)
}
