package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/commands"
)

func TestNewDispatchPendingCommand(t *testing.T) {
	// Act
	cmd := commands.NewDispatchPendingCommand()

	// Assert
	require.NoError(t, cmd.Validate())
}

func TestDispatchPendingCommandValidation(t *testing.T) {
	// Arrange
	var cmd commands.DispatchPendingCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDispatchPendingCommandIsNotConstructed)
}
