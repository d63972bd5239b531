package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/queries"
)

func TestNewGetUnsyncedDeliveriesQuery_Valid(t *testing.T) {
	query := queries.NewGetUnsyncedDeliveriesQuery()
	require.NoError(t, query.Validate())
}

func TestGetUnsyncedDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnsyncedDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnsyncedDeliveriesQueryIsNotConstructed)
}
