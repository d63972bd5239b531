package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/queries"
)

func TestNewGetDeliveryStatisticsQuery_Valid(t *testing.T) {
	query := queries.NewGetDeliveryStatisticsQuery()
	require.NoError(t, query.Validate())
}

func TestGetDeliveryStatisticsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveryStatisticsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveryStatisticsQueryIsNotConstructed)
}
