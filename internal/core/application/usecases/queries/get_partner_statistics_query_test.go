package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/queries"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
)

func TestNewGetPartnerStatisticsQuery_Valid(t *testing.T) {
	partnerID := kernel.NewUUID()

	query, err := queries.NewGetPartnerStatisticsQuery(partnerID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, partnerID, query.PartnerID())
}

func TestNewGetPartnerStatisticsQuery_InvalidPartnerID(t *testing.T) {
	_, err := queries.NewGetPartnerStatisticsQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetPartnerStatisticsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPartnerStatisticsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPartnerStatisticsQueryIsNotConstructed)
}
