package partner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
)

func TestVehicleTypeFromString(t *testing.T) {
	t.Run("should parse all wire names", func(t *testing.T) {
		for name, want := range map[string]partner.VehicleType{
			"motorcycle": partner.Motorcycle,
			"bicycle":    partner.Bicycle,
			"car":        partner.Car,
			"van":        partner.Van,
		} {
			got, err := partner.VehicleTypeFromString(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "truck", "Motorcycle"} {
			_, err := partner.VehicleTypeFromString(name)
			assert.Error(t, err, name)
		}
	})
}

func TestVehicleType_Validate(t *testing.T) {
	t.Run("should accept defined types", func(t *testing.T) {
		for _, vt := range []partner.VehicleType{
			partner.Motorcycle, partner.Bicycle, partner.Car, partner.Van,
		} {
			assert.NoError(t, vt.Validate(), vt.String())
		}
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		assert.Error(t, partner.VehicleUnknown.Validate())
		assert.Error(t, partner.VehicleType(42).Validate())
	})
}
