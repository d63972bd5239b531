package postgres

import (
	"gorm.io/gorm"

	"github.com/prabhatghimire/sajiloLife/internal/adapters/out/postgres/deliveryrepo"
	"github.com/prabhatghimire/sajiloLife/internal/adapters/out/postgres/partnerrepo"
)

// AutoMigrate creates or updates the database schema for all persisted
// aggregates.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&partnerrepo.PartnerDTO{},
		&deliveryrepo.DeliveryJobDTO{},
		&deliveryrepo.SyncRecordDTO{},
	)
}
