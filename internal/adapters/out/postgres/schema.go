package postgres

import (
	"tracking/internal/adapters/out/postgres/carrierrepo"
	"tracking/internal/adapters/out/postgres/historyrepo"
	"tracking/internal/adapters/out/postgres/slotrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, in truncation-safe order.
var Tables = []string{"history_events", "process_slots", "carriers"}

// Migrate creates or updates the carriers, process_slots and history_events tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&carrierrepo.CarrierDTO{},
		&slotrepo.ProcessSlotDTO{},
		&historyrepo.EventDTO{},
	)
}
