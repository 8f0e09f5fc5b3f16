// Package carrierrepo persists carrier aggregates in the carriers table.
package carrierrepo

import (
	"time"

	"tracking/internal/adapters/out/postgres/payloadcols"
	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/clock"
)

// CarrierDTO represents the database structure for persisting carrier aggregates.
type CarrierDTO struct {
	Barcode    string              `gorm:"type:varchar(64);primaryKey"`
	State      string              `gorm:"type:varchar(16);not null;index"`
	Payload    payloadcols.Columns `gorm:"embedded"`
	AttachedAt *time.Time          `gorm:"type:timestamptz"`
	CreatedAt  time.Time           `gorm:"type:timestamptz;not null;autoCreateTime:false"`
}

// TableName overrides GORM's default "carrier_dtos".
func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(c *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		Barcode:    c.Barcode().String(),
		State:      c.State().String(),
		Payload:    payloadcols.FromDomain(c.Payload()),
		AttachedAt: c.AttachedAt(),
		CreatedAt:  c.CreatedAt(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	barcode, err := kernel.NewBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	state, err := carrier.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(
		barcode,
		state,
		dto.Payload.ToDomain(),
		clock.NormalizePtr(dto.AttachedAt),
		clock.Normalize(dto.CreatedAt),
	)
}
