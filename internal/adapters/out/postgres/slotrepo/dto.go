// Package slotrepo persists process slots in the process_slots table.
package slotrepo

import (
	"time"

	"tracking/internal/adapters/out/postgres/payloadcols"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/slot"
	"tracking/internal/pkg/clock"
)

// ProcessSlotDTO represents the database structure for persisting process slots.
type ProcessSlotDTO struct {
	Barcode          string              `gorm:"type:varchar(64);primaryKey"`
	ProcessType      string              `gorm:"type:varchar(16);not null"`
	PairedBarcode    *string             `gorm:"type:varchar(64);index"`
	State            string              `gorm:"type:varchar(16);not null;index"`
	ProcessName      *string             `gorm:"type:varchar(255)"`
	SourceCarrier    *string             `gorm:"type:varchar(64);index"`
	Payload          payloadcols.Columns `gorm:"embedded"`
	ProcessStartTime *time.Time          `gorm:"type:timestamptz"`
	ProcessEndTime   *time.Time          `gorm:"type:timestamptz"`
	AttachedAt       *time.Time          `gorm:"type:timestamptz"`
}

// TableName overrides GORM's default "process_slot_dtos".
func (ProcessSlotDTO) TableName() string {
	return "process_slots"
}

func fromDomain(s *slot.ProcessSlot) ProcessSlotDTO {
	dto := ProcessSlotDTO{
		Barcode:          s.Barcode().String(),
		ProcessType:      s.ProcessType().String(),
		PairedBarcode:    barcodeString(s.PairedBarcode()),
		State:            s.State().String(),
		SourceCarrier:    barcodeString(s.SourceCarrier()),
		Payload:          payloadcols.FromDomain(s.Payload()),
		ProcessStartTime: s.ProcessStartTime(),
		ProcessEndTime:   s.ProcessEndTime(),
		AttachedAt:       s.AttachedAt(),
	}
	if name := s.ProcessName(); name != "" {
		dto.ProcessName = &name
	}
	return dto
}

func toDomain(dto ProcessSlotDTO) (*slot.ProcessSlot, error) {
	barcode, err := kernel.NewBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	processType, err := slot.ParseProcessType(dto.ProcessType)
	if err != nil {
		return nil, err
	}

	state, err := slot.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	paired, err := parseBarcode(dto.PairedBarcode)
	if err != nil {
		return nil, err
	}

	source, err := parseBarcode(dto.SourceCarrier)
	if err != nil {
		return nil, err
	}

	snapshot := slot.Snapshot{
		State:            state,
		SourceCarrier:    source,
		Payload:          dto.Payload.ToDomain(),
		ProcessStartTime: clock.NormalizePtr(dto.ProcessStartTime),
		ProcessEndTime:   clock.NormalizePtr(dto.ProcessEndTime),
		AttachedAt:       clock.NormalizePtr(dto.AttachedAt),
	}
	if dto.ProcessName != nil {
		snapshot.ProcessName = *dto.ProcessName
	}

	return slot.RestoreProcessSlot(barcode, processType, paired, snapshot)
}

func barcodeString(b *kernel.Barcode) *string {
	if b == nil {
		return nil
	}
	s := b.String()
	return &s
}

func parseBarcode(s *string) (*kernel.Barcode, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	b, err := kernel.NewBarcode(*s)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
