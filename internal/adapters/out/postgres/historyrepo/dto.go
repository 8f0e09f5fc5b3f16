// Package historyrepo appends history events to the history_events table.
package historyrepo

import (
	"time"

	"tracking/internal/adapters/out/postgres/payloadcols"
	"tracking/internal/core/domain/model/history"
	"tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EventDTO is one row of history_events. Each reference column is indexed
// because the resolver matches a code against all of them.
type EventDTO struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	EventType        string              `gorm:"type:varchar(32);not null;index"`
	ProcessCode      *string             `gorm:"type:varchar(64);index"`
	ProcessName      *string             `gorm:"type:varchar(255)"`
	Payload          payloadcols.Columns `gorm:"embedded"`
	CarrierBarcode   *string             `gorm:"type:varchar(64);index"`
	SlotBarcode      *string             `gorm:"type:varchar(64);index"`
	FromBarcode      *string             `gorm:"type:varchar(64);index"`
	ToBarcode        *string             `gorm:"type:varchar(64);index"`
	InputCarrier     *string             `gorm:"type:varchar(64);index"`
	OutputCarrier    *string             `gorm:"type:varchar(64);index"`
	InputSlot        *string             `gorm:"type:varchar(64);index"`
	OutputSlot       *string             `gorm:"type:varchar(64);index"`
	ProcessStartTime *time.Time          `gorm:"type:timestamptz"`
	ProcessEndTime   *time.Time          `gorm:"type:timestamptz"`
	DurationSeconds  *int64              `gorm:"type:bigint"`
	Status           string              `gorm:"type:varchar(16);not null"`
	CreatedAt        time.Time           `gorm:"type:timestamptz;not null;index;autoCreateTime:false"`
}

// TableName overrides GORM's default "event_dtos".
func (EventDTO) TableName() string {
	return "history_events"
}

func fromDomain(e *history.Event) EventDTO {
	refs := e.References()
	return EventDTO{
		ID:               e.ID().Bytes(),
		EventType:        string(e.Type()),
		ProcessCode:      optional(e.ProcessCode()),
		ProcessName:      optional(e.ProcessName()),
		Payload:          payloadcols.FromDomain(e.Payload()),
		CarrierBarcode:   barcodeString(refs.Carrier),
		SlotBarcode:      barcodeString(refs.Slot),
		FromBarcode:      barcodeString(refs.From),
		ToBarcode:        barcodeString(refs.To),
		InputCarrier:     barcodeString(refs.InputCarrier),
		OutputCarrier:    barcodeString(refs.OutputCarrier),
		InputSlot:        barcodeString(refs.InputSlot),
		OutputSlot:       barcodeString(refs.OutputSlot),
		ProcessStartTime: e.ProcessStartTime(),
		ProcessEndTime:   e.ProcessEndTime(),
		DurationSeconds:  e.DurationSeconds(),
		Status:           string(e.Status()),
		CreatedAt:        e.CreatedAt(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func barcodeString(b *kernel.Barcode) *string {
	if b == nil {
		return nil
	}
	s := b.String()
	return &s
}
