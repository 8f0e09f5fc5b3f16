// Package queries contains the read side: the barcode resolver and the history
// reports. Handlers read the tables directly with raw SQL and return read models
// that carry every instant twice, as a UTC value and as a display string.
package queries

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
)

const (
	// DefaultPageLimit is the ListHistory page size when none is given.
	DefaultPageLimit = 50
	// MaxPageLimit caps the ListHistory page size.
	MaxPageLimit = 100
	// DefaultResolveLimit is the number of events returned with a resolved barcode.
	DefaultResolveLimit = 50
	// DefaultSearchLimit bounds search, process and journey reports.
	DefaultSearchLimit = 100
)

// Display formats instants for operators.
type Display interface {
	ToDisplay(t time.Time) string
	ToDisplayPtr(t *time.Time) *string
}

// CarrierView is a FULL carrier as an operator sees it.
type CarrierView struct {
	Barcode           string
	State             string
	Payload           *kernel.Payload
	AttachedAt        *time.Time
	DisplayAttachedAt *string
}

// SlotView is a visible process slot. State is the operator-facing phase:
// IN_PROCESS or COMPLETED.
type SlotView struct {
	Barcode                 string
	ProcessType             string
	PairedBarcode           *string
	State                   string
	ProcessName             string
	SourceCarrier           *string
	Payload                 *kernel.Payload
	ProcessStartTime        *time.Time
	DisplayProcessStartTime *string
	ProcessEndTime          *time.Time
	DisplayProcessEndTime   *string
	AttachedAt              *time.Time
	DisplayAttachedAt       *string
}

// HistoryEntry is one history_events row.
type HistoryEntry struct {
	ID          string
	EventType   string
	ProcessCode string
	ProcessName string
	Payload     *kernel.Payload

	CarrierBarcode *string
	SlotBarcode    *string
	FromBarcode    *string
	ToBarcode      *string
	InputCarrier   *string
	OutputCarrier  *string
	InputSlot      *string
	OutputSlot     *string

	ProcessStartTime        *time.Time
	DisplayProcessStartTime *string
	ProcessEndTime          *time.Time
	DisplayProcessEndTime   *string
	DurationSeconds         *int64
	DisplayDuration         string
	Status                  string
	CreatedAt               time.Time
	DisplayCreatedAt        string
}
