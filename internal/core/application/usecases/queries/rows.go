package queries

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/slot"
	"tracking/internal/pkg/clock"

	"github.com/google/uuid"
)

// historyColumns is the select list shared by every history report.
const historyColumns = `
	id, event_type, process_code, process_name,
	customer_name, lot_number, design_name, design_number, grey_width, finish_width,
	fabric_quality, quantity, meters, matching, order_receive_date, grey_receive_date,
	remarks, pack_instructions,
	carrier_barcode, slot_barcode, from_barcode, to_barcode,
	input_carrier, output_carrier, input_slot, output_slot,
	process_start_time, process_end_time, duration_seconds, status, created_at`

// mentionsCode matches @code under any of the eight reference roles.
const mentionsCode = `(
	carrier_barcode = @code OR slot_barcode = @code OR
	from_barcode = @code OR to_barcode = @code OR
	input_carrier = @code OR output_carrier = @code OR
	input_slot = @code OR output_slot = @code)`

// newestFirst breaks created_at ties by id so pages are stable.
const newestFirst = `ORDER BY created_at DESC, id DESC`

type payloadRow struct {
	CustomerName     *string
	LotNumber        *string
	DesignName       *string
	DesignNumber     *string
	GreyWidth        *string
	FinishWidth      *string
	FabricQuality    *string
	Quantity         *string
	Meters           *string
	Matching         *string
	OrderReceiveDate *string
	GreyReceiveDate  *string
	Remarks          *string
	PackInstructions *string
}

func (r payloadRow) toPayload() *kernel.Payload {
	if r == (payloadRow{}) {
		return nil
	}
	return &kernel.Payload{
		CustomerName:     deref(r.CustomerName),
		LotNumber:        deref(r.LotNumber),
		DesignName:       deref(r.DesignName),
		DesignNumber:     deref(r.DesignNumber),
		GreyWidth:        deref(r.GreyWidth),
		FinishWidth:      deref(r.FinishWidth),
		FabricQuality:    deref(r.FabricQuality),
		Quantity:         deref(r.Quantity),
		Meters:           deref(r.Meters),
		Matching:         deref(r.Matching),
		OrderReceiveDate: deref(r.OrderReceiveDate),
		GreyReceiveDate:  deref(r.GreyReceiveDate),
		Remarks:          deref(r.Remarks),
		PackInstructions: deref(r.PackInstructions),
	}
}

type carrierRow struct {
	Barcode    string
	State      string
	Payload    payloadRow `gorm:"embedded"`
	AttachedAt *time.Time
}

func (r carrierRow) toView(display Display) *CarrierView {
	attached := clock.NormalizePtr(r.AttachedAt)
	return &CarrierView{
		Barcode:           r.Barcode,
		State:             r.State,
		Payload:           r.Payload.toPayload(),
		AttachedAt:        attached,
		DisplayAttachedAt: display.ToDisplayPtr(attached),
	}
}

type slotRow struct {
	Barcode          string
	ProcessType      string
	PairedBarcode    *string
	State            string
	ProcessName      *string
	SourceCarrier    *string
	Payload          payloadRow `gorm:"embedded"`
	ProcessStartTime *time.Time
	ProcessEndTime   *time.Time
	AttachedAt       *time.Time
}

func (r slotRow) phase() slot.Phase {
	state, err := slot.ParseState(r.State)
	if err != nil {
		return slot.PhaseEmpty
	}
	return slot.PhaseOf(state, r.ProcessEndTime != nil)
}

func (r slotRow) isVisible() bool {
	p := r.phase()
	return p == slot.PhaseInProcess || p == slot.PhaseCompleted
}

func (r slotRow) toView(display Display) *SlotView {
	started := clock.NormalizePtr(r.ProcessStartTime)
	ended := clock.NormalizePtr(r.ProcessEndTime)
	attached := clock.NormalizePtr(r.AttachedAt)
	return &SlotView{
		Barcode:                 r.Barcode,
		ProcessType:             r.ProcessType,
		PairedBarcode:           r.PairedBarcode,
		State:                   string(r.phase()),
		ProcessName:             deref(r.ProcessName),
		SourceCarrier:           r.SourceCarrier,
		Payload:                 r.Payload.toPayload(),
		ProcessStartTime:        started,
		DisplayProcessStartTime: display.ToDisplayPtr(started),
		ProcessEndTime:          ended,
		DisplayProcessEndTime:   display.ToDisplayPtr(ended),
		AttachedAt:              attached,
		DisplayAttachedAt:       display.ToDisplayPtr(attached),
	}
}

type historyRow struct {
	ID               uuid.UUID
	EventType        string
	ProcessCode      *string
	ProcessName      *string
	Payload          payloadRow `gorm:"embedded"`
	CarrierBarcode   *string
	SlotBarcode      *string
	FromBarcode      *string
	ToBarcode        *string
	InputCarrier     *string
	OutputCarrier    *string
	InputSlot        *string
	OutputSlot       *string
	ProcessStartTime *time.Time
	ProcessEndTime   *time.Time
	DurationSeconds  *int64
	Status           string
	CreatedAt        time.Time
}

func (r historyRow) toEntry(display Display) HistoryEntry {
	started := clock.NormalizePtr(r.ProcessStartTime)
	ended := clock.NormalizePtr(r.ProcessEndTime)
	created := clock.Normalize(r.CreatedAt)
	return HistoryEntry{
		ID:                      r.ID.String(),
		EventType:               r.EventType,
		ProcessCode:             deref(r.ProcessCode),
		ProcessName:             deref(r.ProcessName),
		Payload:                 r.Payload.toPayload(),
		CarrierBarcode:          r.CarrierBarcode,
		SlotBarcode:             r.SlotBarcode,
		FromBarcode:             r.FromBarcode,
		ToBarcode:               r.ToBarcode,
		InputCarrier:            r.InputCarrier,
		OutputCarrier:           r.OutputCarrier,
		InputSlot:               r.InputSlot,
		OutputSlot:              r.OutputSlot,
		ProcessStartTime:        started,
		DisplayProcessStartTime: display.ToDisplayPtr(started),
		ProcessEndTime:          ended,
		DisplayProcessEndTime:   display.ToDisplayPtr(ended),
		DurationSeconds:         r.DurationSeconds,
		DisplayDuration:         clock.FormatDuration(r.DurationSeconds),
		Status:                  r.Status,
		CreatedAt:               created,
		DisplayCreatedAt:        display.ToDisplay(created),
	}
}

func toEntries(rows []historyRow, display Display) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.toEntry(display))
	}
	return entries
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
