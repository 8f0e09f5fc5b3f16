package queries

import (
	"context"
	"database/sql"

	"tracking/internal/core/domain/model/carrier"

	"gorm.io/gorm"
)

// ResolveBarcodeQueryHandler looks a code up in process_slots, then carriers,
// then the event log.
type ResolveBarcodeQueryHandler struct {
	db      *gorm.DB
	display Display
	limit   int
}

// NewResolveBarcodeQueryHandler returns a handler that returns up to limit
// events; a non-positive limit means DefaultResolveLimit.
func NewResolveBarcodeQueryHandler(db *gorm.DB, display Display, limit int) ResolveBarcodeQueryHandler {
	if limit <= 0 {
		limit = DefaultResolveLimit
	}
	return ResolveBarcodeQueryHandler{db: db, display: display, limit: limit}
}

// Handle classifies the code with slots taking priority over carriers. Entities
// are reported only while visible: a FULL carrier, or an IN_PROCESS or
// COMPLETED slot.
func (h ResolveBarcodeQueryHandler) Handle(
	ctx context.Context,
	query ResolveBarcodeQuery,
) (ResolveBarcodeResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolveBarcodeResponse{}, err
	}

	db := h.db.WithContext(ctx)
	code := query.Code().String()
	response := ResolveBarcodeResponse{Code: code, Kind: KindUnknown}

	var slots []slotRow
	if err := db.Raw(`SELECT * FROM process_slots WHERE barcode = ?`, code).Scan(&slots).Error; err != nil {
		return ResolveBarcodeResponse{}, err
	}

	var carriers []carrierRow
	if len(slots) == 0 {
		if err := db.Raw(`SELECT * FROM carriers WHERE barcode = ?`, code).Scan(&carriers).Error; err != nil {
			return ResolveBarcodeResponse{}, err
		}
	}

	switch {
	case len(slots) > 0:
		response.Kind = KindSlot
		if slots[0].isVisible() {
			response.Slot = slots[0].toView(h.display)
		}
	case len(carriers) > 0:
		response.Kind = KindCarrier
		if carriers[0].State == carrier.Full.String() {
			response.Carrier = carriers[0].toView(h.display)
		}
		active, err := h.activeSlot(db, code)
		if err != nil {
			return ResolveBarcodeResponse{}, err
		}
		response.ActiveSlot = active
	}

	var rows []historyRow
	err := db.Raw(
		`SELECT `+historyColumns+` FROM history_events WHERE `+mentionsCode+` `+newestFirst+` LIMIT @limit`,
		sql.Named("code", code), sql.Named("limit", h.limit),
	).Scan(&rows).Error
	if err != nil {
		return ResolveBarcodeResponse{}, err
	}
	response.History = toEntries(rows, h.display)
	response.Found = response.Slot != nil || response.Carrier != nil || response.ActiveSlot != nil ||
		len(response.History) > 0

	return response, nil
}

func (h ResolveBarcodeQueryHandler) activeSlot(db *gorm.DB, carrierCode string) (*SlotView, error) {
	var rows []slotRow
	err := db.Raw(`
		SELECT * FROM process_slots
		WHERE source_carrier = ? AND process_type = 'INPUT' AND state = 'IN_PROCESS'
		ORDER BY process_start_time DESC
		LIMIT 1`, carrierCode).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0].toView(h.display), nil
}
