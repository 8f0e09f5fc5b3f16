package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type CarrierJourneyQueryHandler struct {
	db      *gorm.DB
	display Display
	limit   int
}

func NewCarrierJourneyQueryHandler(db *gorm.DB, display Display, limit int) CarrierJourneyQueryHandler {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return CarrierJourneyQueryHandler{db: db, display: display, limit: limit}
}

// Handle returns the events where the code acted as a carrier, oldest first.
func (h CarrierJourneyQueryHandler) Handle(ctx context.Context, query CarrierJourneyQuery) ([]HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []historyRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+historyColumns+` FROM history_events
		WHERE carrier_barcode = @code OR input_carrier = @code OR output_carrier = @code
		ORDER BY created_at ASC, id ASC
		LIMIT @limit`,
		sql.Named("code", query.Carrier().String()), sql.Named("limit", h.limit),
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toEntries(rows, h.display), nil
}
