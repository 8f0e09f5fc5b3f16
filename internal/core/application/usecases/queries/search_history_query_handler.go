package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type SearchHistoryQueryHandler struct {
	db      *gorm.DB
	display Display
	limit   int
}

// NewSearchHistoryQueryHandler returns at most limit rows per search; a
// non-positive limit means DefaultSearchLimit.
func NewSearchHistoryQueryHandler(db *gorm.DB, display Display, limit int) SearchHistoryQueryHandler {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return SearchHistoryQueryHandler{db: db, display: display, limit: limit}
}

func (h SearchHistoryQueryHandler) Handle(ctx context.Context, query SearchHistoryQuery) ([]HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []historyRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+historyColumns+` FROM history_events
		WHERE carrier_barcode ILIKE @q OR slot_barcode ILIKE @q
			OR from_barcode ILIKE @q OR to_barcode ILIKE @q
			OR input_carrier ILIKE @q OR output_carrier ILIKE @q
			OR input_slot ILIKE @q OR output_slot ILIKE @q
			OR customer_name ILIKE @q OR lot_number ILIKE @q
			OR process_name ILIKE @q OR process_code ILIKE @q
		`+newestFirst+` LIMIT @limit`,
		sql.Named("q", query.Pattern()), sql.Named("limit", h.limit),
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toEntries(rows, h.display), nil
}
