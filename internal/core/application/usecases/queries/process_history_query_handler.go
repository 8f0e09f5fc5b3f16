package queries

import (
	"context"

	"gorm.io/gorm"
)

type ProcessHistoryQueryHandler struct {
	db      *gorm.DB
	display Display
	limit   int
}

func NewProcessHistoryQueryHandler(db *gorm.DB, display Display, limit int) ProcessHistoryQueryHandler {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return ProcessHistoryQueryHandler{db: db, display: display, limit: limit}
}

// Handle returns the newest events first.
func (h ProcessHistoryQueryHandler) Handle(ctx context.Context, query ProcessHistoryQuery) ([]HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []historyRow
	err := h.db.WithContext(ctx).Raw(
		`SELECT `+historyColumns+` FROM history_events WHERE process_code = ? `+newestFirst+` LIMIT ?`,
		query.ProcessCode(), h.limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toEntries(rows, h.display), nil
}
