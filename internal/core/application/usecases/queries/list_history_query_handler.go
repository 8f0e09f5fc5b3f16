package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListHistoryQueryHandler struct {
	db      *gorm.DB
	display Display
}

func NewListHistoryQueryHandler(db *gorm.DB, display Display) ListHistoryQueryHandler {
	return ListHistoryQueryHandler{db: db, display: display}
}

func (h ListHistoryQueryHandler) Handle(ctx context.Context, query ListHistoryQuery) (ListHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListHistoryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM history_events`).Scan(&total).Error; err != nil {
		return ListHistoryResponse{}, err
	}

	var rows []historyRow
	err := db.Raw(
		`SELECT `+historyColumns+` FROM history_events `+newestFirst+` LIMIT ? OFFSET ?`,
		query.Limit(), query.Offset(),
	).Scan(&rows).Error
	if err != nil {
		return ListHistoryResponse{}, err
	}

	limit := int64(query.Limit())
	return ListHistoryResponse{
		Entries: toEntries(rows, h.display),
		Page:    query.Page(),
		Limit:   query.Limit(),
		Total:   total,
		Pages:   (total + limit - 1) / limit,
	}, nil
}
