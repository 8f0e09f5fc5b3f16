package historyrepo

import (
	"context"

	"tracking/internal/adapters/out/postgres/pgerr"
	"tracking/internal/core/domain/model/history"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM. It exposes
// no update or delete.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append inserts one event row.
func (r *GormHistoryRepository) Append(ctx context.Context, event *history.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}
