package ports

import (
	"context"

	"tracking/internal/core/domain/model/history"
)

// HistoryRepository is append-only. Events are never updated or deleted.
type HistoryRepository interface {
	Append(ctx context.Context, event *history.Event) error
}
