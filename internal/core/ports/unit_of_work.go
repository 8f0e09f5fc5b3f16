package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one storage transaction. Rows written between Begin and Commit
// become visible together or not at all, and rows read with GetForUpdate stay
// locked until Commit or Rollback.
//
// Begin on an open transaction is a no-op. Commit and Rollback without one
// return an error; handlers defer Rollback and discard that error.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CarrierRepository() CarrierRepository
	ProcessSlotRepository() ProcessSlotRepository
	HistoryRepository() HistoryRepository
}
