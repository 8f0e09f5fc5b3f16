package memory

import (
	"context"
	"errors"

	"tracking/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a matching Begin.
var ErrNoTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes and applies them to the store on Commit. Outside a
// transaction repositories write straight through.
type UnitOfWork struct {
	store  *Store
	staged *changes
}

// Begin waits for the store-wide transaction lock or for ctx to end.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.staged != nil {
		return nil
	}
	select {
	case u.store.sem <- struct{}{}:
	case <-ctx.Done():
		return errors.Join(ports.ErrLockTimeout, ctx.Err())
	}
	u.staged = newChanges()
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.staged == nil {
		return ErrNoTransaction
	}
	defer u.release()
	return u.store.apply(u.staged)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.staged == nil {
		return ErrNoTransaction
	}
	u.release()
	return nil
}

func (u *UnitOfWork) release() {
	u.staged = nil
	<-u.store.sem
}

func (u *UnitOfWork) CarrierRepository() ports.CarrierRepository {
	return &carrierRepository{store: u.store, staged: u.staged}
}

func (u *UnitOfWork) ProcessSlotRepository() ports.ProcessSlotRepository {
	return &slotRepository{store: u.store, staged: u.staged}
}

func (u *UnitOfWork) HistoryRepository() ports.HistoryRepository {
	return &historyRepository{store: u.store, staged: u.staged}
}
