package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/slot"
)

// ProcessSlotRepository defines the persistence contract for process slots.
type ProcessSlotRepository interface {
	// Add persists a new slot. A barcode that already exists is reported as
	// ErrConflict.
	Add(ctx context.Context, aggregate *slot.ProcessSlot) error

	// Update overwrites the stored state of an existing slot.
	Update(ctx context.Context, aggregate *slot.ProcessSlot) error

	// Get returns the slot without locking it. Returns errs.ErrObjectNotFound
	// when the barcode is unknown.
	Get(ctx context.Context, barcode kernel.Barcode) (*slot.ProcessSlot, error)

	// GetForUpdate locks every existing slot among barcodes, always in barcode
	// order so that two transactions locking the same pair cannot deadlock.
	// Unknown barcodes are skipped; the result is ordered by barcode.
	GetForUpdate(ctx context.Context, barcodes ...kernel.Barcode) ([]*slot.ProcessSlot, error)
}
