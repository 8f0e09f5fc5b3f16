// Package ports defines the persistence contracts of the tracking core.
// Adapters under internal/adapters/out implement them; the application layer
// depends only on these interfaces.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
type CarrierRepository interface {
	// Add persists a new carrier. A barcode that already exists is reported
	// as ErrConflict.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update overwrites the stored state of an existing carrier.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get returns the carrier without locking it. Returns errs.ErrObjectNotFound
	// when the barcode is unknown.
	Get(ctx context.Context, barcode kernel.Barcode) (*carrier.Carrier, error)

	// GetForUpdate returns the carrier and holds a row lock on it until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, barcode kernel.Barcode) (*carrier.Carrier, error)
}
