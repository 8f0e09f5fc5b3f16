package memory

import (
	"context"
	"fmt"
	"slices"

	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/history"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/slot"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

type carrierRepository struct {
	store  *Store
	staged *changes
}

func (r *carrierRepository) lookup(code string) (*carrier.Carrier, bool) {
	if r.staged != nil {
		if c, ok := r.staged.carriers[code]; ok {
			return c, true
		}
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.carriers[code]
	return c, ok
}

func (r *carrierRepository) write(c *carrier.Carrier) {
	clone := cloneCarrier(c)
	code := clone.Barcode().String()
	if r.staged != nil {
		r.staged.carriers[code] = clone
		return
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.carriers[code] = clone
}

func (r *carrierRepository) Add(_ context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.lookup(aggregate.Barcode().String()); exists {
		return fmt.Errorf("%w: carrier %s already exists", ports.ErrConflict, aggregate.Barcode())
	}
	r.write(aggregate)
	return nil
}

func (r *carrierRepository) Update(_ context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.lookup(aggregate.Barcode().String()); !exists {
		return errs.NewObjectNotFoundError("carrier", aggregate.Barcode().String())
	}
	r.write(aggregate)
	return nil
}

func (r *carrierRepository) Get(_ context.Context, barcode kernel.Barcode) (*carrier.Carrier, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}
	c, ok := r.lookup(barcode.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("carrier", barcode.String())
	}
	return cloneCarrier(c), nil
}

// GetForUpdate needs no row lock: the transaction already holds the store lock.
func (r *carrierRepository) GetForUpdate(ctx context.Context, barcode kernel.Barcode) (*carrier.Carrier, error) {
	return r.Get(ctx, barcode)
}

type slotRepository struct {
	store  *Store
	staged *changes
}

func (r *slotRepository) lookup(code string) (*slot.ProcessSlot, bool) {
	if r.staged != nil {
		if s, ok := r.staged.slots[code]; ok {
			return s, true
		}
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.slots[code]
	return s, ok
}

func (r *slotRepository) write(s *slot.ProcessSlot) {
	clone := cloneSlot(s)
	code := clone.Barcode().String()
	if r.staged != nil {
		r.staged.slots[code] = clone
		return
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.slots[code] = clone
}

func (r *slotRepository) Add(_ context.Context, aggregate *slot.ProcessSlot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.lookup(aggregate.Barcode().String()); exists {
		return fmt.Errorf("%w: process slot %s already exists", ports.ErrConflict, aggregate.Barcode())
	}
	r.write(aggregate)
	return nil
}

func (r *slotRepository) Update(_ context.Context, aggregate *slot.ProcessSlot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.lookup(aggregate.Barcode().String()); !exists {
		return errs.NewObjectNotFoundError("process slot", aggregate.Barcode().String())
	}
	r.write(aggregate)
	return nil
}

func (r *slotRepository) Get(_ context.Context, barcode kernel.Barcode) (*slot.ProcessSlot, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}
	s, ok := r.lookup(barcode.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("process slot", barcode.String())
	}
	return cloneSlot(s), nil
}

func (r *slotRepository) GetForUpdate(_ context.Context, barcodes ...kernel.Barcode) ([]*slot.ProcessSlot, error) {
	codes := make([]string, 0, len(barcodes))
	for _, b := range barcodes {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		codes = append(codes, b.String())
	}
	slices.Sort(codes)
	codes = slices.Compact(codes)

	slots := make([]*slot.ProcessSlot, 0, len(codes))
	for _, code := range codes {
		if s, ok := r.lookup(code); ok {
			slots = append(slots, cloneSlot(s))
		}
	}
	return slots, nil
}

type historyRepository struct {
	store  *Store
	staged *changes
}

func (r *historyRepository) Append(_ context.Context, event *history.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if r.staged != nil {
		r.staged.events = append(r.staged.events, event)
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = append(r.store.events, event)
	return nil
}
