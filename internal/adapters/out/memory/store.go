// Package memory is an in-process implementation of the persistence ports.
//
// Transactions are serialized: Begin takes a store-wide lock that is held until
// Commit or Rollback, and writes are staged until Commit. This is enough to run
// the transition engine, including its concurrency rules, without a database.
package memory

import (
	"slices"
	"sort"
	"sync"

	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/history"
	"tracking/internal/core/domain/model/slot"
)

// Store holds committed state.
type Store struct {
	sem chan struct{}

	mu        sync.RWMutex
	carriers  map[string]*carrier.Carrier
	slots     map[string]*slot.ProcessSlot
	events    []*history.Event
	commitErr error
}

func NewStore() *Store {
	return &Store{
		sem:      make(chan struct{}, 1),
		carriers: make(map[string]*carrier.Carrier),
		slots:    make(map[string]*slot.ProcessSlot),
	}
}

// FailNextCommit makes the next Commit return err and discard its writes.
func (s *Store) FailNextCommit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitErr = err
}

// Carrier returns a copy of the committed carrier.
func (s *Store) Carrier(barcode string) (*carrier.Carrier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carriers[barcode]
	if !ok {
		return nil, false
	}
	return cloneCarrier(c), true
}

// Slot returns a copy of the committed slot.
func (s *Store) Slot(barcode string) (*slot.ProcessSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ps, ok := s.slots[barcode]
	if !ok {
		return nil, false
	}
	return cloneSlot(ps), true
}

// Events returns committed events in append order.
func (s *Store) Events() []*history.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

// CarrierBarcodes returns every committed carrier barcode, sorted.
func (s *Store) CarrierBarcodes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.carriers))
	for code := range s.carriers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (s *Store) apply(staged *changes) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commitErr; err != nil {
		s.commitErr = nil
		return err
	}

	for code, c := range staged.carriers {
		s.carriers[code] = c
	}
	for code, ps := range staged.slots {
		s.slots[code] = ps
	}
	s.events = append(s.events, staged.events...)
	return nil
}

// changes are the writes staged by one transaction.
type changes struct {
	carriers map[string]*carrier.Carrier
	slots    map[string]*slot.ProcessSlot
	events   []*history.Event
}

func newChanges() *changes {
	return &changes{
		carriers: make(map[string]*carrier.Carrier),
		slots:    make(map[string]*slot.ProcessSlot),
	}
}

func cloneCarrier(c *carrier.Carrier) *carrier.Carrier {
	clone, err := carrier.RestoreCarrier(c.Barcode(), c.State(), c.Payload(), c.AttachedAt(), c.CreatedAt())
	if err != nil {
		panic(err)
	}
	return clone
}

func cloneSlot(ps *slot.ProcessSlot) *slot.ProcessSlot {
	clone, err := slot.RestoreProcessSlot(ps.Barcode(), ps.ProcessType(), ps.PairedBarcode(), slot.Snapshot{
		State:            ps.State(),
		ProcessName:      ps.ProcessName(),
		SourceCarrier:    ps.SourceCarrier(),
		Payload:          ps.Payload(),
		ProcessStartTime: ps.ProcessStartTime(),
		ProcessEndTime:   ps.ProcessEndTime(),
		AttachedAt:       ps.AttachedAt(),
	})
	if err != nil {
		panic(err)
	}
	return clone
}
