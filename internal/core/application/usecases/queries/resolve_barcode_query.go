package queries

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrResolveBarcodeQueryIsNotConstructed = errors.New(
	"ResolveBarcodeQuery must be created via NewResolveBarcodeQuery constructor",
)

// Kinds reported by the resolver.
const (
	KindSlot    = "slot"
	KindCarrier = "carrier"
	KindUnknown = "unknown"
)

// ResolveBarcodeQuery classifies an arbitrary scanned code.
//
// Example:
//
//	query, err := NewResolveBarcodeQuery("PR-01-in")
//	result, err := handler.Handle(ctx, query)
//	if result.Kind == KindSlot && result.Slot != nil {
//	    fmt.Println(result.Slot.State)
//	}
type ResolveBarcodeQuery struct {
	code  kernel.Barcode
	guard guard.ConstructorGuard
}

func NewResolveBarcodeQuery(code string) (ResolveBarcodeQuery, error) {
	barcode, err := kernel.NewBarcode(strings.TrimSpace(code))
	if err != nil {
		return ResolveBarcodeQuery{}, err
	}
	return ResolveBarcodeQuery{code: barcode, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveBarcodeQuery) Validate() error {
	return q.guard.Validate(ErrResolveBarcodeQueryIsNotConstructed)
}

func (q ResolveBarcodeQuery) Code() kernel.Barcode { return q.code }

// ResolveBarcodeResponse holds at most one of Slot and Carrier. ActiveSlot is set
// for a carrier currently feeding an IN_PROCESS input slot.
type ResolveBarcodeResponse struct {
	Code       string
	Kind       string
	Found      bool
	Slot       *SlotView
	Carrier    *CarrierView
	ActiveSlot *SlotView
	History    []HistoryEntry
}
