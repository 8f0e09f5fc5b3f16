package queries

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrCarrierJourneyQueryIsNotConstructed = errors.New(
	"CarrierJourneyQuery must be created via NewCarrierJourneyQuery constructor",
)

// CarrierJourneyQuery follows one carrier through the line in the order it
// happened.
type CarrierJourneyQuery struct {
	carrier kernel.Barcode
	guard   guard.ConstructorGuard
}

func NewCarrierJourneyQuery(carrierBarcode string) (CarrierJourneyQuery, error) {
	barcode, err := kernel.NewBarcode(strings.TrimSpace(carrierBarcode))
	if err != nil {
		return CarrierJourneyQuery{}, err
	}
	return CarrierJourneyQuery{carrier: barcode, guard: guard.NewConstructorGuard()}, nil
}

func (q CarrierJourneyQuery) Validate() error {
	return q.guard.Validate(ErrCarrierJourneyQueryIsNotConstructed)
}

func (q CarrierJourneyQuery) Carrier() kernel.Barcode { return q.carrier }
