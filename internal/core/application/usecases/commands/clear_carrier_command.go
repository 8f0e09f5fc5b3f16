package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrClearCarrierCommandIsNotConstructed = errors.New(
	"ClearCarrierCommand must be created via NewClearCarrierCommand constructor",
)

// ClearCarrierCommand empties a FULL carrier by hand.
type ClearCarrierCommand struct {
	carrier kernel.Barcode

	guard guard.ConstructorGuard
}

func NewClearCarrierCommand(carrierBarcode string) (ClearCarrierCommand, error) {
	barcode, err := kernel.NewBarcode(carrierBarcode)
	if err != nil {
		return ClearCarrierCommand{}, err
	}

	return ClearCarrierCommand{
		carrier: barcode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ClearCarrierCommand) Validate() error {
	return c.guard.Validate(ErrClearCarrierCommandIsNotConstructed)
}

func (c ClearCarrierCommand) Carrier() kernel.Barcode {
	return c.carrier
}
