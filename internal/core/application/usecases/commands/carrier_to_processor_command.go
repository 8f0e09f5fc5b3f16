package commands

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrCarrierToProcessorCommandIsNotConstructed = errors.New(
	"CarrierToProcessorCommand must be created via NewCarrierToProcessorCommand constructor",
)

// CarrierToProcessorCommand feeds a FULL carrier into an EMPTY input slot.
type CarrierToProcessorCommand struct {
	carrier     kernel.Barcode
	inputSlot   kernel.Barcode
	processName string

	guard guard.ConstructorGuard
}

// NewCarrierToProcessorCommand requires both barcodes. processName may be blank.
func NewCarrierToProcessorCommand(
	carrierBarcode string,
	inputSlotBarcode string,
	processName string,
) (CarrierToProcessorCommand, error) {
	cmd := CarrierToProcessorCommand{
		processName: strings.TrimSpace(processName),
		guard:       guard.NewConstructorGuard(),
	}

	var carrierErr, slotErr error
	cmd.carrier, carrierErr = kernel.NewBarcode(carrierBarcode)
	cmd.inputSlot, slotErr = kernel.NewBarcode(inputSlotBarcode)
	if err := errors.Join(carrierErr, slotErr); err != nil {
		return CarrierToProcessorCommand{}, err
	}

	return cmd, nil
}

func (c CarrierToProcessorCommand) Validate() error {
	return c.guard.Validate(ErrCarrierToProcessorCommandIsNotConstructed)
}

func (c CarrierToProcessorCommand) Carrier() kernel.Barcode   { return c.carrier }
func (c CarrierToProcessorCommand) InputSlot() kernel.Barcode { return c.inputSlot }
func (c CarrierToProcessorCommand) ProcessName() string       { return c.processName }
