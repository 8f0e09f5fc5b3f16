package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrProcessorToCarrierCommandIsNotConstructed = errors.New(
	"ProcessorToCarrierCommand must be created via NewProcessorToCarrierCommand constructor",
)

// ProcessorToCarrierCommand unloads an IN_PROCESS output slot into a carrier.
// The target carrier is created when it does not exist yet.
type ProcessorToCarrierCommand struct {
	outputSlot kernel.Barcode
	carrier    kernel.Barcode

	guard guard.ConstructorGuard
}

func NewProcessorToCarrierCommand(outputSlotBarcode, carrierBarcode string) (ProcessorToCarrierCommand, error) {
	cmd := ProcessorToCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	var slotErr, carrierErr error
	cmd.outputSlot, slotErr = kernel.NewBarcode(outputSlotBarcode)
	cmd.carrier, carrierErr = kernel.NewBarcode(carrierBarcode)
	if err := errors.Join(slotErr, carrierErr); err != nil {
		return ProcessorToCarrierCommand{}, err
	}

	return cmd, nil
}

func (c ProcessorToCarrierCommand) Validate() error {
	return c.guard.Validate(ErrProcessorToCarrierCommandIsNotConstructed)
}

func (c ProcessorToCarrierCommand) OutputSlot() kernel.Barcode { return c.outputSlot }
func (c ProcessorToCarrierCommand) Carrier() kernel.Barcode    { return c.carrier }
