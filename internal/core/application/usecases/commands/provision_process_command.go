package commands

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Suffixes appended to a process code to name its slots.
const (
	InputSlotSuffix  = "-in"
	OutputSlotSuffix = "-out"
)

var ErrProvisionProcessCommandIsNotConstructed = errors.New(
	"ProvisionProcessCommand must be created via NewProvisionProcessCommand constructor",
)

// ProvisionProcessCommand creates the INPUT/OUTPUT slot pair of one process.
type ProvisionProcessCommand struct {
	processCode string
	inputSlot   kernel.Barcode
	outputSlot  kernel.Barcode

	guard guard.ConstructorGuard
}

func NewProvisionProcessCommand(processCode string) (ProvisionProcessCommand, error) {
	code := strings.TrimSpace(processCode)
	if code == "" {
		return ProvisionProcessCommand{}, errs.NewValueIsRequiredError("processCode")
	}

	var inErr, outErr error
	cmd := ProvisionProcessCommand{
		processCode: code,
		guard:       guard.NewConstructorGuard(),
	}
	cmd.inputSlot, inErr = kernel.NewBarcode(code + InputSlotSuffix)
	cmd.outputSlot, outErr = kernel.NewBarcode(code + OutputSlotSuffix)
	if err := errors.Join(inErr, outErr); err != nil {
		return ProvisionProcessCommand{}, err
	}

	return cmd, nil
}

func (c ProvisionProcessCommand) Validate() error {
	return c.guard.Validate(ErrProvisionProcessCommandIsNotConstructed)
}

func (c ProvisionProcessCommand) ProcessCode() string        { return c.processCode }
func (c ProvisionProcessCommand) InputSlot() kernel.Barcode  { return c.inputSlot }
func (c ProvisionProcessCommand) OutputSlot() kernel.Barcode { return c.outputSlot }
