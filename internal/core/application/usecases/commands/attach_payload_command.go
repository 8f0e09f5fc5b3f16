package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrAttachPayloadCommandIsNotConstructed = errors.New(
	"AttachPayloadCommand must be created via NewAttachPayloadCommand constructor",
)

// AttachPayloadCommand loads a payload onto a carrier, creating the carrier on
// first use.
//
// Example:
//
//	cmd, err := NewAttachPayloadCommand("TR-01", kernel.Payload{CustomerName: "Acme"})
//	if err != nil {
//	    return err // ValidationError, nothing was read
//	}
//	result, err := handler.Handle(ctx, cmd)
type AttachPayloadCommand struct {
	carrier kernel.Barcode
	payload kernel.Payload

	guard guard.ConstructorGuard
}

// NewAttachPayloadCommand trims every payload field and rejects an empty payload.
func NewAttachPayloadCommand(carrierBarcode string, payload kernel.Payload) (AttachPayloadCommand, error) {
	cmd := AttachPayloadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrier(carrierBarcode),
		cmd.setPayload(payload),
	); err != nil {
		return AttachPayloadCommand{}, err
	}

	return cmd, nil
}

func (c AttachPayloadCommand) Validate() error {
	return c.guard.Validate(ErrAttachPayloadCommandIsNotConstructed)
}

func (c AttachPayloadCommand) Carrier() kernel.Barcode {
	return c.carrier
}

func (c AttachPayloadCommand) Payload() kernel.Payload {
	return c.payload
}

func (c *AttachPayloadCommand) setCarrier(raw string) error {
	barcode, err := kernel.NewBarcode(raw)
	if err != nil {
		return err
	}

	c.carrier = barcode
	return nil
}

func (c *AttachPayloadCommand) setPayload(payload kernel.Payload) error {
	payload = payload.Normalized()
	if err := payload.Validate(); err != nil {
		return err
	}

	c.payload = payload
	return nil
}
