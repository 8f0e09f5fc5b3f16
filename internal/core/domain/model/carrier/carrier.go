package carrier

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier")

	// ErrCarrierIsNotFull is returned when a payload is taken from a carrier that holds none.
	ErrCarrierIsNotFull = errors.New("carrier is not full")
)

// Carrier is the aggregate root for a physical trolley.
//
// Invariants:
//   - state is FULL exactly when a payload is held
//   - attachedAt is set exactly when state is FULL
type Carrier struct {
	barcode    kernel.Barcode
	state      State
	payload    *kernel.Payload
	attachedAt *time.Time
	createdAt  time.Time

	isConstructed bool
}

// NewCarrier returns an EMPTY carrier registered at createdAt.
func NewCarrier(barcode kernel.Barcode, createdAt time.Time) (*Carrier, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Carrier{
		barcode:       barcode,
		state:         Empty,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreCarrier rebuilds a carrier from storage and rejects rows that break the
// payload invariant.
func RestoreCarrier(
	barcode kernel.Barcode,
	state State,
	payload *kernel.Payload,
	attachedAt *time.Time,
	createdAt time.Time,
) (*Carrier, error) {
	if err := errors.Join(barcode.Validate(), state.Validate()); err != nil {
		return nil, err
	}

	switch state {
	case Full:
		if payload == nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("payload", errors.New("FULL carrier without payload"))
		}
		if attachedAt == nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("attachedAt", errors.New("FULL carrier without attach time"))
		}
	case Empty:
		if payload != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("payload", errors.New("EMPTY carrier holds a payload"))
		}
		attachedAt = nil
	}

	c := &Carrier{
		barcode:       barcode,
		state:         state,
		attachedAt:    copyTime(attachedAt),
		createdAt:     createdAt,
		isConstructed: true,
	}
	if payload != nil {
		p := *payload
		c.payload = &p
	}
	return c, nil
}

func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

func (c *Carrier) Barcode() kernel.Barcode {
	return c.barcode
}

func (c *Carrier) State() State {
	return c.state
}

func (c *Carrier) IsFull() bool {
	return c.state == Full
}

// Payload returns a copy of the held payload, or nil when EMPTY.
func (c *Carrier) Payload() *kernel.Payload {
	if c.payload == nil {
		return nil
	}
	p := *c.payload
	return &p
}

func (c *Carrier) AttachedAt() *time.Time {
	return copyTime(c.attachedAt)
}

func (c *Carrier) CreatedAt() time.Time {
	return c.createdAt
}

// Attach loads payload onto the carrier, replacing whatever it held before.
func (c *Carrier) Attach(payload kernel.Payload, at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("attachedAt")
	}

	c.payload = &payload
	c.state = Full
	c.attachedAt = &at
	return nil
}

// Release empties the carrier and hands back the payload it held.
func (c *Carrier) Release() (kernel.Payload, error) {
	if c.state != Full || c.payload == nil {
		return kernel.Payload{}, ErrCarrierIsNotFull
	}

	payload := *c.payload
	c.payload = nil
	c.state = Empty
	c.attachedAt = nil
	return payload, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
