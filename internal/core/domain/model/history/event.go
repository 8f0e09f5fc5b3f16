package history

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var ErrEventIsNotConstructed = errors.New("Event must be created via one of the New*Event constructors or RestoreEvent")

// References lists every role a barcode can play in one event.
type References struct {
	// Carrier is the carrier the event is about: the one attached, cleared,
	// fed into a process, or filled from one.
	Carrier *kernel.Barcode
	// Slot is the process slot the event is about.
	Slot *kernel.Barcode
	From *kernel.Barcode
	To   *kernel.Barcode

	InputCarrier  *kernel.Barcode
	OutputCarrier *kernel.Barcode
	InputSlot     *kernel.Barcode
	OutputSlot    *kernel.Barcode
}

// Event is an immutable audit record of exactly one transition.
type Event struct {
	id          kernel.UUID
	eventType   EventType
	processCode string
	processName string
	payload     *kernel.Payload
	refs        References

	processStartTime *time.Time
	processEndTime   *time.Time
	durationSeconds  *int64

	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewCarrierAttachedEvent records a payload being attached to a carrier.
func NewCarrierAttachedEvent(carrier kernel.Barcode, payload kernel.Payload, at time.Time) (*Event, error) {
	return build(Event{
		eventType: CarrierAttached,
		payload:   &payload,
		refs: References{
			Carrier:      carrier.Ptr(),
			InputCarrier: carrier.Ptr(),
		},
		status:    StatusInitiated,
		createdAt: at,
	})
}

// NewCarrierClearedEvent records an operator emptying a carrier by hand.
// payload is what the carrier held before it was cleared.
func NewCarrierClearedEvent(carrier kernel.Barcode, payload kernel.Payload, at time.Time) (*Event, error) {
	return build(Event{
		eventType: CarrierCleared,
		payload:   &payload,
		refs: References{
			Carrier: carrier.Ptr(),
			From:    carrier.Ptr(),
		},
		status:    StatusCleared,
		createdAt: at,
	})
}

// ProcessInputFacts describes a carrier feeding an input slot.
type ProcessInputFacts struct {
	Carrier     kernel.Barcode
	InputSlot   kernel.Barcode
	OutputSlot  *kernel.Barcode
	ProcessName string
	Payload     kernel.Payload
	At          time.Time
}

// NewProcessInputEvent records a carrier payload entering a process.
func NewProcessInputEvent(f ProcessInputFacts) (*Event, error) {
	return build(Event{
		eventType:   ProcessInput,
		processCode: f.InputSlot.ProcessCode(),
		processName: f.ProcessName,
		payload:     &f.Payload,
		refs: References{
			Carrier:      f.Carrier.Ptr(),
			Slot:         f.InputSlot.Ptr(),
			From:         f.Carrier.Ptr(),
			To:           f.InputSlot.Ptr(),
			InputCarrier: f.Carrier.Ptr(),
			InputSlot:    f.InputSlot.Ptr(),
			OutputSlot:   f.OutputSlot,
		},
		processStartTime: &f.At,
		status:           StatusInProgress,
		createdAt:        f.At,
	})
}

// ProcessOutputFacts describes an output slot being unloaded into a carrier.
type ProcessOutputFacts struct {
	OutputSlot      kernel.Barcode
	InputSlot       *kernel.Barcode
	SourceCarrier   *kernel.Barcode
	TargetCarrier   kernel.Barcode
	ProcessName     string
	Payload         kernel.Payload
	StartedAt       *time.Time
	At              time.Time
	DurationSeconds *int64
}

// NewProcessOutputEvent records a process finishing into a carrier.
func NewProcessOutputEvent(f ProcessOutputFacts) (*Event, error) {
	return build(Event{
		eventType:   ProcessOutput,
		processCode: f.OutputSlot.ProcessCode(),
		processName: f.ProcessName,
		payload:     &f.Payload,
		refs: References{
			Carrier:       f.TargetCarrier.Ptr(),
			Slot:          f.OutputSlot.Ptr(),
			From:          f.OutputSlot.Ptr(),
			To:            f.TargetCarrier.Ptr(),
			InputCarrier:  f.SourceCarrier,
			OutputCarrier: f.TargetCarrier.Ptr(),
			InputSlot:     f.InputSlot,
			OutputSlot:    f.OutputSlot.Ptr(),
		},
		processStartTime: f.StartedAt,
		processEndTime:   &f.At,
		durationSeconds:  f.DurationSeconds,
		status:           StatusCompleted,
		createdAt:        f.At,
	})
}

// Record is the storage form of an event, used by RestoreEvent.
type Record struct {
	ID               kernel.UUID
	Type             EventType
	ProcessCode      string
	ProcessName      string
	Payload          *kernel.Payload
	References       References
	ProcessStartTime *time.Time
	ProcessEndTime   *time.Time
	DurationSeconds  *int64
	Status           Status
	CreatedAt        time.Time
}

// RestoreEvent rebuilds a stored event.
func RestoreEvent(r Record) (*Event, error) {
	if err := r.ID.Validate(); err != nil {
		return nil, err
	}
	e := Event{
		eventType:        r.Type,
		processCode:      r.ProcessCode,
		processName:      r.ProcessName,
		payload:          r.Payload,
		refs:             r.References,
		processStartTime: r.ProcessStartTime,
		processEndTime:   r.ProcessEndTime,
		durationSeconds:  r.DurationSeconds,
		status:           r.Status,
		createdAt:        r.CreatedAt,
	}
	restored, err := build(e)
	if err != nil {
		return nil, err
	}
	restored.id = r.ID
	return restored, nil
}

func build(e Event) (*Event, error) {
	if err := errors.Join(e.eventType.Validate(), e.status.Validate()); err != nil {
		return nil, err
	}
	if e.createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	if e.refs.Carrier == nil && e.refs.Slot == nil {
		return nil, errs.NewValueIsRequiredError("event reference")
	}

	e.id = kernel.NewTimeOrderedUUID()
	e.isConstructed = true
	return &e, nil
}

func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

func (e *Event) ID() kernel.UUID              { return e.id }
func (e *Event) Type() EventType              { return e.eventType }
func (e *Event) ProcessCode() string          { return e.processCode }
func (e *Event) ProcessName() string          { return e.processName }
func (e *Event) References() References       { return e.refs }
func (e *Event) ProcessStartTime() *time.Time { return e.processStartTime }
func (e *Event) ProcessEndTime() *time.Time   { return e.processEndTime }
func (e *Event) DurationSeconds() *int64      { return e.durationSeconds }
func (e *Event) Status() Status               { return e.status }
func (e *Event) CreatedAt() time.Time         { return e.createdAt }

// Payload returns a copy of the snapshot taken when the event was recorded.
func (e *Event) Payload() *kernel.Payload {
	if e.payload == nil {
		return nil
	}
	p := *e.payload
	return &p
}

// Mentions reports whether code appears in any reference role.
func (e *Event) Mentions(code string) bool {
	for _, ref := range e.refs.All() {
		if ref != nil && ref.String() == code {
			return true
		}
	}
	return false
}

// All returns the eight roles in a fixed order.
func (r References) All() []*kernel.Barcode {
	return []*kernel.Barcode{
		r.Carrier, r.Slot, r.From, r.To,
		r.InputCarrier, r.OutputCarrier, r.InputSlot, r.OutputSlot,
	}
}
