package slot

import (
	"errors"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// DefaultProcessName is recorded when an operator loads a slot without naming the process.
const DefaultProcessName = "Unknown Process"

var (
	ErrProcessSlotIsNotConstructed = errors.New("ProcessSlot must be created via NewProcessSlot or RestoreProcessSlot")

	ErrSlotIsBusy         = errors.New("slot is not empty")
	ErrSlotIsNotInProcess = errors.New("slot is not in process")
	ErrSlotIsNotInput     = errors.New("slot is not an input slot")
	ErrSlotIsNotOutput    = errors.New("slot is not an output slot")
	ErrSlotIsNotPaired    = errors.New("slots are not paired with each other")
)

// ProcessSlot is the aggregate root for one side of a processing station.
//
// Invariants:
//   - state is IN_PROCESS exactly when a payload is held
//   - sourceCarrier, processName and processStartTime are set only while IN_PROCESS
//   - pairedBarcode never changes and never points at the slot itself
type ProcessSlot struct {
	barcode       kernel.Barcode
	processType   ProcessType
	pairedBarcode *kernel.Barcode

	state            State
	processName      string
	sourceCarrier    *kernel.Barcode
	payload          *kernel.Payload
	processStartTime *time.Time
	processEndTime   *time.Time
	attachedAt       *time.Time

	isConstructed bool
}

// NewProcessSlot returns an EMPTY slot. paired may be nil for a station with a
// single dock.
func NewProcessSlot(barcode kernel.Barcode, processType ProcessType, paired *kernel.Barcode) (*ProcessSlot, error) {
	if err := errors.Join(barcode.Validate(), processType.Validate()); err != nil {
		return nil, err
	}
	if err := validatePairing(barcode, paired); err != nil {
		return nil, err
	}

	return &ProcessSlot{
		barcode:       barcode,
		processType:   processType,
		pairedBarcode: copyBarcode(paired),
		state:         Empty,
		isConstructed: true,
	}, nil
}

// Snapshot carries the mutable part of a slot between storage and the domain.
type Snapshot struct {
	State            State
	ProcessName      string
	SourceCarrier    *kernel.Barcode
	Payload          *kernel.Payload
	ProcessStartTime *time.Time
	ProcessEndTime   *time.Time
	AttachedAt       *time.Time
}

// RestoreProcessSlot rebuilds a slot from storage.
func RestoreProcessSlot(
	barcode kernel.Barcode,
	processType ProcessType,
	paired *kernel.Barcode,
	snapshot Snapshot,
) (*ProcessSlot, error) {
	s, err := NewProcessSlot(barcode, processType, paired)
	if err != nil {
		return nil, err
	}
	if err = snapshot.State.Validate(); err != nil {
		return nil, err
	}

	switch snapshot.State {
	case InProcess:
		if snapshot.Payload == nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("payload", errors.New("IN_PROCESS slot without payload"))
		}
	case Empty:
		if snapshot.Payload != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("payload", errors.New("EMPTY slot holds a payload"))
		}
	}

	s.state = snapshot.State
	s.processName = snapshot.ProcessName
	s.sourceCarrier = copyBarcode(snapshot.SourceCarrier)
	s.payload = copyPayload(snapshot.Payload)
	s.processStartTime = copyTime(snapshot.ProcessStartTime)
	s.processEndTime = copyTime(snapshot.ProcessEndTime)
	s.attachedAt = copyTime(snapshot.AttachedAt)
	return s, nil
}

func validatePairing(barcode kernel.Barcode, paired *kernel.Barcode) error {
	if paired == nil {
		return nil
	}
	if err := paired.Validate(); err != nil {
		return err
	}
	if paired.IsEqual(barcode) {
		return errs.NewValueIsInvalidErrorWithCause("paired barcode", errors.New("slot cannot be paired with itself"))
	}
	return nil
}

func (s *ProcessSlot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrProcessSlotIsNotConstructed
	}
	return nil
}

func (s *ProcessSlot) Barcode() kernel.Barcode        { return s.barcode }
func (s *ProcessSlot) ProcessType() ProcessType       { return s.processType }
func (s *ProcessSlot) PairedBarcode() *kernel.Barcode { return copyBarcode(s.pairedBarcode) }
func (s *ProcessSlot) State() State                   { return s.state }
func (s *ProcessSlot) ProcessName() string            { return s.processName }
func (s *ProcessSlot) SourceCarrier() *kernel.Barcode { return copyBarcode(s.sourceCarrier) }
func (s *ProcessSlot) Payload() *kernel.Payload       { return copyPayload(s.payload) }
func (s *ProcessSlot) ProcessStartTime() *time.Time   { return copyTime(s.processStartTime) }
func (s *ProcessSlot) ProcessEndTime() *time.Time     { return copyTime(s.processEndTime) }
func (s *ProcessSlot) AttachedAt() *time.Time         { return copyTime(s.attachedAt) }

func (s *ProcessSlot) IsEmpty() bool     { return s.state == Empty }
func (s *ProcessSlot) IsInProcess() bool { return s.state == InProcess }

// IsCompleted reports the post-completion state: EMPTY with an end time.
func (s *ProcessSlot) IsCompleted() bool {
	return s.state == Empty && s.processEndTime != nil
}

// Phase is the operator-facing state.
func (s *ProcessSlot) Phase() Phase {
	return PhaseOf(s.state, s.processEndTime != nil)
}

// IsVisible reports whether a barcode lookup should show the slot.
func (s *ProcessSlot) IsVisible() bool {
	return s.IsInProcess() || s.IsCompleted()
}

// IsPairedWith reports whether s records other as its sibling.
func (s *ProcessSlot) IsPairedWith(other *ProcessSlot) bool {
	if other == nil || s.pairedBarcode == nil {
		return false
	}
	return s.pairedBarcode.IsEqual(other.barcode)
}

// Load starts a process on an EMPTY input slot.
func (s *ProcessSlot) Load(payload kernel.Payload, source kernel.Barcode, processName string, at time.Time) error {
	if s.processType != Input {
		return ErrSlotIsNotInput
	}
	if s.state != Empty {
		return ErrSlotIsBusy
	}
	return s.occupy(payload, source, processName, at)
}

// Mirror copies the state of a just-loaded input slot onto its output sibling.
// The output is overwritten whatever it held.
func (s *ProcessSlot) Mirror(input *ProcessSlot) error {
	if s.processType != Output {
		return ErrSlotIsNotOutput
	}
	if !input.IsPairedWith(s) {
		return ErrSlotIsNotPaired
	}
	if !input.IsInProcess() || input.payload == nil || input.sourceCarrier == nil || input.processStartTime == nil {
		return ErrSlotIsNotInProcess
	}
	return s.occupy(*input.payload, *input.sourceCarrier, input.processName, *input.processStartTime)
}

func (s *ProcessSlot) occupy(payload kernel.Payload, source kernel.Barcode, processName string, at time.Time) error {
	if err := source.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("processStartTime")
	}
	processName = strings.TrimSpace(processName)
	if processName == "" {
		processName = DefaultProcessName
	}

	s.state = InProcess
	s.payload = &payload
	s.sourceCarrier = &source
	s.processName = processName
	s.processStartTime = &at
	s.attachedAt = &at
	s.processEndTime = nil
	return nil
}

// Complete finishes the process on an IN_PROCESS output slot and returns the payload.
func (s *ProcessSlot) Complete(at time.Time) (kernel.Payload, error) {
	if s.processType != Output {
		return kernel.Payload{}, ErrSlotIsNotOutput
	}
	if s.state != InProcess || s.payload == nil {
		return kernel.Payload{}, ErrSlotIsNotInProcess
	}

	payload := *s.payload
	s.reset(at)
	return payload, nil
}

// Reset ends the process on the sibling of a completed output slot. It applies
// whatever the slot currently holds.
func (s *ProcessSlot) Reset(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("processEndTime")
	}
	s.reset(at)
	return nil
}

func (s *ProcessSlot) reset(at time.Time) {
	s.state = Empty
	s.payload = nil
	s.sourceCarrier = nil
	s.processName = ""
	s.processStartTime = nil
	s.attachedAt = nil
	s.processEndTime = &at
}

func copyBarcode(b *kernel.Barcode) *kernel.Barcode {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func copyPayload(p *kernel.Payload) *kernel.Payload {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
