package services

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/history"
	"tracking/internal/core/domain/model/slot"
)

// Timer computes whole seconds between two instants, or nil when either is missing.
type Timer interface {
	Duration(start, end *time.Time) *int64
}

// ErrSlotPairMismatch is returned when the slot passed as the sibling does not
// match the pairing recorded on the primary slot.
var ErrSlotPairMismatch = errors.New("slot is not the recorded sibling")

// ProcessFlow moves payloads between carriers and process slots.
//
// Business rules:
//   - a carrier feeds a process only while FULL, and only into an EMPTY input slot
//   - the recorded output sibling mirrors the input slot field for field
//   - unloading an output slot resets its recorded input sibling at the same instant
//   - every move produces exactly one history event
//
// All aggregates are mutated in memory. If any step fails the caller must
// discard them, which the unit of work rollback does.
type ProcessFlow struct {
	timer Timer
}

func NewProcessFlow(timer Timer) ProcessFlow {
	return ProcessFlow{timer: timer}
}

// Feed moves the carrier payload into input and, when given, its output sibling.
// output must be nil when input records no sibling.
func (f ProcessFlow) Feed(
	source *carrier.Carrier,
	input *slot.ProcessSlot,
	output *slot.ProcessSlot,
	processName string,
	at time.Time,
) (*history.Event, error) {
	if err := errors.Join(source.Validate(), input.Validate()); err != nil {
		return nil, err
	}
	if !source.IsFull() {
		return nil, carrier.ErrCarrierIsNotFull
	}
	if input.ProcessType() != slot.Input {
		return nil, slot.ErrSlotIsNotInput
	}
	if !input.IsEmpty() {
		return nil, slot.ErrSlotIsBusy
	}
	if output != nil && !input.IsPairedWith(output) {
		return nil, ErrSlotPairMismatch
	}

	payload, err := source.Release()
	if err != nil {
		return nil, err
	}
	if err = input.Load(payload, source.Barcode(), processName, at); err != nil {
		return nil, err
	}
	if output != nil {
		if err = output.Mirror(input); err != nil {
			return nil, err
		}
	}

	return history.NewProcessInputEvent(history.ProcessInputFacts{
		Carrier:     source.Barcode(),
		InputSlot:   input.Barcode(),
		OutputSlot:  input.PairedBarcode(),
		ProcessName: input.ProcessName(),
		Payload:     payload,
		At:          at,
	})
}

// Drain unloads output into target and resets the input sibling when given.
// The returned event carries the process duration measured against at.
func (f ProcessFlow) Drain(
	output *slot.ProcessSlot,
	input *slot.ProcessSlot,
	target *carrier.Carrier,
	at time.Time,
) (*history.Event, error) {
	if err := errors.Join(output.Validate(), target.Validate()); err != nil {
		return nil, err
	}
	if output.ProcessType() != slot.Output {
		return nil, slot.ErrSlotIsNotOutput
	}
	if !output.IsInProcess() {
		return nil, slot.ErrSlotIsNotInProcess
	}
	if input != nil && !output.IsPairedWith(input) {
		return nil, ErrSlotPairMismatch
	}

	startedAt := output.ProcessStartTime()
	source := output.SourceCarrier()
	processName := output.ProcessName()
	duration := f.timer.Duration(startedAt, &at)

	payload, err := output.Complete(at)
	if err != nil {
		return nil, err
	}
	if input != nil {
		if err = input.Reset(at); err != nil {
			return nil, err
		}
	}
	if err = target.Attach(payload, at); err != nil {
		return nil, err
	}

	return history.NewProcessOutputEvent(history.ProcessOutputFacts{
		OutputSlot:      output.Barcode(),
		InputSlot:       output.PairedBarcode(),
		SourceCarrier:   source,
		TargetCarrier:   target.Barcode(),
		ProcessName:     processName,
		Payload:         payload,
		StartedAt:       startedAt,
		At:              at,
		DurationSeconds: duration,
	})
}
