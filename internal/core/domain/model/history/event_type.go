package history

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// EventType names the transition an event records. Values are stored verbatim.
type EventType string

const (
	CarrierAttached EventType = "carrier_attached"
	CarrierCleared  EventType = "carrier_cleared"
	ProcessInput    EventType = "process_input"
	ProcessOutput   EventType = "process_output"
)

func (t EventType) Validate() error {
	switch t {
	case CarrierAttached, CarrierCleared, ProcessInput, ProcessOutput:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("%q is not a valid event type", string(t)))
	}
}

// Status is the lifecycle position recorded on an event.
type Status string

const (
	StatusInitiated  Status = "initiated"
	StatusCleared    Status = "cleared"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Validate() error {
	switch s {
	case StatusInitiated, StatusCleared, StatusInProgress, StatusCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("event status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}
