package slot

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// State is the stored state of a slot. COMPLETED is not stored; see Phase.
type State int

const (
	Unknown State = iota
	Empty
	InProcess
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:   "UNKNOWN",
		Empty:     "EMPTY",
		InProcess: "IN_PROCESS",
	}
}

func (s State) String() string {
	if name, ok := getStateStrings()[s]; ok {
		return name
	}
	return getStateStrings()[Unknown]
}

func (s State) Validate() error {
	if s != Empty && s != InProcess {
		return errs.NewValueIsInvalidErrorWithCause("slot state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

func ParseState(s string) (State, error) {
	for state, name := range getStateStrings() {
		if state != Unknown && name == s {
			return state, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("slot state", fmt.Errorf("%q is not a valid state", s))
}

// Phase is the state as reported to operators.
type Phase string

const (
	PhaseEmpty     Phase = "EMPTY"
	PhaseInProcess Phase = "IN_PROCESS"
	PhaseCompleted Phase = "COMPLETED"
)

// PhaseOf derives the reported phase from the stored state and end time.
func PhaseOf(state State, processEndTime bool) Phase {
	switch {
	case state == InProcess:
		return PhaseInProcess
	case processEndTime:
		return PhaseCompleted
	default:
		return PhaseEmpty
	}
}
