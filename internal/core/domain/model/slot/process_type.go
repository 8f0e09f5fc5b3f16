package slot

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// ProcessType tells which side of a station a slot sits on.
type ProcessType int

const (
	UnknownType ProcessType = iota
	Input
	Output
)

func (t ProcessType) String() string {
	switch t {
	case Input:
		return "INPUT"
	case Output:
		return "OUTPUT"
	default:
		return "UNKNOWN"
	}
}

func (t ProcessType) Validate() error {
	if t != Input && t != Output {
		return errs.NewValueIsInvalidErrorWithCause("process type", fmt.Errorf("%d is not a valid process type", t))
	}
	return nil
}

func ParseProcessType(s string) (ProcessType, error) {
	switch s {
	case "INPUT":
		return Input, nil
	case "OUTPUT":
		return Output, nil
	default:
		return UnknownType, errs.NewValueIsInvalidErrorWithCause("process type",
			fmt.Errorf("%q is not a valid process type", s))
	}
}
