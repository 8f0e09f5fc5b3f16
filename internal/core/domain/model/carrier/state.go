package carrier

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// State is the load state of a carrier.
type State int

const (
	// Unknown catches uninitialized values.
	Unknown State = iota
	Empty
	Full
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown: "UNKNOWN",
		Empty:   "EMPTY",
		Full:    "FULL",
	}
}

// ParseState converts the stored representation back to a State.
func ParseState(s string) (State, error) {
	for state, name := range getStateStrings() {
		if state != Unknown && name == s {
			return state, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("carrier state", fmt.Errorf("%q is not a valid state", s))
}

func (s State) Validate() error {
	if s != Empty && s != Full {
		return errs.NewValueIsInvalidErrorWithCause("carrier state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

func (s State) String() string {
	if name, ok := getStateStrings()[s]; ok {
		return name
	}
	return getStateStrings()[Unknown]
}
