package kernel

import (
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// MaxBarcodeLength bounds the stored key length of carriers and slots.
const MaxBarcodeLength = 64

// processCodeSeparator splits a slot barcode such as "PR-01-in" into its process
// code "PR-01" and its side suffix.
const processCodeSeparator = "-"

var ErrBarcodeIsNotConstructed = errs.NewValueIsRequiredError("barcode must be created via NewBarcode")

// Barcode identifies a carrier or a process slot. It is the scanned code with
// surrounding whitespace removed; case is preserved.
type Barcode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewBarcode trims raw and validates it as a scan code.
func NewBarcode(raw string) (Barcode, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}
	if len(value) > MaxBarcodeLength {
		return Barcode{}, errs.NewValueIsOutOfRangeError("barcode length", len(value), 1, MaxBarcodeLength)
	}

	return Barcode{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the barcode was built by NewBarcode.
func (b Barcode) Validate() error {
	return b.guard.Validate(ErrBarcodeIsNotConstructed)
}

func (b Barcode) String() string {
	return b.value
}

func (b Barcode) IsEqual(other Barcode) bool {
	return b.value == other.value
}

// ProcessCode groups the slots of one process instance. It is everything before
// the last separator, or the whole barcode when there is none.
//
// This is a naming convention carried over from the scanners in the field, not a
// structural guarantee: "PR01in" and "PR01out" get different codes.
func (b Barcode) ProcessCode() string {
	idx := strings.LastIndex(b.value, processCodeSeparator)
	if idx < 0 {
		return b.value
	}
	return b.value[:idx]
}

// Ptr returns a pointer to a copy of b, for optional references.
func (b Barcode) Ptr() *Barcode {
	return &b
}
