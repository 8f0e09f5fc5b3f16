// Package kernel provides the value objects shared by every aggregate of the
// tracking domain.
//
// The package includes:
//   - Barcode: a validated scan code identifying a carrier or a process slot
//   - Payload: the job attributes that travel between carriers and slots as one unit
//   - UUID: identifiers for history events
//
// Values are immutable. Zero values are invalid and fail Validate, so values must be built
// through their constructors.
package kernel
