package ports

import "errors"

var (
	// ErrConflict reports a write that lost against a concurrent transaction:
	// a serialization failure, a deadlock or a unique key collision.
	ErrConflict = errors.New("concurrent modification conflict")

	// ErrLockTimeout reports a row lock or statement that ran out of time.
	ErrLockTimeout = errors.New("lock wait timed out")
)
