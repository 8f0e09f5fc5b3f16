package errs

import "fmt"

// PreconditionFailedError reports that an entity was read in a state that does not
// allow the requested operation. Code is a stable machine-readable tag; Message is
// meant for operators.
//
// Two PreconditionFailedError values match under errors.Is when their codes are equal,
// so a package can publish one sentinel per code and still return errors with
// request-specific messages:
//
//	var ErrCarrierEmpty = errs.NewPreconditionFailedError("CARRIER_EMPTY", "carrier is empty")
//
//	err := errs.NewPreconditionFailedError("CARRIER_EMPTY", "carrier TR-01 is not loaded")
//	errors.Is(err, ErrCarrierEmpty) // true
type PreconditionFailedError struct {
	Code    string
	Message string
	Cause   error
}

func NewPreconditionFailedError(code, message string) *PreconditionFailedError {
	return &PreconditionFailedError{Code: code, Message: message}
}

func NewPreconditionFailedErrorWithCause(code, message string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Code: code, Message: message, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s: %s", ErrPreconditionFailed, e.Code, sanitize(e.Message)), e.Cause)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

func (e *PreconditionFailedError) Is(target error) bool {
	t, ok := target.(*PreconditionFailedError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// TransactionFailedError reports that an operation could not be committed.
// Cause carries the storage error for logging and must not be shown to end users.
type TransactionFailedError struct {
	Operation string
	Cause     error
}

func NewTransactionFailedError(operation string) *TransactionFailedError {
	return &TransactionFailedError{Operation: operation}
}

func NewTransactionFailedErrorWithCause(operation string, cause error) *TransactionFailedError {
	return &TransactionFailedError{Operation: operation, Cause: cause}
}

func (e *TransactionFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrTransactionFailed, sanitize(e.Operation)), e.Cause)
}

// Unwrap exposes both the sentinel and the cause, so callers can test for
// ErrTransactionFailed and for the storage error class at the same time.
func (e *TransactionFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTransactionFailed}
	}
	return []error{ErrTransactionFailed, e.Cause}
}
