// Package errs holds the error types shared by the domain, the use cases and the
// adapters.
//
// Validation errors (ValueIsRequired, ValueIsInvalid, ValueIsOutOfRange) and
// ObjectNotFound unwrap to a package sentinel, so callers branch with errors.Is.
// PreconditionFailedError carries a stable code and matches other values with
// the same code. TransactionFailedError unwraps to both ErrTransactionFailed and
// its storage cause.
//
// Messages are kept on one line so they can be logged as they are.
package errs
