package commands

import (
	"context"
	"log/slog"

	"tracking/internal/pkg/errs"
)

// Stable tags carried by precondition failures.
const (
	CodeCarrierEmpty      = "CARRIER_EMPTY"
	CodeCarrierNotFound   = "CARRIER_NOT_FOUND"
	CodeProcessorNotFound = "PROCESSOR_NOT_FOUND"
	CodeProcessorBusy     = "PROCESSOR_BUSY"
	CodeProcessorEmpty    = "PROCESSOR_EMPTY"
	CodeProcessorExists   = "PROCESSOR_EXISTS"
)

// Sentinels for errors.Is. Handlers return errors with the same code and a
// message naming the barcode involved.
var (
	ErrCarrierEmpty      = errs.NewPreconditionFailedError(CodeCarrierEmpty, "carrier is empty")
	ErrCarrierNotFound   = errs.NewPreconditionFailedError(CodeCarrierNotFound, "carrier not found")
	ErrProcessorNotFound = errs.NewPreconditionFailedError(CodeProcessorNotFound, "processor not found")
	ErrProcessorBusy     = errs.NewPreconditionFailedError(CodeProcessorBusy, "processor is busy")
	ErrProcessorEmpty    = errs.NewPreconditionFailedError(CodeProcessorEmpty, "processor is empty")
	ErrProcessorExists   = errs.NewPreconditionFailedError(CodeProcessorExists, "processor already exists")
)

// Operation names used in logs and in TransactionFailedError.
const (
	OpAttachPayload      = "attach_payload"
	OpCarrierToProcessor = "carrier_to_processor"
	OpProcessorToCarrier = "processor_to_carrier"
	OpClearCarrier       = "clear_carrier"
	OpProvisionProcess   = "provision_process"
)

func loggerOrDefault(logger *slog.Logger, op string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", "commands", "operation", op)
}

// reject logs a business rejection and returns it unchanged.
func reject(ctx context.Context, logger *slog.Logger, err *errs.PreconditionFailedError, attrs ...any) error {
	logger.InfoContext(ctx, "transition rejected", append([]any{"code", err.Code, "reason", err.Message}, attrs...)...)
	return err
}

// transactionFailed logs a persistence fault with its cause and hides the cause
// behind a TransactionFailedError.
func transactionFailed(ctx context.Context, logger *slog.Logger, op string, cause error, attrs ...any) error {
	logger.ErrorContext(ctx, "transaction failed", append([]any{"error", cause}, attrs...)...)
	return errs.NewTransactionFailedErrorWithCause(op, cause)
}
