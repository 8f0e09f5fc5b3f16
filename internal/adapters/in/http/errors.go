package http

import (
	"errors"
	"net/http"

	"tracking/internal/core/ports"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Outcome tags that are not precondition codes.
const (
	tagOK = "OK"
)

// failure is an error translated for the wire. The message never carries a
// storage error.
type failure struct {
	status  int
	tag     servers.ErrorType
	message string
}

func classify(err error) failure {
	var precondition *errs.PreconditionFailedError
	if errors.As(err, &precondition) {
		return failure{
			status:  http.StatusBadRequest,
			tag:     servers.ErrorType(precondition.Code),
			message: precondition.Message,
		}
	}

	switch {
	case errors.Is(err, errs.ErrTransactionFailed):
		message := "Transaction failed, please scan again"
		switch {
		case errors.Is(err, ports.ErrLockTimeout):
			message = "Another operator is using this barcode, please scan again"
		case errors.Is(err, ports.ErrConflict):
			message = "Barcode was changed concurrently, please scan again"
		}
		return failure{status: http.StatusInternalServerError, tag: servers.TRANSACTIONFAILED, message: message}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return failure{status: http.StatusBadRequest, tag: servers.VALIDATIONERROR, message: err.Error()}
	default:
		return failure{status: http.StatusInternalServerError, tag: servers.SERVERERROR, message: "Internal server error"}
	}
}

func respond(ctx echo.Context, status int, message string, data interface{}) error {
	return ctx.JSON(status, servers.Envelope{Success: true, Message: message, Data: data})
}

func respondFailure(ctx echo.Context, f failure) error {
	tag := f.tag
	return ctx.JSON(f.status, servers.Envelope{Success: false, Message: f.message, ErrorType: &tag})
}

func badRequest(ctx echo.Context, message string) error {
	return respondFailure(ctx, failure{status: http.StatusBadRequest, tag: servers.VALIDATIONERROR, message: message})
}

// HTTPErrorHandler renders echo errors, such as parameter binding failures and
// unknown routes, inside the envelope.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	f := failure{status: http.StatusInternalServerError, tag: servers.SERVERERROR, message: "Internal server error"}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		f.status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			f.message = msg
		} else {
			f.message = http.StatusText(httpErr.Code)
		}
		if httpErr.Code < http.StatusInternalServerError {
			f.tag = servers.VALIDATIONERROR
		}
	}

	_ = respondFailure(ctx, f)
}
