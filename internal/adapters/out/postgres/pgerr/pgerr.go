// Package pgerr classifies PostgreSQL driver errors into the port-level error
// classes the application layer understands.
package pgerr

import (
	"context"
	"errors"
	"fmt"

	"tracking/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the classifier recognises.
const (
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	UniqueViolation      = "23505"
	LockNotAvailable     = "55P03"
	QueryCanceled        = "57014"
)

// Translate wraps err with ports.ErrConflict or ports.ErrLockTimeout when it
// belongs to one of those classes. Other errors are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrConflict) || errors.Is(err, ports.ErrLockTimeout) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ports.ErrLockTimeout, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ports.ErrConflict, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case SerializationFailure, DeadlockDetected, UniqueViolation:
		return fmt.Errorf("%w: %w", ports.ErrConflict, err)
	case LockNotAvailable, QueryCanceled:
		return fmt.Errorf("%w: %w", ports.ErrLockTimeout, err)
	default:
		return err
	}
}
