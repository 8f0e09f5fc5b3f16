package pgerr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tracking/internal/adapters/out/postgres/pgerr"
	"tracking/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"serialization failure", &pgconn.PgError{Code: pgerr.SerializationFailure}, ports.ErrConflict},
		{"deadlock", &pgconn.PgError{Code: pgerr.DeadlockDetected}, ports.ErrConflict},
		{"unique violation", &pgconn.PgError{Code: pgerr.UniqueViolation}, ports.ErrConflict},
		{"lock not available", &pgconn.PgError{Code: pgerr.LockNotAvailable}, ports.ErrLockTimeout},
		{"statement canceled", &pgconn.PgError{Code: pgerr.QueryCanceled}, ports.ErrLockTimeout},
		{"wrapped driver error", fmt.Errorf("update: %w", &pgconn.PgError{Code: pgerr.UniqueViolation}), ports.ErrConflict},
		{"deadline", context.DeadlineExceeded, ports.ErrLockTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pgerr.Translate(tt.err)

			require.ErrorIs(t, got, tt.want)
			require.ErrorIs(t, got, tt.err)
		})
	}
}

func TestTranslate_Passthrough(t *testing.T) {
	plain := errors.New("connection refused")
	undefinedTable := &pgconn.PgError{Code: "42P01"}

	assert.NoError(t, pgerr.Translate(nil))
	assert.Same(t, plain, pgerr.Translate(plain))
	assert.Equal(t, error(undefinedTable), pgerr.Translate(undefinedTable))

	already := fmt.Errorf("%w: x", ports.ErrConflict)
	assert.Same(t, already, pgerr.Translate(already))
}
