package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"unique violation", "23505", apperrors.ErrDuplicate},
		{"foreign key violation", "23503", apperrors.ErrForeignKey},
		{"not null violation", "23502", apperrors.ErrConstraint},
		{"check violation", "23514", apperrors.ErrConstraint},
		{"string too long", "22001", apperrors.ErrTypeMismatch},
		{"numeric out of range", "22003", apperrors.ErrTypeMismatch},
		{"invalid text representation", "22P02", apperrors.ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.code, TableName: "accounts", ColumnName: "currency_code", ConstraintName: "accounts_currency_code_fkey"}
			err := translateError(fmt.Errorf("exec: %w", pgErr), "fallback", "XXX")

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, pgErr, "driver error stays reachable")

			var ce *apperrors.ConstraintError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, "accounts", ce.Table)
			assert.Equal(t, "currency_code", ce.Column)
			assert.Equal(t, "accounts_currency_code_fkey", ce.Constraint)
			assert.Equal(t, "XXX", ce.Value)
		})
	}
}

func TestTranslateError_FallbackTable(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: "23505"}, "currencies", "USD")

	var ce *apperrors.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "currencies", ce.Table)
	assert.True(t, apperrors.IsConstraintViolation(err))
	assert.Contains(t, err.Error(), "USD")
}

func TestTranslateError_Passthrough(t *testing.T) {
	assert.NoError(t, translateError(nil, "currencies", "USD"))

	err := translateError(pgx.ErrNoRows, "receipts", int64(7))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "receipts 7")

	plain := errors.New("connection reset")
	assert.Same(t, plain, translateError(plain, "receipts", nil))

	deadlock := &pgconn.PgError{Code: "40P01"}
	assert.Same(t, deadlock, translateError(deadlock, "receipts", nil))
}

func TestNotFoundIfNone(t *testing.T) {
	assert.ErrorIs(t, notFoundIfNone(pgconn.NewCommandTag("DELETE 0"), "budgets", int64(1)), apperrors.ErrNotFound)
	assert.NoError(t, notFoundIfNone(pgconn.NewCommandTag("DELETE 1"), "budgets", int64(1)))
}
