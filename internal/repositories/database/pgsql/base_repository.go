package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository can run either
// on the pool or inside a unit of work.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB DBTX
}

// Begin starts a new database transaction. When DB is already a transaction this
// creates a savepoint.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back an already finished transaction is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// inTx runs fn so that multi-row writes (base plus subtype rows) land together.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if the transaction is committed successfully
	defer r.Rollback(context.WithoutCancel(ctx), tx)

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// translateError maps driver errors onto the apperrors taxonomy. table and value describe
// the row being written or looked up and are used when the server does not report them.
func translateError(err error, table string, value any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", table, value, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var kind error
	switch pgErr.Code {
	case "23505": // unique_violation
		kind = apperrors.ErrDuplicate
	case "23503": // foreign_key_violation
		kind = apperrors.ErrForeignKey
	case "23502", "23514": // not_null_violation, check_violation
		kind = apperrors.ErrConstraint
	case "22001", "22003", "22P02", "22007", "22008": // truncation, range, text representation, datetime
		kind = apperrors.ErrTypeMismatch
	default:
		return err
	}

	ce := &apperrors.ConstraintError{
		Kind:       kind,
		Table:      pgErr.TableName,
		Column:     pgErr.ColumnName,
		Constraint: pgErr.ConstraintName,
		Value:      value,
		Err:        err,
	}
	if ce.Table == "" {
		ce.Table = table
	}
	return ce
}

// notFoundIfNone turns an UPDATE/DELETE that touched no rows into ErrNotFound.
func notFoundIfNone(tag pgconn.CommandTag, table string, key any) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %v: %w", table, key, apperrors.ErrNotFound)
	}
	return nil
}

// nullableValue unwraps a nullable column for error reporting.
func nullableValue(v sql.NullInt64) any {
	if !v.Valid {
		return nil
	}
	return v.Int64
}
