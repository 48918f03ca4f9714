package memory

import (
	"database/sql"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/nemo/internal/apperrors"
)

func notFound(table string, key any) error {
	return fmt.Errorf("%s %v: %w", table, key, apperrors.ErrNotFound)
}

func duplicateKey(table, column string, value any) error {
	return apperrors.NewConstraintError(apperrors.ErrDuplicate, table, column, value)
}

// foreignKey reports a write pointing at a missing row, or a delete blocked by rows in
// table.column that still reference the target.
func foreignKey(table, column string, value any) error {
	return apperrors.NewConstraintError(apperrors.ErrForeignKey, table, column, value)
}

func checkViolation(table, column string, value any) error {
	return apperrors.NewConstraintError(apperrors.ErrConstraint, table, column, value)
}

// column is a length-limited character column.
type column struct {
	name  string
	value string
	limit int
}

func varchar(name string, v sql.NullString, limit int) column {
	return column{name: name, value: v.String, limit: limit}
}

// checkLengths rejects values longer than their declared width, counted in characters.
func checkLengths(table string, cols ...column) error {
	for _, c := range cols {
		if utf8.RuneCountInString(c.value) > c.limit {
			return apperrors.NewConstraintError(apperrors.ErrTypeMismatch, table, c.name, c.value)
		}
	}
	return nil
}

// dateOnly keeps the calendar date of t, as a DATE column does.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nullDateOnly(t sql.NullTime) sql.NullTime {
	if !t.Valid {
		return t
	}
	return sql.NullTime{Time: dateOnly(t.Time), Valid: true}
}

// timestamp keeps microsecond precision, as a TIMESTAMPTZ column does.
func timestamp(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}

func nullTimestamp(t sql.NullTime) sql.NullTime {
	if !t.Valid {
		return t
	}
	return sql.NullTime{Time: timestamp(t.Time), Valid: true}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
