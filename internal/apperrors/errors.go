package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists
// (primary key or unique collision).
var ErrDuplicate = errors.New("resource already exists")

// ErrForeignKey indicates a reference to a row that does not exist, or the removal of a row
// that is still referenced.
var ErrForeignKey = errors.New("foreign key violation")

// ErrConstraint indicates any other storage constraint failure (not-null, check).
var ErrConstraint = errors.New("constraint violation")

// ErrTypeMismatch indicates a value incompatible with the declared column type or length.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrIntegrity indicates stored rows that contradict each other, e.g. a discriminator whose
// subtype row is missing.
var ErrIntegrity = errors.New("data integrity error")

// ErrInvariant indicates a violated caller-side ledger rule, such as categorizations that
// do not sum to the transaction amount or a cyclic category hierarchy.
var ErrInvariant = errors.New("ledger invariant violated")

// ConstraintError describes a failed write in enough detail to diagnose it.
// Kind is one of the sentinel errors above and is matched by errors.Is.
type ConstraintError struct {
	Kind       error
	Table      string
	Column     string
	Constraint string
	Value      any
	Err        error
}

func (e *ConstraintError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	b.WriteString(" on ")
	b.WriteString(e.Table)
	if e.Column != "" {
		b.WriteString(".")
		b.WriteString(e.Column)
	}
	if e.Constraint != "" {
		fmt.Fprintf(&b, " (%s)", e.Constraint)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, ": value %v", e.Value)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ConstraintError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewConstraintError builds a ConstraintError without an underlying driver error.
func NewConstraintError(kind error, table, column string, value any) *ConstraintError {
	return &ConstraintError{Kind: kind, Table: table, Column: column, Value: value}
}

// IsConstraintViolation reports whether err is a primary key, foreign key or other
// storage constraint failure.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, ErrForeignKey) || errors.Is(err, ErrConstraint)
}
