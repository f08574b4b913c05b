package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned (wrapped with the entity name) when a record does not exist
var ErrNotFound = errors.New("not found")

// ConstraintError reports a unique, foreign-key or restrict violation
type ConstraintError struct {
	Constraint string
	Message    string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint violated: %s", e.Constraint, e.Message)
}

// Constraint names
const (
	ConstraintUnique     = "unique"
	ConstraintForeignKey = "foreign key"
	ConstraintRestrict   = "restrict"
)

// StorageError wraps any other failure coming from the store
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// classify converts a gorm error into the service error taxonomy
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var cerr *ConstraintError
	if errors.As(err, &cerr) || errors.Is(err, ErrNotFound) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintError{Constraint: ConstraintUnique, Message: "a record with the same unique value already exists"}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConstraintError{Constraint: ConstraintForeignKey, Message: "referenced record does not exist or is still referenced"}
	}
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is (or wraps) ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
