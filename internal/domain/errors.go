package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotInitialized  = "store not initialized"
	ErrMsgStoreClosed     = "store closed"
	ErrMsgNotFound        = "not found"
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidMealType = "invalid meal type"
	ErrMsgInvalidCategory = "invalid ingredient category"
	ErrMsgInvalidDate     = "invalid date"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotInitialized = errors.New(ErrMsgNotInitialized)
	ErrStoreClosed    = errors.New(ErrMsgStoreClosed)

	ErrNotFound                 = errors.New(ErrMsgNotFound)
	ErrMealPlanNotFound         = fmt.Errorf("meal plan %w", ErrNotFound)
	ErrRecipeNotFound           = fmt.Errorf("recipe %w", ErrNotFound)
	ErrShoppingListItemNotFound = fmt.Errorf("shopping list item %w", ErrNotFound)

	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidMealType = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgInvalidMealType)
	ErrInvalidCategory = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgInvalidCategory)
	ErrInvalidDate     = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgInvalidDate)
)

// StorageOp tags the phase in which a storage failure happened
type StorageOp string

const (
	OpCreate StorageOp = "CREATE_ERROR"
	OpFind   StorageOp = "FIND_ERROR"
	OpUpdate StorageOp = "UPDATE_ERROR"
	OpDelete StorageOp = "DELETE_ERROR"
	OpToggle StorageOp = "TOGGLE_ERROR"
	OpClear  StorageOp = "CLEAR_ERROR"
)

// StorageError wraps an engine-level failure with the operation and entity it occurred on
type StorageError struct {
	Op     StorageOp
	Entity string
	ID     string
	Err    error
}

// NewStorageError builds a StorageError
func NewStorageError(op StorageOp, entity, id string, err error) *StorageError {
	return &StorageError{Op: op, Entity: entity, ID: id, Err: err}
}

func (e *StorageError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// InitializationError reports that the store could not be opened or the schema created
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("database initialization failed: %v", e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// ShutdownError reports that the storage handle could not be released
type ShutdownError struct {
	Err error
}

func (e *ShutdownError) Error() string {
	return fmt.Sprintf("database shutdown failed: %v", e.Err)
}

func (e *ShutdownError) Unwrap() error {
	return e.Err
}

// NotFoundError returns err wrapped with the id that was looked up
func NotFoundError(err error, id string) error {
	return fmt.Errorf("%w: %s", err, id)
}

// IsNotFound reports whether err is any not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
