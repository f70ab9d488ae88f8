package blackboard

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by blackboard operations. Callers branch with
// errors.Is; the wrapped message carries the ids involved.
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectExists    = errors.New("project already exists")
	ErrShotNotFound     = errors.New("shot not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrApprovalNotFound = errors.New("approval request not found")

	// ErrVersionConflict indicates the aggregate changed underneath a
	// version-checked write. Safe to retry after re-reading.
	ErrVersionConflict = errors.New("version conflict")

	// ErrLockNotHeld indicates a guarded write named an owner that does
	// not hold the required lock.
	ErrLockNotHeld = errors.New("required lock not held")
)

// ValidationError indicates a write was rejected before reaching the
// store. Not retryable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
