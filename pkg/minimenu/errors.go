package minimenu

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrEmptyMenu is returned when a menu is built from a collection with
	// no entries.
	ErrEmptyMenu = errors.New("menu has no items")

	// ErrCancelled indicates the user backed out of a screen.
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")
)

// InfrastructureError represents a failure outside the menu model: the
// window could not be created, a font is missing, a style file cannot be
// read.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("minimenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("minimenu: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
