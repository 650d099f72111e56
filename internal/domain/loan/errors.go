package loan

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("loan not found")

	// ErrValidation is the base for malformed or missing input; wrap it
	// with the field-level detail.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState is the base for collateral/ledger guard violations
	// tied to the loan aggregate's lifecycle.
	ErrInvalidState = errors.New("invalid state")

	// ErrConcurrentModification signals an ExpectedStatus mismatch; the
	// caller should refetch and may retry once.
	ErrConcurrentModification = errors.New("loan modified concurrently")
)

// InvalidTransitionError reports a command not permitted from the loan's
// current status. State is left untouched when it is returned.
type InvalidTransitionError struct {
	From      Status
	Attempted string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s from %s", e.Attempted, e.From)
}

func NewInvalidTransition(from Status, attempted string) error {
	return &InvalidTransitionError{From: from, Attempted: attempted}
}
