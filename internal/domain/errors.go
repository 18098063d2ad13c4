package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrComputation = errors.New("computation failed")
)

// ValidationError reports malformed or missing input, raised before
// any computation runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ComputationError reports internally inconsistent input that a
// computation cannot resolve.
type ComputationError struct {
	Op      string
	Message string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation: %s: %s", e.Op, e.Message)
}

func (e *ComputationError) Unwrap() error { return ErrComputation }
