package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrParameter covers malformed engine inputs: inverted triangular
	// bounds, non-positive distribution shapes, zero iterations,
	// probability tables that do not sum to one.
	ErrParameter = errors.New("invalid parameter")

	// ErrDegenerateInput covers joint-table analysis inputs whose totals
	// or marginals are zero and would divide by zero.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrRegression covers singular or rank-deficient least-squares
	// design matrices.
	ErrRegression = errors.New("regression failed")

	// ErrOptimization covers infeasible, unbounded, or otherwise failed
	// linear programs.
	ErrOptimization = errors.New("optimization failed")

	// Repository errors
	ErrNotFound    = errors.New("resource not found")
	ErrRunNotFound = fmt.Errorf("%w: simulation run", ErrNotFound)
)

// Error constructors with context

func NewParameterError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrParameter, field, reason)
}

func NewDegenerateInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateInput, reason)
}

func NewRegressionError(cause error) error {
	return fmt.Errorf("%w: %v", ErrRegression, cause)
}

// NewOptimizationError carries the solver status ("infeasible",
// "unbounded", "singular") alongside the solver's own message.
func NewOptimizationError(status string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrOptimization, status)
	}
	return fmt.Errorf("%w: %s: %v", ErrOptimization, status, cause)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers

func IsParameterError(err error) bool {
	return errors.Is(err, ErrParameter)
}

func IsDegenerateInputError(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}

func IsRegressionError(err error) bool {
	return errors.Is(err, ErrRegression)
}

func IsOptimizationError(err error) bool {
	return errors.Is(err, ErrOptimization)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
