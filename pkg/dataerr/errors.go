package dataerr

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/measure/pkg/unit"
)

var (
	// ErrIncompatibleUnit is returned when units must match and do not.
	ErrIncompatibleUnit = unit.ErrIncompatibleUnit

	// ErrInvalidDimensionTag is returned for an unknown dimension letter.
	ErrInvalidDimensionTag = unit.ErrInvalidDimensionTag

	// ErrUnsupportedOperand is returned for an operand of the wrong type or shape.
	ErrUnsupportedOperand = unit.ErrUnsupportedOperand

	// ErrDivisionByZero is returned when a relative error is requested for a
	// zero value.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrEmptySequence is returned by batch helpers given no input.
	ErrEmptySequence = errors.New("empty sequence")
)

// OpError describes a rejected operation.
type OpError struct {
	Op    string
	Left  string
	Right string
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("dataerr: %s [%s] with [%s]: %v", e.Op, e.Left, e.Right, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// reason maps an error onto a short metrics label.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrIncompatibleUnit):
		return "incompatible_unit"
	case errors.Is(err, ErrUnsupportedOperand):
		return "unsupported_operand"
	case errors.Is(err, ErrInvalidDimensionTag):
		return "invalid_dimension_tag"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrEmptySequence):
		return "empty_sequence"
	default:
		return "other"
	}
}
