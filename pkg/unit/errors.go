package unit

import "errors"

var (
	// ErrIncompatibleUnit is returned when two units must match and do not.
	ErrIncompatibleUnit = errors.New("incompatible unit")

	// ErrInvalidDimensionTag is returned for a tag outside M, L, T, K, I, N, J.
	ErrInvalidDimensionTag = errors.New("invalid dimension tag")

	// ErrUnsupportedOperand is returned when an operator receives an operand
	// of the wrong type or shape.
	ErrUnsupportedOperand = errors.New("unsupported operand")
)
