package unit

import (
	"fmt"

	"github.com/GriffinCanCode/measure/internal/shared/numeric"
)

// Op names a binary operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// String returns the string representation of the operator
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpPow:
		return "power"
	default:
		return "unknown"
	}
}

// Apply combines u with an operand chosen at run time. Mul and Div accept a
// Unit; Pow accepts any Go numeric type. Everything else, including raising
// a unit to the power of another unit, fails with ErrUnsupportedOperand.
func Apply(op Op, u Unit, operand interface{}) (Unit, error) {
	switch op {
	case OpMul, OpDiv:
		other, ok := asUnit(operand)
		if !ok {
			return Unit{}, unsupported(op, operand)
		}
		if op == OpMul {
			return u.Mul(other), nil
		}
		return u.Div(other), nil
	case OpPow:
		n, ok := numeric.Float64(operand)
		if !ok {
			return Unit{}, unsupported(op, operand)
		}
		return u.Pow(n), nil
	default:
		return Unit{}, unsupported(op, operand)
	}
}

func asUnit(v interface{}) (Unit, bool) {
	switch u := v.(type) {
	case Unit:
		return u, true
	case *Unit:
		if u == nil {
			return Unit{}, false
		}
		return *u, true
	default:
		return Unit{}, false
	}
}

func unsupported(op Op, operand interface{}) error {
	return fmt.Errorf("%w: cannot %s unit by %T", ErrUnsupportedOperand, op, operand)
}
