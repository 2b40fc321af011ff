package dataerr

import (
	"fmt"

	"github.com/GriffinCanCode/measure/internal/shared/numeric"
)

// Apply combines d with an operand chosen at run time: another DataErr
// (value or pointer) or any Go numeric type. Anything else fails with
// ErrUnsupportedOperand and yields the default quantity.
func (d DataErr) Apply(op Op, operand interface{}) (DataErr, error) {
	switch o := operand.(type) {
	case DataErr:
		return d.applyQuantity(op, o)
	case *DataErr:
		if o != nil {
			return d.applyQuantity(op, *o)
		}
	default:
		if k, ok := numeric.Float64(operand); ok {
			return d.applyScalar(op, k)
		}
	}
	return d.fail(op.String(), fmt.Sprintf("%T", operand), ErrUnsupportedOperand)
}

func (d DataErr) applyQuantity(op Op, other DataErr) (DataErr, error) {
	switch op {
	case OpAdd:
		return d.Add(other)
	case OpSub:
		return d.Sub(other)
	case OpMul:
		return d.Mul(other), nil
	case OpDiv:
		return d.Div(other), nil
	case OpPow:
		return d.Pow(other)
	default:
		return d.fail(op.String(), other.unit.UnitsString(), ErrUnsupportedOperand)
	}
}

func (d DataErr) applyScalar(op Op, k float64) (DataErr, error) {
	switch op {
	case OpAdd:
		return d.AddScalar(k), nil
	case OpSub:
		return d.SubScalar(k), nil
	case OpMul:
		return d.MulScalar(k), nil
	case OpDiv:
		return d.DivScalar(k), nil
	case OpPow:
		return d.PowScalar(k), nil
	default:
		return d.fail(op.String(), "number", ErrUnsupportedOperand)
	}
}
