package dataerr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/GriffinCanCode/measure/pkg/unit"
)

// Op names a binary operator.
type Op = unit.Op

const (
	OpAdd = unit.OpAdd
	OpSub = unit.OpSub
	OpMul = unit.OpMul
	OpDiv = unit.OpDiv
	OpPow = unit.OpPow
)

// quadrature returns sqrt(a² + b²).
func quadrature(a, b float64) float64 {
	return floats.Norm([]float64{a, b}, 2)
}

// derive builds an arithmetic result. Results carry the default name.
func derive(value, uncertainty float64, u unit.Unit, sigFigs int) DataErr {
	return New(value, uncertainty, WithUnit(u), WithSigFigs(sigFigs))
}

// Add returns d + other with uncertainties combined in quadrature. Both units
// must be equal (exponents and scale); otherwise the default quantity is
// returned with ErrIncompatibleUnit.
func (d DataErr) Add(other DataErr) (DataErr, error) {
	return d.sum(OpAdd, other, 1)
}

// Sub returns d - other under the same rules as Add.
func (d DataErr) Sub(other DataErr) (DataErr, error) {
	return d.sum(OpSub, other, -1)
}

func (d DataErr) sum(op Op, other DataErr, sign float64) (DataErr, error) {
	if !d.unit.Equal(other.unit) {
		return d.fail(op.String(), other.unit.UnitsString(), ErrIncompatibleUnit)
	}
	current().record(op.String())
	return derive(
		d.value+sign*other.value,
		quadrature(d.uncertainty, other.uncertainty),
		d.unit,
		min(d.sigFigs, other.sigFigs),
	), nil
}

// Mul returns d × other. Relative errors combine in quadrature and the units
// multiply.
func (d DataErr) Mul(other DataErr) DataErr {
	current().record(OpMul.String())
	out := derive(d.value*other.value, 0, d.unit.Mul(other.unit), min(d.sigFigs, other.sigFigs))
	out.SetRelativeError(quadrature(d.relErr(), other.relErr()))
	return out
}

// Div returns d ÷ other. Relative errors combine in quadrature and the units
// divide.
func (d DataErr) Div(other DataErr) DataErr {
	current().record(OpDiv.String())
	out := derive(d.value/other.value, 0, d.unit.Div(other.unit), min(d.sigFigs, other.sigFigs))
	out.SetRelativeError(quadrature(d.relErr(), other.relErr()))
	return out
}

// Pow returns d raised to a measured exponent. The exponent must be unitless,
// otherwise the default quantity is returned with ErrUnsupportedOperand.
//
// The relative error is sqrt((n·r)² + (ln(v)·σn)²) for base v with relative
// error r and exponent n with uncertainty σn. A non-positive base yields NaN.
func (d DataErr) Pow(exponent DataErr) (DataErr, error) {
	if !exponent.IsUnitless() {
		return d.fail(OpPow.String(), exponent.unit.UnitsString(),
			fmt.Errorf("%w: exponent has unit %s", ErrUnsupportedOperand, exponent.unit.UnitsString()))
	}
	current().record(OpPow.String())
	n := exponent.value
	out := derive(math.Pow(d.value, n), 0, d.unit.Pow(n), min(d.sigFigs, exponent.sigFigs))
	out.SetRelativeError(quadrature(n*d.relErr(), math.Log(d.value)*exponent.uncertainty))
	return out, nil
}

// AddScalar returns d + k. The uncertainty is unchanged.
func (d DataErr) AddScalar(k float64) DataErr {
	current().record(OpAdd.String())
	return derive(d.value+k, d.uncertainty, d.unit, d.sigFigs)
}

// SubScalar returns d - k. The uncertainty is unchanged.
func (d DataErr) SubScalar(k float64) DataErr {
	current().record(OpSub.String())
	return derive(d.value-k, d.uncertainty, d.unit, d.sigFigs)
}

// MulScalar returns d × k keeping the relative error.
func (d DataErr) MulScalar(k float64) DataErr {
	current().record(OpMul.String())
	out := derive(d.value*k, 0, d.unit, d.sigFigs)
	out.SetRelativeError(d.relErr())
	return out
}

// DivScalar returns d ÷ k keeping the relative error.
func (d DataErr) DivScalar(k float64) DataErr {
	current().record(OpDiv.String())
	out := derive(d.value/k, 0, d.unit, d.sigFigs)
	out.SetRelativeError(d.relErr())
	return out
}

// PowScalar returns d raised to n. The relative error scales by n.
func (d DataErr) PowScalar(n float64) DataErr {
	current().record(OpPow.String())
	out := derive(math.Pow(d.value, n), 0, d.unit.Pow(n), d.sigFigs)
	out.SetRelativeError(n * d.relErr())
	return out
}

// Neg returns -d. Name, unit and significant figures are kept.
func (d DataErr) Neg() DataErr {
	current().record("negate")
	out := d
	out.value = -d.value
	return out
}

func (d DataErr) fail(op, right string, err error) (DataErr, error) {
	s := current()
	opErr := &OpError{
		Op:    op,
		Left:  d.unit.UnitsString(),
		Right: right,
		Err:   err,
	}
	s.reject(opErr)
	return New(0, 0), opErr
}
