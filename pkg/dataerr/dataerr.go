package dataerr

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/measure/pkg/unit"
)

// DataErr is a measured quantity: a nominal value, its absolute uncertainty,
// a unit, a display name and the significant figures used when printing the
// value.
//
// DataErr is a value type. It owns its Unit by value, so copies never share
// state, and every arithmetic method returns a new quantity.
type DataErr struct {
	value       float64
	uncertainty float64
	unit        unit.Unit
	name        string
	sigFigs     int
}

// Defaults given to quantities created without options, including
// arithmetic results.
const (
	DefaultName    = "Null"
	DefaultSigFigs = 3
)

// Option configures a DataErr at construction.
type Option func(*DataErr)

// WithUnit sets the unit.
func WithUnit(u unit.Unit) Option {
	return func(d *DataErr) {
		d.unit = u
	}
}

// WithName sets the display name.
func WithName(name string) Option {
	return func(d *DataErr) {
		d.name = name
	}
}

// WithSigFigs sets the significant figures used to display the value.
func WithSigFigs(n int) Option {
	return func(d *DataErr) {
		d.sigFigs = n
	}
}

// New creates a quantity. Without options it is unitless, named
// DefaultName and displayed to DefaultSigFigs significant figures.
func New(value, uncertainty float64, opts ...Option) DataErr {
	d := DataErr{
		value:       value,
		uncertainty: uncertainty,
		name:        DefaultName,
		sigFigs:     DefaultSigFigs,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Value returns the nominal value.
func (d DataErr) Value() float64 { return d.value }

// Uncertainty returns the absolute uncertainty.
func (d DataErr) Uncertainty() float64 { return d.uncertainty }

// Unit returns a copy of the unit.
func (d DataErr) Unit() unit.Unit { return d.unit }

// Name returns the display name.
func (d DataErr) Name() string { return d.name }

// SigFigs returns the significant figures used to display the value.
func (d DataErr) SigFigs() int { return d.sigFigs }

// Dimensions returns the dimension string of the unit.
func (d DataErr) Dimensions() string { return d.unit.DimensionsString() }

// IsUnitless reports whether the quantity has no dimension.
func (d DataErr) IsUnitless() bool { return d.unit.IsUnitless() }

// Top returns value + uncertainty.
func (d DataErr) Top() float64 { return d.value + d.uncertainty }

// Bottom returns value - uncertainty.
func (d DataErr) Bottom() float64 { return d.value - d.uncertainty }

// SetValue sets the nominal value. The uncertainty is not rescaled.
func (d *DataErr) SetValue(v float64) { d.value = v }

// SetUncertainty sets the absolute uncertainty. The sign is not checked.
func (d *DataErr) SetUncertainty(e float64) { d.uncertainty = e }

// SetUnit replaces the unit without converting the value.
func (d *DataErr) SetUnit(u unit.Unit) { d.unit = u }

// SetName sets the display name.
func (d *DataErr) SetName(name string) { d.name = name }

// SetSigFigs sets the significant figures used to display the value.
func (d *DataErr) SetSigFigs(n int) { d.sigFigs = n }

// SetRelativeError sets the uncertainty to |value × rel|.
func (d *DataErr) SetRelativeError(rel float64) {
	d.uncertainty = math.Abs(d.value * rel)
}

// RelativeError returns |uncertainty / value|. For a zero value it returns
// the IEEE result (+Inf, or NaN when the uncertainty is also zero) together
// with ErrDivisionByZero.
func (d DataErr) RelativeError() (float64, error) {
	rel := d.relErr()
	if d.value == 0 {
		return rel, fmt.Errorf("%w: relative error of zero value", ErrDivisionByZero)
	}
	return rel, nil
}

// relErr is the unguarded ratio used during propagation.
func (d DataErr) relErr() float64 {
	return math.Abs(d.uncertainty / d.value)
}

// ConvertUnitTo rescales value and uncertainty into target, which must have
// the same exponent vector as the current unit. Scale and symbol may differ.
// On mismatch the quantity is left unchanged and ErrIncompatibleUnit is
// returned.
func (d *DataErr) ConvertUnitTo(target unit.Unit) error {
	s := current()
	if !d.unit.SameDimension(target) {
		err := &OpError{
			Op:    "convert",
			Left:  d.unit.UnitsString(),
			Right: target.UnitsString(),
			Err:   ErrIncompatibleUnit,
		}
		s.reject(err)
		return err
	}

	s.record("convert")
	d.value = d.value / target.Scale() * d.unit.Scale()
	d.uncertainty = d.uncertainty / target.Scale() * d.unit.Scale()
	d.unit = target
	return nil
}
