package unit

import (
	"math"
	"strconv"
	"strings"
)

const unitless = "unitless"

// Unit is a physical dimension with an optional display symbol.
//
// The zero value is a unitless unit with scale 1 and no symbol. Units are
// plain values: copying a Unit copies its exponents, and every arithmetic
// method returns a new Unit.
type Unit struct {
	exps   [NumDimensions]float64
	scale  float64 // zero reads as 1
	symbol string
}

// New creates a unit from exponents given in dimension order. Missing
// trailing exponents are 0 and entries beyond the seventh are ignored.
func New(exps ...float64) Unit {
	var u Unit
	u.SetExponents(exps...)
	return u
}

// Base returns the SI base unit of a single dimension, e.g. Base(Length) is m.
func Base(d Dimension) Unit {
	var u Unit
	if d.Valid() {
		u.exps[d] = 1
	}
	return u
}

// SetExponents replaces the exponent vector. Missing trailing exponents are
// set to 0 and entries beyond the seventh are ignored.
func (u *Unit) SetExponents(exps ...float64) {
	u.exps = [NumDimensions]float64{}
	copy(u.exps[:], exps)
}

// SetSymbolAndScale sets the display symbol and the factor relating one of
// that symbol to the SI base representation.
func (u *Unit) SetSymbolAndScale(symbol string, scale float64) {
	u.symbol = symbol
	u.scale = scale
}

// SetExponentOf sets the exponent of the dimension with the given tag.
func (u *Unit) SetExponentOf(tag string, exp float64) error {
	d, err := ParseDimension(tag)
	if err != nil {
		return err
	}
	u.exps[d] = exp
	return nil
}

// Scale returns the SI scale of the symbol, 1 when none was set.
func (u Unit) Scale() float64 {
	if u.scale == 0 {
		return 1
	}
	return u.scale
}

// ExponentOf returns the exponent of the dimension with the given tag.
func (u Unit) ExponentOf(tag string) (float64, error) {
	d, err := ParseDimension(tag)
	if err != nil {
		return 0, err
	}
	return u.exps[d], nil
}

// Exponent returns the exponent of d.
func (u Unit) Exponent(d Dimension) float64 {
	if !d.Valid() {
		return 0
	}
	return u.exps[d]
}

// Exponents returns a copy of the exponent vector.
func (u Unit) Exponents() [NumDimensions]float64 {
	return u.exps
}

// Symbol returns the display symbol, empty if none was set.
func (u Unit) Symbol() string {
	return u.symbol
}

// IsUnitless reports whether every exponent is exactly 0.
func (u Unit) IsUnitless() bool {
	return u.exps == [NumDimensions]float64{}
}

// DimensionsString renders the non-zero exponents with dimension letters,
// e.g. "M L^2 T^-2", or "unitless".
func (u Unit) DimensionsString() string {
	if u.IsUnitless() {
		return unitless
	}
	return u.compose(&DimensionTags, false)
}

// UnitsString returns the symbol if set, otherwise the SI rendering.
func (u Unit) UnitsString() string {
	if u.symbol != "" {
		return u.symbol
	}
	return u.SIUnitsString()
}

// SIUnitsString renders the unit in SI base units regardless of the symbol.
func (u Unit) SIUnitsString() string {
	if u.IsUnitless() {
		return unitless
	}
	return u.compose(&SIBaseUnits, false)
}

// Latex returns UnitsString wrapped in $...$.
func (u Unit) Latex() string {
	if u.symbol != "" {
		return "$" + u.symbol + "$"
	}
	return u.SILatex()
}

// SILatex returns SIUnitsString wrapped in $...$ with braced exponents.
func (u Unit) SILatex() string {
	if u.IsUnitless() {
		return "$" + unitless + "$"
	}
	return "$" + u.compose(&SIBaseUnits, true) + "$"
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return u.UnitsString()
}

func (u Unit) compose(names *[NumDimensions]string, latex bool) string {
	parts := make([]string, 0, NumDimensions)
	for i, e := range u.exps {
		switch {
		case e == 0:
		case e == 1:
			parts = append(parts, names[i])
		case latex:
			parts = append(parts, names[i]+"^{"+formatExponent(e)+"}")
		default:
			parts = append(parts, names[i]+"^"+formatExponent(e))
		}
	}
	return strings.Join(parts, " ")
}

func formatExponent(e float64) string {
	return strconv.FormatFloat(e, 'g', -1, 64)
}

// Mul returns u × other: exponents add element-wise.
//
// The result symbol is other's symbol followed by a space when other has one,
// otherwise u's symbol. When the result has a symbol its scale is the product
// of both scales; when it has none the scale is dropped back to 1.
func (u Unit) Mul(other Unit) Unit {
	return u.combine(other, 1)
}

// Div returns u ÷ other: exponents subtract element-wise. Symbol and scale
// follow the same rule as Mul.
func (u Unit) Div(other Unit) Unit {
	return u.combine(other, -1)
}

func (u Unit) combine(other Unit, sign float64) Unit {
	var out Unit
	for i := range out.exps {
		out.exps[i] = u.exps[i] + sign*other.exps[i]
	}

	var symbol string
	switch {
	case other.symbol != "":
		symbol = other.symbol + " "
	case u.symbol != "":
		symbol = u.symbol
	}
	if symbol != "" {
		out.SetSymbolAndScale(symbol, u.Scale()*other.Scale())
	}
	return out
}

// Pow returns u raised to n: every exponent is multiplied by n, the scale is
// raised to n and a symbol s is rendered as "s^n".
func (u Unit) Pow(n float64) Unit {
	var out Unit
	for i, e := range u.exps {
		out.exps[i] = e * n
	}
	out.scale = math.Pow(u.Scale(), n)
	if u.symbol != "" {
		out.symbol = u.symbol + "^" + formatExponent(n)
	}
	return out
}

// Equal reports whether both units have the same exponents and scale.
// Symbols are not compared.
func (u Unit) Equal(other Unit) bool {
	return u.exps == other.exps && u.Scale() == other.Scale()
}

// SameDimension reports whether both units have the same exponent vector,
// regardless of scale or symbol.
func (u Unit) SameDimension(other Unit) bool {
	return u.exps == other.exps
}
