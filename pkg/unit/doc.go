// Package unit provides SI dimensional units as immutable-by-convention values.
//
// A Unit is a vector of seven exponents, one per SI base dimension, in the
// fixed order Mass, Length, Time, Temperature, Current, Amount and
// Luminous intensity. A unit may also carry a display symbol together with
// the scale that relates the symbol to the SI base representation of the
// same dimension (for example "km" with scale 1000 on Length^1).
//
// Arithmetic:
//   - Mul/Div add or subtract exponent vectors
//   - Pow multiplies every exponent by a number and raises the scale
//   - Equal compares exponents and scale, never the symbol
//
// Renderings:
//   - DimensionsString: "M L^2 T^-2"
//   - SIUnitsString:    "kg m^2 s^-2"
//   - UnitsString:      symbol if set, otherwise the SI rendering
//   - Latex/SILatex:    the same wrapped in $...$ with braced exponents
//
// Example Usage:
//
//	newton := unit.New(1, 1, -2)
//	newton.SetSymbolAndScale("N", 1)
//	area := unit.Base(unit.Length).Pow(2)
//	fmt.Println(area.SIUnitsString()) // m^2
package unit
