// Package dataerr propagates measurement uncertainty and physical units
// through arithmetic.
//
// A DataErr carries a nominal value, an absolute uncertainty, a unit.Unit, a
// display name and a significant-figure count. Arithmetic returns new
// quantities with the uncertainty propagated for independent errors:
//
//	add/sub  σ = sqrt(σ1² + σ2²)          units must be equal
//	mul/div  r = sqrt(r1² + r2²)          units multiply/divide
//	pow      r = sqrt((n·r1)² + (ln v·σn)²) exponent must be unitless
//
// where r is the relative error |σ/v|. Scalar operands leave the uncertainty
// (add/sub) or the relative error (mul/div) unchanged. Results of two
// quantities keep the smaller significant-figure count.
//
// Rejected operations return the default quantity New(0, 0) together with an
// *OpError wrapping ErrIncompatibleUnit or ErrUnsupportedOperand. Numeric
// degeneracies (zero values in relative errors, logarithms of non-positive
// bases) are not errors and propagate as NaN or Inf.
//
// Rejected operations are logged through zap when a logger is set with
// SetLogger or MEASURE_LOG_ENABLED is true, and counted by prometheus
// collectors exposed with RegisterMetrics.
//
// Example Usage:
//
//	g := dataerr.New(9.81, 0.02, dataerr.WithUnit(unit.New(0, 1, -2)), dataerr.WithName("g"))
//	h := dataerr.New(1.5, 0.01, dataerr.WithUnit(unit.Base(unit.Length)))
//	v := g.MulScalar(2).Mul(h).PowScalar(0.5)
//	fmt.Println(v.Show())
package dataerr
