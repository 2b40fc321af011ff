package dataerr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/measure/pkg/unit"
)

func TestAdd(t *testing.T) {
	a := New(1, 0.3, WithUnit(metre), WithSigFigs(5))
	b := New(2, 0.4, WithUnit(metre))

	t.Run("quantities", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, sum.Value(), tolerance)
		assert.InDelta(t, 0.5, sum.Uncertainty(), tolerance)
		assert.True(t, sum.Unit().Equal(metre))
		assert.Equal(t, 3, sum.SigFigs(), "smallest significant figures win")
		assert.Equal(t, "Null", sum.Name())
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := a.Sub(b)
		require.NoError(t, err)
		assert.InDelta(t, -1.0, diff.Value(), tolerance)
		assert.InDelta(t, 0.5, diff.Uncertainty(), tolerance)
	})

	t.Run("scalar", func(t *testing.T) {
		sum := a.AddScalar(2)
		assert.InDelta(t, 3.0, sum.Value(), tolerance)
		assert.Equal(t, 0.3, sum.Uncertainty())
		assert.Equal(t, 5, sum.SigFigs())
		assert.True(t, sum.Unit().Equal(metre))

		diff := a.SubScalar(2)
		assert.InDelta(t, -1.0, diff.Value(), tolerance)
		assert.Equal(t, 0.3, diff.Uncertainty())
	})

	mismatched := []struct {
		name  string
		other DataErr
	}{
		{"different dimension", New(2, 0.4, WithUnit(second))},
		{"different scale", New(2, 0.4, WithUnit(kilometre()))},
		{"unitless", New(2, 0.4)},
	}
	for _, tt := range mismatched {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			before := a
			for _, op := range []func(DataErr) (DataErr, error){a.Add, a.Sub} {
				got, err := op(tt.other)
				assert.ErrorIs(t, err, ErrIncompatibleUnit)
				assert.Equal(t, New(0, 0), got, "failed operations yield the default quantity")
			}
			assert.Equal(t, before, a, "operands are not modified")
		})
	}
}

func TestMul(t *testing.T) {
	a := New(2, 0.1, WithUnit(metre))
	b := New(3, 0.2, WithUnit(metre), WithSigFigs(2))

	got := a.Mul(b)
	rel := math.Sqrt(math.Pow(0.1/2, 2) + math.Pow(0.2/3, 2))

	assert.InDelta(t, 6.0, got.Value(), tolerance)
	assert.InDelta(t, 6*rel, got.Uncertainty(), tolerance)
	assert.Equal(t, [unit.NumDimensions]float64{0, 2}, got.Unit().Exponents())
	assert.Equal(t, 2, got.SigFigs())

	gotRel, err := got.RelativeError()
	require.NoError(t, err)
	assert.InDelta(t, rel, gotRel, tolerance)

	t.Run("scalar keeps relative error", func(t *testing.T) {
		got := a.MulScalar(-3)
		assert.InDelta(t, -6.0, got.Value(), tolerance)
		assert.InDelta(t, 0.3, got.Uncertainty(), tolerance)
		assert.True(t, got.Unit().Equal(metre))
		assert.Equal(t, 3, got.SigFigs())
	})
}

func TestDiv(t *testing.T) {
	distance := New(6, 0.3, WithUnit(metre))
	duration := New(2, 0.1, WithUnit(second))

	speed := distance.Div(duration)
	assert.InDelta(t, 3.0, speed.Value(), tolerance)
	assert.InDelta(t, 3*math.Sqrt(0.05*0.05+0.05*0.05), speed.Uncertainty(), tolerance)
	assert.Equal(t, "m s^-1", speed.Unit().SIUnitsString())

	t.Run("same unit cancels", func(t *testing.T) {
		ratio := distance.Div(New(3, 0, WithUnit(metre)))
		assert.True(t, ratio.IsUnitless())
	})

	t.Run("scalar keeps relative error", func(t *testing.T) {
		got := distance.DivScalar(3)
		assert.InDelta(t, 2.0, got.Value(), tolerance)
		assert.InDelta(t, 0.1, got.Uncertainty(), tolerance)
		assert.True(t, got.Unit().Equal(metre))
	})
}

func TestPow(t *testing.T) {
	base := New(4, 0.2, WithUnit(metre))

	t.Run("exact exponent", func(t *testing.T) {
		got, err := base.Pow(New(2, 0))
		require.NoError(t, err)
		assert.InDelta(t, 16.0, got.Value(), tolerance)
		assert.InDelta(t, 1.6, got.Uncertainty(), tolerance)
		assert.Equal(t, 2.0, got.Unit().Exponent(unit.Length))
	})

	t.Run("measured exponent", func(t *testing.T) {
		exponent := New(0.5, 0.1, WithSigFigs(2))
		got, err := base.Pow(exponent)
		require.NoError(t, err)

		rel := math.Sqrt(math.Pow(0.5*0.05, 2) + math.Pow(math.Log(4)*0.1, 2))
		assert.InDelta(t, 2.0, got.Value(), tolerance)
		assert.InDelta(t, 2*rel, got.Uncertainty(), tolerance)
		assert.Equal(t, 0.5, got.Unit().Exponent(unit.Length))
		assert.Equal(t, 2, got.SigFigs())
	})

	t.Run("exponent with unit", func(t *testing.T) {
		got, err := base.Pow(New(2, 0, WithUnit(second)))
		assert.ErrorIs(t, err, ErrUnsupportedOperand)
		assert.Equal(t, New(0, 0), got)
	})

	t.Run("scalar", func(t *testing.T) {
		got := base.PowScalar(-1)
		assert.InDelta(t, 0.25, got.Value(), tolerance)
		assert.InDelta(t, 0.0125, got.Uncertainty(), tolerance)
		assert.Equal(t, -1.0, got.Unit().Exponent(unit.Length))
		assert.Equal(t, 3, got.SigFigs())
	})
}

func TestNeg(t *testing.T) {
	d := New(4, 0.2, WithUnit(metre), WithName("x"), WithSigFigs(6))
	got := d.Neg()
	assert.Equal(t, -4.0, got.Value())
	assert.Equal(t, 0.2, got.Uncertainty())
	assert.True(t, got.Unit().Equal(metre))
	assert.Equal(t, "x", got.Name())
	assert.Equal(t, 6, got.SigFigs())
	assert.Equal(t, 4.0, d.Value())
}

func TestDegenerateNumerics(t *testing.T) {
	t.Run("zero value in product", func(t *testing.T) {
		got := New(0, 0.1).Mul(New(3, 0.2))
		assert.Equal(t, 0.0, got.Value())
		assert.True(t, math.IsNaN(got.Uncertainty()))
	})

	t.Run("negative base with fractional power", func(t *testing.T) {
		got := New(-4, 0.2).PowScalar(0.5)
		assert.True(t, math.IsNaN(got.Value()))
	})

	t.Run("log of negative base", func(t *testing.T) {
		got, err := New(-2, 0.1).Pow(New(2, 0.1))
		require.NoError(t, err)
		assert.InDelta(t, 4.0, got.Value(), tolerance)
		assert.True(t, math.IsNaN(got.Uncertainty()))
	})

	t.Run("division by zero value", func(t *testing.T) {
		got := New(1, 0.1).DivScalar(0)
		assert.True(t, math.IsInf(got.Value(), 1))
	})
}

func TestApply(t *testing.T) {
	a := New(6, 0.3, WithUnit(metre))
	b := New(2, 0.1, WithUnit(metre))

	t.Run("quantity operands", func(t *testing.T) {
		sum, err := a.Apply(OpAdd, b)
		require.NoError(t, err)
		assert.InDelta(t, 8.0, sum.Value(), tolerance)

		quotient, err := a.Apply(OpDiv, &b)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, quotient.Value(), tolerance)
		assert.True(t, quotient.IsUnitless())

		product, err := a.Apply(OpMul, b)
		require.NoError(t, err)
		assert.Equal(t, a.Mul(b), product)
	})

	t.Run("numeric operands", func(t *testing.T) {
		tests := []struct {
			op      Op
			operand interface{}
			want    float64
		}{
			{OpAdd, 1, 7},
			{OpSub, int64(1), 5},
			{OpMul, float32(0.5), 3},
			{OpDiv, uint8(2), 3},
			{OpPow, 2.0, 36},
		}
		for _, tt := range tests {
			t.Run(tt.op.String(), func(t *testing.T) {
				got, err := a.Apply(tt.op, tt.operand)
				require.NoError(t, err)
				assert.InDelta(t, tt.want, got.Value(), tolerance)
			})
		}
	})

	t.Run("unsupported operands", func(t *testing.T) {
		var nilQuantity *DataErr
		for _, operand := range []interface{}{"2", nil, nilQuantity, metre, []float64{1}} {
			got, err := a.Apply(OpMul, operand)
			assert.ErrorIs(t, err, ErrUnsupportedOperand, "operand %#v", operand)
			assert.Equal(t, New(0, 0), got)
		}
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := a.Apply(Op(99), b)
		assert.ErrorIs(t, err, ErrUnsupportedOperand)

		_, err = a.Apply(Op(99), 2)
		assert.ErrorIs(t, err, ErrUnsupportedOperand)
	})

	t.Run("mismatched units surface through apply", func(t *testing.T) {
		_, err := a.Apply(OpSub, New(1, 0, WithUnit(second)))
		assert.ErrorIs(t, err, ErrIncompatibleUnit)
	})
}
