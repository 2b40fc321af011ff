package dataerr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Split projects a sequence of quantities onto index-aligned slices of
// values and uncertainties. The input is not modified.
func Split(list []DataErr) (values, uncertainties []float64) {
	values = make([]float64, len(list))
	uncertainties = make([]float64, len(list))
	for i, d := range list {
		values[i] = d.value
		uncertainties[i] = d.uncertainty
	}
	return values, uncertainties
}

// WeightedMean combines repeated measurements of one quantity using
// inverse-variance weights. All units must be equal and every uncertainty
// non-zero. The result has uncertainty 1/sqrt(Σ 1/σ²) and the smallest
// significant-figure count of the inputs.
func WeightedMean(list []DataErr) (DataErr, error) {
	if len(list) == 0 {
		return New(0, 0), fmt.Errorf("weighted mean: %w", ErrEmptySequence)
	}

	first := list[0]
	values, errs := Split(list)
	weights := make([]float64, len(list))
	sigFigs := first.sigFigs
	for i, d := range list {
		if !d.unit.Equal(first.unit) {
			return first.fail("weighted_mean", d.unit.UnitsString(), ErrIncompatibleUnit)
		}
		if errs[i] == 0 {
			return New(0, 0), fmt.Errorf("weighted mean: %w: measurement %d has zero uncertainty", ErrDivisionByZero, i)
		}
		weights[i] = 1 / (errs[i] * errs[i])
		sigFigs = min(sigFigs, d.sigFigs)
	}

	return derive(
		stat.Mean(values, weights),
		1/math.Sqrt(floats.Sum(weights)),
		first.unit,
		sigFigs,
	), nil
}

// FromSamples summarises repeated readings as mean ± standard error of the
// mean. A single reading has zero uncertainty.
func FromSamples(samples []float64, opts ...Option) (DataErr, error) {
	if len(samples) == 0 {
		return New(0, 0), fmt.Errorf("from samples: %w", ErrEmptySequence)
	}
	if len(samples) == 1 {
		return New(samples[0], 0, opts...), nil
	}

	mean, std := stat.MeanStdDev(samples, nil)
	return New(mean, std/math.Sqrt(float64(len(samples))), opts...), nil
}
