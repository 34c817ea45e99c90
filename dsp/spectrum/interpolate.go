package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// ComplexInterpolator is a piecewise-linear fit of complex samples. Real and
// imaginary parts are interpolated independently. It is immutable after
// construction.
type ComplexInterpolator struct {
	re, im interp.PiecewiseLinear
}

// NewComplexInterpolator fits the complex samples y taken at x.
//
// x must be strictly increasing with at least two points.
func NewComplexInterpolator(x []float64, y []complex128) (*ComplexInterpolator, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("spectrum: interpolate x/y length mismatch: %d != %d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("spectrum: interpolate requires at least 2 points: %d", len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("spectrum: interpolate x must be strictly increasing at index %d", i)
		}
	}

	re := make([]float64, len(y))
	im := make([]float64, len(y))
	for i, c := range y {
		re[i] = real(c)
		im[i] = imag(c)
	}

	ci := &ComplexInterpolator{}
	if err := ci.re.Fit(x, re); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	if err := ci.im.Fit(x, im); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	return ci, nil
}

// Predict evaluates the fit at every query point. Queries outside the fitted
// range take the nearest end value.
func (ci *ComplexInterpolator) Predict(query []float64) []complex128 {
	out := make([]complex128, len(query))
	for i, q := range query {
		out[i] = complex(ci.re.Predict(q), ci.im.Predict(q))
	}
	return out
}

// InterpolateComplex linearly interpolates the complex samples y taken at
// x onto query. See [NewComplexInterpolator] for the requirements on x.
func InterpolateComplex(x []float64, y []complex128, query []float64) ([]complex128, error) {
	ci, err := NewComplexInterpolator(x, y)
	if err != nil {
		return nil, err
	}
	return ci.Predict(query), nil
}
