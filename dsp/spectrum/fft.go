package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrInvalidLength is returned for non-positive transform sizes.
var ErrInvalidLength = errors.New("spectrum: invalid transform length")

// Transform zero-pads x to a power-of-two length of at least minLen and
// returns the one-sided spectrum X[0..n/2] together with n.
func Transform(x []float64, minLen int) ([]complex128, int, error) {
	if minLen <= 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidLength, minLen)
	}

	n := nextPowerOf2(max(minLen, len(x)))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, n)
	for i, v := range x {
		padded[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, padded); err != nil {
		return nil, 0, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return out[:n/2+1], n, nil
}

// BinFrequencies returns the centre frequency of bins 0..n/2 of an n-point
// transform at sampleRate.
func BinFrequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n/2+1)
	df := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * df
	}
	return out
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
