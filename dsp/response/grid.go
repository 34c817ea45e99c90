package response

import "gonum.org/v1/gonum/floats"

// DefaultPoints is the number of points of [DefaultGrid].
const DefaultPoints = 1000

// LinearGrid returns n frequencies evenly spaced from start to stop
// inclusive. It returns nil for n <= 0 and []float64{start} for n == 1.
func LinearGrid(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	return pinEnds(floats.Span(make([]float64, n), start, stop), start, stop)
}

// LogGrid returns n frequencies logarithmically spaced from start to stop
// inclusive. Both bounds must be positive.
func LogGrid(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	return pinEnds(floats.LogSpan(make([]float64, n), start, stop), start, stop)
}

// pinEnds restores the exact bounds, which the span helpers only reach up
// to rounding.
func pinEnds(grid []float64, start, stop float64) []float64 {
	grid[0], grid[len(grid)-1] = start, stop
	return grid
}

// DefaultGrid is the display grid for sample rate fs: DefaultPoints
// frequencies from 1 Hz up to 95% of Nyquist.
func DefaultGrid(fs float64) []float64 {
	return LinearGrid(1, 0.95*fs/2, DefaultPoints)
}
