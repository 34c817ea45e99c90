// Package core holds the small numeric conversions shared by the filter
// kinds: dB/linear amplitude, polarity and radians/degrees.
package core

import "math"

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a magnitude to dB (20*log10 convention). Zero maps
// to -Inf, negative magnitudes to NaN.
func LinearToDB(mag float64) float64 {
	if mag < 0 {
		return math.NaN()
	}
	return 20 * math.Log10(mag)
}

// SignedGain returns the linear amplitude for gainDB, negated when inverted.
func SignedGain(gainDB float64, inverted bool) float64 {
	g := DBToLinear(gainDB)
	if inverted {
		return -g
	}

	return g
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
