package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filtereval/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |H[k]| for each complex gain.
//
// This function uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates only
// the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeDB returns 20*log10(|H[k]| + floor) for each complex gain.
// A zero floor yields -Inf at exact zeros.
func MagnitudeDB(in []complex128, floor float64) []float64 {
	out := Magnitude(in)
	for i, m := range out {
		out[i] = core.LinearToDB(m + floor)
	}
	return out
}

// Phase returns arg(H[k]) for each complex gain in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// PhaseDegrees returns arg(H[k]) in degrees, wrapped to [-180, 180].
func PhaseDegrees(in []complex128) []float64 {
	out := Phase(in)
	for i := range out {
		out[i] = core.Degrees(out[i])
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	return unwrap(phase, math.Pi)
}

// UnwrapPhaseDegrees is UnwrapPhase for phases in degrees.
func UnwrapPhaseDegrees(phase []float64) []float64 {
	return unwrap(phase, 180)
}

func unwrap(phase []float64, half float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > half:
			offset -= 2 * half
		case d < -half:
			offset += 2 * half
		}
		out[i] = phase[i] + offset
	}
	return out
}
