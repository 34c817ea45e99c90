package response

import (
	"github.com/cwbudde/algo-filtereval/dsp/spectrum"
)

// Stability is the result of a stability check.
type Stability int

const (
	// Unknown means the kind does not determine stability.
	Unknown Stability = iota
	Stable
	Unstable
)

// StabilityOf converts a definite check result.
func StabilityOf(stable bool) Stability {
	if stable {
		return Stable
	}
	return Unstable
}

// String returns "unknown", "stable" or "unstable".
func (s Stability) String() string {
	switch s {
	case Stable:
		return "stable"
	case Unstable:
		return "unstable"
	default:
		return "unknown"
	}
}

// Evaluator is implemented by every filter kind.
//
// Implementations are immutable after construction, so all methods are
// safe for concurrent use.
type Evaluator interface {
	// ComplexGain returns H(f) for each frequency in Hz.
	ComplexGain(freqs []float64) []complex128
	// GainAndPhase returns the gain in dB and the phase in degrees
	// (wrapped to [-180, 180]) for each frequency.
	GainAndPhase(freqs []float64) (gainDB, phaseDeg []float64)
	IsStable() Stability
}

// GainAndPhase splits complex gains into 20*log10|H| and arg(H) in degrees.
// Exact zeros yield -Inf.
func GainAndPhase(h []complex128) (gainDB, phaseDeg []float64) {
	if len(h) == 0 {
		return []float64{}, []float64{}
	}
	return spectrum.MagnitudeDB(h, 0), spectrum.PhaseDegrees(h)
}

// Product returns the elementwise product of the complex gains of evals,
// which is the response of the evaluators in cascade. With no evaluators
// the result is unity at every frequency.
func Product(freqs []float64, evals ...Evaluator) []complex128 {
	out := make([]complex128, len(freqs))
	for i := range out {
		out[i] = 1
	}
	for _, e := range evals {
		MultiplyInto(out, e.ComplexGain(freqs))
	}
	return out
}

// MultiplyInto sets dst[i] *= h[i]. It panics if the lengths differ.
func MultiplyInto(dst, h []complex128) {
	if len(dst) != len(h) {
		panic("response: length mismatch")
	}
	for i := range dst {
		dst[i] *= h[i]
	}
}
