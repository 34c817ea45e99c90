package eval

import (
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-filtereval/dsp/response"
)

// DiffEq evaluates H(z) = sum(b[n] z^-n) / sum(a[n] z^-n).
type DiffEq struct {
	a, b []float64
	fs   float64
}

// NewDiffEq copies the coefficient vectors of s. Empty vectors become [1].
func NewDiffEq(s DiffEqSpec, fs float64) *DiffEq {
	return &DiffEq{a: taps(s.A), b: taps(s.B), fs: fs}
}

func taps(v []float64) []float64 {
	if len(v) == 0 {
		return []float64{1}
	}
	return append([]float64(nil), v...)
}

// A returns a copy of the denominator coefficients.
func (d *DiffEq) A() []float64 { return append([]float64(nil), d.a...) }

// B returns a copy of the numerator coefficients.
func (d *DiffEq) B() []float64 { return append([]float64(nil), d.b...) }

// ComplexGain evaluates both polynomials at z = e^(j*2*pi*f/fs). With
// z^-n = cos(n*w) - j*sin(n*w), each polynomial is a pair of dot products
// against the cos and sin tap vectors.
func (d *DiffEq) ComplexGain(freqs []float64) []complex128 {
	n := max(len(d.a), len(d.b))
	cosTap := make([]float64, n)
	sinTap := make([]float64, n)

	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		w := 2 * math.Pi * f / d.fs
		for k := range n {
			sinTap[k], cosTap[k] = math.Sincos(float64(k) * w)
		}
		num := complex(f64.DotProduct(d.b, cosTap[:len(d.b)]), -f64.DotProduct(d.b, sinTap[:len(d.b)]))
		den := complex(f64.DotProduct(d.a, cosTap[:len(d.a)]), -f64.DotProduct(d.a, sinTap[:len(d.a)]))
		out[i] = num / den
	}
	return out
}

// GainAndPhase returns gain in dB and wrapped phase in degrees.
func (d *DiffEq) GainAndPhase(freqs []float64) ([]float64, []float64) {
	return response.GainAndPhase(d.ComplexGain(freqs))
}

// IsStable is not determined for arbitrary order and always reports
// [response.Unknown].
func (d *DiffEq) IsStable() response.Stability { return response.Unknown }
