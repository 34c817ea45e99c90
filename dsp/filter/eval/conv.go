package eval

import (
	"fmt"

	"github.com/cwbudde/algo-filtereval/dsp/response"
	"github.com/cwbudde/algo-filtereval/dsp/sampleio"
	"github.com/cwbudde/algo-filtereval/dsp/spectrum"
)

// Conv evaluates an FIR filter from its impulse response.
//
// The spectrum is computed once at construction: the impulse is
// zero-padded, transformed and the one-sided bins are interpolated
// linearly onto the requested frequencies.
type Conv struct {
	impulse []float64
	fs      float64
	floor   float64

	n      int
	bins   []float64
	spec   []complex128
	interp *spectrum.ComplexInterpolator
}

// Impulse loads the impulse response described by s. Without a file or
// values the impulse is the identity [1].
func (s ConvSpec) Impulse() ([]float64, error) {
	if s.File != nil {
		f := s.File
		samples, err := sampleio.ReadFile(f.Filename, f.Format, sampleio.ReadOptions{
			Skip:    f.Skip,
			Read:    f.Read,
			Channel: f.Channel,
		})
		if err != nil {
			return nil, fmt.Errorf("eval: %s: %w", KindConv, err)
		}
		if len(samples) == 0 {
			return nil, fmt.Errorf("eval: %s: %s: %w: no samples in range", KindConv, f.Filename, sampleio.ErrMalformedInput)
		}
		return samples, nil
	}
	if len(s.Values) == 0 {
		return []float64{1}, nil
	}
	return append([]float64(nil), s.Values...), nil
}

// NewConv loads the impulse of s and precomputes its spectrum.
func NewConv(s ConvSpec, fs float64, opts ...Option) (*Conv, error) {
	if !(fs > 0) {
		return nil, configErr(KindConv, "samplerate", "must be positive, got %v", fs)
	}
	cfg := applyOptions(opts)

	impulse, err := s.Impulse()
	if err != nil {
		return nil, err
	}

	spec, n, err := spectrum.Transform(impulse, max(cfg.minFFTLength, 2*len(impulse)))
	if err != nil {
		return nil, fmt.Errorf("eval: %s: %w", KindConv, err)
	}
	bins := spectrum.BinFrequencies(n, fs)
	ip, err := spectrum.NewComplexInterpolator(bins, spec)
	if err != nil {
		return nil, fmt.Errorf("eval: %s: %w", KindConv, err)
	}

	return &Conv{
		impulse: impulse,
		fs:      fs,
		floor:   cfg.magnitudeFloor,
		n:       n,
		bins:    bins,
		spec:    spec,
		interp:  ip,
	}, nil
}

// Impulse returns the time axis t[i] = i/fs and a copy of the impulse.
func (c *Conv) Impulse() (t, samples []float64) {
	t = make([]float64, len(c.impulse))
	for i := range t {
		t[i] = float64(i) / c.fs
	}
	return t, append([]float64(nil), c.impulse...)
}

// FFTLength returns the padded transform length.
func (c *Conv) FFTLength() int { return c.n }

// Spectrum returns copies of the bin frequencies 0..fs/2 and the complex
// spectrum at those bins.
func (c *Conv) Spectrum() (freqs []float64, h []complex128) {
	return append([]float64(nil), c.bins...), append([]complex128(nil), c.spec...)
}

// ComplexGain linearly interpolates the padded spectrum at freqs.
// Frequencies outside [0, fs/2] take the value of the nearest edge bin.
func (c *Conv) ComplexGain(freqs []float64) []complex128 {
	return c.interp.Predict(freqs)
}

// GainAndPhase returns 20*log10(|H|+eps) with the configured magnitude
// floor eps, so exact zeros stay finite.
func (c *Conv) GainAndPhase(freqs []float64) ([]float64, []float64) {
	h := c.ComplexGain(freqs)
	return spectrum.MagnitudeDB(h, c.floor), spectrum.PhaseDegrees(h)
}

// IsStable reports [response.Stable]: a finite impulse response has no
// poles outside the origin.
func (c *Conv) IsStable() response.Stability { return response.Stable }
