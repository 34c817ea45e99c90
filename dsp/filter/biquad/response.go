package biquad

import (
	"math"
	"math/cmplx"
)

// delay returns z^-1 = e^(-jw) for a frequency in Hz.
func delay(freqHz, sampleRate float64) complex128 {
	sin, cos := math.Sincos(2 * math.Pi * freqHz / sampleRate)
	return complex(cos, -sin)
}

// Response returns the complex gain H(e^jw) of the section at freqHz.
// Frequencies outside [0, sampleRate/2] are evaluated as is, so the
// response is periodic in sampleRate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.transfer(delay(freqHz, sampleRate))
}

// transfer evaluates H at a given z^-1 in Horner form.
func (c *Coefficients) transfer(zi complex128) complex128 {
	num := complex(c.B0, 0) + zi*(complex(c.B1, 0)+zi*complex(c.B2, 0))
	den := 1 + zi*(complex(c.A1, 0)+zi*complex(c.A2, 0))
	return num / den
}

// ResponseAt evaluates Response for every frequency in freqs.
func (c *Coefficients) ResponseAt(freqs []float64, sampleRate float64) []complex128 {
	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		out[i] = c.Response(f, sampleRate)
	}
	return out
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the wrapped phase of H(f) in radians, in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// DCGain returns H(1), the gain at 0 Hz.
func (c *Coefficients) DCGain() float64 {
	return (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
}

// NyquistGain returns H(-1), the gain at half the sample rate.
func (c *Coefficients) NyquistGain() float64 {
	return (c.B0 - c.B1 + c.B2) / (1 - c.A1 + c.A2)
}

// Response returns the product of all section responses times the chain
// gain. An empty chain has the response of its gain.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	zi := delay(freqHz, sampleRate)
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].transfer(zi)
	}
	return h
}

// ResponseAt evaluates the cascade response for every frequency in freqs.
func (c *Chain) ResponseAt(freqs []float64, sampleRate float64) []complex128 {
	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		out[i] = c.Response(f, sampleRate)
	}
	return out
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}
