package eval

import (
	"github.com/cwbudde/algo-filtereval/dsp/filter/biquad"
	"github.com/cwbudde/algo-filtereval/dsp/filter/design"
	"github.com/cwbudde/algo-filtereval/dsp/response"
)

// Biquad evaluates a single biquad or first-order section.
type Biquad struct {
	typ    BiquadType
	coeffs biquad.Coefficients
	fs     float64
}

// NewBiquad designs the section described by s at sample rate fs.
func NewBiquad(s BiquadSpec, fs float64) (*Biquad, error) {
	c, err := s.Coefficients(fs)
	if err != nil {
		return nil, err
	}
	return &Biquad{typ: s.Type, coeffs: c, fs: fs}, nil
}

// Coefficients returns the normalized coefficients of the section
// described by s.
func (s BiquadSpec) Coefficients(fs float64) (biquad.Coefficients, error) {
	p := s.Params
	switch s.Type {
	case Lowpass:
		return design.Lowpass(p.Freq, p.Q, fs), nil
	case Highpass:
		return design.Highpass(p.Freq, p.Q, fs), nil
	case Peaking:
		return design.Peak(p.Freq, p.GainDB, p.Q, fs), nil
	case Notch:
		return design.Notch(p.Freq, p.Q, fs), nil
	case Bandpass:
		return design.Bandpass(p.Freq, p.Q, fs), nil
	case Allpass:
		return design.Allpass(p.Freq, p.Q, fs), nil
	case Lowshelf:
		return design.LowShelf(p.Freq, p.GainDB, p.Slope, fs), nil
	case Highshelf:
		return design.HighShelf(p.Freq, p.GainDB, p.Slope, fs), nil
	case LowshelfFO:
		return design.LowShelfFO(p.Freq, p.GainDB, fs), nil
	case HighshelfFO:
		return design.HighShelfFO(p.Freq, p.GainDB, fs), nil
	case LowpassFO:
		return design.LowpassFO(p.Freq, fs), nil
	case HighpassFO:
		return design.HighpassFO(p.Freq, fs), nil
	case AllpassFO:
		return design.AllpassFO(p.Freq, fs), nil
	case LinkwitzTransform:
		return design.LinkwitzTransform(p.FreqActual, p.QActual, p.FreqTarget, p.QTarget, fs), nil
	case Free:
		return design.Free(p.A1, p.A2, p.B0, p.B1, p.B2), nil
	default:
		return biquad.Coefficients{}, configErr(KindBiquad, "type", "unknown biquad type %d", int(s.Type))
	}
}

// Type returns the design type of the section.
func (b *Biquad) Type() BiquadType { return b.typ }

// Coefficients returns the normalized section coefficients.
func (b *Biquad) Coefficients() biquad.Coefficients { return b.coeffs }

// Poles returns the z-plane poles of the section.
func (b *Biquad) Poles() []complex128 { return b.coeffs.Poles() }

// Zeros returns the z-plane zeros of the section.
func (b *Biquad) Zeros() []complex128 { return b.coeffs.Zeros() }

// MaxPoleRadius returns the largest pole magnitude of the section.
func (b *Biquad) MaxPoleRadius() float64 { return b.coeffs.MaxPoleRadius() }

// ComplexGain evaluates H(z) of the section on the unit circle.
func (b *Biquad) ComplexGain(freqs []float64) []complex128 {
	return b.coeffs.ResponseAt(freqs, b.fs)
}

// GainAndPhase returns gain in dB and wrapped phase in degrees.
func (b *Biquad) GainAndPhase(freqs []float64) ([]float64, []float64) {
	return response.GainAndPhase(b.ComplexGain(freqs))
}

// IsStable applies the triangle test |a2| < 1 and |a1| < 1 + a2.
func (b *Biquad) IsStable() response.Stability {
	return response.StabilityOf(b.coeffs.IsStable())
}
