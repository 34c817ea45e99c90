package eval

import (
	"github.com/cwbudde/algo-filtereval/dsp/filter/biquad"
	"github.com/cwbudde/algo-filtereval/dsp/filter/design"
	"github.com/cwbudde/algo-filtereval/dsp/response"
)

// BiquadCombo evaluates a Butterworth or Linkwitz-Riley cascade.
type BiquadCombo struct {
	typ   ComboType
	qs    []float64
	chain *biquad.Chain
	fs    float64
}

func (s ComboSpec) validate() error {
	filter := KindBiquadCombo + "/" + s.Type.String()
	switch s.Type {
	case ButterworthLowpass, ButterworthHighpass:
		if s.Order <= 0 {
			return configErr(filter, "order", "must be positive, got %d", s.Order)
		}
	case LinkwitzRileyLowpass, LinkwitzRileyHighpass:
		if s.Order <= 0 || s.Order%2 != 0 {
			return configErr(filter, "order", "must be a positive even number, got %d", s.Order)
		}
	default:
		return configErr(KindBiquadCombo, "type", "unknown combo type %d", int(s.Type))
	}
	return nil
}

// QValues returns the stage Q list of the cascade described by s, using
// [design.FirstOrderStage] for first-order stages.
func (s ComboSpec) QValues() ([]float64, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	switch s.Type {
	case LinkwitzRileyLowpass, LinkwitzRileyHighpass:
		return design.LinkwitzRileyQ(s.Order), nil
	default:
		return design.ButterworthQ(s.Order), nil
	}
}

// NewBiquadCombo realizes the cascade described by s at sample rate fs.
func NewBiquadCombo(s ComboSpec, fs float64) (*BiquadCombo, error) {
	qs, err := s.QValues()
	if err != nil {
		return nil, err
	}

	var sections []biquad.Coefficients
	switch s.Type {
	case ButterworthLowpass, LinkwitzRileyLowpass:
		sections = design.Stages(qs, s.Freq, fs, design.Lowpass, design.LowpassFO)
	default:
		sections = design.Stages(qs, s.Freq, fs, design.Highpass, design.HighpassFO)
	}

	return &BiquadCombo{
		typ:   s.Type,
		qs:    qs,
		chain: biquad.NewChain(sections),
		fs:    fs,
	}, nil
}

// Type returns the cascade family.
func (c *BiquadCombo) Type() ComboType { return c.typ }

// QValues returns a copy of the stage Q list.
func (c *BiquadCombo) QValues() []float64 {
	return append([]float64(nil), c.qs...)
}

// Sections returns a copy of the stage coefficients, one per Q value.
func (c *BiquadCombo) Sections() []biquad.Coefficients { return c.chain.Sections() }

// Order returns the filter order of the realized cascade.
func (c *BiquadCombo) Order() int { return c.chain.Order() }

// MaxPoleRadius returns the largest pole magnitude over all sections.
func (c *BiquadCombo) MaxPoleRadius() float64 { return c.chain.MaxPoleRadius() }

// ComplexGain returns the product of the stage responses.
func (c *BiquadCombo) ComplexGain(freqs []float64) []complex128 {
	return c.chain.ResponseAt(freqs, c.fs)
}

// GainAndPhase returns gain in dB and wrapped phase in degrees of the
// whole cascade.
func (c *BiquadCombo) GainAndPhase(freqs []float64) ([]float64, []float64) {
	return response.GainAndPhase(c.ComplexGain(freqs))
}

// IsStable is not determined for cascades and always reports
// [response.Unknown].
func (c *BiquadCombo) IsStable() response.Stability { return response.Unknown }
