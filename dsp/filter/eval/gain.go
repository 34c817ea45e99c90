package eval

import (
	"github.com/cwbudde/algo-filtereval/dsp/core"
	"github.com/cwbudde/algo-filtereval/dsp/response"
)

// Gain is a memoryless scalar gain.
type Gain struct {
	gainDB   float64
	inverted bool
	linear   float64
}

// NewGain builds a Gain stage from s.
func NewGain(s GainSpec) *Gain {
	return &Gain{
		gainDB:   s.GainDB,
		inverted: s.Inverted,
		linear:   core.SignedGain(s.GainDB, s.Inverted),
	}
}

// Linear returns the signed linear gain.
func (g *Gain) Linear() float64 { return g.linear }

// ComplexGain returns the signed linear gain at every frequency.
func (g *Gain) ComplexGain(freqs []float64) []complex128 {
	out := make([]complex128, len(freqs))
	for i := range out {
		out[i] = complex(g.linear, 0)
	}
	return out
}

// GainAndPhase returns the configured gain and a phase of 0 or 180
// degrees without going through the complex gain.
func (g *Gain) GainAndPhase(freqs []float64) ([]float64, []float64) {
	phase := 0.0
	if g.inverted {
		phase = 180
	}
	gain := make([]float64, len(freqs))
	ph := make([]float64, len(freqs))
	for i := range freqs {
		gain[i] = g.gainDB
		ph[i] = phase
	}
	return gain, ph
}

// IsStable reports [response.Stable]; a scalar gain has no memory.
func (g *Gain) IsStable() response.Stability { return response.Stable }
