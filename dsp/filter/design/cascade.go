package design

import (
	"math"

	"github.com/cwbudde/algo-filtereval/dsp/filter/biquad"
)

// FirstOrderStage marks a Q-list entry that is realized as a first-order
// section instead of a biquad.
const FirstOrderStage = -1.0

// linkwitzRileyQ is the Q of the stage that replaces the two first-order
// sections of an odd half-order Butterworth pair.
const linkwitzRileyQ = 0.5

// ButterworthQ returns the stage Q values of a Butterworth filter of the
// given order: Q_k = 1/(2*sin(pi/order*(k+0.5))) for each second-order stage,
// followed by FirstOrderStage when the order is odd. It returns nil for
// order <= 0.
func ButterworthQ(order int) []float64 {
	if order <= 0 {
		return nil
	}

	n2 := order / 2
	qs := make([]float64, 0, n2+1)
	for k := range n2 {
		theta := math.Pi / float64(order) * (float64(k) + 0.5)
		qs = append(qs, 1/(2*math.Sin(theta)))
	}
	if order%2 != 0 {
		qs = append(qs, FirstOrderStage)
	}
	return qs
}

// LinkwitzRileyQ returns the stage Q values of a Linkwitz-Riley filter of
// the given even order. The list is the Butterworth list of half the order
// repeated twice; when the half order is odd, the two first-order stages are
// merged into one stage with Q = 0.5. It returns nil when order is not a
// positive even number.
func LinkwitzRileyQ(order int) []float64 {
	if order <= 0 || order%2 != 0 {
		return nil
	}

	half := order / 2
	bw := ButterworthQ(half)
	if half%2 != 0 {
		bw = bw[:len(bw)-1]
	}

	qs := make([]float64, 0, 2*len(bw)+1)
	qs = append(qs, bw...)
	qs = append(qs, bw...)
	if half%2 != 0 {
		qs = append(qs, linkwitzRileyQ)
	}
	return qs
}

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return Stages(ButterworthQ(order), freq, sampleRate, Lowpass, LowpassFO)
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return Stages(ButterworthQ(order), freq, sampleRate, Highpass, HighpassFO)
}

// LinkwitzRileyLP designs a lowpass Linkwitz-Riley cascade of the given
// even order. The magnitude at freq is -6.02 dB.
func LinkwitzRileyLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return Stages(LinkwitzRileyQ(order), freq, sampleRate, Lowpass, LowpassFO)
}

// LinkwitzRileyHP designs a highpass Linkwitz-Riley cascade of the given
// even order.
func LinkwitzRileyHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return Stages(LinkwitzRileyQ(order), freq, sampleRate, Highpass, HighpassFO)
}

// Stages realizes a Q-list at a shared corner frequency. Every non-negative
// Q becomes a second-order section from so, every negative entry a
// first-order section from fo.
func Stages(
	qs []float64,
	freq, sampleRate float64,
	so func(freq, q, sampleRate float64) biquad.Coefficients,
	fo func(freq, sampleRate float64) biquad.Coefficients,
) []biquad.Coefficients {
	if len(qs) == 0 {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, len(qs))
	for _, q := range qs {
		if q >= 0 {
			sections = append(sections, so(freq, q, sampleRate))
		} else {
			sections = append(sections, fo(freq, sampleRate))
		}
	}
	return sections
}
