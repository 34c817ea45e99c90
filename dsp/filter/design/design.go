package design

import (
	"math"

	"github.com/cwbudde/algo-filtereval/dsp/filter/biquad"
)

// The designers below evaluate the closed forms for any input. Frequencies
// outside (0, sampleRate/2), non-positive Q or slope values produce whatever
// the formulas yield, including Inf and NaN coefficients.

// rbj holds the intermediate terms shared by the RBJ cookbook designs.
type rbj struct {
	cw, sw, alpha float64
}

func newRBJ(freq, q, sampleRate float64) rbj {
	w0 := angularFreq(freq, sampleRate)
	sw := math.Sin(w0)

	return rbj{cw: math.Cos(w0), sw: sw, alpha: sw / (2 * q)}
}

// Lowpass designs a second-order lowpass biquad at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	t := newRBJ(freq, q, sampleRate)

	b0 := (1 - t.cw) / 2
	b1 := 1 - t.cw
	b2 := (1 - t.cw) / 2
	a0 := 1 + t.alpha
	a1 := -2 * t.cw
	a2 := 1 - t.alpha

	return biquad.Normalize(b0, b1, b2, a0, a1, a2)
}

// Highpass designs a second-order highpass biquad at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	t := newRBJ(freq, q, sampleRate)

	b0 := (1 + t.cw) / 2
	b1 := -(1 + t.cw)
	b2 := (1 + t.cw) / 2
	a0 := 1 + t.alpha
	a1 := -2 * t.cw
	a2 := 1 - t.alpha

	return biquad.Normalize(b0, b1, b2, a0, a1, a2)
}

// Bandpass designs a constant 0 dB peak gain bandpass biquad.
func Bandpass(freq, q, sampleRate float64) biquad.Coefficients {
	t := newRBJ(freq, q, sampleRate)

	b0 := t.alpha
	b1 := 0.0
	b2 := -t.alpha
	a0 := 1 + t.alpha
	a1 := -2 * t.cw
	a2 := 1 - t.alpha

	return biquad.Normalize(b0, b1, b2, a0, a1, a2)
}

// Notch designs a notch biquad centered at freq (Hz).
func Notch(freq, q, sampleRate float64) biquad.Coefficients {
	t := newRBJ(freq, q, sampleRate)

	b0 := 1.0
	b1 := -2 * t.cw
	b2 := 1.0
	a0 := 1 + t.alpha
	a1 := -2 * t.cw
	a2 := 1 - t.alpha

	return biquad.Normalize(b0, b1, b2, a0, a1, a2)
}

// Allpass designs a second-order allpass biquad centered at freq (Hz).
func Allpass(freq, q, sampleRate float64) biquad.Coefficients {
	t := newRBJ(freq, q, sampleRate)

	b0 := 1 - t.alpha
	b1 := -2 * t.cw
	b2 := 1 + t.alpha
	a0 := 1 + t.alpha
	a1 := -2 * t.cw
	a2 := 1 - t.alpha

	return biquad.Normalize(b0, b1, b2, a0, a1, a2)
}

// Peak designs a peaking-EQ biquad with gain in dB.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	t := newRBJ(freq, q, sampleRate)
	a := shelfAmplitude(gainDB)

	b0 := 1 + t.alpha*a
	b1 := -2 * t.cw
	b2 := 1 - t.alpha*a
	a0 := 1 + t.alpha/a
	a1 := -2 * t.cw
	a2 := 1 - t.alpha/a

	return biquad.Normalize(b0, b1, b2, a0, a1, a2)
}

// LowShelf designs a low-shelf biquad with gain in dB. The slope is given in
// dB per octave; 12 gives the steepest shelf without overshoot.
func LowShelf(freq, gainDB, slope, sampleRate float64) biquad.Coefficients {
	w0 := angularFreq(freq, sampleRate)
	cw := math.Cos(w0)
	a := shelfAmplitude(gainDB)
	beta := 2 * math.Sqrt(a) * shelfAlpha(w0, a, slope)

	b0 := a * ((a + 1) - (a-1)*cw + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cw)
	b2 := a * ((a + 1) - (a-1)*cw - beta)
	a0 := (a + 1) + (a-1)*cw + beta
	a1 := -2 * ((a - 1) + (a+1)*cw)
	a2 := (a + 1) + (a-1)*cw - beta

	return biquad.Normalize(b0, b1, b2, a0, a1, a2)
}

// HighShelf designs a high-shelf biquad with gain in dB and slope in dB per octave.
func HighShelf(freq, gainDB, slope, sampleRate float64) biquad.Coefficients {
	w0 := angularFreq(freq, sampleRate)
	cw := math.Cos(w0)
	a := shelfAmplitude(gainDB)
	beta := 2 * math.Sqrt(a) * shelfAlpha(w0, a, slope)

	b0 := a * ((a + 1) + (a-1)*cw + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cw)
	b2 := a * ((a + 1) + (a-1)*cw - beta)
	a0 := (a + 1) - (a-1)*cw + beta
	a1 := 2 * ((a - 1) - (a+1)*cw)
	a2 := (a + 1) - (a-1)*cw - beta

	return biquad.Normalize(b0, b1, b2, a0, a1, a2)
}

// LowpassFO designs a first-order lowpass section (B2=A2=0).
func LowpassFO(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(angularFreq(freq, sampleRate) / 2)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// HighpassFO designs a first-order highpass section (B2=A2=0).
func HighpassFO(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(angularFreq(freq, sampleRate) / 2)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

// AllpassFO designs a first-order allpass section with its 90 degree point at freq.
func AllpassFO(freq, sampleRate float64) biquad.Coefficients {
	tn := math.Tan(angularFreq(freq, sampleRate) / 2)
	alpha := (tn + 1) / (tn - 1)

	return biquad.Normalize(1, alpha, 0, alpha, 1, 0)
}

// LowShelfFO designs a first-order low shelf. The gain is reached at DC.
func LowShelfFO(freq, gainDB, sampleRate float64) biquad.Coefficients {
	tn := math.Tan(angularFreq(freq, sampleRate) / 2)
	a := shelfAmplitude(gainDB)

	return biquad.Normalize(a*a*tn+a, a*a*tn-a, 0, tn+a, tn-a, 0)
}

// HighShelfFO designs a first-order high shelf. The gain is reached at Nyquist.
func HighShelfFO(freq, gainDB, sampleRate float64) biquad.Coefficients {
	tn := math.Tan(angularFreq(freq, sampleRate) / 2)
	a := shelfAmplitude(gainDB)

	return biquad.Normalize(a*tn+a*a, a*tn-a*a, 0, a*tn+1, a*tn-1, 0)
}

// LinkwitzTransform designs a biquad that replaces the second-order
// high-pass response of a closed or vented box (resonance freqAct, quality
// qAct) with a target response (freqTarget, qTarget).
//
// Both analog prototypes are mapped through a bilinear transform that is
// prewarped at the mid frequency (freqAct+freqTarget)/2.
func LinkwitzTransform(freqAct, qAct, freqTarget, qTarget, sampleRate float64) biquad.Coefficients {
	d0 := square(2 * math.Pi * freqAct)
	d1 := 2 * math.Pi * freqAct / qAct
	c0 := square(2 * math.Pi * freqTarget)
	c1 := 2 * math.Pi * freqTarget / qTarget

	fc := (freqTarget + freqAct) / 2
	gn := 2 * math.Pi * fc / math.Tan(math.Pi*fc/sampleRate)
	gn2 := gn * gn
	cc := c0 + gn*c1 + gn2

	return biquad.Coefficients{
		B0: (d0 + gn*d1 + gn2) / cc,
		B1: 2 * (d0 - gn2) / cc,
		B2: (d0 - gn*d1 + gn2) / cc,
		A1: 2 * (c0 - gn2) / cc,
		A2: (c0 - gn*c1 + gn2) / cc,
	}
}

// Free wraps directly supplied coefficients, a0 being implicitly 1.
func Free(a1, a2, b0, b1, b2 float64) biquad.Coefficients {
	return biquad.Coefficients{B0: b0, B1: b1, B2: b2, A1: a1, A2: a2}
}

func angularFreq(freq, sampleRate float64) float64 {
	return 2 * math.Pi * freq / sampleRate
}

// shelfAmplitude is the RBJ "A" term, the square root of the linear gain.
func shelfAmplitude(gainDB float64) float64 {
	return math.Pow(10, gainDB/40)
}

func shelfAlpha(w0, a, slope float64) float64 {
	return math.Sin(w0) / 2 * math.Sqrt((a+1/a)*(1/(slope/12)-1)+2)
}

func square(x float64) float64 { return x * x }
