package eval

import (
	"github.com/cwbudde/algo-filtereval/dsp/sampleio"
)

// Spec is one of BiquadSpec, ComboSpec, DiffEqSpec, GainSpec or ConvSpec.
type Spec interface {
	// Kind returns the configuration type tag of the variant.
	Kind() string
	isSpec()
}

// BiquadType selects the design formula of a single biquad section.
type BiquadType int

const (
	Lowpass BiquadType = iota + 1
	Highpass
	Peaking
	Notch
	Bandpass
	Allpass
	Lowshelf
	Highshelf
	LowshelfFO
	HighshelfFO
	LowpassFO
	HighpassFO
	AllpassFO
	LinkwitzTransform
	Free
)

var biquadTypeNames = map[BiquadType]string{
	Lowpass:           "Lowpass",
	Highpass:          "Highpass",
	Peaking:           "Peaking",
	Notch:             "Notch",
	Bandpass:          "Bandpass",
	Allpass:           "Allpass",
	Lowshelf:          "Lowshelf",
	Highshelf:         "Highshelf",
	LowshelfFO:        "LowshelfFO",
	HighshelfFO:       "HighshelfFO",
	LowpassFO:         "LowpassFO",
	HighpassFO:        "HighpassFO",
	AllpassFO:         "AllpassFO",
	LinkwitzTransform: "LinkwitzTransform",
	Free:              "Free",
}

// String returns the configuration tag, or "Unknown".
func (t BiquadType) String() string {
	if name, ok := biquadTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseBiquadType looks up a biquad type tag. Tags are case-sensitive.
func ParseBiquadType(tag string) (BiquadType, bool) {
	for t, name := range biquadTypeNames {
		if name == tag {
			return t, true
		}
	}
	return 0, false
}

// BiquadParams carries the parameters of every biquad type. Each type reads
// only the fields it needs:
//
//	Lowpass, Highpass, Notch, Bandpass, Allpass   Freq, Q
//	Peaking                                       Freq, Q, GainDB
//	Lowshelf, Highshelf                           Freq, Slope, GainDB
//	LowshelfFO, HighshelfFO                       Freq, GainDB
//	LowpassFO, HighpassFO, AllpassFO              Freq
//	LinkwitzTransform                             FreqActual, QActual, FreqTarget, QTarget
//	Free                                          A1, A2, B0, B1, B2
type BiquadParams struct {
	Freq   float64
	Q      float64
	GainDB float64
	// Slope is the shelf steepness in dB per octave.
	Slope float64

	FreqActual float64
	QActual    float64
	FreqTarget float64
	QTarget    float64

	A1, A2     float64
	B0, B1, B2 float64
}

// BiquadSpec describes a single second- or first-order section.
type BiquadSpec struct {
	Type   BiquadType
	Params BiquadParams
}

// ComboType selects a cascade family.
type ComboType int

const (
	ButterworthLowpass ComboType = iota + 1
	ButterworthHighpass
	LinkwitzRileyLowpass
	LinkwitzRileyHighpass
)

var comboTypeNames = map[ComboType]string{
	ButterworthLowpass:    "ButterworthLowpass",
	ButterworthHighpass:   "ButterworthHighpass",
	LinkwitzRileyLowpass:  "LinkwitzRileyLowpass",
	LinkwitzRileyHighpass: "LinkwitzRileyHighpass",
}

// String returns the configuration tag, or "Unknown".
func (t ComboType) String() string {
	if name, ok := comboTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseComboType looks up a cascade type tag.
func ParseComboType(tag string) (ComboType, bool) {
	for t, name := range comboTypeNames {
		if name == tag {
			return t, true
		}
	}
	return 0, false
}

// ComboSpec describes a Butterworth or Linkwitz-Riley cascade.
type ComboSpec struct {
	Type  ComboType
	Order int
	Freq  float64
}

// DiffEqSpec describes a difference equation by its coefficient vectors,
// index 0 being the undelayed tap. Empty vectors mean [1].
type DiffEqSpec struct {
	A []float64
	B []float64
}

// GainSpec describes a scalar gain, optionally polarity-inverted.
type GainSpec struct {
	GainDB   float64
	Inverted bool
}

// ConvSpec describes an FIR filter by inline Values or a File. File takes
// precedence. With neither, the impulse is the identity [1].
type ConvSpec struct {
	Values []float64
	File   *ConvFile
}

// ConvFile locates an impulse response on disk.
type ConvFile struct {
	Filename string
	Format   sampleio.Format
	// Skip and Read select a range in bytes for raw formats, in lines
	// for TEXT and in frames for WAV.
	Skip    int
	Read    int
	Channel int
}

// Kind returns the configuration type tag of each variant.
func (BiquadSpec) Kind() string { return KindBiquad }
func (ComboSpec) Kind() string  { return KindBiquadCombo }
func (DiffEqSpec) Kind() string { return KindDiffEq }
func (GainSpec) Kind() string   { return KindGain }
func (ConvSpec) Kind() string   { return KindConv }

func (BiquadSpec) isSpec() {}
func (ComboSpec) isSpec()  {}
func (DiffEqSpec) isSpec() {}
func (GainSpec) isSpec()   {}
func (ConvSpec) isSpec()   {}
