package eval

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filtereval/dsp/sampleio"
)

// Configuration type tags of the filter kinds.
const (
	KindBiquad      = "Biquad"
	KindBiquadCombo = "BiquadCombo"
	KindDiffEq      = "DiffEq"
	KindGain        = "Gain"
	KindConv        = "Conv"
)

// FilterConfig is one entry of the filters section of a configuration
// document.
//
// Numeric parameters may hold any Go integer or float type, lists may be
// []any, []float64 or []int, which covers what YAML and JSON decoders
// produce.
type FilterConfig struct {
	Type       string         `yaml:"type"       json:"type"`
	Parameters map[string]any `yaml:"parameters" json:"parameters"`
}

// Spec parses the configuration record into a filter spec.
func (c FilterConfig) Spec() (Spec, error) {
	switch c.Type {
	case KindBiquad:
		return parseBiquad(c.Parameters)
	case KindBiquadCombo:
		return parseCombo(c.Parameters)
	case KindDiffEq:
		return parseDiffEq(c.Parameters)
	case KindGain:
		return parseGain(c.Parameters)
	case KindConv:
		return parseConv(c.Parameters)
	case "":
		return nil, configErr("filter", "type", "missing")
	default:
		return nil, configErr(c.Type, "type", "unknown filter type")
	}
}

func parseBiquad(m map[string]any) (Spec, error) {
	p := params{filter: KindBiquad, m: m}
	tag, err := p.str("type")
	if err != nil {
		return nil, err
	}
	typ, ok := ParseBiquadType(tag)
	if !ok {
		return nil, configErr(KindBiquad, "type", "unknown biquad type %q", tag)
	}
	p.filter = KindBiquad + "/" + tag

	var bp BiquadParams
	var fields []field
	switch typ {
	case Lowpass, Highpass, Notch, Bandpass, Allpass:
		fields = []field{{&bp.Freq, keyFreq}, {&bp.Q, keyQ}}
	case Peaking:
		fields = []field{{&bp.Freq, keyFreq}, {&bp.Q, keyQ}, {&bp.GainDB, keyGain}}
	case Lowshelf, Highshelf:
		fields = []field{{&bp.Freq, keyFreq}, {&bp.Slope, keySlope}, {&bp.GainDB, keyGain}}
	case LowshelfFO, HighshelfFO:
		fields = []field{{&bp.Freq, keyFreq}, {&bp.GainDB, keyGain}}
	case LowpassFO, HighpassFO, AllpassFO:
		fields = []field{{&bp.Freq, keyFreq}}
	case LinkwitzTransform:
		fields = []field{
			{&bp.FreqActual, keyFreqActual},
			{&bp.QActual, keyQActual},
			{&bp.FreqTarget, keyFreqTarget},
			{&bp.QTarget, keyQTarget},
		}
	case Free:
		fields = []field{
			{&bp.A1, keyA1}, {&bp.A2, keyA2},
			{&bp.B0, keyB0}, {&bp.B1, keyB1}, {&bp.B2, keyB2},
		}
	}
	for _, f := range fields {
		v, err := p.number(f.keys...)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	return BiquadSpec{Type: typ, Params: bp}, nil
}

func parseCombo(m map[string]any) (Spec, error) {
	p := params{filter: KindBiquadCombo, m: m}
	tag, err := p.str("type")
	if err != nil {
		return nil, err
	}
	typ, ok := ParseComboType(tag)
	if !ok {
		return nil, configErr(KindBiquadCombo, "type", "unknown combo type %q", tag)
	}
	p.filter = KindBiquadCombo + "/" + tag

	order, err := p.integer("order")
	if err != nil {
		return nil, err
	}
	freq, err := p.number(keyFreq...)
	if err != nil {
		return nil, err
	}

	spec := ComboSpec{Type: typ, Order: order, Freq: freq}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func parseDiffEq(m map[string]any) (Spec, error) {
	p := params{filter: KindDiffEq, m: m}
	a, _, err := p.floats("a")
	if err != nil {
		return nil, err
	}
	b, _, err := p.floats("b")
	if err != nil {
		return nil, err
	}
	return DiffEqSpec{A: a, B: b}, nil
}

func parseGain(m map[string]any) (Spec, error) {
	p := params{filter: KindGain, m: m}
	g, err := p.number(keyGain...)
	if err != nil {
		return nil, err
	}
	inv, err := p.boolean("inverted")
	if err != nil {
		return nil, err
	}
	return GainSpec{GainDB: g, Inverted: inv}, nil
}

func parseConv(m map[string]any) (Spec, error) {
	p := params{filter: KindConv, m: m}

	kind := ""
	if p.has("type") {
		var err error
		if kind, err = p.str("type"); err != nil {
			return nil, err
		}
		if kind != "File" && kind != "Values" {
			return nil, configErr(KindConv, "type", "unknown convolution source %q", kind)
		}
	}

	if kind == "File" || (kind == "" && p.has("filename")) {
		file, err := parseConvFile(p)
		if err != nil {
			return nil, err
		}
		return ConvSpec{File: file}, nil
	}

	values, ok, err := p.floats("values")
	if err != nil {
		return nil, err
	}
	if kind == "Values" && (!ok || len(values) == 0) {
		return nil, configErr(KindConv, "values", "missing")
	}
	return ConvSpec{Values: values}, nil
}

func parseConvFile(p params) (*ConvFile, error) {
	name, err := p.str("filename")
	if err != nil {
		return nil, err
	}

	format := sampleio.FormatText
	if p.has("format") {
		tag, err := p.str("format")
		if err != nil {
			return nil, err
		}
		if format, err = sampleio.ParseFormat(tag); err != nil {
			return nil, fmt.Errorf("eval: %s: parameter \"format\": %w", KindConv, err)
		}
	}

	file := &ConvFile{Filename: name, Format: format}
	for _, f := range []struct {
		dst  *int
		keys []string
	}{
		{&file.Skip, []string{"skip_bytes_lines", "skip_bytes", "skip_lines"}},
		{&file.Read, []string{"read_bytes_lines", "read_bytes", "read_lines"}},
		{&file.Channel, []string{"channel"}},
	} {
		if !p.has(f.keys...) {
			continue
		}
		v, err := p.integer(f.keys...)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, configErr(KindConv, f.keys[0], "must not be negative, got %d", v)
		}
		*f.dst = v
	}
	return file, nil
}

// Parameter keys with their accepted aliases, canonical key first.
var (
	keyFreq       = []string{"freq"}
	keyQ          = []string{"q"}
	keyGain       = []string{"gain_db", "gain"}
	keySlope      = []string{"slope"}
	keyFreqActual = []string{"freq_actual", "freq_act"}
	keyQActual    = []string{"q_actual", "q_act"}
	keyFreqTarget = []string{"freq_target"}
	keyQTarget    = []string{"q_target"}
	keyA1         = []string{"a1"}
	keyA2         = []string{"a2"}
	keyB0         = []string{"b0"}
	keyB1         = []string{"b1"}
	keyB2         = []string{"b2"}
)

type field struct {
	dst  *float64
	keys []string
}

// params reads typed values out of a parameter mapping and reports
// problems as *ConfigError.
type params struct {
	filter string
	m      map[string]any
}

func (p params) lookup(keys ...string) (string, any, bool) {
	for _, k := range keys {
		if v, ok := p.m[k]; ok {
			return k, v, true
		}
	}
	return keys[0], nil, false
}

func (p params) has(keys ...string) bool {
	_, _, ok := p.lookup(keys...)
	return ok
}

func (p params) number(keys ...string) (float64, error) {
	key, v, ok := p.lookup(keys...)
	if !ok {
		return 0, configErr(p.filter, key, "missing")
	}
	x, ok := toFloat(v)
	if !ok {
		return 0, configErr(p.filter, key, "not a number: %v", v)
	}
	return x, nil
}

func (p params) integer(keys ...string) (int, error) {
	key, v, ok := p.lookup(keys...)
	if !ok {
		return 0, configErr(p.filter, key, "missing")
	}
	x, ok := toFloat(v)
	if !ok || x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
		return 0, configErr(p.filter, key, "not an integer: %v", v)
	}
	return int(x), nil
}

func (p params) str(key string) (string, error) {
	v, ok := p.m[key]
	if !ok {
		return "", configErr(p.filter, key, "missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", configErr(p.filter, key, "not a string: %v", v)
	}
	return s, nil
}

// boolean returns false for a missing key.
func (p params) boolean(key string) (bool, error) {
	v, ok := p.m[key]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, configErr(p.filter, key, "not a boolean: %v", v)
	}
	return b, nil
}

// floats returns the numeric list stored under key and whether it was
// present.
func (p params) floats(key string) ([]float64, bool, error) {
	v, ok := p.m[key]
	if !ok || v == nil {
		return nil, ok, nil
	}
	switch list := v.(type) {
	case []float64:
		return append([]float64(nil), list...), true, nil
	case []int:
		out := make([]float64, len(list))
		for i, x := range list {
			out[i] = float64(x)
		}
		return out, true, nil
	case []any:
		out := make([]float64, len(list))
		for i, x := range list {
			f, ok := toFloat(x)
			if !ok {
				return nil, true, configErr(p.filter, key, "element %d is not a number: %v", i, x)
			}
			out[i] = f
		}
		return out, true, nil
	default:
		return nil, true, configErr(p.filter, key, "not a list of numbers: %v", v)
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
