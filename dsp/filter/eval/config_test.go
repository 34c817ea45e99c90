package eval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-filtereval/dsp/sampleio"
)

func TestFilterConfig_Biquad(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
		want   BiquadSpec
	}{
		{
			name:   "lowpass with int literals",
			params: map[string]any{"type": "Lowpass", "freq": 1000, "q": 0.707},
			want:   BiquadSpec{Type: Lowpass, Params: BiquadParams{Freq: 1000, Q: 0.707}},
		},
		{
			name:   "peaking with gain alias",
			params: map[string]any{"type": "Peaking", "freq": 500.0, "q": 2, "gain": -3},
			want:   BiquadSpec{Type: Peaking, Params: BiquadParams{Freq: 500, Q: 2, GainDB: -3}},
		},
		{
			name:   "shelf with gain_db",
			params: map[string]any{"type": "Highshelf", "freq": 8000, "slope": 6, "gain_db": float32(4.5)},
			want:   BiquadSpec{Type: Highshelf, Params: BiquadParams{Freq: 8000, Slope: 6, GainDB: 4.5}},
		},
		{
			name:   "first-order pass",
			params: map[string]any{"type": "HighpassFO", "freq": int64(80)},
			want:   BiquadSpec{Type: HighpassFO, Params: BiquadParams{Freq: 80}},
		},
		{
			name: "linkwitz transform with short keys",
			params: map[string]any{
				"type": "LinkwitzTransform", "freq_act": 50, "q_act": 0.707,
				"freq_target": 25, "q_target": 0.5,
			},
			want: BiquadSpec{Type: LinkwitzTransform, Params: BiquadParams{
				FreqActual: 50, QActual: 0.707, FreqTarget: 25, QTarget: 0.5,
			}},
		},
		{
			name:   "free",
			params: map[string]any{"type": "Free", "a1": 0, "a2": 1.5, "b0": 1, "b1": 0, "b2": uint8(0)},
			want:   BiquadSpec{Type: Free, Params: BiquadParams{A2: 1.5, B0: 1}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := FilterConfig{Type: "Biquad", Parameters: tc.params}.Spec()
			require.NoError(t, err)
			assert.Equal(t, tc.want, spec)
			assert.Equal(t, KindBiquad, spec.Kind())
		})
	}
}

func TestFilterConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		cfg       FilterConfig
		wantParam string
	}{
		{"missing kind", FilterConfig{}, "type"},
		{"unknown kind", FilterConfig{Type: "Delay"}, "type"},
		{"missing biquad type", FilterConfig{Type: "Biquad", Parameters: map[string]any{"freq": 1}}, "type"},
		{"unknown biquad type", FilterConfig{Type: "Biquad", Parameters: map[string]any{"type": "Bell"}}, "type"},
		{"missing q", FilterConfig{Type: "Biquad", Parameters: map[string]any{"type": "Lowpass", "freq": 1000}}, "q"},
		{"missing gain", FilterConfig{Type: "Biquad", Parameters: map[string]any{"type": "Peaking", "freq": 1000, "q": 1}}, "gain_db"},
		{"non-numeric freq", FilterConfig{Type: "Biquad", Parameters: map[string]any{"type": "LowpassFO", "freq": "1k"}}, "freq"},
		{"missing free coefficient", FilterConfig{Type: "Biquad", Parameters: map[string]any{"type": "Free", "a1": 0, "a2": 0, "b0": 1, "b1": 0}}, "b2"},
		{"combo unknown type", FilterConfig{Type: "BiquadCombo", Parameters: map[string]any{"type": "Bessel", "order": 2, "freq": 100}}, "type"},
		{"combo fractional order", FilterConfig{Type: "BiquadCombo", Parameters: map[string]any{"type": "ButterworthLowpass", "order": 2.5, "freq": 100}}, "order"},
		{"combo zero order", FilterConfig{Type: "BiquadCombo", Parameters: map[string]any{"type": "ButterworthLowpass", "order": 0, "freq": 100}}, "order"},
		{"LR odd order", FilterConfig{Type: "BiquadCombo", Parameters: map[string]any{"type": "LinkwitzRileyHighpass", "order": 5, "freq": 100}}, "order"},
		{"combo missing freq", FilterConfig{Type: "BiquadCombo", Parameters: map[string]any{"type": "ButterworthHighpass", "order": 2}}, "freq"},
		{"diffeq bad element", FilterConfig{Type: "DiffEq", Parameters: map[string]any{"a": []any{1.0, "x"}}}, "a"},
		{"diffeq not a list", FilterConfig{Type: "DiffEq", Parameters: map[string]any{"b": 3}}, "b"},
		{"gain missing", FilterConfig{Type: "Gain", Parameters: map[string]any{"inverted": true}}, "gain_db"},
		{"gain inverted not bool", FilterConfig{Type: "Gain", Parameters: map[string]any{"gain": 1, "inverted": "yes"}}, "inverted"},
		{"conv unknown source", FilterConfig{Type: "Conv", Parameters: map[string]any{"type": "Stream"}}, "type"},
		{"conv file without name", FilterConfig{Type: "Conv", Parameters: map[string]any{"type": "File"}}, "filename"},
		{"conv values missing", FilterConfig{Type: "Conv", Parameters: map[string]any{"type": "Values"}}, "values"},
		{"conv negative skip", FilterConfig{Type: "Conv", Parameters: map[string]any{"filename": "ir.txt", "skip_bytes_lines": -1}}, "skip_bytes_lines"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Spec()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)

			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tc.wantParam, cerr.Param)
			assert.Contains(t, err.Error(), tc.wantParam)
		})
	}
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Filter: "Biquad/Lowpass", Param: "q", Reason: "missing"}
	assert.Equal(t, `eval: Biquad/Lowpass: parameter "q": missing`, err.Error())

	err = &ConfigError{Filter: "filter", Reason: "no filter spec"}
	assert.Equal(t, "eval: filter: no filter spec", err.Error())
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestFilterConfig_Combo(t *testing.T) {
	spec, err := FilterConfig{
		Type:       "BiquadCombo",
		Parameters: map[string]any{"type": "LinkwitzRileyLowpass", "order": 4, "freq": 2000},
	}.Spec()
	require.NoError(t, err)
	assert.Equal(t, ComboSpec{Type: LinkwitzRileyLowpass, Order: 4, Freq: 2000}, spec)
}

func TestFilterConfig_DiffEq(t *testing.T) {
	spec, err := FilterConfig{
		Type:       "DiffEq",
		Parameters: map[string]any{"a": []any{1, -0.5}, "b": []float64{0.25, 0.25}},
	}.Spec()
	require.NoError(t, err)
	assert.Equal(t, DiffEqSpec{A: []float64{1, -0.5}, B: []float64{0.25, 0.25}}, spec)

	spec, err = FilterConfig{Type: "DiffEq", Parameters: map[string]any{"a": []any{}, "b": nil}}.Spec()
	require.NoError(t, err)
	assert.Empty(t, spec.(DiffEqSpec).A)
	assert.Empty(t, spec.(DiffEqSpec).B)
}

func TestFilterConfig_Gain(t *testing.T) {
	spec, err := FilterConfig{Type: "Gain", Parameters: map[string]any{"gain": -6, "inverted": true}}.Spec()
	require.NoError(t, err)
	assert.Equal(t, GainSpec{GainDB: -6, Inverted: true}, spec)

	spec, err = FilterConfig{Type: "Gain", Parameters: map[string]any{"gain": 3.5}}.Spec()
	require.NoError(t, err)
	assert.Equal(t, GainSpec{GainDB: 3.5}, spec)
}

func TestFilterConfig_Conv(t *testing.T) {
	t.Run("no parameters is identity", func(t *testing.T) {
		spec, err := FilterConfig{Type: "Conv"}.Spec()
		require.NoError(t, err)
		assert.Equal(t, ConvSpec{}, spec)
	})

	t.Run("values", func(t *testing.T) {
		spec, err := FilterConfig{Type: "Conv", Parameters: map[string]any{"type": "Values", "values": []any{1, 0.5}}}.Spec()
		require.NoError(t, err)
		assert.Equal(t, ConvSpec{Values: []float64{1, 0.5}}, spec)
	})

	t.Run("file defaults to text", func(t *testing.T) {
		spec, err := FilterConfig{Type: "Conv", Parameters: map[string]any{"filename": "ir.txt"}}.Spec()
		require.NoError(t, err)
		assert.Equal(t, ConvSpec{File: &ConvFile{Filename: "ir.txt", Format: sampleio.FormatText}}, spec)
	})

	t.Run("file with range", func(t *testing.T) {
		spec, err := FilterConfig{Type: "Conv", Parameters: map[string]any{
			"type": "File", "filename": "ir.raw", "format": "S24LE3",
			"skip_bytes": 44, "read_bytes_lines": 3000, "channel": 1,
		}}.Spec()
		require.NoError(t, err)
		assert.Equal(t, ConvSpec{File: &ConvFile{
			Filename: "ir.raw", Format: sampleio.FormatS24LE3, Skip: 44, Read: 3000, Channel: 1,
		}}, spec)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := FilterConfig{Type: "Conv", Parameters: map[string]any{"filename": "ir.raw", "format": "S8"}}.Spec()
		require.Error(t, err)
		assert.ErrorIs(t, err, sampleio.ErrUnsupportedFormat)
		assert.NotErrorIs(t, err, ErrConfiguration)
	})
}

func TestParseTypeTags(t *testing.T) {
	for typ, name := range biquadTypeNames {
		got, ok := ParseBiquadType(name)
		require.True(t, ok, name)
		assert.Equal(t, typ, got)
		assert.Equal(t, name, typ.String())
	}
	for typ, name := range comboTypeNames {
		got, ok := ParseComboType(name)
		require.True(t, ok, name)
		assert.Equal(t, typ, got)
		assert.Equal(t, name, typ.String())
	}
	_, ok := ParseBiquadType("lowpass")
	assert.False(t, ok)
	assert.Equal(t, "Unknown", BiquadType(0).String())
	assert.Equal(t, "Unknown", ComboType(99).String())
}
