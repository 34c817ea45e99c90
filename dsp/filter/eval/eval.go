package eval

import (
	"fmt"

	"github.com/cwbudde/algo-filtereval/dsp/response"
)

// New builds the evaluator of spec at sample rate fs.
func New(spec Spec, fs float64, opts ...Option) (response.Evaluator, error) {
	switch s := spec.(type) {
	case BiquadSpec:
		b, err := NewBiquad(s, fs)
		if err != nil {
			return nil, err
		}
		return b, nil
	case ComboSpec:
		c, err := NewBiquadCombo(s, fs)
		if err != nil {
			return nil, err
		}
		return c, nil
	case DiffEqSpec:
		return NewDiffEq(s, fs), nil
	case GainSpec:
		return NewGain(s), nil
	case ConvSpec:
		c, err := NewConv(s, fs, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case nil:
		return nil, configErr("filter", "", "no filter spec")
	default:
		return nil, fmt.Errorf("%w: unsupported spec %T", ErrConfiguration, spec)
	}
}

// FromConfig parses cfg and builds its evaluator.
func FromConfig(cfg FilterConfig, fs float64, opts ...Option) (response.Evaluator, error) {
	spec, err := cfg.Spec()
	if err != nil {
		return nil, err
	}
	return New(spec, fs, opts...)
}
