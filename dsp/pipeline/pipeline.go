package pipeline

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cwbudde/algo-filtereval/dsp/core"
	"github.com/cwbudde/algo-filtereval/dsp/filter/eval"
	"github.com/cwbudde/algo-filtereval/dsp/response"
)

// Pipeline is a validated pipeline with every filter built. It is
// immutable and safe for concurrent use.
type Pipeline struct {
	fs       float64
	inputs   int
	outputs  int
	filters  map[string]response.Evaluator
	stages   []stage
	capture  Device
	playback Device
}

type stage interface {
	apply(freqs []float64, chans [][]complex128) [][]complex128
}

type filterStage struct {
	channel int
	evals   []response.Evaluator
}

func (s filterStage) apply(freqs []float64, chans [][]complex128) [][]complex128 {
	for _, e := range s.evals {
		response.MultiplyInto(chans[s.channel], e.ComplexGain(freqs))
	}
	return chans
}

type term struct {
	src    int
	weight float64
}

type mixerStage struct {
	out   int
	terms [][]term // indexed by destination
}

func (s mixerStage) apply(freqs []float64, chans [][]complex128) [][]complex128 {
	next := make([][]complex128, s.out)
	for dest := range next {
		h := make([]complex128, len(freqs))
		for _, t := range s.terms[dest] {
			w := complex(t.weight, 0)
			for i, v := range chans[t.src] {
				h[i] += w * v
			}
		}
		next[dest] = h
	}
	return next
}

func configErr(element, param, format string, args ...any) error {
	return &eval.ConfigError{Filter: element, Param: param, Reason: fmt.Sprintf(format, args...)}
}

// New validates cfg and builds every filter it defines. Unknown filter or
// mixer names, out of range channels, mixers whose input count does not
// match the current channel count and unknown step types are reported as
// *eval.ConfigError.
func New(cfg Config, opts ...eval.Option) (*Pipeline, error) {
	fs := cfg.Devices.SampleRate
	if !(fs > 0) {
		return nil, configErr("devices", "samplerate", "must be positive, got %v", fs)
	}
	if cfg.Devices.Capture.Channels <= 0 {
		return nil, configErr("devices", "capture.channels", "must be positive, got %d", cfg.Devices.Capture.Channels)
	}

	p := &Pipeline{
		fs:       fs,
		inputs:   cfg.Devices.Capture.Channels,
		filters:  make(map[string]response.Evaluator, len(cfg.Filters)),
		capture:  cfg.Devices.Capture,
		playback: cfg.Devices.Playback,
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Filters)) {
		e, err := eval.FromConfig(cfg.Filters[name], fs, opts...)
		if err != nil {
			return nil, fmt.Errorf("pipeline: filter %q: %w", name, err)
		}
		p.filters[name] = e
	}

	channels := p.inputs
	for i, step := range cfg.Pipeline {
		element := fmt.Sprintf("pipeline step %d", i)
		switch step.Type {
		case StepFilter:
			st, err := p.filterStage(element, step, channels)
			if err != nil {
				return nil, err
			}
			p.stages = append(p.stages, st)
		case StepMixer:
			mixer, ok := cfg.Mixers[step.Name]
			if !ok {
				return nil, configErr(element, "name", "unknown mixer %q", step.Name)
			}
			st, err := newMixerStage("mixer "+step.Name, mixer, channels)
			if err != nil {
				return nil, err
			}
			p.stages = append(p.stages, st)
			channels = st.out
		default:
			return nil, configErr(element, "type", "unknown step type %q", step.Type)
		}
	}
	p.outputs = channels

	return p, nil
}

func (p *Pipeline) filterStage(element string, step Step, channels int) (filterStage, error) {
	if step.Channel < 0 || step.Channel >= channels {
		return filterStage{}, configErr(element, "channel", "channel %d out of range [0, %d)", step.Channel, channels)
	}
	st := filterStage{channel: step.Channel, evals: make([]response.Evaluator, 0, len(step.Names))}
	for _, name := range step.Names {
		e, ok := p.filters[name]
		if !ok {
			return filterStage{}, configErr(element, "names", "unknown filter %q", name)
		}
		st.evals = append(st.evals, e)
	}
	return st, nil
}

func newMixerStage(element string, m MixerConfig, channels int) (mixerStage, error) {
	in, out := m.Channels.In, m.Channels.Out
	if in != channels {
		return mixerStage{}, configErr(element, "channels.in", "mixer takes %d channels, pipeline has %d", in, channels)
	}
	if out <= 0 {
		return mixerStage{}, configErr(element, "channels.out", "must be positive, got %d", out)
	}

	st := mixerStage{out: out, terms: make([][]term, out)}
	for _, mp := range m.Mapping {
		if mp.Dest < 0 || mp.Dest >= out {
			return mixerStage{}, configErr(element, "dest", "channel %d out of range [0, %d)", mp.Dest, out)
		}
		for _, src := range mp.Sources {
			if src.Channel < 0 || src.Channel >= in {
				return mixerStage{}, configErr(element, "sources.channel", "channel %d out of range [0, %d)", src.Channel, in)
			}
			st.terms[mp.Dest] = append(st.terms[mp.Dest], term{
				src:    src.Channel,
				weight: core.SignedGain(src.Gain, src.Inverted),
			})
		}
	}
	return st, nil
}

// SampleRate returns the pipeline sample rate in Hz.
func (p *Pipeline) SampleRate() float64 { return p.fs }

// Inputs returns the number of capture channels.
func (p *Pipeline) Inputs() int { return p.inputs }

// Outputs returns the number of channels after the last step.
func (p *Pipeline) Outputs() int { return p.outputs }

// Capture returns the capture device description.
func (p *Pipeline) Capture() Device { return p.capture }

// Playback returns the playback device description.
func (p *Pipeline) Playback() Device { return p.playback }

// Filter returns the evaluator of a named filter.
func (p *Pipeline) Filter(name string) (response.Evaluator, bool) {
	e, ok := p.filters[name]
	return e, ok
}

// FilterNames returns the defined filter names in sorted order.
func (p *Pipeline) FilterNames() []string { return slices.Sorted(maps.Keys(p.filters)) }

// ComplexGain returns the complex gain of every output channel, indexed
// by channel.
func (p *Pipeline) ComplexGain(freqs []float64) [][]complex128 {
	chans := make([][]complex128, p.inputs)
	for c := range chans {
		h := make([]complex128, len(freqs))
		for i := range h {
			h[i] = 1
		}
		chans[c] = h
	}
	for _, st := range p.stages {
		chans = st.apply(freqs, chans)
	}
	return chans
}

// GainAndPhase returns gain in dB and phase in degrees per output channel.
func (p *Pipeline) GainAndPhase(freqs []float64) (gainDB, phaseDeg [][]float64) {
	chans := p.ComplexGain(freqs)
	gainDB = make([][]float64, len(chans))
	phaseDeg = make([][]float64, len(chans))
	for c, h := range chans {
		gainDB[c], phaseDeg[c] = response.GainAndPhase(h)
	}
	return gainDB, phaseDeg
}
