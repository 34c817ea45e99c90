package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-filtereval/dsp/filter/eval"
)

// Step types.
const (
	StepFilter = "Filter"
	StepMixer  = "Mixer"
)

// Config is the subset of a CamillaDSP configuration document that
// determines the response of the pipeline.
type Config struct {
	Devices  Devices                      `yaml:"devices"`
	Filters  map[string]eval.FilterConfig `yaml:"filters"`
	Mixers   map[string]MixerConfig       `yaml:"mixers"`
	Pipeline []Step                       `yaml:"pipeline"`
}

// Devices describes the capture and playback side.
type Devices struct {
	SampleRate float64 `yaml:"samplerate"`
	Capture    Device  `yaml:"capture"`
	Playback   Device  `yaml:"playback"`
}

// Device is a capture or playback device. Only Channels affects the
// response; the remaining fields are kept for display.
type Device struct {
	Type     string `yaml:"type"`
	Channels int    `yaml:"channels"`
	Device   string `yaml:"device"`
	Filename string `yaml:"filename"`
}

// Name returns the device name, or the file name for file devices.
func (d Device) Name() string {
	if d.Device != "" {
		return d.Device
	}
	return d.Filename
}

// MixerConfig routes In channels to Out channels.
type MixerConfig struct {
	Channels MixerChannels `yaml:"channels"`
	Mapping  []Mapping     `yaml:"mapping"`
}

// MixerChannels is the channel count a mixer expects and produces.
type MixerChannels struct {
	In  int `yaml:"in"`
	Out int `yaml:"out"`
}

// Mapping builds output channel Dest from Sources.
type Mapping struct {
	Dest    int      `yaml:"dest"`
	Sources []Source `yaml:"sources"`
}

// Source is one weighted input of a mapping.
type Source struct {
	Channel  int     `yaml:"channel"`
	Gain     float64 `yaml:"gain"`
	Inverted bool    `yaml:"inverted"`
}

// Step is one pipeline entry. Filter steps use Channel and Names, mixer
// steps use Name.
type Step struct {
	Type    string   `yaml:"type"`
	Channel int      `yaml:"channel"`
	Names   []string `yaml:"names"`
	Name    string   `yaml:"name"`
}

// ParseConfig decodes a YAML configuration document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pipeline: decode config: %w", err)
	}
	return cfg, nil
}
