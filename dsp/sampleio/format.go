package sampleio

import (
	"fmt"
	"strings"
)

// Format identifies an on-disk sample encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatFloat64LE
	FormatFloat32LE
	FormatS16LE
	FormatS24LE
	FormatS24LE3
	FormatS32LE
	// FormatText is one numeric value per line.
	FormatText
	// FormatWAV is a PCM RIFF/WAVE file.
	FormatWAV
)

type formatInfo struct {
	name  string
	width int     // bytes per sample, 0 for file-level formats
	scale float64 // full-scale divisor
}

var formatTable = map[Format]formatInfo{
	FormatFloat64LE: {name: "FLOAT64LE", width: 8, scale: 1},
	FormatFloat32LE: {name: "FLOAT32LE", width: 4, scale: 1},
	FormatS16LE:     {name: "S16LE", width: 2, scale: 1 << 15},
	FormatS24LE:     {name: "S24LE", width: 4, scale: 1 << 23},
	FormatS24LE3:    {name: "S24LE3", width: 3, scale: 1 << 23},
	FormatS32LE:     {name: "S32LE", width: 4, scale: 1 << 31},
	FormatText:      {name: "TEXT"},
	FormatWAV:       {name: "WAV"},
}

// ParseFormat maps a format tag such as "S24LE3" to its Format.
// Matching is case-insensitive.
func ParseFormat(tag string) (Format, error) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	for f, info := range formatTable {
		if info.name == tag {
			return f, nil
		}
	}

	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
}

// String returns the configuration tag of f.
func (f Format) String() string {
	if info, ok := formatTable[f]; ok {
		return info.name
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// BytesPerSample returns the sample width of a raw format, or 0 for
// file-level and unknown formats.
func (f Format) BytesPerSample() int {
	return formatTable[f].width
}

// ScaleFactor returns the full-scale divisor of a raw format, or 0 for
// file-level and unknown formats.
func (f Format) ScaleFactor() float64 {
	return formatTable[f].scale
}

// IsRaw reports whether f is a fixed-width binary encoding.
func (f Format) IsRaw() bool {
	return formatTable[f].width > 0
}
