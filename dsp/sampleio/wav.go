package sampleio

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// ReadWAV decodes one channel of a PCM WAV file. opts.Skip and opts.Read
// count frames. It returns the samples and the file's sample rate.
func ReadWAV(path string, opts ReadOptions) ([]float64, int, error) {
	if err := opts.validate(); err != nil {
		return nil, 0, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	dec := wav.NewDecoder(file)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %s is not a valid WAV file", ErrMalformedInput, path)
	}
	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return nil, 0, fmt.Errorf("%w: %s uses WAV audio format %d", ErrUnsupportedFormat, path, dec.WavAudioFormat)
	}

	bits := int(dec.BitDepth)
	if bits < 16 || bits > 32 {
		return nil, 0, fmt.Errorf("%w: %s has %d-bit samples", ErrUnsupportedFormat, path, bits)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		return nil, 0, fmt.Errorf("%w: %s declares no channels", ErrMalformedInput, path)
	}
	if opts.Channel >= channels {
		return nil, 0, fmt.Errorf("%w: channel %d requested from %d-channel file %s",
			ErrMalformedInput, opts.Channel, channels, path)
	}

	frames := len(buf.Data) / channels
	start := min(opts.Skip, frames)
	end := frames
	if opts.Read > 0 {
		end = min(start+opts.Read, frames)
	}

	scale := 1 / float64(int64(1)<<(bits-1))
	out := make([]float64, end-start)
	for i := range out {
		out[i] = float64(buf.Data[(start+i)*channels+opts.Channel]) * scale
	}

	return out, buf.Format.SampleRate, nil
}
