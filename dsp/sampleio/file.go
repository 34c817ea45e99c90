package sampleio

import (
	"fmt"
	"io"
	"os"
)

// ReadOptions selects a sub-range of a file.
//
// For raw formats Skip and Read count bytes, for TEXT they count lines and
// for WAV they count frames. Read == 0 reads to the end of the file.
type ReadOptions struct {
	Skip int
	Read int
	// Channel selects the WAV channel to extract.
	Channel int
}

func (o ReadOptions) validate() error {
	if o.Skip < 0 || o.Read < 0 || o.Channel < 0 {
		return fmt.Errorf("%w: negative range (skip=%d read=%d channel=%d)",
			ErrMalformedInput, o.Skip, o.Read, o.Channel)
	}

	return nil
}

// ReadFile decodes the file at path in format f.
func ReadFile(path string, f Format, opts ReadOptions) ([]float64, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	switch {
	case f == FormatText:
		return ReadText(path, opts)
	case f == FormatWAV:
		samples, _, err := ReadWAV(path, opts)
		return samples, err
	case f.IsRaw():
		raw, err := readRange(path, int64(opts.Skip), int64(opts.Read))
		if err != nil {
			return nil, err
		}
		samples, err := Decode(raw, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return samples, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// readRange returns up to n bytes starting at offset skip; n == 0 reads to
// EOF.
func readRange(path string, skip, n int64) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	if skip > 0 {
		if _, err := file.Seek(skip, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w: seek %s: %w", ErrIO, path, err)
		}
	}

	var r io.Reader = file
	if n > 0 {
		r = io.LimitReader(file, n)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	return raw, nil
}
