package sampleio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadText reads one sample per line from the first CSV column of path.
// opts.Skip and opts.Read count lines. Values are not rescaled.
func ReadText(path string, opts ReadOptions) ([]float64, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	return parseText(file, path, opts)
}

func parseText(r io.Reader, name string, opts ReadOptions) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var out []float64
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: %s: %w", ErrMalformedInput, name, err)
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrIO, name, err)
		}
		if line <= opts.Skip {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", ErrMalformedInput, name, line, err)
		}
		out = append(out, v)

		if opts.Read > 0 && len(out) == opts.Read {
			break
		}
	}

	return out, nil
}
