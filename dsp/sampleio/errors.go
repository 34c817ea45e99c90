package sampleio

import "errors"

// Errors returned by the decoders.
var (
	ErrIO                = errors.New("sampleio: read failed")
	ErrUnsupportedFormat = errors.New("sampleio: unsupported sample format")
	ErrMalformedInput    = errors.New("sampleio: malformed input")
)
