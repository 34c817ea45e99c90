// Package sampleio decodes impulse-response files into normalized float64
// samples.
//
// Raw little-endian sample files are described by a [Format]. Integer PCM
// formats are scaled so that full-scale amplitude maps to ±1.0:
//
//	FLOAT64LE  8 bytes  scale 1
//	FLOAT32LE  4 bytes  scale 1
//	S16LE      2 bytes  scale 2^15
//	S24LE      4 bytes  scale 2^23 (24-bit value in a 32-bit container)
//	S24LE3     3 bytes  scale 2^23 (packed, lsb first)
//	S32LE      4 bytes  scale 2^31
//
// Two file-level formats are also understood by [ReadFile]: TEXT (one value
// per line, first CSV column) and WAV (PCM RIFF/WAVE, decoded with
// github.com/go-audio/wav).
//
// All failures wrap one of [ErrIO], [ErrUnsupportedFormat] or
// [ErrMalformedInput].
package sampleio
