package testutil

import (
	"encoding/binary"
	"math"
)

// EncodeFloat64LE packs values as little-endian float64.
func EncodeFloat64LE(values []float64) []byte {
	out := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(v))
	}
	return out
}

// EncodeFloat32LE packs values as little-endian float32.
func EncodeFloat32LE(values []float32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}

// EncodeS16LE packs values as little-endian int16.
func EncodeS16LE(values []int16) []byte {
	out := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}

// EncodeS32LE packs values as little-endian int32. It is also the S24LE
// container layout.
func EncodeS32LE(values []int32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(v))
	}
	return out
}

// EncodeS24LE3 packs 24-bit values as (lsb, mid, msb) triples.
func EncodeS24LE3(values []int32) []byte {
	out := make([]byte, 0, 3*len(values))
	for _, v := range values {
		out = append(out, byte(v), byte(v>>8), byte(v>>16))
	}
	return out
}
