package sampleio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Decode converts raw little-endian bytes in format f into normalized
// samples. len(raw) must be a multiple of the sample width.
func Decode(raw []byte, f Format) ([]float64, error) {
	if !f.IsRaw() {
		return nil, fmt.Errorf("%w: %v cannot be decoded from raw bytes", ErrUnsupportedFormat, f)
	}

	info := formatTable[f]
	if len(raw)%info.width != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d for %v",
			ErrMalformedInput, len(raw), info.width, f)
	}

	n := len(raw) / info.width
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	le := binary.LittleEndian
	switch f {
	case FormatFloat64LE:
		for i := range out {
			out[i] = math.Float64frombits(le.Uint64(raw[8*i:]))
		}
	case FormatFloat32LE:
		for i := range out {
			out[i] = float64(math.Float32frombits(le.Uint32(raw[4*i:])))
		}
	case FormatS16LE:
		for i := range out {
			out[i] = float64(int16(le.Uint16(raw[2*i:])))
		}
	case FormatS24LE, FormatS32LE:
		for i := range out {
			out[i] = float64(int32(le.Uint32(raw[4*i:])))
		}
	case FormatS24LE3:
		repack24(out, raw)
	}

	if info.scale != 1 {
		vecmath.ScaleBlock(out, out, 1/info.scale)
	}

	return out, nil
}

// repack24 reassembles packed (lsb, mid, msb) triples. The msb carries the
// sign. len(raw) must equal 3*len(dst).
func repack24(dst []float64, raw []byte) {
	for i := range dst {
		lsb := int32(raw[3*i])
		mid := int32(raw[3*i+1])
		msb := int32(int8(raw[3*i+2]))
		dst[i] = float64(msb<<16 | mid<<8 | lsb)
	}
}
