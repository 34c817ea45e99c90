package sampleio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-filtereval/internal/testutil"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestReadFile_Raw(t *testing.T) {
	path := writeFile(t, "ir.raw", testutil.EncodeS16LE([]int16{100, 16384, -16384, 8192}))

	got, err := ReadFile(path, FormatS16LE, ReadOptions{})
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, got, []float64{100.0 / 32768, 0.5, -0.5, 0.25}, 1e-12)

	got, err = ReadFile(path, FormatS16LE, ReadOptions{Skip: 2, Read: 4})
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.5, -0.5}, 1e-12)
}

func TestReadFile_S24LE3Range(t *testing.T) {
	header := []byte{0xAA, 0xBB}
	payload := testutil.EncodeS24LE3([]int32{1, -65536})
	path := writeFile(t, "ir.s24", append(header, payload...))

	got, err := ReadFile(path, FormatS24LE3, ReadOptions{Skip: len(header)})
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1.0 / (1 << 23), -1.0 / 128}, 1e-15)

	_, err = ReadFile(path, FormatS24LE3, ReadOptions{Skip: 1})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.raw"), FormatFloat32LE, ReadOptions{})
	require.ErrorIs(t, err, ErrIO)

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestReadFile_NegativeRange(t *testing.T) {
	_, err := ReadFile("unused", FormatS16LE, ReadOptions{Skip: -1})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestReadFile_UnknownFormat(t *testing.T) {
	_, err := ReadFile("unused", FormatUnknown, ReadOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadText(t *testing.T) {
	path := writeFile(t, "ir.txt", []byte("1.0\n0.5, ignored\n -0.25\n0.125\n"))

	got, err := ReadFile(path, FormatText, ReadOptions{})
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 0.5, -0.25, 0.125}, 0)

	got, err = ReadText(path, ReadOptions{Skip: 1, Read: 2})
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.5, -0.25}, 0)
}

func TestReadText_BadValue(t *testing.T) {
	path := writeFile(t, "bad.txt", []byte("1.0\nabc\n"))
	_, err := ReadText(path, ReadOptions{})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func writeWAV(t *testing.T, data []int, channels, bits int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ir.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, 48000, bits, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: 48000},
		Data:           data,
		SourceBitDepth: bits,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func TestReadWAV(t *testing.T) {
	// Interleaved stereo: left = {16384, -8192, 0}, right = {-32768, 0, 32767}.
	path := writeWAV(t, []int{16384, -32768, -8192, 0, 0, 32767}, 2, 16)

	left, rate, err := ReadWAV(path, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 48000, rate)
	testutil.RequireSliceNearlyEqual(t, left, []float64{0.5, -0.25, 0}, 1e-12)

	right, err := ReadFile(path, FormatWAV, ReadOptions{Channel: 1, Skip: 1, Read: 5})
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, right, []float64{0, 32767.0 / 32768}, 1e-12)

	_, _, err = ReadWAV(path, ReadOptions{Channel: 2})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestReadWAV_NotWAV(t *testing.T) {
	path := writeFile(t, "fake.wav", []byte("definitely not a riff header"))
	_, _, err := ReadWAV(path, ReadOptions{})
	assert.ErrorIs(t, err, ErrMalformedInput)
}
