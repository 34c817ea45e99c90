// Package spectrum provides the frequency-domain helpers used by the
// response evaluators: a zero-padded FFT of a real impulse, magnitude/dB
// and phase decomposition of complex gains, phase unwrapping, and
// interpolation of a uniformly sampled complex spectrum onto an arbitrary
// frequency grid.
//
// The FFT is computed with github.com/MeKo-Christian/algo-fft, magnitudes with
// the SIMD kernels of github.com/cwbudde/algo-vecmath and interpolation with
// gonum's piecewise-linear predictor.
package spectrum
