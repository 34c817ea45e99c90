// Package biquad models second-order digital filter sections for analysis.
//
// [Coefficients] holds one section normalized so that a0 = 1. It evaluates
// H(z) = (b0 + b1*z^-1 + b2*z^-2) / (1 + a1*z^-1 + a2*z^-2) on the unit
// circle, exposes the section's poles and zeros, and applies the standard
// second-order stability triangle test. A [Chain] is an ordered cascade whose
// response is the product of its sections' responses.
//
// Coefficient design (RBJ cookbook, first-order and shelving sections,
// Butterworth and Linkwitz-Riley cascades) lives in dsp/filter/design.
package biquad
