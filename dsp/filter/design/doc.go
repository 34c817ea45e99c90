// Package design provides digital IIR filter coefficient designers.
//
// The single-section designers map a corner frequency, quality factor, gain
// or shelf slope and a sample rate to normalized [biquad.Coefficients] using
// the bilinear transform (RBJ cookbook forms, their first-order variants,
// and the Linkwitz transform).
//
// The cascade designers build Butterworth and Linkwitz-Riley filters as a
// list of Q values ([ButterworthQ], [LinkwitzRileyQ]) that [Stages] realizes
// as biquad and first-order sections sharing one corner frequency.
package design
