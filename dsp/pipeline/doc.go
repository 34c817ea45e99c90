// Package pipeline computes the frequency response of every output channel
// of a CamillaDSP processing pipeline.
//
// Each capture channel starts with unity gain. Filter steps multiply the
// selected channel by the complex gain of each named filter in order. Mixer
// steps replace the channel set: every destination becomes the sum of its
// sources, each scaled by 10^(gain/20) and negated when inverted.
package pipeline
