// Package response defines the contract shared by every filter kind that
// can report a frequency response.
//
// The canonical primitive is the complex gain on an arbitrary frequency
// grid; it composes by elementwise multiplication (see [Product]). Gain in
// dB and phase in degrees are a derived view ([GainAndPhase]). Stability is
// three-state so that kinds which cannot determine it report [Unknown]
// instead of an implied answer.
package response
