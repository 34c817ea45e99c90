// Package eval evaluates the frequency response of configured filters.
//
// A filter is described by a [Spec], a closed set of variants: [BiquadSpec],
// [ComboSpec], [DiffEqSpec], [GainSpec] and [ConvSpec]. Specs are usually
// obtained from a [FilterConfig], the type tag plus parameter mapping of a
// CamillaDSP configuration document, and turned into a
// [response.Evaluator] with [New].
//
// Configuration problems are reported when a spec is parsed or an
// evaluator is built, as a [*ConfigError] matching [ErrConfiguration].
// Numerically degenerate parameters are not rejected; they show up as Inf
// or NaN in the response.
package eval
