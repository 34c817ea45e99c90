package biquad

// Chain is an ordered cascade of biquad sections. It is used for
// higher-order filters (Butterworth, Linkwitz-Riley) where each section
// feeds into the next, so the overall response is the product of the
// section responses.
type Chain struct {
	sections []Coefficients
	gain     float64
}

// chainConfig holds options for NewChain.
type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain sets an overall linear gain applied to the cascade.
// Default is 1.0 (unity gain).
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain creates a cascade from zero or more coefficient sets.
// The slice is copied.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	return &Chain{
		sections: append([]Coefficients(nil), coeffs...),
		gain:     cfg.gain,
	}
}

// Order returns the total filter order: 2 per second-order section and 1
// per first-order section.
func (c *Chain) Order() int {
	order := 0
	for i := range c.sections {
		if c.sections[i].IsFirstOrder() {
			order++
		} else {
			order += 2
		}
	}
	return order
}

// NumSections returns the number of sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Gain returns the linear gain applied to the cascade.
func (c *Chain) Gain() float64 { return c.gain }

// Section returns a copy of the i-th section's coefficients.
func (c *Chain) Section(i int) Coefficients {
	return c.sections[i]
}

// Sections returns a copy of all section coefficients in cascade order.
func (c *Chain) Sections() []Coefficients {
	return append([]Coefficients(nil), c.sections...)
}
