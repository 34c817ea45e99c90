package eval

const (
	defaultMinFFTLength   = 1024
	defaultMagnitudeFloor = 1e-15
)

type config struct {
	minFFTLength   int
	magnitudeFloor float64
}

func defaultConfig() config {
	return config{
		minFFTLength:   defaultMinFFTLength,
		magnitudeFloor: defaultMagnitudeFloor,
	}
}

// Option configures evaluator construction.
type Option func(*config)

// WithMinFFTLength sets the minimum transform length used for the spectrum
// of a convolution filter. The impulse is zero-padded to the next power of
// two of max(n, 2*len(impulse)). Values below 2 are ignored.
func WithMinFFTLength(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.minFFTLength = n
		}
	}
}

// WithMagnitudeFloor sets the epsilon added to |H| before taking the
// logarithm in the gain of a convolution filter. Negative values are
// ignored.
func WithMagnitudeFloor(eps float64) Option {
	return func(c *config) {
		if eps >= 0 {
			c.magnitudeFloor = eps
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
