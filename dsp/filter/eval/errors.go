package eval

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every [*ConfigError].
var ErrConfiguration = errors.New("eval: invalid filter configuration")

// ConfigError reports a missing or invalid parameter.
type ConfigError struct {
	// Filter is the filter type, e.g. "Biquad/Lowpass".
	Filter string
	// Param is the offending parameter key, empty when the problem is
	// not tied to one parameter.
	Param  string
	Reason string
}

// Error formats the element, the offending parameter if any and the reason.
func (e *ConfigError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("eval: %s: %s", e.Filter, e.Reason)
	}
	return fmt.Sprintf("eval: %s: parameter %q: %s", e.Filter, e.Param, e.Reason)
}

// Unwrap returns [ErrConfiguration].
func (e *ConfigError) Unwrap() error { return ErrConfiguration }

func configErr(filter, param, format string, args ...any) error {
	return &ConfigError{Filter: filter, Param: param, Reason: fmt.Sprintf(format, args...)}
}
