package ranking

import "errors"

// Common errors
var (
	ErrInvalidWeight = errors.New("usage weight cannot be negative")
)

// DefaultUsageWeight is the multiplier applied to the usage term when no
// weight is configured. At 2.0, a card selected 100 times gains roughly
// 9.2 points, which keeps even heavily spammed discretionary cards (base
// priority 10-20) below untouched situational ones (base priority 50+).
const DefaultUsageWeight = 2.0

// Params holds the configurable parameters of the ranking algorithm.
// The weight is read once from process configuration at startup and is
// immutable for the process lifetime; it is never tuned per user.
type Params struct {
	// UsageWeight is the multiplier applied to ln(1+usageCount).
	UsageWeight float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		UsageWeight: DefaultUsageWeight,
	}
}

// NewParams creates a new Params instance with the given usage weight.
// Returns an error if the weight is negative.
func NewParams(usageWeight float64) (*Params, error) {
	if usageWeight < 0 {
		return nil, ErrInvalidWeight
	}

	return &Params{
		UsageWeight: usageWeight,
	}, nil
}
