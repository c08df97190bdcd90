package sim

import "errors"

// ErrInvalidParameter reports a single numeric parameter outside its domain
// (non-positive horizon, arrival rate or service rate, negative queue
// capacity, non-positive variate rate).
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrInvalidConfiguration reports a structurally inconsistent configuration
// (mismatched per-server sequence lengths, negative routing probability,
// probabilities not summing to 1, unknown horizon mode).
var ErrInvalidConfiguration = errors.New("invalid configuration")
