package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ProbabilitySumTolerance is the accepted deviation of the routing
// probability sum from 1.0.
const ProbabilitySumTolerance = 1e-9

// Router maps a uniform [0,1) draw to a server index via a cumulative
// probability table, walked in index order.
type Router struct {
	cumulative []float64
}

// NewRouter builds a router from per-server routing probabilities.
func NewRouter(probabilities []float64) (*Router, error) {
	if len(probabilities) == 0 {
		return nil, fmt.Errorf("%w: need at least one routing probability", ErrInvalidConfiguration)
	}
	for i, p := range probabilities {
		if p < 0 {
			return nil, fmt.Errorf("%w: probability[%d] must be >= 0, got %v", ErrInvalidConfiguration, i, p)
		}
	}
	if sum := floats.Sum(probabilities); math.Abs(sum-1.0) > ProbabilitySumTolerance {
		return nil, fmt.Errorf("%w: probabilities must sum to 1, got %v", ErrInvalidConfiguration, sum)
	}

	cumulative := make([]float64, len(probabilities))
	running := 0.0
	for i, p := range probabilities {
		running += p
		cumulative[i] = running
	}
	return &Router{cumulative: cumulative}, nil
}

// Choose returns the first index i whose cumulative probability exceeds u.
// With a single server it always returns 0. When floating-point rounding
// leaves u at or above the final cumulative sum, the last index is chosen.
func (r *Router) Choose(u float64) int {
	for i, c := range r.cumulative {
		if u < c {
			return i
		}
	}
	return len(r.cumulative) - 1
}

// Size returns the number of servers the router splits across.
func (r *Router) Size() int { return len(r.cumulative) }
