package sim

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// SimulationConfig fully describes one simulation run. The three per-server
// sequences must share the same length M; M=1 with probability [1.0] is the
// single-server special case (the engine then skips routing draws).
//
// The zero Seed pointer means "self-seed from entropy": such runs are not
// reproducible.
type SimulationConfig struct {
	Horizon              float64     `yaml:"horizon"`
	ArrivalRate          float64     `yaml:"arrival_rate"`
	RoutingProbabilities []float64   `yaml:"routing_probabilities"`
	QueueCapacities      []int       `yaml:"queue_capacities"`
	ServiceRates         []float64   `yaml:"service_rates"`
	Seed                 *int64      `yaml:"seed,omitempty"`
	HorizonMode          HorizonMode `yaml:"horizon_mode,omitempty"`
}

// SingleServer builds the M=1 configuration with a fixed routing
// probability of 1.0.
func SingleServer(arrivalRate, serviceRate float64, queueCapacity int, horizon float64) SimulationConfig {
	return SimulationConfig{
		Horizon:              horizon,
		ArrivalRate:          arrivalRate,
		RoutingProbabilities: []float64{1.0},
		QueueCapacities:      []int{queueCapacity},
		ServiceRates:         []float64{serviceRate},
	}
}

// WithSeed returns a copy of the configuration pinned to the given seed.
func (c SimulationConfig) WithSeed(seed int64) SimulationConfig {
	c.Seed = &seed
	return c
}

// NumServers returns M, the number of servers in the network.
func (c *SimulationConfig) NumServers() int {
	return len(c.RoutingProbabilities)
}

// Validate checks the full configuration contract. The engine re-validates
// on construction rather than trusting the caller, since the package is
// usable as a library without the CLI front-end.
func (c *SimulationConfig) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be > 0, got %v", ErrInvalidParameter, c.Horizon)
	}
	if c.ArrivalRate <= 0 {
		return fmt.Errorf("%w: arrival rate must be > 0, got %v", ErrInvalidParameter, c.ArrivalRate)
	}
	m := len(c.RoutingProbabilities)
	if m == 0 {
		return fmt.Errorf("%w: need at least one server", ErrInvalidConfiguration)
	}
	if len(c.QueueCapacities) != m || len(c.ServiceRates) != m {
		return fmt.Errorf("%w: need %d queue capacities and %d service rates, got %d and %d",
			ErrInvalidConfiguration, m, m, len(c.QueueCapacities), len(c.ServiceRates))
	}
	for i, p := range c.RoutingProbabilities {
		if p < 0 {
			return fmt.Errorf("%w: probability[%d] must be >= 0, got %v", ErrInvalidConfiguration, i, p)
		}
	}
	if sum := floats.Sum(c.RoutingProbabilities); math.Abs(sum-1.0) > ProbabilitySumTolerance {
		return fmt.Errorf("%w: probabilities must sum to 1, got %v", ErrInvalidConfiguration, sum)
	}
	for i, q := range c.QueueCapacities {
		if q < 0 {
			return fmt.Errorf("%w: queue capacity[%d] must be >= 0, got %d", ErrInvalidParameter, i, q)
		}
	}
	for i, r := range c.ServiceRates {
		if r <= 0 {
			return fmt.Errorf("%w: service rate[%d] must be > 0, got %v", ErrInvalidParameter, i, r)
		}
	}
	if _, err := NewHorizonPolicy(c.HorizonMode); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a SimulationConfig from a YAML scenario file.
// The loaded configuration is validated before it is returned.
func LoadConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var cfg SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
