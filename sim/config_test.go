package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() SimulationConfig {
	return SimulationConfig{
		Horizon:              100.0,
		ArrivalRate:          1.0,
		RoutingProbabilities: []float64{0.5, 0.5},
		QueueCapacities:      []int{3, 3},
		ServiceRates:         []float64{2.0, 2.0},
	}
}

func TestSimulationConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimulationConfig)
		wantErr error
	}{
		{"valid", func(c *SimulationConfig) {}, nil},
		{"zero horizon", func(c *SimulationConfig) { c.Horizon = 0 }, ErrInvalidParameter},
		{"negative horizon", func(c *SimulationConfig) { c.Horizon = -1 }, ErrInvalidParameter},
		{"zero arrival rate", func(c *SimulationConfig) { c.ArrivalRate = 0 }, ErrInvalidParameter},
		{"no servers", func(c *SimulationConfig) { c.RoutingProbabilities = nil }, ErrInvalidConfiguration},
		{"mismatched capacities", func(c *SimulationConfig) { c.QueueCapacities = []int{3} }, ErrInvalidConfiguration},
		{"mismatched rates", func(c *SimulationConfig) { c.ServiceRates = []float64{2.0} }, ErrInvalidConfiguration},
		{"negative probability", func(c *SimulationConfig) { c.RoutingProbabilities = []float64{-0.5, 1.5} }, ErrInvalidConfiguration},
		{"probabilities not summing to 1", func(c *SimulationConfig) { c.RoutingProbabilities = []float64{0.5, 0.4} }, ErrInvalidConfiguration},
		{"negative queue capacity", func(c *SimulationConfig) { c.QueueCapacities = []int{-1, 3} }, ErrInvalidParameter},
		{"zero service rate", func(c *SimulationConfig) { c.ServiceRates = []float64{0, 2.0} }, ErrInvalidParameter},
		{"unknown horizon mode", func(c *SimulationConfig) { c.HorizonMode = "strict" }, ErrInvalidConfiguration},
		{"hard mode valid", func(c *SimulationConfig) { c.HorizonMode = HorizonHard }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSingleServer_BuildsDegenerateConfig(t *testing.T) {
	cfg := SingleServer(1.0, 2.0, 5, 1000.0)
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1, cfg.NumServers())
	require.Equal(t, []float64{1.0}, cfg.RoutingProbabilities)
	require.Equal(t, []int{5}, cfg.QueueCapacities)
	require.Equal(t, []float64{2.0}, cfg.ServiceRates)
}

func TestWithSeed_PinsSeed(t *testing.T) {
	cfg := SingleServer(1.0, 2.0, 5, 1000.0).WithSeed(42)
	require.NotNil(t, cfg.Seed)
	require.Equal(t, int64(42), *cfg.Seed)
}

func TestLoadConfig_ParsesScenarioFile(t *testing.T) {
	// GIVEN a YAML scenario file
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	scenario := `horizon: 500.0
arrival_rate: 2.0
routing_probabilities: [0.6, 0.4]
queue_capacities: [4, 2]
service_rates: [3.0, 1.5]
seed: 42
horizon_mode: hard
`
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	// WHEN it is loaded
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// THEN every field round-trips
	require.Equal(t, 500.0, cfg.Horizon)
	require.Equal(t, 2.0, cfg.ArrivalRate)
	require.Equal(t, []float64{0.6, 0.4}, cfg.RoutingProbabilities)
	require.Equal(t, []int{4, 2}, cfg.QueueCapacities)
	require.Equal(t, []float64{3.0, 1.5}, cfg.ServiceRates)
	require.NotNil(t, cfg.Seed)
	require.Equal(t, int64(42), *cfg.Seed)
	require.Equal(t, HorizonHard, cfg.HorizonMode)
}

func TestLoadConfig_RejectsInvalidScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	scenario := `horizon: -5.0
arrival_rate: 2.0
routing_probabilities: [1.0]
queue_capacities: [4]
service_rates: [3.0]
`
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
