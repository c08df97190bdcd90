package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/queueing-sim/queueing-sim/sim"
)

func TestBuildConfig_FromFlags(t *testing.T) {
	// GIVEN flag values as the run command would set them
	horizon = 250.0
	arrivalRate = 2.0
	probabilities = []float64{0.5, 0.5}
	queueCapacities = []int{1, 2}
	serviceRates = []float64{1.0, 3.0}
	horizonMode = "hard"
	scenarioPath = ""

	cfg, err := buildConfig(runCmd)
	require.NoError(t, err)
	require.Equal(t, 250.0, cfg.Horizon)
	require.Equal(t, []float64{0.5, 0.5}, cfg.RoutingProbabilities)
	require.Equal(t, sim.HorizonHard, cfg.HorizonMode)
	// Seed flag untouched: the run self-seeds from entropy
	require.Nil(t, cfg.Seed)
}

func TestBuildConfig_InvalidFlagsRejected(t *testing.T) {
	horizon = -1.0
	arrivalRate = 2.0
	probabilities = []float64{1.0}
	queueCapacities = []int{1}
	serviceRates = []float64{1.0}
	horizonMode = "drain"
	scenarioPath = ""

	_, err := buildConfig(runCmd)
	require.ErrorIs(t, err, sim.ErrInvalidParameter)
}

func TestBuildConfig_ScenarioFileWins(t *testing.T) {
	// GIVEN a scenario file alongside conflicting flag values
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	scenario := `horizon: 42.0
arrival_rate: 1.0
routing_probabilities: [1.0]
queue_capacities: [0]
service_rates: [2.0]
seed: 9
`
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	horizon = 999.0
	scenarioPath = path
	defer func() { scenarioPath = "" }()

	cfg, err := buildConfig(runCmd)
	require.NoError(t, err)
	require.Equal(t, 42.0, cfg.Horizon)
	require.NotNil(t, cfg.Seed)
	require.Equal(t, int64(9), *cfg.Seed)
}
