package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/queueing-sim/queueing-sim/sim"
)

var (
	// CLI flags for the simulation configuration
	horizon         float64   // Arrival-generation time bound
	arrivalRate     float64   // Poisson arrival rate (lambda)
	probabilities   []float64 // Per-server routing probabilities (must sum to 1)
	queueCapacities []int     // Per-server waiting-room sizes
	serviceRates    []float64 // Per-server exponential service rates (mu)
	seed            int64     // Seed for the variate source
	horizonMode     string    // Horizon policy ("hard" or "drain")
	scenarioPath    string    // Optional YAML scenario file (overrides flags)
	tracePath       string    // Optional per-event CSV trace output
	logLevel        string    // Log verbosity level
	verbose         bool      // Print the full metrics block after the result line
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queueing-sim",
	Short: "Discrete-event simulator for finite-capacity queueing networks",
}

// buildConfig assembles the simulation configuration from the scenario file
// when one is given, otherwise from the individual flags. The seed flag is
// applied only when the caller set it: an unset seed means a
// non-reproducible, entropy-seeded run.
func buildConfig(cmd *cobra.Command) (*sim.SimulationConfig, error) {
	if scenarioPath != "" {
		return sim.LoadConfig(scenarioPath)
	}
	cfg := &sim.SimulationConfig{
		Horizon:              horizon,
		ArrivalRate:          arrivalRate,
		RoutingProbabilities: probabilities,
		QueueCapacities:      queueCapacities,
		ServiceRates:         serviceRates,
		HorizonMode:          sim.HorizonMode(horizonMode),
	}
	if cmd.Flags().Changed("seed") {
		s := seed
		cfg.Seed = &s
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runCmd executes one simulation run using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the queueing-network simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid simulation setup: %v", err)
		}

		s, err := sim.NewSimulator(*cfg)
		if err != nil {
			logrus.Fatalf("Unable to build simulator: %v", err)
		}

		var trace *sim.TraceRecorder
		if tracePath != "" {
			trace, err = sim.NewTraceRecorder(tracePath)
			if err != nil {
				logrus.Fatalf("Unable to open trace file: %v", err)
			}
			s.SetTrace(trace)
		}

		result := s.Run()

		if trace != nil {
			if err := trace.Close(); err != nil {
				logrus.Fatalf("Unable to finish trace file: %v", err)
			}
			logrus.Infof("Trace: %d events, mean gap %.4f", trace.Events(), trace.MeanGap())
		}

		fmt.Println(result)
		if verbose {
			s.Metrics.Print()
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Float64Var(&horizon, "horizon", 1000.0, "Arrival-generation time bound")
	runCmd.Flags().Float64Var(&arrivalRate, "rate", 1.0, "Poisson arrival rate (lambda)")
	runCmd.Flags().Float64SliceVar(&probabilities, "probs", []float64{1.0}, "Comma-separated per-server routing probabilities")
	runCmd.Flags().IntSliceVar(&queueCapacities, "queue-capacities", []int{5}, "Comma-separated per-server waiting-room sizes")
	runCmd.Flags().Float64SliceVar(&serviceRates, "service-rates", []float64{2.0}, "Comma-separated per-server service rates (mu)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the variate source (omit for an entropy-seeded run)")
	runCmd.Flags().StringVar(&horizonMode, "policy", string(sim.HorizonDrain), "Horizon policy (hard, drain)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides the other simulation flags)")
	runCmd.Flags().StringVar(&tracePath, "trace", "", "Write a per-event CSV trace to this file")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "Print the full metrics block after the result line")

	rootCmd.AddCommand(runCmd)
}
