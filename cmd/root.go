package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vessel-sim/vessel-sim/sim"
	"github.com/vessel-sim/vessel-sim/sim/trace"
)

var (
	// CLI flags for the scenario; each overrides --config only when set
	scenarioPath string  // Optional YAML scenario
	size         int     // Grid side D
	flammability float64 // Ship flammability q
	strategy     string  // Strategy name or selector 1-4
	runs         int     // Episodes to run
	seed         int64   // Master seed
	rollouts     int     // risk-astar rollouts
	maxTicks     int     // Episode tick cap (0 = 4·D²)
	rolloutTicks int     // Opt-in rollout tick cap (0 = unbounded)
	traceLevel   string  // Trace verbosity
	logLevel     string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "vessel-sim",
	Short: "Fire-escape navigation simulator for procedurally generated ships",
}

// runCmd plays a batch of episodes with one strategy and prints the tally
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run episodes with one strategy",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Starting %d episodes: D=%d, q=%.3f, strategy=%s, seed=%d",
			cfg.Runs, cfg.Size, cfg.Flammability, cfg.Strategy, cfg.Seed)

		out := cmd.OutOrStdout()
		tally, err := sim.Run(cfg, func(res sim.EpisodeResult) {
			if res.Trace != nil {
				printTraceSummary(out, res)
			}
		})
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		tally.Print(out)

		logrus.Info("Simulation complete.")
	},
}

// setLogLevel applies --log to the package-level logger.
func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveConfig layers defaults, the optional scenario file, and explicitly
// set flags, in that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if scenarioPath != "" {
		loaded, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("flammability") {
		cfg.Flammability = flammability
	}
	if flags.Changed("strategy") {
		cfg.Strategy = strategy
	}
	if flags.Changed("runs") {
		cfg.Runs = runs
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("rollouts") {
		cfg.Rollouts = rollouts
	}
	if flags.Changed("max-ticks") {
		cfg.MaxTicks = maxTicks
	}
	if flags.Changed("rollout-ticks") {
		cfg.RolloutTicks = rolloutTicks
	}
	if flags.Changed("trace") {
		cfg.Trace = traceLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// printTraceSummary writes one line per traced episode.
func printTraceSummary(w io.Writer, res sim.EpisodeResult) {
	s := trace.Summarize(res.Trace)
	fmt.Fprintf(w, "episode %d [%s]: %d moves, %d distinct cells, %d revisits, %d cells ignited (peak %d at tick %d)\n",
		res.Index, res.Outcome, s.Moves, s.DistinctCells, s.Revisits, s.CellsIgnited, s.PeakSpread, s.PeakTick)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerScenarioFlags binds the scenario flags shared by run and sweep.
func registerScenarioFlags(cmd *cobra.Command) {
	def := sim.DefaultConfig()
	cmd.Flags().StringVar(&scenarioPath, "config", "", "Path to a YAML scenario file")
	cmd.Flags().IntVar(&size, "size", def.Size, "Grid side D of the D x D ship")
	cmd.Flags().Float64Var(&flammability, "flammability", def.Flammability, "Ship flammability q in [0, 1]")
	cmd.Flags().StringVar(&strategy, "strategy", def.Strategy, "Navigation strategy: static, reactive, buffered, risk-astar (or 1-4)")
	cmd.Flags().IntVar(&runs, "runs", def.Runs, "Number of episodes")
	cmd.Flags().Int64Var(&seed, "seed", def.Seed, "Master seed for maze, spawn and fire")
	cmd.Flags().IntVar(&rollouts, "rollouts", def.Rollouts, "Monte-Carlo rollouts for risk-astar")
	cmd.Flags().IntVar(&maxTicks, "max-ticks", def.MaxTicks, "Episode tick cap (0 = 4*D*D)")
	cmd.Flags().IntVar(&rolloutTicks, "rollout-ticks", def.RolloutTicks, "Optional per-rollout tick cap for risk-astar (0 = run until agent or goal burns)")
	cmd.Flags().StringVar(&traceLevel, "trace", def.Trace, "Trace level: none or ticks")
	cmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// init sets up CLI flags and subcommands
func init() {
	registerScenarioFlags(runCmd)
	registerScenarioFlags(sweepCmd)
	registerSweepFlags(sweepCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
