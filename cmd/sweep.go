package cmd

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/sync/errgroup"

	"github.com/vessel-sim/vessel-sim/sim"
	"github.com/vessel-sim/vessel-sim/sim/nav"
)

var (
	// CLI flags for sweep
	qMin       float64  // First flammability
	qMax       float64  // Last flammability (inclusive)
	qStep      float64  // Flammability increment
	strategies []string // Strategies to compare
	jobs       int      // Concurrent (strategy, q) jobs
	chartPath  string   // Optional PNG of success rate vs q
)

// sweepCmd compares strategies across a range of flammability values
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare strategies across a range of flammability values",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		qs, err := flammabilitySteps(qMin, qMax, qStep)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		names, err := resolveStrategies(strategies)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Sweeping %d strategies over %d flammability values, %d episodes each", len(names), len(qs), cfg.Runs)

		grid, err := runSweep(cfg, names, qs, jobs)
		if err != nil {
			logrus.Fatalf("sweep failed: %v", err)
		}
		printSweep(cmd.OutOrStdout(), names, qs, grid)

		if chartPath != "" {
			if err := writeSweepChart(chartPath, names, qs, grid); err != nil {
				logrus.Fatalf("writing chart: %v", err)
			}
			logrus.Infof("Chart written to %s", chartPath)
		}
	},
}

// flammabilitySteps lists qMin, qMin+step, ... up to qMax inclusive.
func flammabilitySteps(lo, hi, step float64) ([]float64, error) {
	if lo < 0 || hi > 1 || lo > hi {
		return nil, fmt.Errorf("flammability range [%v, %v] must lie within [0, 1]", lo, hi)
	}
	if step <= 0 {
		return nil, fmt.Errorf("q-step must be positive, got %v", step)
	}
	n := int(math.Floor((hi-lo)/step+1e-9)) + 1
	qs := make([]float64, n)
	for i := range qs {
		qs[i] = math.Round((lo+float64(i)*step)*1e6) / 1e6
	}
	return qs, nil
}

// resolveStrategies maps names or selectors onto canonical names.
func resolveStrategies(selectors []string) ([]string, error) {
	if len(selectors) == 0 {
		return nav.StrategyNames(), nil
	}
	names := make([]string, 0, len(selectors))
	for _, s := range selectors {
		name, err := nav.ResolveStrategy(s)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// runSweep runs one batch per (strategy, q) with at most limit in flight.
// Every strategy at a given q draws from the same derived streams, so they
// face the same ships and spawns; results do not depend on scheduling.
// grid[i][j] is the tally of names[i] at qs[j].
func runSweep(cfg sim.Config, names []string, qs []float64, limit int) ([][]*sim.Tally, error) {
	grid := make([][]*sim.Tally, len(names))
	for i := range grid {
		grid[i] = make([]*sim.Tally, len(qs))
	}
	base := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, name := range names {
		for j, q := range qs {
			job := cfg
			job.Strategy = name
			job.Flammability = q
			rngs := base.Derive(fmt.Sprintf("q=%.6f", q))
			g.Go(func() error {
				tally, err := sim.RunWith(job, rngs, nil)
				if err != nil {
					return fmt.Errorf("%s at q=%.3f: %w", name, q, err)
				}
				grid[i][j] = tally
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grid, nil
}

// printSweep writes the success-rate table, one row per q.
func printSweep(w io.Writer, names []string, qs []float64, grid [][]*sim.Tally) {
	fmt.Fprintln(w, "=== Success Rate by Flammability ===")
	fmt.Fprintf(w, "%-6s", "q")
	for _, name := range names {
		fmt.Fprintf(w, " %12s", name)
	}
	fmt.Fprintln(w)
	for j, q := range qs {
		fmt.Fprintf(w, "%-6.2f", q)
		for i := range names {
			fmt.Fprintf(w, " %12.3f", grid[i][j].SuccessRate())
		}
		fmt.Fprintln(w)
	}
}

var seriesColors = []drawing.Color{
	{R: 220, G: 50, B: 47, A: 255},
	{R: 38, G: 139, B: 210, A: 255},
	{R: 133, G: 153, B: 0, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
}

// renderSweepChart draws success rate against q, one line per strategy.
func renderSweepChart(w io.Writer, names []string, qs []float64, grid [][]*sim.Tally) error {
	series := make([]chart.Series, 0, len(names))
	for i, name := range names {
		rates := make([]float64, len(qs))
		for j := range qs {
			rates[j] = grid[i][j].SuccessRate()
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: qs,
			YValues: rates,
			Style:   chart.Style{StrokeColor: seriesColors[i%len(seriesColors)], StrokeWidth: 3.0},
		})
	}

	graph := chart.Chart{
		Width:  800,
		Height: 480,
		XAxis: chart.XAxis{
			Name:  "flammability q",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.2f", v.(float64))
			},
		},
		YAxis: chart.YAxis{
			Name:  "success rate",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

// writeSweepChart renders the chart to a PNG file at path.
func writeSweepChart(path string, names []string, qs []float64, grid [][]*sim.Tally) error {
	var buf bytes.Buffer
	if err := renderSweepChart(&buf, names, qs, grid); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// registerSweepFlags binds the flags only sweep uses.
func registerSweepFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&qMin, "q-min", 0.0, "First flammability value")
	cmd.Flags().Float64Var(&qMax, "q-max", 1.0, "Last flammability value (inclusive)")
	cmd.Flags().Float64Var(&qStep, "q-step", 0.1, "Flammability increment")
	cmd.Flags().StringSliceVar(&strategies, "strategies", nil, "Strategies to compare (default: all)")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "Maximum concurrent (strategy, q) jobs")
	cmd.Flags().StringVar(&chartPath, "chart", "", "Write a success-rate PNG to this path")
}
