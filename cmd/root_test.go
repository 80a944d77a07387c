package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vessel-sim/vessel-sim/sim"
	"github.com/vessel-sim/vessel-sim/sim/nav"
)

// parsedCommand returns a fresh command with the scenario flags parsed from args.
func parsedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	registerScenarioFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestResolveConfig_DefaultsWithoutFlags(t *testing.T) {
	cfg, err := resolveConfig(parsedCommand(t))
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), cfg)
}

func TestResolveConfig_FlagsOverride(t *testing.T) {
	cmd := parsedCommand(t, "--size", "20", "--flammability", "0.8", "--strategy", "4", "--runs", "5", "--seed", "7", "--trace", "ticks")

	cfg, err := resolveConfig(cmd)

	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Size)
	assert.Equal(t, 0.8, cfg.Flammability)
	assert.Equal(t, "4", cfg.Strategy)
	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "ticks", cfg.Trace)
}

func TestResolveConfig_FlagsOnlyOverrideWhenSet(t *testing.T) {
	// GIVEN a scenario file setting size and strategy
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 30\nstrategy: buffered\nruns: 12\n"), 0o644))

	// WHEN only --runs is passed on the command line
	cmd := parsedCommand(t, "--config", path, "--runs", "3")
	cfg, err := resolveConfig(cmd)

	// THEN the file wins for unset flags and the flag wins where set
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Size)
	assert.Equal(t, nav.StrategyBuffered, cfg.Strategy)
	assert.Equal(t, 3, cfg.Runs)
}

func TestResolveConfig_InvalidValues(t *testing.T) {
	tests := [][]string{
		{"--size", "1"},
		{"--flammability", "1.5"},
		{"--strategy", "bfs"},
		{"--runs", "0"},
		{"--trace", "all"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			_, err := resolveConfig(parsedCommand(t, args...))
			assert.Error(t, err)
		})
	}
}

func TestResolveConfig_BadScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sise: 30\n"), 0o644))

	_, err := resolveConfig(parsedCommand(t, "--config", path))

	assert.Error(t, err)
}

func TestResolveConfig_MaxTicksLeavesRolloutsUncapped(t *testing.T) {
	cfg, err := resolveConfig(parsedCommand(t, "--max-ticks", "100"))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.MaxTicks)
	assert.Equal(t, 0, cfg.RolloutTicks)

	cfg, err = resolveConfig(parsedCommand(t, "--rollout-ticks", "30"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.RolloutTicks)
	assert.Equal(t, 0, cfg.MaxTicks)
}
