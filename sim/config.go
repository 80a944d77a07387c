package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vessel-sim/vessel-sim/sim/nav"
	"github.com/vessel-sim/vessel-sim/sim/trace"
)

// Config is one scenario: the ship, the strategy flown through it, and how
// many seeded episodes to run. Loadable from YAML; every field is optional
// there and falls back to DefaultConfig.
type Config struct {
	Size         int     `yaml:"size"`          // grid side D (≥2)
	Flammability float64 `yaml:"flammability"`  // ship-wide q in [0,1]
	Strategy     string  `yaml:"strategy"`      // name or selector "1"-"4"
	Runs         int     `yaml:"runs"`          // episodes per run (≥1)
	Seed         int64   `yaml:"seed"`          // master seed for PartitionedRNG
	Rollouts     int     `yaml:"rollouts"`      // risk-astar rollouts (0 = nav.DefaultRollouts)
	MaxTicks     int     `yaml:"max_ticks"`     // episode tick cap (0 = 4·D²)
	RolloutTicks int     `yaml:"rollout_ticks"` // opt-in risk-astar rollout cap (0 = unbounded)
	Trace        string  `yaml:"trace"`         // "none" or "ticks"
}

// DefaultConfig returns the scenario used when neither a file nor a flag
// sets a field.
func DefaultConfig() Config {
	return Config{
		Size:         40,
		Flammability: 0.5,
		Strategy:     nav.StrategyReactive,
		Runs:         1,
		Seed:         42,
		Rollouts:     nav.DefaultRollouts,
		Trace:        string(trace.TraceLevelNone),
	}
}

// Validate checks every field's range and the strategy selector.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("size must be at least 2, got %d", c.Size)
	}
	if c.Flammability < 0 || c.Flammability > 1 {
		return fmt.Errorf("flammability must be in [0, 1], got %f", c.Flammability)
	}
	if _, err := nav.ResolveStrategy(c.Strategy); err != nil {
		return err
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if c.Rollouts < 0 {
		return fmt.Errorf("rollouts must be non-negative, got %d", c.Rollouts)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be non-negative, got %d", c.MaxTicks)
	}
	if c.RolloutTicks < 0 {
		return fmt.Errorf("rollout_ticks must be non-negative, got %d", c.RolloutTicks)
	}
	if !trace.IsValidTraceLevel(c.Trace) {
		return fmt.Errorf("unknown trace level %q; valid: none, ticks", c.Trace)
	}
	return nil
}

// LoadScenario reads a YAML scenario on top of DefaultConfig.
// Uses strict parsing: unrecognized keys (typos) are rejected. An empty
// file yields the defaults.
func LoadScenario(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading scenario: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing scenario: %w", err)
	}
	return cfg, nil
}
