package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vessel-sim/vessel-sim/sim/nav"
)

// Run validates cfg and plays cfg.Runs episodes seeded from cfg.Seed.
// observe, if non-nil, sees each episode as it finishes.
func Run(cfg Config, observe func(EpisodeResult)) (*Tally, error) {
	return RunWith(cfg, NewPartitionedRNG(NewSimulationKey(cfg.Seed)), observe)
}

// RunWith is Run with caller-supplied random streams. Episodes draw from rngs
// in sequence, so the same streams replay the same batch.
func RunWith(cfg Config, rngs *PartitionedRNG, observe func(EpisodeResult)) (*Tally, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	strategy, err := nav.ResolveStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	tally := NewTally(strategy, cfg.Flammability)
	for i := 0; i < cfg.Runs; i++ {
		res, err := RunEpisode(cfg, strategy, rngs, i)
		if err != nil {
			return tally, err
		}
		logrus.Infof("episode %d: %s after %d moves (agent %v, goal %v, ignition %v, %d burned)",
			i, res.Outcome, len(res.Moves), res.Placement.Agent, res.Placement.Goal, res.Placement.Ignition, res.Burned)
		tally.Add(res)
		if observe != nil {
			observe(res)
		}
	}
	return tally, nil
}
