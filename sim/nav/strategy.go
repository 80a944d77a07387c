// Package nav implements the agent's navigation strategies and the tick loop
// that drives them against a spreading fire.
package nav

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vessel-sim/vessel-sim/sim/ship"
)

// Strategy decides where the agent steps next.
//
// A Strategy instance serves exactly one episode: Begin is called once before
// the first tick, then Next once per tick while the agent is alive and short
// of the goal. Next returns false when no step exists.
type Strategy interface {
	Name() string
	Begin(w *World)
	Next(w *World) (ship.Coord, bool)
}

// Strategy names.
const (
	StrategyStatic    = "static"
	StrategyReactive  = "reactive"
	StrategyBuffered  = "buffered"
	StrategyRiskAStar = "risk-astar"
)

// ValidStrategies is the set of recognized strategy names.
var ValidStrategies = map[string]bool{
	StrategyStatic:    true,
	StrategyReactive:  true,
	StrategyBuffered:  true,
	StrategyRiskAStar: true,
}

// strategyNumbers maps the numeric selectors 1–4 onto strategy names.
var strategyNumbers = map[string]string{
	"1": StrategyStatic,
	"2": StrategyReactive,
	"3": StrategyBuffered,
	"4": StrategyRiskAStar,
}

// ResolveStrategy accepts a strategy name or its numeric selector ("1"–"4")
// and returns the canonical name.
func ResolveStrategy(selector string) (string, error) {
	if name, ok := strategyNumbers[selector]; ok {
		return name, nil
	}
	if ValidStrategies[selector] {
		return selector, nil
	}
	return "", fmt.Errorf("unknown strategy %q (valid: %v or 1-4)", selector, StrategyNames())
}

// StrategyNames returns the canonical strategy names in selector order.
func StrategyNames() []string {
	keys := make([]string, 0, len(strategyNumbers))
	for k := range strategyNumbers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = strategyNumbers[k]
	}
	return names
}

// StrategyConfig carries the knobs only some strategies use.
type StrategyConfig struct {
	Rollouts        int        // Monte-Carlo rollouts for risk-astar (default 50)
	MaxRolloutTicks int        // opt-in per-rollout tick cap; 0 = unbounded
	RolloutRNG      *rand.Rand // stream for rollout fire draws (required by risk-astar)
}

// DefaultRollouts is the number of risk-estimation rollouts when none is configured.
const DefaultRollouts = 50

// NewStrategy creates a fresh strategy instance by canonical name.
// Panics on unrecognized names.
func NewStrategy(name string, cfg StrategyConfig) Strategy {
	if !ValidStrategies[name] {
		panic(fmt.Sprintf("unknown strategy %q", name))
	}
	switch name {
	case StrategyStatic:
		return &StaticPlan{}
	case StrategyReactive:
		return &Reactive{}
	case StrategyBuffered:
		return &Buffered{}
	case StrategyRiskAStar:
		if cfg.RolloutRNG == nil {
			panic("NewStrategy: risk-astar requires a RolloutRNG")
		}
		rollouts := cfg.Rollouts
		if rollouts <= 0 {
			rollouts = DefaultRollouts
		}
		return &RiskAStar{rollouts: rollouts, maxRolloutTicks: cfg.MaxRolloutTicks, rng: cfg.RolloutRNG}
	default:
		panic(fmt.Sprintf("unhandled strategy %q", name))
	}
}
