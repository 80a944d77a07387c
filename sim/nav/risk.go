package nav

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/vessel-sim/vessel-sim/sim/ship"
)

// RiskMap holds empirical fire exposure: how many rollouts each cell burned in.
// Cells absent from the map have weight 0.
type RiskMap map[ship.Coord]int

// Weight returns the exposure of c.
func (r RiskMap) Weight(c ship.Coord) int {
	return r[c]
}

// PathCost sums the exposure of every cell on path.
func (r RiskMap) PathCost(path []ship.Coord) int {
	total := 0
	for _, c := range path {
		total += r[c]
	}
	return total
}

// EstimateRisk runs independent fire rollouts from the current state of w and
// counts, per cell, the rollouts in which it burned. Each rollout advances a
// private clone of w until the agent's or goal's cell ignites or the fire can
// no longer spread. maxTicks > 0 additionally caps each rollout; 0 leaves it
// unbounded.
func EstimateRisk(w *World, rollouts, maxTicks int, rng *rand.Rand) RiskMap {
	risk := make(RiskMap)
	for i := 0; i < rollouts; i++ {
		clone, ticks := rollout(w, maxTicks, rng)
		burned := clone.Fire.Log()
		for _, c := range burned {
			risk[c]++
		}
		logrus.Tracef("rollout %d: %d cells burned after %d ticks", i, len(burned), ticks)
	}
	return risk
}

// rollout burns a clone of w and returns the clone once it has stopped.
//
// With q > 0 every frontier cell can ignite and the ship is connected, so the
// fire reaches the agent or the goal with probability 1; with q = 0 CanSpread
// is false from the start.
func rollout(w *World, maxTicks int, rng *rand.Rand) (*World, int) {
	clone := w.Clone(rng)
	ticks := 0
	for !rolloutDone(clone) {
		if maxTicks > 0 && ticks >= maxTicks {
			break
		}
		clone.Fire.AdvanceTick()
		ticks++
	}
	return clone, ticks
}

// rolloutDone reports whether a rollout has reached a natural end.
func rolloutDone(w *World) bool {
	return w.Grid.OnFire(w.Agent) || w.Grid.OnFire(w.Goal) || !w.Fire.CanSpread()
}

// RiskAStar estimates per-cell fire exposure with Monte-Carlo rollouts once per
// episode, then every tick searches for the route with the least cumulative
// exposure and takes its first step.
type RiskAStar struct {
	rollouts        int
	maxRolloutTicks int
	rng             *rand.Rand
	risk            RiskMap
}

// Name implements Strategy.
func (s *RiskAStar) Name() string { return StrategyRiskAStar }

// Begin implements Strategy. The RiskMap is rebuilt from scratch here, so
// nothing carries over from an earlier episode.
func (s *RiskAStar) Begin(w *World) {
	s.risk = EstimateRisk(w, s.rollouts, s.maxRolloutTicks, s.rng)
	logrus.Debugf("risk-astar: %d rollouts touched %d cells", s.rollouts, len(s.risk))
}

// Next implements Strategy.
func (s *RiskAStar) Next(w *World) (ship.Coord, bool) {
	return firstStep(s.search(w))
}

// Risk returns the RiskMap built by Begin.
func (s *RiskAStar) Risk() RiskMap {
	return s.risk
}

// frontierItem is an A* open-list entry.
type frontierItem struct {
	cost int
	at   ship.Coord
}

// lessFrontier orders the open list by cost, then row, then column, so ties
// never depend on insertion order.
func lessFrontier(a, b frontierItem) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.at.Less(b.at)
}

// search returns the least-exposure path from agent to goal over open,
// non-burning cells, excluding the agent's cell, or nil if none exists.
//
// Expanding into n costs f(n) = g(n) + h(n): the exposure summed along the
// fire-avoiding shortest path agent→n, plus the same along n→goal. A missing
// leg contributes 0. f(n) depends only on n, so it is computed once per search.
func (s *RiskAStar) search(w *World) []ship.Coord {
	g := w.Grid
	passable := avoidFire(g)

	costs := make(map[ship.Coord]int)
	cost := func(n ship.Coord) int {
		if f, ok := costs[n]; ok {
			return f
		}
		f := s.risk.PathCost(shortestPath(g, w.Agent, n, passable)) +
			s.risk.PathCost(shortestPath(g, n, w.Goal, passable))
		costs[n] = f
		return f
	}

	open := heap.New[frontierItem](lessFrontier)
	open.Push(frontierItem{cost: 0, at: w.Agent})
	closed := mapset.New[ship.Coord]()
	prev := make(map[ship.Coord]ship.Coord)

	for open.Size() > 0 {
		item, _ := open.Pop()
		if closed.Has(item.at) {
			continue
		}
		if item.at == w.Goal {
			return buildPath(prev, w.Agent, w.Goal)
		}
		closed.Put(item.at)

		for _, n := range g.Neighbors(item.at) {
			if n == w.Agent || closed.Has(n) || !passable(n) {
				continue
			}
			if _, queued := prev[n]; queued {
				continue
			}
			prev[n] = item.at
			open.Push(frontierItem{cost: cost(n), at: n})
		}
	}
	return nil
}
