package nav

import "github.com/vessel-sim/vessel-sim/sim/ship"

// StaticPlan plans once, before the fire moves, avoiding only the ignition
// cell, and then walks that plan without re-planning.
type StaticPlan struct {
	plan []ship.Coord
}

// Name implements Strategy.
func (s *StaticPlan) Name() string { return StrategyStatic }

// Begin implements Strategy.
func (s *StaticPlan) Begin(w *World) {
	s.plan = shortestPath(w.Grid, w.Agent, w.Goal, avoidCell(w.Grid, w.Ignition))
}

// Next implements Strategy.
func (s *StaticPlan) Next(_ *World) (ship.Coord, bool) {
	if len(s.plan) == 0 {
		return ship.Coord{}, false
	}
	next := s.plan[0]
	s.plan = s.plan[1:]
	return next, true
}

// Reactive re-plans every tick around the cells currently on fire and takes
// the first step.
type Reactive struct{}

// Name implements Strategy.
func (s *Reactive) Name() string { return StrategyReactive }

// Begin implements Strategy.
func (s *Reactive) Begin(_ *World) {}

// Next implements Strategy.
func (s *Reactive) Next(w *World) (ship.Coord, bool) {
	return firstStep(shortestPath(w.Grid, w.Agent, w.Goal, avoidFire(w.Grid)))
}

// Buffered re-plans every tick, preferring a route that keeps one cell of
// clearance from the fire and falling back to the Reactive route.
type Buffered struct{}

// Name implements Strategy.
func (s *Buffered) Name() string { return StrategyBuffered }

// Begin implements Strategy.
func (s *Buffered) Begin(_ *World) {}

// Next implements Strategy.
func (s *Buffered) Next(w *World) (ship.Coord, bool) {
	if path := shortestPath(w.Grid, w.Agent, w.Goal, avoidFireAndEdges(w.Grid)); path != nil {
		return firstStep(path)
	}
	return firstStep(shortestPath(w.Grid, w.Agent, w.Goal, avoidFire(w.Grid)))
}

func firstStep(path []ship.Coord) (ship.Coord, bool) {
	if len(path) == 0 {
		return ship.Coord{}, false
	}
	return path[0], true
}
