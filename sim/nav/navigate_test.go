package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vessel-sim/vessel-sim/sim/ship"
	"github.com/vessel-sim/vessel-sim/sim/trace"
)

// scripted replays a fixed list of moves.
type scripted struct {
	moves []ship.Coord
}

func (s *scripted) Name() string { return "scripted" }
func (s *scripted) Begin(_ *World) {}
func (s *scripted) Next(_ *World) (ship.Coord, bool) {
	if len(s.moves) == 0 {
		return ship.Coord{}, false
	}
	next := s.moves[0]
	s.moves = s.moves[1:]
	return next, true
}

func TestNavigate_ReactiveCutOffByFastFire(t *testing.T) {
	// GIVEN a fully flammable 3x3 ship with fire next to the agent
	w := newWorld(gridFromRows(openRows(3)...), c(0, 0), c(2, 2), c(0, 1), 1.0, 1)
	tr := trace.NewEpisodeTrace()

	// WHEN the reactive agent runs
	res := Navigate(w, &Reactive{}, NavigateOptions{Trace: tr})

	// THEN it gets two steps down the left column before fire closes every route
	assert.Equal(t, OutcomeNoPath, res.Outcome)
	assert.Equal(t, []ship.Coord{c(1, 0), c(2, 0)}, res.Moves)
	assert.Equal(t, 2, res.Ticks)

	// AND the trace holds both moves and both waves of ignition
	require.Len(t, tr.Moves, 2)
	assert.Equal(t, trace.MoveRecord{Tick: 0, From: c(0, 0), To: c(1, 0)}, tr.Moves[0])
	assert.Equal(t, trace.MoveRecord{Tick: 1, From: c(1, 0), To: c(2, 0)}, tr.Moves[1])
	require.Len(t, tr.Ignitions, 2)
	assert.ElementsMatch(t, []ship.Coord{c(1, 1), c(0, 2), c(0, 0)}, tr.Ignitions[0].Cells)
	assert.ElementsMatch(t, []ship.Coord{c(1, 0), c(2, 1), c(1, 2)}, tr.Ignitions[1].Cells)
}

func TestNavigate_AgentStartingOnFireIsCaught(t *testing.T) {
	w := newWorld(gridFromRows(openRows(3)...), c(1, 1), c(2, 2), c(1, 1), 0.5, 1)

	res := Navigate(w, &Reactive{}, NavigateOptions{})

	assert.Equal(t, OutcomeCaughtFire, res.Outcome)
	assert.Empty(t, res.Moves)
	assert.Equal(t, 0, res.Ticks)
}

func TestNavigate_InertShipReachesGoal(t *testing.T) {
	w := newWorld(gridFromRows(openRows(5)...), c(0, 0), c(4, 4), c(2, 2), 0, 1)

	res := Navigate(w, &Reactive{}, NavigateOptions{})

	assert.Equal(t, OutcomeReachedGoal, res.Outcome)
	assert.True(t, res.Outcome.Success())
	assert.Len(t, res.Moves, 8)
	assert.Equal(t, c(4, 4), res.Moves[len(res.Moves)-1])
	assert.Equal(t, 1, w.Fire.Burned(), "fire never spreads at q=0")
}

func TestNavigate_StaticAndReactiveAgreeOnInertShip(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		// GIVEN two copies of the same inert maze
		static := Navigate(mazeWorld(15, 0, seed), &StaticPlan{}, NavigateOptions{})
		reactive := Navigate(mazeWorld(15, 0, seed), &Reactive{}, NavigateOptions{})

		// THEN both strategies walk the same route to the same end
		assert.Equal(t, static, reactive, "seed %d", seed)
		assert.Contains(t, []Outcome{OutcomeReachedGoal, OutcomeNoPath}, static.Outcome, "seed %d", seed)
	}
}

func TestNavigate_EveryStrategyMovesOneStepAtATime(t *testing.T) {
	for _, name := range StrategyNames() {
		t.Run(name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				w := mazeWorld(12, 0.3, seed)
				start := w.Agent
				s := NewStrategy(name, StrategyConfig{Rollouts: 10, RolloutRNG: newRand(seed)})
				res := Navigate(w, s, NavigateOptions{})

				prev := start
				for _, m := range res.Moves {
					assert.True(t, isStep(prev, m), "seed %d: %v → %v", seed, prev, m)
					prev = m
				}
				assert.Equal(t, len(res.Moves), res.Ticks)
				if res.Outcome == OutcomeReachedGoal {
					assert.Equal(t, w.Goal, prev)
				}
			}
		})
	}
}

func TestNavigate_TickLimit(t *testing.T) {
	// GIVEN a strategy that paces back and forth
	var moves []ship.Coord
	for i := 0; i < 10; i++ {
		moves = append(moves, c(0, 1), c(0, 0))
	}
	w := newWorld(gridFromRows(openRows(3)...), c(0, 0), c(2, 2), unlit, 0.5, 1)

	// WHEN the loop is capped at 5 ticks
	res := Navigate(w, &scripted{moves: moves}, NavigateOptions{MaxTicks: 5})

	// THEN it stops with tick-limit
	assert.Equal(t, OutcomeTickLimit, res.Outcome)
	assert.Equal(t, 5, res.Ticks)
	assert.Len(t, res.Moves, 5)
}

func TestNavigate_PanicsOnIllegalStep(t *testing.T) {
	w := newWorld(gridFromRows(openRows(3)...), c(0, 0), c(2, 2), unlit, 0.5, 1)
	assert.Panics(t, func() {
		Navigate(w, &scripted{moves: []ship.Coord{c(1, 1)}}, NavigateOptions{})
	})
}

func TestNavigate_AgentAlreadyOnGoal(t *testing.T) {
	w := newWorld(gridFromRows(openRows(3)...), c(1, 1), c(1, 1), c(0, 0), 0.5, 1)
	res := Navigate(w, &Reactive{}, NavigateOptions{})
	assert.Equal(t, OutcomeReachedGoal, res.Outcome)
	assert.Equal(t, 0, res.Ticks)
}

func TestIsStep(t *testing.T) {
	assert.True(t, isStep(c(1, 1), c(0, 1)))
	assert.True(t, isStep(c(1, 1), c(1, 0)))
	assert.False(t, isStep(c(1, 1), c(1, 1)))
	assert.False(t, isStep(c(1, 1), c(2, 2)))
}
