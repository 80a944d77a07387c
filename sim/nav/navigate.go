package nav

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vessel-sim/vessel-sim/sim/ship"
	"github.com/vessel-sim/vessel-sim/sim/trace"
)

// Outcome is how an episode ended. Only OutcomeReachedGoal is a success;
// the rest are domain failures, reported as values rather than errors.
type Outcome string

const (
	OutcomeReachedGoal Outcome = "reached-goal"
	OutcomeCaughtFire  Outcome = "caught-fire"
	OutcomeNoPath      Outcome = "no-path"
	// OutcomeTickLimit ends an episode whose agent never settles on the goal.
	OutcomeTickLimit Outcome = "tick-limit"
)

// Outcomes lists every outcome in reporting order.
var Outcomes = []Outcome{OutcomeReachedGoal, OutcomeCaughtFire, OutcomeNoPath, OutcomeTickLimit}

// Success reports whether the agent reached the goal.
func (o Outcome) Success() bool {
	return o == OutcomeReachedGoal
}

// Result is the per-episode output of Navigate.
type Result struct {
	Outcome Outcome
	Moves   []ship.Coord // cells entered, in order
	Ticks   int
}

// NavigateOptions tunes the tick loop.
type NavigateOptions struct {
	MaxTicks int                 // 0 = 4·D²
	Trace    *trace.EpisodeTrace // nil disables recording
}

// Navigate drives s against w until the agent reaches the goal, burns, or
// runs out of moves. Each tick the agent takes one step and the fire then
// advances once.
func Navigate(w *World, s Strategy, opts NavigateOptions) Result {
	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = 4 * w.Grid.Size() * w.Grid.Size()
	}

	s.Begin(w)

	res := Result{Moves: make([]ship.Coord, 0)}
	for w.Agent != w.Goal {
		if w.Grid.OnFire(w.Agent) {
			res.Outcome = OutcomeCaughtFire
			return res
		}
		if res.Ticks >= maxTicks {
			res.Outcome = OutcomeTickLimit
			return res
		}
		next, ok := s.Next(w)
		if !ok {
			res.Outcome = OutcomeNoPath
			return res
		}
		if !isStep(w.Agent, next) {
			panic(fmt.Sprintf("%s: %v → %v is not a single step", s.Name(), w.Agent, next))
		}

		logrus.Debugf("tick %d: agent moving %v → %v", res.Ticks, w.Agent, next)
		if opts.Trace != nil {
			opts.Trace.RecordMove(trace.MoveRecord{Tick: res.Ticks, From: w.Agent, To: next})
		}
		w.Agent = next
		res.Moves = append(res.Moves, next)

		ignited := w.Fire.AdvanceTick()
		if opts.Trace != nil {
			opts.Trace.RecordIgnitions(trace.IgnitionRecord{Tick: res.Ticks, Cells: ignited})
		}
		res.Ticks++
	}
	res.Outcome = OutcomeReachedGoal
	return res
}

// isStep reports whether b is one of a's four neighbours.
func isStep(a, b ship.Coord) bool {
	for _, d := range ship.Directions {
		if a.Add(d) == b {
			return true
		}
	}
	return false
}
