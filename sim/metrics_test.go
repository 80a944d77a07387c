package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vessel-sim/vessel-sim/sim/nav"
	"github.com/vessel-sim/vessel-sim/sim/ship"
)

func TestNewDistribution(t *testing.T) {
	assert.Equal(t, Distribution{}, NewDistribution(nil))

	d := NewDistribution([]float64{4, 1, 3, 2, 5})
	assert.Equal(t, 5, d.Count)
	assert.InDelta(t, 3.0, d.Mean, 1e-9)
	assert.InDelta(t, 3.0, d.P50, 1e-9)
	assert.InDelta(t, 4.8, d.P95, 1e-9)
	assert.InDelta(t, 4.96, d.P99, 1e-9)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 5.0, d.Max)
}

func TestNewDistribution_SingleValue(t *testing.T) {
	d := NewDistribution([]float64{7})
	assert.Equal(t, 7.0, d.P50)
	assert.Equal(t, 7.0, d.P95)
}

func episodeWith(o nav.Outcome, moves int) EpisodeResult {
	return EpisodeResult{Outcome: o, Moves: make([]ship.Coord, moves)}
}

func TestTally_CountsAndRate(t *testing.T) {
	// GIVEN a mix of outcomes
	tally := NewTally(nav.StrategyReactive, 0.3)
	tally.Add(episodeWith(nav.OutcomeReachedGoal, 10))
	tally.Add(episodeWith(nav.OutcomeReachedGoal, 20))
	tally.Add(episodeWith(nav.OutcomeCaughtFire, 3))
	tally.Add(episodeWith(nav.OutcomeNoPath, 0))

	// THEN successes and failures partition the runs
	assert.Equal(t, 4, tally.Runs())
	assert.Equal(t, 2, tally.Successes())
	assert.Equal(t, 2, tally.Failures())
	assert.InDelta(t, 0.5, tally.SuccessRate(), 1e-9)
	assert.Equal(t, 1, tally.Outcomes[nav.OutcomeCaughtFire])

	// AND move counts only cover successful episodes
	d := tally.MoveDistribution()
	assert.Equal(t, 2, d.Count)
	assert.InDelta(t, 15.0, d.Mean, 1e-9)
}

func TestTally_EmptyRateIsZero(t *testing.T) {
	assert.Equal(t, 0.0, NewTally(nav.StrategyStatic, 0).SuccessRate())
}

func TestTally_Print(t *testing.T) {
	tally := NewTally(nav.StrategyBuffered, 0.25)
	tally.Add(episodeWith(nav.OutcomeReachedGoal, 12))
	tally.Add(episodeWith(nav.OutcomeTickLimit, 0))

	var buf bytes.Buffer
	tally.Print(&buf)
	out := buf.String()

	assert.Contains(t, out, "Strategy             : buffered")
	assert.Contains(t, out, "Successes            : 1")
	assert.Contains(t, out, "Failures             : 1")
	assert.Contains(t, out, "Success Rate         : 0.500")
	assert.Contains(t, out, "tick-limit")
	assert.Contains(t, out, "mean 12.00, min 12, p50 12.0, p95 12.0, p99 12.0, max 12")
}
