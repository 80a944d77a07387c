// Aggregates episode outcomes into success/failure tallies and move-count
// distributions for final reporting.

package sim

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/vessel-sim/vessel-sim/sim/nav"
)

// Distribution captures statistical summary of a metric.
type Distribution struct {
	Mean  float64
	P50   float64
	P95   float64
	P99   float64
	Min   float64
	Max   float64
	Count int
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return Distribution{
		Mean:  sum / float64(len(sorted)),
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
		P99:   percentile(sorted, 99),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
}

// percentile computes the p-th percentile using linear interpolation.
// Input must be sorted.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	return sorted[lower] + (sorted[upper]-sorted[lower])*(rank-float64(lower))
}

// Tally counts outcomes over a batch of episodes of one strategy at one q.
type Tally struct {
	Strategy     string
	Flammability float64
	Outcomes     map[nav.Outcome]int

	successMoves []float64 // moves of episodes that reached the goal
}

// NewTally creates an empty tally.
func NewTally(strategy string, q float64) *Tally {
	return &Tally{
		Strategy:     strategy,
		Flammability: q,
		Outcomes:     make(map[nav.Outcome]int),
	}
}

// Add records one episode.
func (t *Tally) Add(res EpisodeResult) {
	t.Outcomes[res.Outcome]++
	if res.Outcome.Success() {
		t.successMoves = append(t.successMoves, float64(len(res.Moves)))
	}
}

// Runs returns the number of episodes recorded.
func (t *Tally) Runs() int {
	n := 0
	for _, c := range t.Outcomes {
		n += c
	}
	return n
}

// Successes returns the number of episodes that reached the goal.
func (t *Tally) Successes() int {
	return t.Outcomes[nav.OutcomeReachedGoal]
}

// Failures returns every episode that did not reach the goal.
func (t *Tally) Failures() int {
	return t.Runs() - t.Successes()
}

// SuccessRate returns Successes/Runs, or 0 before any episode.
func (t *Tally) SuccessRate() float64 {
	runs := t.Runs()
	if runs == 0 {
		return 0
	}
	return float64(t.Successes()) / float64(runs)
}

// MoveDistribution summarizes the path length of successful episodes.
func (t *Tally) MoveDistribution() Distribution {
	return NewDistribution(t.successMoves)
}

// Print writes the tally in the fixed report layout.
func (t *Tally) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Results ===")
	fmt.Fprintf(w, "Strategy             : %s\n", t.Strategy)
	fmt.Fprintf(w, "Flammability         : %.2f\n", t.Flammability)
	fmt.Fprintf(w, "Episodes             : %d\n", t.Runs())
	fmt.Fprintf(w, "Successes            : %d\n", t.Successes())
	fmt.Fprintf(w, "Failures             : %d\n", t.Failures())
	fmt.Fprintf(w, "Success Rate         : %.3f\n", t.SuccessRate())
	for _, o := range nav.Outcomes {
		fmt.Fprintf(w, "  %-19s: %d\n", o, t.Outcomes[o])
	}
	if d := t.MoveDistribution(); d.Count > 0 {
		fmt.Fprintf(w, "Moves to Goal        : mean %.2f, min %.0f, p50 %.1f, p95 %.1f, p99 %.1f, max %.0f\n",
			d.Mean, d.Min, d.P50, d.P95, d.P99, d.Max)
	}
}
