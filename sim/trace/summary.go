package trace

import "github.com/vessel-sim/vessel-sim/sim/ship"

// TraceSummary aggregates statistics from an EpisodeTrace.
type TraceSummary struct {
	Moves         int
	DistinctCells int // distinct cells the agent entered
	Revisits      int // moves into a cell the agent had already entered
	CellsIgnited  int // cells ignited after the initial ignition
	PeakSpread    int // most cells ignited in a single tick
	PeakTick      int // tick of PeakSpread (first occurrence)
}

// Summarize computes aggregate statistics from an EpisodeTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(et *EpisodeTrace) *TraceSummary {
	summary := &TraceSummary{}
	if et == nil {
		return summary
	}

	summary.Moves = len(et.Moves)
	visited := make(map[ship.Coord]bool, len(et.Moves))
	for _, m := range et.Moves {
		if visited[m.To] {
			summary.Revisits++
		}
		visited[m.To] = true
	}
	summary.DistinctCells = len(visited)

	for _, ig := range et.Ignitions {
		summary.CellsIgnited += len(ig.Cells)
		if len(ig.Cells) > summary.PeakSpread {
			summary.PeakSpread = len(ig.Cells)
			summary.PeakTick = ig.Tick
		}
	}
	return summary
}
