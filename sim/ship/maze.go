package ship

import "math/rand"

// MazeStats summarises one GenerateMaze call.
type MazeStats struct {
	Opened   int // cells open after carving, before widening
	DeadEnds int // dead-ends that survived re-validation
	Widened  int // dead-ends widened by opening one extra neighbour
}

// GenerateMaze carves a connected network of open cells into g, starting at seed.
//
// Growth repeatedly opens a uniformly chosen frontier cell until the frontier
// is empty, so every open cell is reachable from seed. Then half of the
// surviving dead-ends (rounded down, drawn by random removal) get one random
// closed neighbour opened to loosen the corridors.
func GenerateMaze(g *Grid, seed Coord, rng *rand.Rand) MazeStats {
	g.Open(seed)
	for g.frontier.Len() > 0 {
		g.Open(g.frontier.At(rng.Intn(g.frontier.Len())))
	}

	stats := MazeStats{Opened: len(g.OpenCells())}

	var candidates []Coord
	for _, c := range g.deadEnds.Items() {
		if g.OpenNeighbors(c) == 1 {
			candidates = append(candidates, c)
		}
	}
	stats.DeadEnds = len(candidates)

	for i := 0; i < stats.DeadEnds/2; i++ {
		j := rng.Intn(len(candidates))
		c := candidates[j]
		candidates = append(candidates[:j], candidates[j+1:]...)

		// An earlier widening may already have fixed this one.
		if g.OpenNeighbors(c) != 1 {
			continue
		}
		var closed []Coord
		for _, n := range g.Neighbors(c) {
			if !g.IsOpen(n) {
				closed = append(closed, n)
			}
		}
		if len(closed) == 0 {
			continue
		}
		g.Open(closed[rng.Intn(len(closed))])
		stats.Widened++
	}
	return stats
}
