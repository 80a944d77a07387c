package nav

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/vessel-sim/vessel-sim/sim/ship"
)

// passableFunc reports whether a search may enter a cell.
type passableFunc func(ship.Coord) bool

// avoidFire admits open cells that are not burning.
func avoidFire(g *ship.Grid) passableFunc {
	return func(c ship.Coord) bool {
		return g.IsOpen(c) && !g.OnFire(c)
	}
}

// avoidFireAndEdges admits open cells that are not burning and have no
// burning neighbour.
func avoidFireAndEdges(g *ship.Grid) passableFunc {
	return func(c ship.Coord) bool {
		return g.IsOpen(c) && !g.OnFire(c) && g.BurningNeighbors(c) == 0
	}
}

// avoidCell admits open cells other than blocked.
func avoidCell(g *ship.Grid, blocked ship.Coord) passableFunc {
	return func(c ship.Coord) bool {
		return g.IsOpen(c) && c != blocked
	}
}

// shortestPath runs a breadth-first search from `from` to `to` and returns
// the path excluding `from` and including `to`. The start cell is never
// tested against passable. Returns nil when `to` is unreachable and an empty
// path when from == to.
//
// Cells are marked on enqueue, so among equal-length paths the one found
// first in neighbour scan order wins. That path is also the lexicographically
// smallest by direction sequence, so re-planning from any cell on it yields
// its own suffix.
func shortestPath(g *ship.Grid, from, to ship.Coord, passable passableFunc) []ship.Coord {
	if from == to {
		return []ship.Coord{}
	}
	visited := mapset.New[ship.Coord]()
	visited.Put(from)
	prev := make(map[ship.Coord]ship.Coord)
	queue := []ship.Coord{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if visited.Has(n) || !passable(n) {
				continue
			}
			visited.Put(n)
			prev[n] = cur
			if n == to {
				return buildPath(prev, from, to)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

// buildPath walks predecessors back from `to` and returns the forward path
// excluding `from`.
func buildPath(prev map[ship.Coord]ship.Coord, from, to ship.Coord) []ship.Coord {
	var path []ship.Coord
	for at := to; at != from; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}
