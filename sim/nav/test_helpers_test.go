package nav

import (
	"math/rand"
	"strings"

	"github.com/vessel-sim/vessel-sim/sim/fire"
	"github.com/vessel-sim/vessel-sim/sim/ship"
)

// c is shorthand for a coordinate in test tables.
func c(row, col int) ship.Coord {
	return ship.Coord{Row: row, Col: col}
}

// gridFromRows builds a grid from a square picture where '#' is closed and
// anything else is open.
func gridFromRows(rows ...string) *ship.Grid {
	g := ship.NewGrid(len(rows))
	for r, line := range rows {
		for col, ch := range line {
			if ch != '#' {
				g.Open(c(r, col))
			}
		}
	}
	return g
}

// openRows returns n rows of n open cells.
func openRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", n)
	}
	return rows
}

// newWorld wires a world on g; a negative ignition row leaves the ship unlit.
func newWorld(g *ship.Grid, agent, goal, ignition ship.Coord, q float64, seed int64) *World {
	engine := fire.NewEngine(g, q, rand.New(rand.NewSource(seed)))
	if ignition.Row >= 0 {
		engine.Ignite(ignition)
	}
	return &World{Grid: g, Fire: engine, Agent: agent, Goal: goal, Ignition: ignition}
}

// mazeWorld generates a maze and spawns agent, goal and fire on distinct open
// cells, all from seed.
func mazeWorld(size int, q float64, seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	g := ship.NewGrid(size)
	ship.GenerateMaze(g, c(rng.Intn(size), rng.Intn(size)), rng)
	open := g.OpenCells()
	perm := rng.Perm(len(open))
	return newWorld(g, open[perm[0]], open[perm[1]], open[perm[2]], q, seed+1)
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
