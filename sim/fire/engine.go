// Package fire owns ignition and probabilistic fire spread over a ship.Grid.
package fire

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vessel-sim/vessel-sim/sim/ship"
)

// Flammability returns the per-tick ignition probability of a cell with k
// burning open neighbours on a ship with flammability q: 1-(1-q)^k, or 0 when k is 0.
func Flammability(q float64, k int) float64 {
	if k <= 0 {
		return 0
	}
	return 1 - math.Pow(1-q, float64(k))
}

// Engine spreads fire across a grid one tick at a time.
//
// The engine tracks the fire frontier (open, non-burning cells next to fire)
// and an append-only log of every ignited cell in ignition order.
// Thread-safety: NOT thread-safe.
type Engine struct {
	grid     *ship.Grid
	q        float64
	rng      *rand.Rand
	frontier *ship.CoordSet
	log      []ship.Coord
}

// NewEngine creates an engine for grid g with ship flammability q, drawing
// tick thresholds from rng. Nothing is burning until Ignite is called.
func NewEngine(g *ship.Grid, q float64, rng *rand.Rand) *Engine {
	if q < 0 || q > 1 {
		panic(fmt.Sprintf("NewEngine: flammability %v outside [0,1]", q))
	}
	return &Engine{
		grid:     g,
		q:        q,
		rng:      rng,
		frontier: ship.NewCoordSet(),
	}
}

// Q returns the ship-wide flammability constant.
func (e *Engine) Q() float64 {
	return e.q
}

// Ignite sets c on fire and refreshes the flammability of its open,
// non-burning neighbours. Igniting a burning cell is a no-op; igniting a
// closed cell panics.
func (e *Engine) Ignite(c ship.Coord) {
	if e.grid.OnFire(c) {
		return
	}
	e.grid.MarkOnFire(c)
	e.frontier.Remove(c)
	e.log = append(e.log, c)

	for _, n := range e.grid.Neighbors(c) {
		if !e.grid.IsOpen(n) || e.grid.OnFire(n) {
			continue
		}
		e.grid.SetFlammability(n, Flammability(e.q, e.grid.BurningNeighbors(n)))
		e.frontier.Add(n)
	}
}

// AdvanceTick draws one threshold in [0,1) shared by the whole tick and
// ignites every frontier cell whose flammability reaches it. Cells that join
// the frontier during the tick wait for the next one. Cells with zero
// flammability never ignite. Returns the cells ignited this tick.
func (e *Engine) AdvanceTick() []ship.Coord {
	threshold := e.rng.Float64()

	var ignited []ship.Coord
	for _, c := range e.frontier.Items() {
		if e.grid.OnFire(c) {
			continue
		}
		p := e.grid.Flammability(c)
		if p > 0 && p >= threshold {
			e.Ignite(c)
			ignited = append(ignited, c)
		}
	}
	return ignited
}

// CanSpread reports whether any frontier cell has a positive chance to ignite.
func (e *Engine) CanSpread() bool {
	for _, c := range e.frontier.Items() {
		if e.grid.Flammability(c) > 0 {
			return true
		}
	}
	return false
}

// Frontier returns the open, non-burning cells adjacent to fire.
func (e *Engine) Frontier() []ship.Coord {
	return e.frontier.Items()
}

// Log returns every ignited cell in ignition order.
func (e *Engine) Log() []ship.Coord {
	out := make([]ship.Coord, len(e.log))
	copy(out, e.log)
	return out
}

// Burned returns the number of cells ignited so far.
func (e *Engine) Burned() int {
	return len(e.log)
}

// Clone copies the engine onto g, which must be a clone of the engine's grid,
// drawing future thresholds from rng.
func (e *Engine) Clone(g *ship.Grid, rng *rand.Rand) *Engine {
	if g.Size() != e.grid.Size() {
		panic(fmt.Sprintf("Clone: grid size %d does not match %d", g.Size(), e.grid.Size()))
	}
	log := make([]ship.Coord, len(e.log))
	copy(log, e.log)
	return &Engine{
		grid:     g,
		q:        e.q,
		rng:      rng,
		frontier: e.frontier.Clone(),
		log:      log,
	}
}
