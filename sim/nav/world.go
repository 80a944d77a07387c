package nav

import (
	"math/rand"

	"github.com/vessel-sim/vessel-sim/sim/fire"
	"github.com/vessel-sim/vessel-sim/sim/ship"
)

// World is the full mutable state of one episode: the grid, the fire
// spreading over it, and the positions strategies plan against.
// Agent moves once per tick; Goal and Ignition are fixed after spawn.
type World struct {
	Grid     *ship.Grid
	Fire     *fire.Engine
	Agent    ship.Coord
	Goal     ship.Coord
	Ignition ship.Coord
}

// Clone returns a fully owned snapshot of w whose fire draws from rng.
// Nothing the clone does is visible to w or to any other clone.
func (w *World) Clone(rng *rand.Rand) *World {
	g := w.Grid.Clone()
	return &World{
		Grid:     g,
		Fire:     w.Fire.Clone(g, rng),
		Agent:    w.Agent,
		Goal:     w.Goal,
		Ignition: w.Ignition,
	}
}

// Render draws the grid with the agent as 'A' and the goal as 'G'.
func (w *World) Render() string {
	return w.Grid.Render(map[ship.Coord]byte{
		w.Agent: 'A',
		w.Goal:  'G',
	})
}
