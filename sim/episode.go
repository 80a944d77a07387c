package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/vessel-sim/vessel-sim/sim/fire"
	"github.com/vessel-sim/vessel-sim/sim/nav"
	"github.com/vessel-sim/vessel-sim/sim/ship"
	"github.com/vessel-sim/vessel-sim/sim/trace"
)

// ErrTooFewOpenCells is returned when a ship has no room for an agent, a goal
// and a fire on three distinct open cells.
var ErrTooFewOpenCells = errors.New("ship has fewer than 3 open cells")

// Placement holds the three spawn positions of an episode.
type Placement struct {
	Agent    ship.Coord
	Goal     ship.Coord
	Ignition ship.Coord
}

// Spawn draws three distinct open cells uniformly at random, in the order
// agent, goal, ignition.
func Spawn(g *ship.Grid, rng *rand.Rand) (Placement, error) {
	open := g.OpenCells()
	if len(open) < 3 {
		return Placement{}, fmt.Errorf("spawning on %d open cells: %w", len(open), ErrTooFewOpenCells)
	}
	pick := func() ship.Coord {
		i := rng.Intn(len(open))
		c := open[i]
		open[i] = open[len(open)-1]
		open = open[:len(open)-1]
		return c
	}
	return Placement{Agent: pick(), Goal: pick(), Ignition: pick()}, nil
}

// EpisodeResult is everything one episode reports.
type EpisodeResult struct {
	Index     int
	Placement Placement
	Outcome   nav.Outcome
	Moves     []ship.Coord
	Ticks     int
	Burned    int                 // cells on fire when the episode ended
	Trace     *trace.EpisodeTrace // nil unless Config.Trace is "ticks"
}

// NewWorld carves a fresh ship, spawns on it, and lights the first fire.
// Draws from the maze, spawn and fire streams of rngs.
func NewWorld(size int, q float64, rngs *PartitionedRNG) (*nav.World, error) {
	mazeRNG := rngs.ForSubsystem(SubsystemMaze)
	g := ship.NewGrid(size)
	stats := ship.GenerateMaze(g, ship.Coord{Row: mazeRNG.Intn(size), Col: mazeRNG.Intn(size)}, mazeRNG)
	logrus.Debugf("maze: %d cells opened, %d dead ends, %d widened", stats.Opened, stats.DeadEnds, stats.Widened)

	p, err := Spawn(g, rngs.ForSubsystem(SubsystemSpawn))
	if err != nil {
		return nil, err
	}
	engine := fire.NewEngine(g, q, rngs.ForSubsystem(SubsystemFire))
	engine.Ignite(p.Ignition)
	return &nav.World{Grid: g, Fire: engine, Agent: p.Agent, Goal: p.Goal, Ignition: p.Ignition}, nil
}

// RunEpisode builds one world and flies strategy through it. strategy must be
// a canonical name; cfg must already be validated.
func RunEpisode(cfg Config, strategy string, rngs *PartitionedRNG, index int) (EpisodeResult, error) {
	w, err := NewWorld(cfg.Size, cfg.Flammability, rngs)
	if err != nil {
		return EpisodeResult{}, fmt.Errorf("episode %d: %w", index, err)
	}
	res := EpisodeResult{
		Index:     index,
		Placement: Placement{Agent: w.Agent, Goal: w.Goal, Ignition: w.Ignition},
	}
	if trace.TraceLevel(cfg.Trace) == trace.TraceLevelTicks {
		res.Trace = trace.NewEpisodeTrace()
	}

	logrus.Debugf("episode %d: agent %v, goal %v, ignition %v\n%s", index, w.Agent, w.Goal, w.Ignition, w.Render())

	s := nav.NewStrategy(strategy, nav.StrategyConfig{
		Rollouts:        cfg.Rollouts,
		MaxRolloutTicks: cfg.RolloutTicks,
		RolloutRNG:      rngs.ForSubsystem(SubsystemRollout),
	})
	out := nav.Navigate(w, s, nav.NavigateOptions{MaxTicks: cfg.MaxTicks, Trace: res.Trace})

	logrus.Debugf("episode %d ended %s\n%s", index, out.Outcome, w.Render())

	res.Outcome = out.Outcome
	res.Moves = out.Moves
	res.Ticks = out.Ticks
	res.Burned = w.Fire.Burned()
	return res, nil
}
