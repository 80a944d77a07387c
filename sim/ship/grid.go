// Package ship models the vessel as a D×D lattice of cells and carves its
// corridors with a randomised frontier-growth maze generator.
package ship

import (
	"fmt"
	"strings"
)

// cell is the per-coordinate state. Both flags only ever move false→true.
type cell struct {
	open         bool
	onFire       bool
	flammability float64
}

// Grid is a fixed-size square lattice that exclusively owns its cells.
// Cells are addressed by Coord; callers never hold a reference to a cell.
//
// Grid keeps two derived sets consistent after every Open:
//   - frontier: closed cells with exactly one open neighbour
//   - dead-ends: open cells with exactly one open neighbour
//
// Out-of-bounds coordinates are programmer errors and panic.
type Grid struct {
	size     int
	cells    []cell
	frontier *CoordSet
	deadEnds *CoordSet
}

// NewGrid creates a size×size grid with every cell closed.
func NewGrid(size int) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("NewGrid: size must be positive, got %d", size))
	}
	return &Grid{
		size:     size,
		cells:    make([]cell, size*size),
		frontier: NewCoordSet(),
		deadEnds: NewCoordSet(),
	}
}

// Size returns the grid dimension D.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) at(c Coord) *cell {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("coordinate %v outside %dx%d grid", c, g.size, g.size))
	}
	return &g.cells[c.Row*g.size+c.Col]
}

// IsOpen reports whether c is passable.
func (g *Grid) IsOpen(c Coord) bool {
	return g.at(c).open
}

// OnFire reports whether c is burning.
func (g *Grid) OnFire(c Coord) bool {
	return g.at(c).onFire
}

// Flammability returns the current ignition probability of c.
func (g *Grid) Flammability(c Coord) float64 {
	return g.at(c).flammability
}

// SetFlammability records a recomputed ignition probability for an open,
// non-burning cell.
func (g *Grid) SetFlammability(c Coord, p float64) {
	cl := g.at(c)
	if !cl.open || cl.onFire {
		panic(fmt.Sprintf("SetFlammability: %v must be open and not burning", c))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("SetFlammability: probability %v outside [0,1]", p))
	}
	cl.flammability = p
}

// MarkOnFire sets c burning. Igniting a closed cell panics.
func (g *Grid) MarkOnFire(c Coord) {
	cl := g.at(c)
	if !cl.open {
		panic(fmt.Sprintf("MarkOnFire: %v is closed", c))
	}
	cl.onFire = true
}

// Neighbors returns the in-bounds neighbours of c in scan order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		n := c.Add(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// OpenNeighbors counts the open neighbours of c. All four directions are
// scanned before the count is returned.
func (g *Grid) OpenNeighbors(c Coord) int {
	count := 0
	for _, n := range g.Neighbors(c) {
		if g.IsOpen(n) {
			count++
		}
	}
	return count
}

// BurningNeighbors counts the open neighbours of c that are on fire.
func (g *Grid) BurningNeighbors(c Coord) int {
	count := 0
	for _, n := range g.Neighbors(c) {
		cl := g.at(n)
		if cl.open && cl.onFire {
			count++
		}
	}
	return count
}

// Open makes c passable and reclassifies c and its neighbours in the
// frontier and dead-end sets. Opening an already-open cell is a no-op.
func (g *Grid) Open(c Coord) {
	cl := g.at(c)
	if cl.open {
		return
	}
	cl.open = true
	g.reclassify(c)
	for _, n := range g.Neighbors(c) {
		g.reclassify(n)
	}
}

// reclassify places c in exactly the derived sets its current state calls for.
func (g *Grid) reclassify(c Coord) {
	single := g.OpenNeighbors(c) == 1
	if g.IsOpen(c) {
		g.frontier.Remove(c)
		if single {
			g.deadEnds.Add(c)
		} else {
			g.deadEnds.Remove(c)
		}
		return
	}
	if single {
		g.frontier.Add(c)
	} else {
		g.frontier.Remove(c)
	}
}

// Frontier returns the closed cells that currently have exactly one open neighbour.
func (g *Grid) Frontier() []Coord {
	return g.frontier.Items()
}

// DeadEnds returns the open cells that currently have exactly one open neighbour.
func (g *Grid) DeadEnds() []Coord {
	return g.deadEnds.Items()
}

// OpenCells returns every open cell in row-major order.
func (g *Grid) OpenCells() []Coord {
	var out []Coord
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r*g.size+c].open {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Clone returns a deep copy of the grid, including its derived sets.
func (g *Grid) Clone() *Grid {
	cells := make([]cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		size:     g.size,
		cells:    cells,
		frontier: g.frontier.Clone(),
		deadEnds: g.deadEnds.Clone(),
	}
}

// Render draws the grid one row per line. Burning cells print as '*',
// open cells as '.', closed cells as '#'. Entries in marks override the
// open glyph but never a burning one.
func (g *Grid) Render(marks map[Coord]byte) string {
	var sb strings.Builder
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			at := Coord{Row: r, Col: c}
			cl := g.at(at)
			switch {
			case cl.onFire:
				sb.WriteByte('*')
			case marks[at] != 0:
				sb.WriteByte(marks[at])
			case cl.open:
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
