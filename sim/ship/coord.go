package ship

import "fmt"

// Coord addresses a cell by (row, column). Cells are identified by Coord alone,
// so it is the key of every map and set of cells in the simulator.
type Coord struct {
	Row int
	Col int
}

// Directions lists the four neighbour offsets in scan order: up, down, right, left.
// Every neighbour walk and every search visits neighbours in this order.
var Directions = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Less reports whether c precedes o in row-major order.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// CoordSet is an insertion-ordered set of coordinates.
//
// Seeded random selection needs a stable, indexable order; Go map iteration
// order is randomised per run, so membership lives in a map and order in a slice.
// Remove swaps the last element into the hole, which keeps the order
// deterministic but not strictly insertion order after removals.
//
// Thread-safety: NOT thread-safe.
type CoordSet struct {
	items []Coord
	index map[Coord]int
}

// NewCoordSet creates an empty CoordSet.
func NewCoordSet() *CoordSet {
	return &CoordSet{index: make(map[Coord]int)}
}

// Add inserts c. Returns false if c was already present.
func (s *CoordSet) Add(c Coord) bool {
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = len(s.items)
	s.items = append(s.items, c)
	return true
}

// Remove deletes c. Returns false if c was not present.
func (s *CoordSet) Remove(c Coord) bool {
	i, ok := s.index[c]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.index[moved] = i
	}
	s.items = s.items[:last]
	delete(s.index, c)
	return true
}

// Has reports whether c is in the set.
func (s *CoordSet) Has(c Coord) bool {
	_, ok := s.index[c]
	return ok
}

// Len returns the number of coordinates in the set.
func (s *CoordSet) Len() int {
	return len(s.items)
}

// At returns the i-th coordinate in set order. Panics if i is out of range.
func (s *CoordSet) At(i int) Coord {
	return s.items[i]
}

// Items returns a copy of the set contents in set order.
func (s *CoordSet) Items() []Coord {
	out := make([]Coord, len(s.items))
	copy(out, s.items)
	return out
}

// Clone returns an independent copy of the set.
func (s *CoordSet) Clone() *CoordSet {
	c := &CoordSet{
		items: make([]Coord, len(s.items)),
		index: make(map[Coord]int, len(s.index)),
	}
	copy(c.items, s.items)
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}
