// Package trace records what happened during an episode, tick by tick.
// It stores pure data and depends only on sim/ship for coordinates.
package trace

import "github.com/vessel-sim/vessel-sim/sim/ship"

// MoveRecord captures one agent move.
type MoveRecord struct {
	Tick int
	From ship.Coord
	To   ship.Coord
}

// IgnitionRecord captures the cells that caught fire during one tick.
type IgnitionRecord struct {
	Tick  int
	Cells []ship.Coord
}
