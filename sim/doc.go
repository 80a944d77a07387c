// Package sim runs fire-escape episodes on procedurally generated ships.
//
// # Reading Guide
//
// Start with these files:
//   - config.go: the scenario (ship size, flammability, strategy, runs, seed)
//   - episode.go: carve a ship, spawn agent/goal/fire, fly one strategy
//   - runner.go: the repeat loop and its tally
//
// # Architecture
//
// The sim package wires episodes together; the model lives in sub-packages:
//   - sim/ship/: the grid, its derived cell sets, and maze generation
//   - sim/fire/: ignition and probabilistic spread
//   - sim/nav/: the World snapshot, navigation strategies, and the tick loop
//   - sim/trace/: per-episode move and ignition records
//
// Every random draw comes from a PartitionedRNG stream (maze, spawn, fire,
// rollout) derived from one seed, so a seed replays a batch exactly.
package sim
