package sim

import (
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible batch of episodes.
// Two runs with the same SimulationKey and identical configuration
// MUST produce identical episodes, moves and outcomes.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemMaze is the RNG subsystem for maze carving.
	// Uses the master seed directly, so a seed names a ship layout.
	SubsystemMaze = "maze"

	// SubsystemSpawn places the agent, the goal and the first fire.
	SubsystemSpawn = "spawn"

	// SubsystemFire draws the per-tick spread threshold of the live fire.
	SubsystemFire = "fire"

	// SubsystemRollout feeds risk-astar's Monte-Carlo rollouts. Kept apart
	// from SubsystemFire so estimating risk never shifts the live fire.
	SubsystemRollout = "rollout"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemMaze: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Each goroutine needs its own instance;
// see Derive.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key)
	if name != SubsystemMaze {
		derivedSeed ^= fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Derive returns a fresh PartitionedRNG keyed by this key XOR fnv1a64(job).
// Sweep jobs use it to get independent, schedule-free streams from one seed.
func (p *PartitionedRNG) Derive(job string) *PartitionedRNG {
	return NewPartitionedRNG(SimulationKey(int64(p.key) ^ fnv1a64(job)))
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
