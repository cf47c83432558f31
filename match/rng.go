package match

import (
	"hash/fnv"
	"math/rand"
)

// DefaultSeed keeps unseeded matches reproducible for local runs and tests.
const DefaultSeed = "duel-arena-default"

func deterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// newDeterministicRNG derives a per-match generator from a root seed and a
// label so distinct subsystems can share one seed without sharing a stream.
func newDeterministicRNG(rootSeed, label string) *rand.Rand {
	if rootSeed == "" {
		rootSeed = DefaultSeed
	}
	return rand.New(rand.NewSource(deterministicSeedValue(rootSeed, label)))
}
