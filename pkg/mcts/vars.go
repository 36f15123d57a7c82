package mcts

import (
	"math"

	"lukechampine.com/frand"
)

// Exploration parameter used in UCB1 formula, the canonical sqrt(2)
const ExplorationParam float64 = math.Sqrt2

// Upper bound of a single rollout, ultimate tic tac toe never exceeds 81 moves
const DefaultMaxRolloutLength = 1024

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return int64(frand.Uint64n(math.MaxInt64))
}

// Set custom seed generator function for random number generators in MCTS,
// by default draws seeds from a cryptographic source
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
