package mcts

import "errors"

var (
	// Search was called on a state without legal moves
	ErrTerminalState = errors.New("mcts: search on a terminal state")
	// Budget expired before the root got a single child
	ErrNoChildren = errors.New("mcts: no children after search, budget too tight")
	// A rollout didn't terminate within the configured number of moves
	ErrRolloutOverrun = errors.New("mcts: rollout exceeded maximum length")
)
