package mcts

import (
	"fmt"

	"github.com/IlikeChooros/go-uct/pkg/game"
)

// Play uniformly random legal moves until the game ends, never touches the tree
func (e *Engine[S]) rollout(state S) error {
	for n := 0; ; n++ {
		e.moves = game.AppendMoves(state, e.moves[:0])
		if len(e.moves) == 0 {
			return nil
		}
		if n >= e.maxRollout {
			return fmt.Errorf("%w: %d moves", ErrRolloutOverrun, n)
		}
		state.DoMove(e.moves[e.rand.Intn(len(e.moves))])
	}
}

// Assumes the game is 2 player and zero sum, meaning for given result for
// the player who moved into the node, the value for the enemy is exactly 1 - result
func backpropagate(tree *Tree, id NodeID, result float64) {
	for id != NoNode {
		tree.Update(id, result)
		result = 1.0 - result // switch the result
		id = tree.Node(id).Parent
	}
}
