package mcts

import (
	"fmt"
	"math"
)

// UCB 1 : wins/visits + C * sqrt(ln(parent_visits)/visits)
// A child always gets its first visit in the iteration that created it,
// so a zero visit count means the tree is corrupted.
func ucb1(child *NodeStats, lnParentVisits float64) float64 {
	if child.n == 0 {
		panic(fmt.Sprintf("mcts: ucb1 on an unvisited child (q=%.3f)", child.q))
	}

	visits := float64(child.n)
	return child.q/visits + ExplorationParam*math.Sqrt(lnParentVisits/visits)
}
