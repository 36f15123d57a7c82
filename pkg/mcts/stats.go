package mcts

// visits and compounded outcomes of a node, outcomes are from the
// perspective of the player who made the node's move
type NodeStats struct {
	q float64
	n int32
}

// Average outcome for this node
func (stats *NodeStats) AvgQ() float64 {
	if stats.n == 0 {
		return 0
	}
	return stats.q / float64(stats.n)
}

// Cumulated rewards/outcomes for this node
func (stats *NodeStats) Q() float64 {
	return stats.q
}

// Get number of visits to this node
func (stats *NodeStats) N() int32 {
	return stats.n
}

// Record one visit with given outcome
func (stats *NodeStats) Update(result float64) {
	stats.n++
	stats.q += result
}
