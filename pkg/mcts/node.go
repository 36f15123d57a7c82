package mcts

import "github.com/IlikeChooros/go-uct/pkg/game"

// One (state, move) pair of the search tree
type Node struct {
	NodeStats
	Move      game.Move   // move that led here, NoMove for the root
	Parent    NodeID      // non-owning, NoNode for the root
	Children  []NodeID    // in expansion order
	Untried   []game.Move // legal moves without a child yet
	JustMoved game.Player // player who made Move
}

// Every legal move has a child
func (node *Node) IsFullyExpanded() bool {
	return len(node.Untried) == 0
}

func (node *Node) IsLeaf() bool {
	return len(node.Children) == 0
}
