package mcts

import (
	"testing"

	"github.com/IlikeChooros/go-uct/pkg/game"
	"github.com/IlikeChooros/go-uct/pkg/uttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeExpandBackpropagate(t *testing.T) {
	tree := NewTree([]game.Move{3, 5, 7}, game.NoPlayer)
	root := tree.Root()
	assert.True(t, tree.Node(root).IsLeaf())
	assert.False(t, tree.Node(root).IsFullyExpanded())

	child := tree.Expand(root, 1, []game.Move{3, 7}, X)
	assert.Equal(t, game.Move(5), tree.Node(child).Move)
	assert.Equal(t, root, tree.Node(child).Parent)
	assert.ElementsMatch(t, []game.Move{3, 7}, tree.Node(root).Untried)

	grandchild := tree.Expand(child, 0, nil, O)
	backpropagate(tree, grandchild, 1.0)

	// results alternate on the way up
	assert.Equal(t, 1.0, tree.Node(grandchild).Q())
	assert.Equal(t, 0.0, tree.Node(child).Q())
	assert.Equal(t, 1.0, tree.Node(root).Q())
	for _, id := range []NodeID{root, child, grandchild} {
		assert.Equal(t, int32(1), tree.Node(id).N())
	}
	assert.Equal(t, 3, tree.Size())
}

func TestSelectChildPanicsOnUnvisited(t *testing.T) {
	tree := NewTree([]game.Move{0, 1}, game.NoPlayer)
	tree.Expand(tree.Root(), 0, nil, X)
	tree.Update(tree.Root(), 0.5)
	assert.Panics(t, func() { tree.SelectChild(tree.Root()) })
}

func TestSelectChildUCB(t *testing.T) {
	tree := NewTree([]game.Move{0, 1}, game.NoPlayer)
	a := tree.Expand(tree.Root(), 0, nil, X)
	b := tree.Expand(tree.Root(), 0, nil, X)

	// equal visits, the higher mean wins
	backpropagate(tree, a, 0.0)
	backpropagate(tree, b, 1.0)
	assert.Equal(t, b, tree.SelectChild(tree.Root()))

	// a rarely visited child gets explored
	for range 20 {
		backpropagate(tree, b, 0.6)
	}
	assert.Equal(t, a, tree.SelectChild(tree.Root()))
}

func TestBestChildTieBreak(t *testing.T) {
	tree := NewTree([]game.Move{0, 1, 2}, game.NoPlayer)
	a := tree.Expand(tree.Root(), 0, nil, X)
	b := tree.Expand(tree.Root(), 0, nil, X)
	c := tree.Expand(tree.Root(), 0, nil, X)

	backpropagate(tree, a, 0.0)
	backpropagate(tree, b, 1.0)
	backpropagate(tree, c, 0.5)
	assert.Equal(t, b, tree.BestChild(tree.Root()))

	backpropagate(tree, c, 0.0)
	assert.Equal(t, c, tree.BestChild(tree.Root()))
	assert.Equal(t, []game.Move{tree.Node(c).Move}, tree.Pv(tree.Root()))
}

func TestRootVisitsMatchIterations(t *testing.T) {
	engine := NewEngine[*uttt.Position](WithSeed(3))
	root := uttt.NewPosition()
	tree := NewTree(root.Moves(), root.PlayerJustMoved())
	limiter := NewLimiter(DefaultLimits().SetCycles(200), nil)

	for k := int32(1); k <= 200; k++ {
		id, _, state := engine.selection(tree, limiter, root.Clone())
		require.NoError(t, engine.rollout(state))
		backpropagate(tree, id, state.Result(tree.Node(id).JustMoved))

		rootNode := tree.Node(tree.Root())
		require.Equal(t, k, rootNode.N())

		var sum int32
		for _, child := range rootNode.Children {
			sum += tree.Node(child).N()
		}
		require.Equal(t, k, sum)
		require.Equal(t, int(k)+1, tree.Size())
	}
}
