package mcts

import (
	"math"
	"unsafe"

	"github.com/IlikeChooros/go-uct/pkg/game"
)

// Approximate size of a node, used by the memory limit
const nodeSize = int64(unsafe.Sizeof(Node{})) + 16*int64(unsafe.Sizeof(game.Move(0)))

// Arena of nodes, node 0 is the root. Owned by a single search call.
type Tree struct {
	nodes    []Node
	maxdepth int
}

func NewTree(untried []game.Move, justMoved game.Player) *Tree {
	t := &Tree{nodes: make([]Node, 1, 1024)}
	t.nodes[0] = Node{
		Move:      game.NoMove,
		Parent:    NoNode,
		Untried:   untried,
		JustMoved: justMoved,
	}
	return t
}

func (t *Tree) Root() NodeID {
	return 0
}

func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Number of nodes in the tree
func (t *Tree) Size() int {
	return len(t.nodes)
}

// Maxiumum depth reached so far, the root's children are at depth 1
func (t *Tree) MaxDepth() int {
	return t.maxdepth
}

// Attach a child for the untried move at given index, the child's untried
// moves and player are taken from the state after that move
func (t *Tree) Expand(parent NodeID, untriedIdx int, untried []game.Move, justMoved game.Player) NodeID {
	p := &t.nodes[parent]
	move := p.Untried[untriedIdx]
	last := len(p.Untried) - 1
	p.Untried[untriedIdx] = p.Untried[last]
	p.Untried = p.Untried[:last]

	id := NodeID(len(t.nodes))
	p.Children = append(p.Children, id)
	t.nodes = append(t.nodes, Node{
		Move:      move,
		Parent:    parent,
		Untried:   untried,
		JustMoved: justMoved,
	})
	return id
}

// Record a visit with given result, from the node's own perspective
func (t *Tree) Update(id NodeID, result float64) {
	t.nodes[id].Update(result)
}

// Choose the child with the highest UCB1 score
func (t *Tree) SelectChild(id NodeID) NodeID {
	parent := &t.nodes[id]
	lnParentVisits := math.Log(float64(parent.N()))

	best, bestScore := NoNode, math.Inf(-1)
	for _, childID := range parent.Children {
		score := ucb1(&t.nodes[childID].NodeStats, lnParentVisits)
		if score > bestScore {
			best, bestScore = childID, score
		}
	}
	return best
}

// Most visited child, ties broken by the higher average outcome,
// NoNode if the node has no children
func (t *Tree) BestChild(id NodeID) NodeID {
	best := NoNode
	for _, childID := range t.nodes[id].Children {
		if best == NoNode || better(&t.nodes[childID], &t.nodes[best]) {
			best = childID
		}
	}
	return best
}

func better(a, b *Node) bool {
	if a.N() != b.N() {
		return a.N() > b.N()
	}
	return a.AvgQ() > b.AvgQ()
}

// Principal variation, following the most visited children from given node
func (t *Tree) Pv(id NodeID) []game.Move {
	pv := make([]game.Move, 0, 8)
	for child := t.BestChild(id); child != NoNode; child = t.BestChild(child) {
		pv = append(pv, t.nodes[child].Move)
	}
	return pv
}

// Record the depth of a visited node, true if it's a new maximum
func (t *Tree) observeDepth(depth int) bool {
	if depth <= t.maxdepth {
		return false
	}
	t.maxdepth = depth
	return true
}
