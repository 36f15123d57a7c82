package mcts

import (
	"github.com/IlikeChooros/go-uct/pkg/game"
)

// Run the search and return the recommended move with the search statistics.
// Each iteration does:
//
// 1. selection - descend through fully expanded nodes by UCB1
//
// 2. expansion - add one child for a random untried move
//
// 3. rollout - play random moves until the game ends
//
// 4. backpropagate - update the counters up to the root
//
// Until the limits say otherwise. The tree is dropped when this returns.
func (e *Engine[S]) SearchResult(root S) (SearchResult, error) {
	result := SearchResult{BestMove: game.NoMove}

	rootMoves := root.Moves()
	if len(rootMoves) == 0 {
		return result, ErrTerminalState
	}

	tree := NewTree(rootMoves, root.PlayerJustMoved())
	limiter := NewLimiter(e.limits, e.now)
	limiter.Reset()

	cycles := 0
	for limiter.Ok(cycles) {
		id, depth, state := e.selection(tree, limiter, root.Clone())

		if err := e.rollout(state); err != nil {
			e.logger.Error().Err(err).Int("cycles", cycles).Msg("rollout-failed")
			return result, err
		}
		backpropagate(tree, id, state.Result(tree.Node(id).JustMoved))
		cycles++

		if tree.observeDepth(depth) {
			e.listener.invokeDepth(tree, limiter, cycles)
		}
		e.listener.invokeCycle(tree, limiter, cycles)
	}

	e.listener.invokeStop(tree, limiter, cycles)
	result = e.collect(tree, limiter, cycles)

	e.logger.Debug().
		Int("cycles", result.Cycles).
		Int("time-ms", result.TimeMs).
		Uint32("cps", result.Cps).
		Int("depth", result.Depth).
		Int("size", result.Size).
		Stringer("stop-reason", result.StopReason).
		Stringer("bestmove", result.BestMove).
		Float64("eval", result.Eval).
		Msg("search-finished")

	if result.BestMove == game.NoMove {
		return result, ErrNoChildren
	}
	return result, nil
}

// Descend from the root by UCB1, then add a single child when the tree may
// grow. Returns the node to evaluate, its depth and the state at that node.
func (e *Engine[S]) selection(tree *Tree, limiter *Limiter, state S) (NodeID, int, S) {
	id, depth := tree.Root(), 0
	for node := tree.Node(id); node.IsFullyExpanded() && !node.IsLeaf(); node = tree.Node(id) {
		id = tree.SelectChild(id)
		state.DoMove(tree.Node(id).Move)
		depth++
	}

	if node := tree.Node(id); !node.IsFullyExpanded() && limiter.Expand(tree.Size()) {
		i := e.rand.Intn(len(node.Untried))
		state.DoMove(node.Untried[i])
		id = tree.Expand(id, i, state.Moves(), state.PlayerJustMoved())
		depth++
	}
	return id, depth, state
}

func (e *Engine[S]) collect(tree *Tree, limiter *Limiter, cycles int) SearchResult {
	stats := toListenerStats(tree, limiter, cycles)
	result := SearchResult{
		BestMove:   stats.BestMove,
		Eval:       stats.Eval,
		Pv:         stats.Pv,
		Cycles:     cycles,
		TimeMs:     stats.TimeMs,
		Cps:        stats.Cps,
		Depth:      stats.Maxdepth,
		Size:       stats.Size,
		StopReason: stats.StopReason,
	}

	root := tree.Node(tree.Root())
	result.Children = make([]ChildStats, 0, len(root.Children))
	for _, childID := range root.Children {
		child := tree.Node(childID)
		result.Children = append(result.Children, ChildStats{
			Move: child.Move, Visits: child.N(), Eval: child.AvgQ(),
		})
	}
	return result
}
