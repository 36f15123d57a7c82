package mcts

import "github.com/IlikeChooros/go-uct/pkg/game"

type ListenerTreeStats struct {
	Maxdepth   int
	Cycles     int
	TimeMs     int
	Cps        uint32
	Size       int
	BestMove   game.Move
	Eval       float64
	Pv         []game.Move
	StopReason StopReason
}

// Convert the current tree state to 'ListenerTreeStats' struct
func toListenerStats(tree *Tree, limiter *Limiter, cycles int) ListenerTreeStats {
	stats := ListenerTreeStats{
		Maxdepth:   tree.MaxDepth(),
		Cycles:     cycles,
		TimeMs:     limiter.Elapsed(),
		Size:       tree.Size(),
		BestMove:   game.NoMove,
		StopReason: limiter.StopReason(),
	}
	stats.Cps = uint32(cycles * 1000 / stats.TimeMs)

	if best := tree.BestChild(tree.Root()); best != NoNode {
		stats.BestMove = tree.Node(best).Move
		stats.Eval = tree.Node(best).AvgQ()
		stats.Pv = tree.Pv(tree.Root())
	}
	return stats
}

// Listener function callback, will recieve current tree statistics, like
// max depth of tree, number of iterations so far
type ListenerFunc func(ListenerTreeStats)

type StatsListener struct {
	// called when 'max depth' increases
	onDepth ListenerFunc

	// called every N full iterations
	onCycle ListenerFunc
	nCycles int // call 'onCycle' every N cycles

	// called once when the search stops
	onStop ListenerFunc
}

func NewStatsListener() *StatsListener {
	return &StatsListener{nCycles: 1}
}

// Attach new on max depth change callback
func (listener *StatsListener) OnDepth(onDepth ListenerFunc) *StatsListener {
	listener.onDepth = onDepth
	return listener
}

// Attach new on iteration increase callback, this will slow down the search,
// because of pv evaluation, so use it with a large cycle interval
func (listener *StatsListener) OnCycle(onCycle ListenerFunc) *StatsListener {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener) SetCycleInterval(n int) *StatsListener {
	listener.nCycles = max(n, 1)
	return listener
}

// Attach 'on search end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeDepth(tree *Tree, limiter *Limiter, cycles int) {
	if listener != nil && listener.onDepth != nil {
		listener.onDepth(toListenerStats(tree, limiter, cycles))
	}
}

func (listener *StatsListener) invokeStop(tree *Tree, limiter *Limiter, cycles int) {
	if listener != nil && listener.onStop != nil {
		listener.onStop(toListenerStats(tree, limiter, cycles))
	}
}

func (listener *StatsListener) invokeCycle(tree *Tree, limiter *Limiter, cycles int) {
	if listener != nil && listener.onCycle != nil && cycles%listener.nCycles == 0 {
		listener.onCycle(toListenerStats(tree, limiter, cycles))
	}
}
