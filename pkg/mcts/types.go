package mcts

// Other types, which didn't fit to the engine or tree files

type SeedGeneratorFnType func() int64

// Index of a node inside the tree's arena
type NodeID int32

// Parent of the root node
const NoNode NodeID = -1
