// Package core: type and sentinel-error declarations for the graph model.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called with an id already in the graph.
	ErrDuplicateNode = errors.New("core: duplicate node id")

	// ErrNegativeID indicates AddNode was called with a negative id.
	ErrNegativeID = errors.New("core: node id must be non-negative")

	// ErrNegativeWeight indicates AddEdge was called with a negative weight.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")
)

// NoParent is the id sentinel meaning "no node" wherever an id-valued
// back-reference may be absent (parent pointers, climber positions).
const NoParent int64 = -1

// Node represents a single graph node.
//
// ID uniquely identifies the node within its Graph and is stable for the
// graph's lifetime. X and Y are layout coordinates: the search engines
// never interpret them except as input to a distance heuristic. Score is
// the height value climbed by the hillclimb engine; zero elsewhere.
type Node struct {
	// ID is the unique non-negative identifier for this node.
	ID int64

	// X, Y position the node on the caller's canvas.
	X, Y float64

	// Score is the node's height for local search (hill climbing).
	Score float64
}

// Arc is one outgoing adjacency entry: the neighbor's id and the weight
// of the connecting edge. Weights are non-negative; unweighted searches
// treat every arc as weight 1 regardless of the stored value.
type Arc struct {
	// To is the destination node id.
	To int64

	// Weight is the non-negative edge cost.
	Weight float64
}

// Graph is the in-memory graph: a node table plus insertion-ordered
// outgoing adjacency. Edges are directed; add both directions to model
// an undirected link. Topology is immutable by convention once
// generation finishes - only engine-owned search state mutates during a
// run, so Graph carries no internal locking.
type Graph struct {
	nodes map[int64]Node  // node id → node record
	adj   map[int64][]Arc // node id → outgoing arcs, insertion order
	order []int64         // ids in insertion order (kept sorted lazily by Nodes)
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]Node),
		adj:   make(map[int64][]Arc),
	}
}
