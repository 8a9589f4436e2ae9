// Package core: Graph method implementations.
//
// All operations are O(1) amortized except the sorted snapshots, and all
// validation failures leave the graph untouched.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a new node with the given id at position (x, y).
// Returns ErrNegativeID for id < 0 and ErrDuplicateNode if the id is
// already present; on error the graph is unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int64, x, y float64) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = Node{ID: id, X: x, Y: y}
	g.adj[id] = nil
	g.order = append(g.order, id)

	return nil
}

// AddEdge creates a directed edge from → to with the given non-negative
// weight. Call twice (swapping endpoints) to simulate an undirected
// edge. Parallel edges are permitted and kept in insertion order.
// Returns ErrNodeNotFound if either endpoint is unknown and
// ErrNegativeWeight for weight < 0.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64, weight float64) error {
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: from=%d", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: to=%d", ErrNodeNotFound, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeWeight, weight)
	}
	g.adj[from] = append(g.adj[from], Arc{To: to, Weight: weight})

	return nil
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node record for id, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id int64) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// Neighbors returns the outgoing arcs of id in insertion order. The
// returned slice is the graph's own backing array and must not be
// mutated by callers. Returns ErrNodeNotFound for unknown ids.
// Complexity: O(1).
func (g *Graph) Neighbors(id int64) ([]Arc, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.adj[id], nil
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int64 {
	ids := make([]int64, len(g.order))
	copy(ids, g.order)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, arcs := range g.adj {
		total += len(arcs)
	}

	return total
}

// SetScore assigns the height score used by hill climbing.
// Returns ErrNodeNotFound for unknown ids.
// Complexity: O(1).
func (g *Graph) SetScore(id int64, score float64) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	n.Score = score
	g.nodes[id] = n

	return nil
}

// MaxScore returns the graph-wide maximum node score, or 0 for an empty
// graph. Used to classify a hill-climbing peak as global or local.
// Complexity: O(V).
func (g *Graph) MaxScore() float64 {
	var best float64
	first := true
	for _, n := range g.nodes {
		if first || n.Score > best {
			best = n.Score
			first = false
		}
	}

	return best
}
