// Package core defines the central Graph, Node, and Arc types shared by
// every stepsearch engine.
//
// What
//
//   - Node: integer identity, a layout position (opaque to the
//     algorithms, consumed only by renderers), and a height Score used
//     by hill climbing.
//   - Arc: one outgoing adjacency entry (neighbor id + non-negative
//     weight).
//   - Graph: node table plus insertion-ordered adjacency. Directed by
//     construction; call AddEdge twice to model an undirected link.
//
// Ownership and concurrency
//
//	A Graph is built once, then treated as immutable topology while one
//	engine instance steps over it. The engines own all mutable per-node
//	search state themselves, so the graph carries no locks: exactly one
//	logical caller drives a run at a time. Engines running over the same
//	Graph concurrently must each hold their own state, never shared node
//	records.
//
// Determinism
//
//	Neighbors returns arcs in insertion order, and Nodes returns ids in
//	ascending order, so every traversal built on core is reproducible.
//
// Errors
//
//	ErrNodeNotFound   - operation referenced an id not in the graph.
//	ErrDuplicateNode  - AddNode called with an id already present.
//	ErrNegativeID     - node ids must be non-negative.
//	ErrNegativeWeight - edge weights must be non-negative.
//
// All failures leave the graph unchanged.
package core
