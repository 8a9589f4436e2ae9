// Package builder generates the graphs the stepsearch engines run on:
// layered random trees, jittered score landscapes, and linear chains.
//
// One orchestrator, Build(opts, cons...), creates an empty core.Graph,
// resolves the functional options into an immutable config, and applies
// the constructors in order. Generation is deterministic under
// WithSeed - same seed, options, and constructor order means an
// identical graph - and time-randomized otherwise.
//
// Constructors:
//
//   - Tree(maxDepth)        - top-down branching tree, weighted edges,
//     the BFS/UCS/A* playground.
//   - Landscape(rows, cols) - scored grid with 8-neighbor undirected
//     adjacency, the hill-climbing playground.
//   - Chain(n)              - linear fixture for tests and examples.
//
// Options: WithSeed, WithWeightRange, WithBranching, WithCanvas.
// Invalid options or parameters surface as wrapped sentinel errors
// (ErrBadDepth, ErrBadDimensions, ErrBadWeightRange, ErrBadBranching,
// ErrTooFewNodes), branchable via errors.Is.
//
// Usage
//
//	g, err := builder.Build(
//	    []builder.Option{builder.WithSeed(42)},
//	    builder.Tree(5),
//	)
package builder
