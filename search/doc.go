// Package search provides a stepable graph-search engine over a
// core.Graph with three pluggable frontier policies: FIFO (BFS),
// MinCost (uniform-cost search), and MinF (A*).
//
// What
//
//   - One Engine, one state machine: Idle → Ready → Running →
//     {Found | Exhausted}. Each Step call performs exactly one unit of
//     work - pop, goal check, neighbor relaxation - and returns a
//     StepReport the caller can render.
//   - Policies differ only in "select-and-remove next":
//   - FIFO: oldest inserted first; unweighted; fewest-edges paths.
//   - MinCost: minimum g-cost first; minimum-weight paths.
//   - MinF: minimum g+h first; minimum-weight paths under an
//     admissible heuristic.
//   - Query surface for renderers: Status, FrontierSnapshot (policy
//     order), NodeView (status/cost/heuristic/parent/current/path
//     flags), Path after Found.
//
// Why
//
//	The engine exists to teach: an external visualizer builds a graph,
//	assigns start and goal, then single-steps the search and draws the
//	frontier, costs, and parent tree after every call. Nothing advances
//	between calls - no timers, no goroutines - so a run can be paused,
//	inspected, and resumed indefinitely.
//
// Determinism
//
//	core.Neighbors iterates arcs in insertion order, cost ties pop the
//	lower id first, and heuristics are fixed at Reset, so every run over
//	the same graph and roles is fully reproducible.
//
// Relaxation semantics
//
//	Cost-ordered policies use strict-improvement relaxation against a
//	+Inf sentinel, and demote an already-Visited node back into the
//	frontier when a cheaper path to it appears. Re-opening settled nodes
//	costs extra steps versus a decrease-key Dijkstra but is correct for
//	non-negative weights, and it keeps every intermediate state honest
//	on screen. BFS enqueues each node at most once and never relaxes.
//
// Complexity (V = |Nodes|, E = |Arcs|)
//
//   - One Step: O(deg(v) log(V+E)) for heap policies, O(deg(v)) for FIFO.
//   - Whole run: O((V + E) log V) / O(V + E) respectively.
//   - Memory: O(V + E) for per-node state plus lazy frontier entries.
//
// Errors
//
//	ErrGraphNil, ErrBadPolicy, ErrBadScale - construction.
//	ErrNodeNotFound                        - unknown start/goal/query id.
//	ErrNotReady                            - Step before roles are set.
//
// "No path" is NOT an error: the engine reports the Exhausted status
// and stepping a terminal engine just repeats the last report.
//
// Usage
//
//	eng, err := search.NewUCS(g)
//	if err != nil { ... }
//	_ = eng.SetStart(0)
//	_ = eng.SetGoal(9)
//	for !eng.Status().Terminal() {
//	    rep, _ := eng.Step()
//	    draw(rep, eng.FrontierSnapshot())
//	}
package search
