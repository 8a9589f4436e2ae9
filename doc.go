// Package stepsearch is the engine room of four interactive search
// visualizers: Breadth-First Search, Uniform-Cost Search, A*, and Hill
// Climbing - each advanced one discrete unit of work per call, with
// every intermediate state open for inspection.
//
// 🚀 What is stepsearch?
//
//	A small, deterministic library that brings together:
//		• Graph core: integer-id nodes with layout positions and scores,
//		  directed weighted edges, insertion-ordered adjacency
//		• Builders: layered random trees, jittered score landscapes, and
//		  chains - reproducible under a fixed seed
//		• One step engine, three frontier policies: FIFO (BFS), MinCost
//		  (UCS), MinF (A*) - pop, goal check, relax, report
//		• A staged hill climber: survey → evaluate → move, ending at a
//		  peak classified as global or local
//
// ✨ Why choose stepsearch?
//
//   - Built to teach - nothing happens between calls, so a renderer can
//     pause, inspect frontier and parent tree, and resume at any point
//   - Deterministic - stable tie-breaks, seeded generation, heuristics
//     fixed at reset: every run is reproducible and testable
//   - Honest errors - package-prefixed sentinels, errors.Is-friendly;
//     "no path" is a reported state, never an error
//   - Pure Go - no cgo, no hidden services, state lives in memory only
//
// Everything is organized under four subpackages:
//
//	core/      — Graph, Node, Arc primitives shared by every engine
//	builder/   — deterministic topology generation (Tree, Landscape, Chain)
//	search/    — the stepable BFS/UCS/A* engine and its query surface
//	hillclimb/ — the stepable local-search climber
//
// Quick ASCII example (two routes, UCS takes the detour):
//
//	    0 ──10── 1
//	     \      /
//	      1    1
//	       \  /
//	        2
//
// See search.Engine and hillclimb.Engine for the step loops, and the
// example tests in each package for runnable walkthroughs.
package stepsearch
