// Package search: type declarations, tunable options, and error
// definitions for the single-step search engine.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stepsearch/core"
)

// Sentinel errors for engine construction and stepping.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrBadPolicy is returned for a Policy value outside FIFO/MinCost/MinF.
	ErrBadPolicy = errors.New("search: unknown frontier policy")

	// ErrNotReady is returned by Step while start and goal are not both set.
	ErrNotReady = errors.New("search: start and goal must be set before stepping")

	// ErrNodeNotFound is returned when a start, goal, or query id is absent
	// from the engine's graph.
	ErrNodeNotFound = errors.New("search: node not found in graph")

	// ErrBadScale is returned when WithHeuristicScale receives a
	// non-positive divisor.
	ErrBadScale = errors.New("search: heuristic scale must be positive")
)

// Policy selects the frontier ordering strategy: the one operation in
// which the three engines differ (which node to remove and expand next).
type Policy int

const (
	// FIFO pops the oldest inserted node: breadth-first search over
	// unweighted adjacency, guaranteeing the fewest-edges path.
	FIFO Policy = iota

	// MinCost pops the minimum g-cost node: uniform-cost search
	// (Dijkstra-style relaxation), guaranteeing the minimum-weight path.
	MinCost

	// MinF pops the minimum g+h node: A* with an admissible heuristic.
	MinF
)

// String returns the conventional algorithm name for the policy.
func (p Policy) String() string {
	switch p {
	case FIFO:
		return "BFS"
	case MinCost:
		return "UCS"
	case MinF:
		return "A*"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func (p Policy) valid() bool { return p >= FIFO && p <= MinF }

// Status is the engine's lifecycle state.
//
//	Idle      - start and/or goal not yet chosen.
//	Ready     - roles set, frontier seeded, no expansions yet.
//	Running   - at least one step consumed.
//	Found     - goal expanded; terminal.
//	Exhausted - frontier drained without reaching the goal; terminal.
//
// Found and Exhausted are both normal terminal states: "no path" is a
// report, not an error.
type Status int

const (
	Idle Status = iota
	Ready
	Running
	Found
	Exhausted
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Ready:
		return "Ready"
	case Running:
		return "Running"
	case Found:
		return "Found"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether the status admits no further work.
func (s Status) Terminal() bool { return s == Found || s == Exhausted }

// NodeStatus classifies a node during a run.
type NodeStatus int

const (
	// Unvisited - never discovered; cost is the +Inf sentinel.
	Unvisited NodeStatus = iota

	// InFrontier - discovered, awaiting expansion; cost is finite.
	InFrontier

	// Visited - expanded (possibly demoted back later by relaxation).
	Visited
)

// String returns a human-readable node status name.
func (s NodeStatus) String() string {
	switch s {
	case Unvisited:
		return "Unvisited"
	case InFrontier:
		return "Frontier"
	case Visited:
		return "Visited"
	default:
		return fmt.Sprintf("NodeStatus(%d)", int(s))
	}
}

// NodeView is the render/query surface for one node's search state.
// Parent is an id back-reference (core.NoParent when absent), never a
// pointer: parent chains form a tree walked for path reconstruction.
type NodeView struct {
	Status      NodeStatus
	Cost        float64 // g-cost from start; +Inf while Unvisited
	Heuristic   float64 // h; 0 unless the MinF policy is active
	F           float64 // g+h; meaningful for MinF only
	Parent      int64   // predecessor id, core.NoParent if none
	IsCurrent   bool    // node expanded by the most recent step
	InFinalPath bool    // on the reconstructed start→goal chain
}

// StepReport summarizes the effect of one Step call for the external
// display collaborator.
type StepReport struct {
	// ExpandedID is the node processed this step, core.NoParent if none
	// (seeding and exhaustion reports).
	ExpandedID int64

	// Updated counts neighbors discovered or relaxed this step.
	Updated int

	// Status is the engine status after the step.
	Status Status

	// Cost is the g-cost of the expanded node (total path cost on Found).
	Cost float64

	// Path is the reconstructed start→goal id chain, non-nil only on Found.
	Path []int64

	// Message is a human-readable summary suitable for a status sidebar.
	Message string
}

// Heuristic estimates the remaining cost from n to goal. It must be
// admissible (non-negative, never overestimating) for MinF optimality.
type Heuristic func(n, goal core.Node) float64

// DefaultHeuristicScale divides the straight-line distance so the
// heuristic stays commensurate with small integer edge weights. The
// constant affects step count, never correctness.
const DefaultHeuristicScale = 15.0

// ScaledEuclidean returns the reference heuristic: Euclidean distance
// over the node positions divided by scale, rounded to one decimal.
func ScaledEuclidean(scale float64) Heuristic {
	return func(n, goal core.Node) float64 {
		d := math.Hypot(n.X-goal.X, n.Y-goal.Y)
		return math.Round(d/scale*10) / 10
	}
}

// Option configures engine behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as an error by New.
type Option func(*Options)

// Options holds the engine's tunable parameters.
type Options struct {
	// Heuristic is consulted by the MinF policy only; other policies
	// ignore it. Defaults to ScaledEuclidean(DefaultHeuristicScale).
	Heuristic Heuristic

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the reference heuristic installed.
func DefaultOptions() Options {
	return Options{Heuristic: ScaledEuclidean(DefaultHeuristicScale)}
}

// WithHeuristic installs a custom heuristic for the MinF policy.
// A nil fn is ignored.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithHeuristicScale installs ScaledEuclidean with a custom divisor.
// Non-positive scales are invalid and surface as ErrBadScale from New.
func WithHeuristicScale(scale float64) Option {
	return func(o *Options) {
		if scale <= 0 {
			o.err = fmt.Errorf("%w: %g", ErrBadScale, scale)
			return
		}
		o.Heuristic = ScaledEuclidean(scale)
	}
}
