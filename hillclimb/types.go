// Package hillclimb: type declarations and error definitions for the
// staged hill-climbing engine.
package hillclimb

import (
	"errors"
	"fmt"
)

// Sentinel errors for hill-climbing operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("hillclimb: graph is nil")

	// ErrNotReady is returned by Step before a start node is chosen.
	ErrNotReady = errors.New("hillclimb: start node must be set before stepping")

	// ErrNodeNotFound is returned for start or query ids absent from the graph.
	ErrNodeNotFound = errors.New("hillclimb: node not found in graph")
)

// Phase is the climber's stage machine.
//
//	Unset    - no start node chosen.
//	Survey   - about to mark the current node's neighbors as candidates.
//	Evaluate - about to score candidates against the current node.
//	Move     - about to relocate to the best candidate, or stop.
//	Peak     - terminal: no strictly better neighbor existed.
//
// Each Step call executes exactly one stage, so a renderer can show the
// survey → evaluate → move cadence frame by frame.
type Phase int

const (
	Unset Phase = iota
	Survey
	Evaluate
	Move
	Peak
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Unset:
		return "Unset"
	case Survey:
		return "Survey"
	case Evaluate:
		return "Evaluate"
	case Move:
		return "Move"
	case Peak:
		return "Peak"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Mark is the render classification of one node during a climb.
type Mark int

const (
	// MarkNone - not involved in the current stage.
	MarkNone Mark = iota
	// MarkCurrent - the climber stands here.
	MarkCurrent
	// MarkCandidate - surveyed neighbor, not yet evaluated.
	MarkCandidate
	// MarkBetter - evaluated neighbor with a strictly higher score.
	MarkBetter
	// MarkWorse - evaluated neighbor with a lower-or-equal score
	// (a plateau tie does not count as improving).
	MarkWorse
	// MarkPeak - the terminal node of a finished climb.
	MarkPeak
)

// String returns a human-readable mark name.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "None"
	case MarkCurrent:
		return "Current"
	case MarkCandidate:
		return "Candidate"
	case MarkBetter:
		return "Better"
	case MarkWorse:
		return "Worse"
	case MarkPeak:
		return "Peak"
	default:
		return fmt.Sprintf("Mark(%d)", int(m))
	}
}

// Report summarizes the effect of one Step for the external display.
type Report struct {
	// Phase is the stage that was just executed.
	Phase Phase

	// CurrentID is the climber's node after the stage.
	CurrentID int64

	// BestID is the chosen improving neighbor after Evaluate
	// (core.NoParent when none exists or not yet evaluated).
	BestID int64

	// Candidates is the number of neighbors surveyed this round.
	Candidates int

	// Moved reports whether this stage relocated the climber.
	Moved bool

	// Done reports a terminal Peak.
	Done bool

	// GlobalMax is meaningful only when Done: whether the reached score
	// equals the graph-wide maximum (global optimum vs. local optimum).
	GlobalMax bool

	// Score is the climber's current node score.
	Score float64

	// Message is a human-readable summary suitable for a status sidebar.
	Message string
}
