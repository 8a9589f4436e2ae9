// Package hillclimb implements the staged local-search engine: a single
// climber that greedily moves to its best strictly-better neighbor and
// stops at the first peak. No frontier, no parent tree, no backtracking.
package hillclimb

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// Engine is the hill-climbing state machine. It tracks only the single
// current node, the per-round candidate marks, and the chosen best
// neighbor between Evaluate and Move.
type Engine struct {
	graph *core.Graph

	phase Phase
	cur   int64 // climber position, core.NoParent while Unset
	best  int64 // improving neighbor picked by Evaluate
	marks map[int64]Mark
	moves int
	last  Report
}

// New creates an Engine over g in the Unset phase.
// Returns ErrGraphNil for a nil graph.
func New(g *core.Graph) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	e := &Engine{graph: g}
	e.Reset()

	return e, nil
}

// Reset returns the engine to Unset and clears all marks. Unlike the
// search engines, the climber has no persistent roles: a new start must
// be chosen after every Reset.
func (e *Engine) Reset() {
	e.phase = Unset
	e.cur = core.NoParent
	e.best = core.NoParent
	e.marks = make(map[int64]Mark, e.graph.NodeCount())
	e.moves = 0
	e.last = Report{Phase: Unset, CurrentID: core.NoParent, BestID: core.NoParent,
		Message: "choose a start node"}
}

// SetStart lands the climber on id and arms the Survey stage.
// Returns ErrNodeNotFound for unknown ids; the engine is unchanged on error.
func (e *Engine) SetStart(id int64) error {
	n, err := e.graph.Node(id)
	if err != nil {
		return fmt.Errorf("%w: start=%d", ErrNodeNotFound, id)
	}
	e.Reset()
	e.cur = id
	e.marks[id] = MarkCurrent
	e.phase = Survey
	e.last = Report{
		Phase:     Survey,
		CurrentID: id,
		BestID:    core.NoParent,
		Score:     n.Score,
		Message:   fmt.Sprintf("landed on node %d (score %g)", id, n.Score),
	}

	return nil
}

// Step executes exactly one stage of the climb and reports it.
//
// Returns ErrNotReady while Unset. At Peak, Step is a harmless no-op
// repeating the last report. The score sequence over a climb is
// non-decreasing, strictly increasing at every Move, so a climb ends
// within NodeCount moves.
func (e *Engine) Step() (Report, error) {
	switch e.phase {
	case Unset:
		return Report{Phase: Unset, CurrentID: core.NoParent, BestID: core.NoParent}, ErrNotReady
	case Peak:
		return e.last, nil
	case Survey:
		return e.survey(), nil
	case Evaluate:
		return e.evaluate(), nil
	default: // Move
		return e.move(), nil
	}
}

// survey marks the current node's neighbors as candidates, or ends the
// climb immediately when the node has no neighbors at all.
func (e *Engine) survey() Report {
	arcs, _ := e.graph.Neighbors(e.cur) // cur is validated by SetStart
	if len(arcs) == 0 {
		return e.stop(Survey, 0)
	}

	e.clearMarks()
	for _, arc := range arcs {
		e.marks[arc.To] = MarkCandidate
	}
	n, _ := e.graph.Node(e.cur)
	e.phase = Evaluate
	e.last = Report{
		Phase:      Survey,
		CurrentID:  e.cur,
		BestID:     core.NoParent,
		Candidates: len(arcs),
		Score:      n.Score,
		Message:    fmt.Sprintf("surveyed %d neighbors of node %d", len(arcs), e.cur),
	}

	return e.last
}

// evaluate scores the candidates: strictly greater than the current
// score counts as better (plateau ties count as worse), and the
// maximum-scoring improver wins, first-seen on a tie.
func (e *Engine) evaluate() Report {
	arcs, _ := e.graph.Neighbors(e.cur)
	cur, _ := e.graph.Node(e.cur)

	e.best = core.NoParent
	bestScore := cur.Score
	for _, arc := range arcs {
		n, _ := e.graph.Node(arc.To)
		if n.Score > cur.Score {
			e.marks[arc.To] = MarkBetter
			if n.Score > bestScore {
				bestScore = n.Score
				e.best = arc.To
			}
		} else {
			e.marks[arc.To] = MarkWorse
		}
	}

	msg := "no neighbor is higher: standing on a peak"
	if e.best != core.NoParent {
		msg = fmt.Sprintf("best move: node %d (score %g), above current %g", e.best, bestScore, cur.Score)
	}
	e.phase = Move
	e.last = Report{
		Phase:      Evaluate,
		CurrentID:  e.cur,
		BestID:     e.best,
		Candidates: len(arcs),
		Score:      cur.Score,
		Message:    msg,
	}

	return e.last
}

// move relocates the climber to the chosen neighbor and loops back to
// Survey, or stops at a peak when Evaluate found no improvement.
func (e *Engine) move() Report {
	if e.best == core.NoParent {
		return e.stop(Move, 0)
	}

	e.clearMarks()
	e.cur = e.best
	e.best = core.NoParent
	e.marks[e.cur] = MarkCurrent
	e.moves++

	n, _ := e.graph.Node(e.cur)
	e.phase = Survey
	e.last = Report{
		Phase:     Move,
		CurrentID: e.cur,
		BestID:    core.NoParent,
		Moved:     true,
		Score:     n.Score,
		Message:   fmt.Sprintf("moved to node %d (score %g)", e.cur, n.Score),
	}

	return e.last
}

// stop terminates the climb at the current node and classifies the peak
// as the global maximum or merely a local one.
func (e *Engine) stop(phase Phase, candidates int) Report {
	e.clearMarks()
	e.marks[e.cur] = MarkPeak
	e.phase = Peak

	n, _ := e.graph.Node(e.cur)
	global := n.Score == e.graph.MaxScore()
	msg := fmt.Sprintf("stuck at local maximum (score %g): global maximum is %g", n.Score, e.graph.MaxScore())
	if global {
		msg = fmt.Sprintf("global maximum reached (score %g)", n.Score)
	}
	e.last = Report{
		Phase:      phase,
		CurrentID:  e.cur,
		BestID:     core.NoParent,
		Candidates: candidates,
		Done:       true,
		GlobalMax:  global,
		Score:      n.Score,
		Message:    msg,
	}

	return e.last
}

// clearMarks forgets all per-round marks; callers re-mark immediately.
func (e *Engine) clearMarks() {
	e.marks = make(map[int64]Mark, len(e.marks))
}

// Phase returns the stage the next Step will execute (Peak when done).
func (e *Engine) Phase() Phase { return e.phase }

// Done reports whether the climb reached a terminal Peak.
func (e *Engine) Done() bool { return e.phase == Peak }

// CurrentID returns the climber's node id, core.NoParent while Unset.
func (e *Engine) CurrentID() int64 { return e.cur }

// Moves returns the number of relocations since SetStart.
func (e *Engine) Moves() int { return e.moves }

// Mark returns the render classification of one node.
// Returns ErrNodeNotFound for ids absent from the graph.
func (e *Engine) Mark(id int64) (Mark, error) {
	if !e.graph.HasNode(id) {
		return MarkNone, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return e.marks[id], nil
}
