// Package search implements the single-step graph-search engine shared
// by the BFS, UCS, and A* visualizers. One Engine instance owns all
// mutable per-node search state; the graph itself is never written.
package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/stepsearch/core"
)

// nodeState is the engine-owned mutable record for one node. It resets
// independently of topology and never aliases graph storage.
type nodeState struct {
	status  NodeStatus
	cost    float64 // g-cost; +Inf sentinel while undiscovered
	h       float64 // heuristic to goal; 0 unless MinF
	f       float64 // g + h; maintained under MinF only
	parent  int64   // predecessor id, core.NoParent if none
	current bool
	inPath  bool
}

// Engine advances one discrete unit of search work per Step call and
// exposes enough introspectable state for a caller to render or test
// it: frontier contents, per-node costs, and parent links.
//
// Lifecycle: Idle → Ready → Running → {Found | Exhausted}. Stepping a
// terminal engine is a harmless no-op repeating the last report.
type Engine struct {
	graph  *core.Graph
	policy Policy
	opts   Options

	start, goal       int64
	hasStart, hasGoal bool

	status Status
	states map[int64]*nodeState
	front  frontier
	cur    int64 // sole isCurrent node, core.NoParent if none
	steps  int
	path   []int64
	last   StepReport
}

// New creates an Engine over g with the given frontier policy.
// Returns ErrGraphNil for a nil graph, ErrBadPolicy for an unknown
// policy, or any recorded option error (e.g. ErrBadScale). The engine
// starts Idle; assign roles with SetStart and SetGoal.
func New(g *core.Graph, p Policy, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !p.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadPolicy, int(p))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine{
		graph:  g,
		policy: p,
		opts:   o,
		start:  core.NoParent,
		goal:   core.NoParent,
		front:  newFrontier(p),
		cur:    core.NoParent,
	}
	e.Reset()

	return e, nil
}

// NewBFS creates a breadth-first engine (FIFO policy, unit weights).
func NewBFS(g *core.Graph, opts ...Option) (*Engine, error) { return New(g, FIFO, opts...) }

// NewUCS creates a uniform-cost engine (MinCost policy).
func NewUCS(g *core.Graph, opts ...Option) (*Engine, error) { return New(g, MinCost, opts...) }

// NewAStar creates an A* engine (MinF policy).
func NewAStar(g *core.Graph, opts ...Option) (*Engine, error) { return New(g, MinF, opts...) }

// Policy returns the engine's frontier policy.
func (e *Engine) Policy() Policy { return e.policy }

// Status returns the engine's lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Steps returns the number of expansions consumed since the last Reset.
func (e *Engine) Steps() int { return e.steps }

// SetStart assigns the start role and re-arms Reset automatically.
// Returns ErrNodeNotFound for unknown ids; the engine is unchanged on error.
func (e *Engine) SetStart(id int64) error {
	if !e.graph.HasNode(id) {
		return fmt.Errorf("%w: start=%d", ErrNodeNotFound, id)
	}
	e.start = id
	e.hasStart = true
	e.Reset()

	return nil
}

// SetGoal assigns the goal role and re-arms Reset automatically.
// Returns ErrNodeNotFound for unknown ids; the engine is unchanged on error.
func (e *Engine) SetGoal(id int64) error {
	if !e.graph.HasNode(id) {
		return fmt.Errorf("%w: goal=%d", ErrNodeNotFound, id)
	}
	e.goal = id
	e.hasGoal = true
	e.Reset()

	return nil
}

// Reset discards all per-node search state and aborts any run in
// progress. Start/goal role markers persist until explicitly
// reassigned. With both roles set, heuristics are recomputed (MinF
// only, once per goal - never per step), the frontier is seeded with
// the start at cost 0, and the engine becomes Ready; otherwise it
// stays Idle. Reset is idempotent.
func (e *Engine) Reset() {
	e.states = make(map[int64]*nodeState, e.graph.NodeCount())
	for _, id := range e.graph.Nodes() {
		e.states[id] = &nodeState{
			status: Unvisited,
			cost:   math.Inf(1),
			f:      math.Inf(1),
			parent: core.NoParent,
		}
	}
	e.front.clear()
	e.cur = core.NoParent
	e.steps = 0
	e.path = nil

	if !e.hasStart || !e.hasGoal {
		e.status = Idle
		e.last = StepReport{ExpandedID: core.NoParent, Status: Idle, Message: "start and goal not set"}
		return
	}

	if e.policy == MinF {
		goalNode, _ := e.graph.Node(e.goal)
		for id, st := range e.states {
			n, _ := e.graph.Node(id)
			st.h = e.opts.Heuristic(n, goalNode)
		}
	}

	s := e.states[e.start]
	s.cost = 0
	s.f = s.h
	s.status = InFrontier
	e.front.push(entry{id: e.start, priority: e.priority(s)})

	e.status = Ready
	e.last = StepReport{
		ExpandedID: core.NoParent,
		Status:     Ready,
		Message:    fmt.Sprintf("%s ready: frontier seeded with node %d", e.policy, e.start),
	}
}

// priority returns the node's live ordering key under the active policy.
func (e *Engine) priority(s *nodeState) float64 {
	if e.policy == MinF {
		return s.f
	}

	return s.cost // MinCost; ignored by FIFO
}

// Step advances the search by exactly one unit of work: pop the next
// frontier node, check the goal, expand neighbors, and report.
//
// Returns ErrNotReady while Idle (the engine is unchanged). In a
// terminal state, Step repeats the last report with no error so a
// polling driver needs no special casing.
func (e *Engine) Step() (StepReport, error) {
	switch {
	case e.status == Idle:
		return StepReport{ExpandedID: core.NoParent, Status: Idle}, ErrNotReady
	case e.status.Terminal():
		return e.last, nil
	}

	id, ok := e.popNext()
	if !ok {
		e.status = Exhausted
		e.last = StepReport{
			ExpandedID: core.NoParent,
			Status:     Exhausted,
			Cost:       math.Inf(1),
			Message:    "frontier empty: no path to goal",
		}

		return e.last, nil
	}

	s := e.states[id]
	e.setCurrent(id)
	s.status = Visited
	e.steps++

	if id == e.goal {
		e.path = e.reconstruct(id)
		e.status = Found
		e.last = StepReport{
			ExpandedID: id,
			Status:     Found,
			Cost:       s.cost,
			Path:       e.path,
			Message:    fmt.Sprintf("goal found: node %d, total cost %g", id, s.cost),
		}

		return e.last, nil
	}

	updated := e.expand(id, s)
	e.status = Running
	e.last = StepReport{
		ExpandedID: id,
		Updated:    updated,
		Status:     Running,
		Cost:       s.cost,
		Message:    e.expandMessage(id, s, updated),
	}

	return e.last, nil
}

// popNext pops frontier entries until a live one appears. Stale heap
// entries - nodes no longer in the frontier, or superseded by a relaxed
// (strictly smaller) priority - are discarded, so a stale copy is never
// min-selected.
func (e *Engine) popNext() (int64, bool) {
	for {
		it, ok := e.front.pop()
		if !ok {
			return core.NoParent, false
		}
		s := e.states[it.id]
		if s.status != InFrontier {
			continue
		}
		if e.policy != FIFO && it.priority != e.priority(s) {
			continue
		}

		return it.id, true
	}
}

// setCurrent moves the isCurrent flag: at most one node carries it.
func (e *Engine) setCurrent(id int64) {
	if e.cur != core.NoParent {
		e.states[e.cur].current = false
	}
	e.cur = id
	e.states[id].current = true
}

// expand relaxes the neighbors of the just-visited node and returns the
// number of neighbors discovered or improved.
//
// FIFO (BFS) never relaxes: a node is enqueued exactly once, at first
// discovery, because unweighted frontier order already yields shortest
// hop counts. Cost-ordered policies apply strict-improvement relaxation
// and demote already-Visited nodes back to the frontier (re-expansion
// on relaxation, since weighted search is not monotone against a fixed
// pop order).
func (e *Engine) expand(id int64, s *nodeState) int {
	arcs, _ := e.graph.Neighbors(id) // id was just popped, must exist
	updated := 0
	for _, arc := range arcs {
		ns := e.states[arc.To]

		if e.policy == FIFO {
			if ns.status != Unvisited {
				continue
			}
			ns.cost = s.cost + 1
			ns.parent = id
			ns.status = InFrontier
			e.front.push(entry{id: arc.To})
			updated++
			continue
		}

		tentative := s.cost + arc.Weight
		if tentative >= ns.cost {
			continue
		}
		ns.cost = tentative
		ns.parent = id
		if e.policy == MinF {
			ns.f = ns.cost + ns.h
		}
		ns.status = InFrontier // discovers Unvisited, re-opens Visited
		e.front.push(entry{id: arc.To, priority: e.priority(ns)})
		updated++
	}

	return updated
}

// expandMessage renders the per-step sidebar summary.
func (e *Engine) expandMessage(id int64, s *nodeState, updated int) string {
	switch e.policy {
	case FIFO:
		return fmt.Sprintf("dequeued node %d (depth %g): enqueued %d neighbors", id, s.cost, updated)
	case MinF:
		return fmt.Sprintf("expanded node %d (f=%.1f): updated %d neighbors", id, s.f, updated)
	default:
		return fmt.Sprintf("expanded node %d (g=%g): updated %d neighbors", id, s.cost, updated)
	}
}

// reconstruct walks parent ids from goal back to start, marks the chain
// InFinalPath, and returns it in start→goal order. Parent links form a
// tree (assigned only on strict cost improvement), so the walk always
// terminates at the start without revisiting a node.
func (e *Engine) reconstruct(goal int64) []int64 {
	chain := make([]int64, 0, e.steps)
	for id := goal; id != core.NoParent; id = e.states[id].parent {
		e.states[id].inPath = true
		chain = append(chain, id)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

// Path returns a copy of the reconstructed start→goal chain, or nil
// unless the engine is in the Found state.
func (e *Engine) Path() []int64 {
	if e.status != Found {
		return nil
	}
	out := make([]int64, len(e.path))
	copy(out, e.path)

	return out
}

// NodeView returns the render surface for one node's search state.
// Returns ErrNodeNotFound for ids absent from the graph.
func (e *Engine) NodeView(id int64) (NodeView, error) {
	s, ok := e.states[id]
	if !ok {
		return NodeView{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return NodeView{
		Status:      s.status,
		Cost:        s.cost,
		Heuristic:   s.h,
		F:           s.f,
		Parent:      s.parent,
		IsCurrent:   s.current,
		InFinalPath: s.inPath,
	}, nil
}

// FrontierSnapshot returns the ids currently awaiting expansion in the
// order the active policy would pop them (FIFO: insertion order;
// MinCost/MinF: ascending priority, ties by lower id). Stale lazy-heap
// duplicates are filtered, so each node appears at most once.
func (e *Engine) FrontierSnapshot() []int64 {
	raw := e.front.entries()
	seen := make(map[int64]bool, len(raw))
	live := make([]entry, 0, len(raw))
	for _, it := range raw {
		s := e.states[it.id]
		if s.status != InFrontier || seen[it.id] {
			continue
		}
		if e.policy != FIFO && it.priority != e.priority(s) {
			continue
		}
		seen[it.id] = true
		live = append(live, it)
	}
	if e.policy != FIFO {
		// Mirror the heap's pop order: ascending priority, ties by id.
		sort.Slice(live, func(i, j int) bool {
			if live[i].priority != live[j].priority {
				return live[i].priority < live[j].priority
			}
			return live[i].id < live[j].id
		})
	}

	ids := make([]int64, len(live))
	for i, it := range live {
		ids[i] = it.id
	}

	return ids
}
