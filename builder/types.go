// Package builder: configuration, functional options, sentinel errors,
// and deterministic defaults for graph generation.
package builder

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for builder validation.
var (
	// ErrBadDepth indicates Tree was given a depth below 1.
	ErrBadDepth = errors.New("builder: tree depth must be at least 1")

	// ErrBadDimensions indicates Landscape rows/cols below 1 or a
	// non-positive canvas.
	ErrBadDimensions = errors.New("builder: dimensions must be positive")

	// ErrTooFewNodes indicates Chain was given fewer than 2 nodes.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrBadWeightRange indicates WithWeightRange(min,max) with min < 0
	// or max < min.
	ErrBadWeightRange = errors.New("builder: invalid weight range")

	// ErrBadBranching indicates WithBranching(min,max) with min < 1 or
	// max < min.
	ErrBadBranching = errors.New("builder: invalid branching range")
)

// Deterministic defaults, mirroring the reference visualizers: a
// 1200x800 window minus a 300px sidebar leaves a 900x800 canvas, tree
// edge weights draw from 1..9, and nodes branch into 2 or 3 children.
const (
	defaultCanvasW   = 900.0
	defaultCanvasH   = 800.0
	defaultWeightMin = 1
	defaultWeightMax = 9
	defaultBranchMin = 2
	defaultBranchMax = 3

	// Tree layout: layered top-down placement.
	treeTopMargin  = 80.0  // y of the root
	treeLayerGap   = 120.0 // vertical distance between depths
	treeSideMargin = 50.0  // horizontal padding of the root span
	treeMinSpan    = 60.0  // below this width a branch thins to 0..1 children

	// Landscape scores: random base plus a bonus shrinking away from the
	// canvas center, clamped to [0, 100] - a probable central hill.
	scoreBaseMin     = 10
	scoreBaseMax     = 60
	scoreCenterBonus = 30
	scoreRowPenalty  = 10
	scoreColPenalty  = 5
	scoreCap         = 100.0
	landscapeJitter  = 20 // positional jitter in each axis, ±
)

// Option configures graph generation via functional arguments. Invalid
// options are recorded and surfaced as errors by Build.
type Option func(*config)

// config aggregates all generation knobs. It is resolved once per Build
// call and passed by value to constructors (immutable to them).
type config struct {
	rng                  *rand.Rand // nil until resolved; seeded or randomized by Build
	weightMin, weightMax int
	branchMin, branchMax int
	canvasW, canvasH     float64

	// internal error recorded during option parsing
	err error
}

// newConfig applies opts over deterministic defaults. The RNG stays nil
// here; Build resolves it last so WithSeed wins regardless of order.
func newConfig(opts ...Option) config {
	cfg := config{
		weightMin: defaultWeightMin,
		weightMax: defaultWeightMax,
		branchMin: defaultBranchMin,
		branchMax: defaultBranchMax,
		canvasW:   defaultCanvasW,
		canvasH:   defaultCanvasH,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed freezes the generator: the same seed, options, and
// constructor order always produce an identical graph.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightRange draws edge weights uniformly from [min, max].
// Requires 0 ≤ min ≤ max; use WithWeightRange(1, 1) for unit weights.
func WithWeightRange(min, max int) Option {
	return func(c *config) {
		if min < 0 || max < min {
			c.err = fmt.Errorf("%w: [%d,%d]", ErrBadWeightRange, min, max)
			return
		}
		c.weightMin, c.weightMax = min, max
	}
}

// WithBranching draws the child count of each tree node uniformly from
// [min, max]. Requires 1 ≤ min ≤ max.
func WithBranching(min, max int) Option {
	return func(c *config) {
		if min < 1 || max < min {
			c.err = fmt.Errorf("%w: [%d,%d]", ErrBadBranching, min, max)
			return
		}
		c.branchMin, c.branchMax = min, max
	}
}

// WithCanvas sets the layout area nodes are positioned within.
// Requires positive dimensions.
func WithCanvas(w, h float64) Option {
	return func(c *config) {
		if w <= 0 || h <= 0 {
			c.err = fmt.Errorf("%w: canvas %gx%g", ErrBadDimensions, w, h)
			return
		}
		c.canvasW, c.canvasH = w, h
	}
}

// weight samples one edge weight from the configured range.
func (c config) weight() float64 {
	return float64(c.weightMin + c.rng.Intn(c.weightMax-c.weightMin+1))
}

// branches samples one child count from the configured range.
func (c config) branches() int {
	return c.branchMin + c.rng.Intn(c.branchMax-c.branchMin+1)
}
