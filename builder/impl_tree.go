// Package builder: Tree(maxDepth) - the layered random tree the
// BFS/UCS/A* visualizers search over.
//
// Canonical model (from the reference generators):
//   - Root id 0 centered at the top of the canvas.
//   - Each node spawns branchMin..branchMax children inside its
//     x-interval; intervals narrower than treeMinSpan collapse to one
//     or zero children, so the tree stays drawable.
//   - Children sit one layer (treeLayerGap) below their parent, at the
//     midpoints of an even subdivision of the parent's interval.
//   - Every edge is directed parent→child with a weight drawn from the
//     configured range (default 1..9; use WithWeightRange(1,1) for the
//     unweighted BFS flavor).
//
// Determinism: generation is breadth-first with a stable child order,
// so a fixed seed reproduces ids, positions, and weights exactly.
package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

const methodTree = "Tree"

// genFrame is one pending expansion of the generation queue.
type genFrame struct {
	parent     int64
	xMin, xMax float64
	depth      int
}

// Tree returns a Constructor that grows a random layered tree of at
// most maxDepth layers below the root. Node ids are assigned in
// generation (breadth-first) order starting from 0.
func Tree(maxDepth int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if maxDepth < 1 {
			return fmt.Errorf("%s: depth=%d: %w", methodTree, maxDepth, ErrBadDepth)
		}

		rootX := cfg.canvasW / 2
		if err := g.AddNode(0, rootX, treeTopMargin); err != nil {
			return fmt.Errorf("%s: AddNode(0): %w", methodTree, err)
		}

		queue := []genFrame{{parent: 0, xMin: treeSideMargin, xMax: cfg.canvasW - treeSideMargin, depth: 1}}
		next := int64(1)
		for len(queue) > 0 {
			frame := queue[0]
			queue = queue[1:]
			if frame.depth >= maxDepth {
				continue
			}

			children := cfg.branches()
			if frame.xMax-frame.xMin < treeMinSpan {
				// Narrow span: thin out to keep siblings apart on screen.
				if cfg.rng.Float64() > 0.5 {
					children = 1
				} else {
					children = 0
				}
			}
			if children == 0 {
				continue
			}

			span := (frame.xMax - frame.xMin) / float64(children)
			for i := 0; i < children; i++ {
				childX := frame.xMin + span*float64(i) + span/2
				childY := treeTopMargin + float64(frame.depth)*treeLayerGap
				if err := g.AddNode(next, childX, childY); err != nil {
					return fmt.Errorf("%s: AddNode(%d): %w", methodTree, next, err)
				}
				if err := g.AddEdge(frame.parent, next, cfg.weight()); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodTree, frame.parent, next, err)
				}
				queue = append(queue, genFrame{
					parent: next,
					xMin:   frame.xMin + span*float64(i),
					xMax:   frame.xMin + span*float64(i+1),
					depth:  frame.depth + 1,
				})
				next++
			}
		}

		return nil
	}
}
