// Package builder: Chain(n) - a linear fixture graph for tests, demos,
// and golden scenarios.
package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that lays n nodes 0..n-1 on a horizontal
// line and links each to its successor with a directed edge weighted
// from the configured range. Combine with WithWeightRange(1,1) for the
// classic unit-weight chain.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}

		gap := (cfg.canvasW - 2*treeSideMargin) / float64(n-1)
		y := cfg.canvasH / 2
		for i := 0; i < n; i++ {
			x := treeSideMargin + gap*float64(i)
			if err := g.AddNode(int64(i), x, y); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodChain, i, err)
			}
		}
		for i := 0; i < n-1; i++ {
			if err := g.AddEdge(int64(i), int64(i+1), cfg.weight()); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodChain, i, i+1, err)
			}
		}

		return nil
	}
}
