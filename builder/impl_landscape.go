// Package builder: Landscape(rows, cols) - the jittered score grid the
// hill-climbing visualizer explores.
//
// Canonical model (from the reference generator):
//   - rows×cols nodes on an evenly spaced grid, each position jittered
//     by up to ±landscapeJitter in both axes so the layout looks
//     organic.
//   - Score = random base (scoreBaseMin..scoreBaseMax) plus a center
//     bonus that decays with grid distance from the middle, clamped to
//     [0, scoreCap]; the landscape therefore tends to a central hill
//     with local bumps.
//   - 8-neighborhood adjacency (orthogonal + diagonal), undirected:
//     both arc directions are added once per unordered pair, weight 1.
//
// Node ids are r*cols+c in row-major order.
package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

const methodLandscape = "Landscape"

// halfNeighborhood lists one offset per unordered 8-neighbor pair, so
// each undirected link is generated exactly once.
var halfNeighborhood = [4][2]int{{0, 1}, {1, -1}, {1, 0}, {1, 1}}

// Landscape returns a Constructor that lays out a rows×cols scored grid
// with 8-neighbor undirected adjacency.
func Landscape(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodLandscape, rows, cols, ErrBadDimensions)
		}

		xSpacing := cfg.canvasW / float64(cols+1)
		ySpacing := cfg.canvasH / float64(rows+1)

		// Pass 1: place all nodes and assign scores.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := int64(r*cols + c)
				jx := float64(cfg.rng.Intn(2*landscapeJitter+1) - landscapeJitter)
				jy := float64(cfg.rng.Intn(2*landscapeJitter+1) - landscapeJitter)
				x := xSpacing*float64(c+1) + jx
				y := ySpacing*float64(r+1) + jy
				if err := g.AddNode(id, x, y); err != nil {
					return fmt.Errorf("%s: AddNode(%d): %w", methodLandscape, id, err)
				}

				base := scoreBaseMin + cfg.rng.Intn(scoreBaseMax-scoreBaseMin+1)
				bonus := scoreCenterBonus - (abs(r-rows/2)*scoreRowPenalty + abs(c-cols/2)*scoreColPenalty)
				score := float64(base + bonus)
				if score < 0 {
					score = 0
				}
				if score > scoreCap {
					score = scoreCap
				}
				if err := g.SetScore(id, score); err != nil {
					return fmt.Errorf("%s: SetScore(%d): %w", methodLandscape, id, err)
				}
			}
		}

		// Pass 2: connect the 8-neighborhood, one unordered pair at a time.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := int64(r*cols + c)
				for _, d := range halfNeighborhood {
					nr, nc := r+d[0], c+d[1]
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					nid := int64(nr*cols + nc)
					if err := g.AddEdge(id, nid, 1); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodLandscape, id, nid, err)
					}
					if err := g.AddEdge(nid, id, 1); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodLandscape, nid, id, err)
					}
				}
			}
		}

		return nil
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
