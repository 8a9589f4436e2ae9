// Package builder: the single Build orchestrator and the Constructor
// contract it runs.
package builder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/stepsearch/core"
)

// Constructor applies one deterministic graph mutation using the
// resolved config. Constructors must validate parameters early, return
// sentinel errors (never panic), and keep a stable trial order so a
// fixed seed reproduces the topology exactly.
type Constructor func(g *core.Graph, cfg config) error

// Build creates an empty core.Graph, resolves the generation options,
// and applies all constructors in order. A constructor error is wrapped
// with "builder: Build" context and returned immediately; no partial
// cleanup is attempted.
//
// Without WithSeed the generator is randomized (time-seeded); with it,
// the same inputs always yield an identical graph.
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("builder: Build: %w", cfg.err)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := core.NewGraph()
	for _, con := range cons {
		if err := con(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	return g, nil
}
