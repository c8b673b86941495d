// SPDX-License-Identifier: MIT
// Package: routefinder/builder
//
// impl_path.go - Path(n), Cycle(n) and Isolated(labels...) constructors.
//
// Contract:
//   • Path:  n ≥ 1; edges i—(i+1) for i∈[0..n-2].
//   • Cycle: n ≥ 3; Path edges plus the closing (n-1)—0.
//   • Isolated: adds vertices only; an empty label surfaces core.ErrEmptyVertexID.
//
// Determinism:
//   • Vertices in index order; edges in ascending i; weights drawn in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routefinder/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodIsolated = "Isolated"
	minPathNodes   = 1
	minCycleNodes  = 3
)

// Path returns a Constructor for the chain 0—1—…—(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor for the ring 0—1—…—(n-1)—0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(methodCycle, g, cfg, n, true)
	}
}

// Isolated returns a Constructor adding the given labels without any edge.
func Isolated(labels ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, l := range labels {
			if err := g.AddVertex(l); err != nil {
				return fmt.Errorf("%s: AddVertex(%q): %w", methodIsolated, l, err)
			}
		}

		return nil
	}
}

func chain(method string, g *core.Graph, cfg builderConfig, n int, closed bool) error {
	if err := addVertices(method, g, cfg, n); err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err := connect(method, g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
			return err
		}
	}
	if closed {
		return connect(method, g, cfg, cfg.idFn(n-1), cfg.idFn(0))
	}

	return nil
}
