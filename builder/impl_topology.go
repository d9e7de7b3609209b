// SPDX-License-Identifier: MIT
// Package: lvqubo/builder
//
// impl_topology.go - FromEdges, Path, Cycle, Star and Complete.
//
// Determinism:
//   • Vertices are added in ascending index order before any edge.
//   • Edges are emitted in a fixed, documented order per constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvqubo/core"
)

// Method tags and minimum sizes.
const (
	methodFromEdges = "FromEdges"
	methodPath      = "Path"
	methodCycle     = "Cycle"
	methodStar      = "Star"
	methodComplete  = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// FromEdges returns a Constructor that adds the literal edges in pairs, in
// order. Vertex IDs are taken verbatim (WithFirstID does not apply).
func FromEdges(pairs [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(pairs) == 0 {
			return fmt.Errorf("%s: empty edge list: %w", methodFromEdges, ErrTooFewVertices)
		}
		for _, p := range pairs {
			w := cfg.weight(g.Weighted())
			if err := g.AddEdge(p[0], p[1], w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d): %w", methodFromEdges, p[0], p[1], err)
			}
		}
		return nil
	}
}

// Path returns a Constructor for the simple path P_n: i - i+1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n: i - (i+1)%n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star returns a Constructor for a star with center index 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete returns a Constructor for K_n; edges in (i asc, j asc, j>i) order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
