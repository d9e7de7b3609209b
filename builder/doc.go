// SPDX-License-Identifier: MIT
// Package builder generates deterministic problem graphs for the graph
// encoders (maxcut, partition) and for tests.
//
// One orchestrator, several constructors:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithFirstID(1)},
//	    builder.RandomSparse(41, 0.2),
//	)
//
// Constructors:
//   - FromEdges(pairs) – literal edge list, e.g. the 5-node max-cut reference.
//   - Path(n), Cycle(n), Star(n), Complete(n) – classic topologies.
//   - RandomSparse(n, p) – Erdős–Rényi G(n,p); requires WithSeed/WithRand for 0<p<1.
//
// Vertex IDs are firstID, firstID+1, … (default 0). Edge weights come from the
// configured weight function and are only used on weighted graphs.
//
// Guarantees:
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors wrapped with
//     the method name. Option constructors panic on meaningless values.
package builder
