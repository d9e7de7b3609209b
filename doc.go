// Package lvqubo turns combinatorial problems into QUBO models, hands them
// to a sampler and reads the answer back.
//
// 🚀 What is lvqubo?
//
//	A small, deterministic toolkit for the penalty method:
//		• Coefficient maps: accumulate-or-insert over unordered pairs, offset kept apart
//		• Constraints: ==, <=, >= with squared penalties and binary slack
//		• Samplers: Exact (enumeration), Annealer (simulated annealing), Hybrid (constraint-aware)
//		• Problems: max-cut, balanced partition, 0/1 knapsack, a penalty-method toy
//
// ✨ Pipeline
//
//	instance (core.Graph, knapsack.Instance)
//	   │ Encode(instance, weights)
//	   ▼
//	qubo.Model ──► sampler.Sampler ──► sampler.SampleSet (ranked by energy)
//	                                      │ Interpret(set, instance)
//	                                      ▼
//	                        Result (sets, cut size, value, feasibility)
//
// Packages:
//
//	core/       undirected problem graph with deterministic ordering
//	builder/    graph constructors: FromEdges, Path, Cycle, Star, Complete, RandomSparse
//	qubo/       Model, Assignment, Constraint, SquaredPenalty, Ising conversion
//	sampler/    Sampler interfaces, Params, SampleSet and the three backends
//	maxcut/     max-cut encoder and interpreter
//	partition/  equal-size partition with the odd-n ±1 tolerance
//	knapsack/   capacity as a declared constraint or as a slack penalty
//	penalty/    generic objective + constraints, the Toy instance
//	cmd/lvqubo  command-line front end (JSON in, JSON out)
//
// Quick example, the 5-node reference graph:
//
//	1───2
//	│   │
//	3───4
//	 ╲ ╱
//	  5
//
// has a maximum cut of 5: maxcut.Solve(g, sampler.Exact{}, p).CutSize == 5.
//
// Penalty weights are always supplied by the caller; a weight too small for
// the objective shows up as an explicit invalid or infeasible result.
//
//	go get github.com/katalvlaran/lvqubo
package lvqubo
