// Package qubo provides the coefficient map at the heart of every
// Quadratic Unconstrained Binary Optimization model, plus the algebra needed
// to turn objectives and side constraints into one.
//
// A Model maps unordered variable pairs to real coefficients:
//
//	E(x) = Σ_{i≤j} Q[i,j]·x_i·x_j + offset,   x_i ∈ {0,1}
//
// Pairs with I==J are linear (diagonal) terms because x_i² = x_i. Every
// insertion accumulates onto the existing coefficient (accumulate-or-insert);
// a pair that was never touched has coefficient 0. The constant offset is kept
// apart from the map: samplers never see it, but Energy includes it so that a
// satisfied penalty evaluates to exactly zero.
//
// Constraints:
//
//	Constraint{Expr, Sense, RHS} declares Σ a_i·x_i (==|<=|>=) RHS.
//	SquaredPenalty(expr, t) expands (Σ a_i·x_i − t)² into a Model:
//	  diagonal      a_i² − 2·t·a_i
//	  off-diagonal  2·a_i·a_j           (i<j)
//	  offset        t²
//
// Scale the penalty with Scaled(γ) and merge it with AddModel; the merged
// model is minimal exactly where the constraint holds once γ is large enough
// relative to the objective coefficients. Picking γ is the caller's job.
//
// Conversions:
//
//	Entries()  sorted (I,J) list, the wire shape samplers consume
//	Dense()    upper-triangular matrix over Variables() order
//	ToIsing()  h, J and energy offset for spin (±1) solvers; FromIsing reverses it
package qubo
