// Package sampler defines the boundary between QUBO encoders and annealing
// backends, and ships three software backends.
//
// A backend accepts a *qubo.Model plus Params and returns a SampleSet: the
// distinct assignments it found, each with its energy and occurrence count,
// ranked by ascending energy. The call is synchronous; backend errors are
// returned as-is.
//
//   - Exact      – exhaustive enumeration; ground truth for small models.
//   - Annealer   – Metropolis simulated annealing with a geometric β schedule;
//     deterministic for a given Params.Seed.
//   - Hybrid     – a constraint-aware wrapper (ConstrainedSampler): declared
//     constraints are folded into the model internally, the wrapped backend
//     samples it, and every returned sample carries a feasibility flag.
//
// Callers must not assume which backend is in use: encoders and interpreters
// only see the Sampler / ConstrainedSampler interfaces and SampleSet.
//
// ChainStrength is accepted for parity with hardware backends that embed the
// problem on a physical graph. Software backends record it in Info and
// otherwise ignore it.
package sampler
