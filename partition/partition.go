// Package partition encodes equal-size graph partitioning as a QUBO.
//
// Vertices with x=1 form S1, the rest S0. The model is
//
//	Σ_{(i,j)∈E} w_ij·(x_i + x_j − 2·x_i·x_j)  +  γ·P(x)
//
// where the first sum is the weighted cut and P is the size penalty
//
//	P(x) = (Σ x_i − n/2)²            n even
//	P(x) = (Σ x_i − n/2)² − 1/4      n odd
//
// For odd n the −1/4 lands in the offset only, so P is exactly 0 at both
// ⌊n/2⌋ and ⌈n/2⌉ and at least 2 everywhere else; for even n it is 0 at n/2
// and at least 1 elsewhere. γ is the caller's: too small a γ lets the
// sampler trade balance for cut, which Interpret reports as
// ErrInvalidPartition.
package partition

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvqubo/core"
	"github.com/katalvlaran/lvqubo/maxcut"
	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/katalvlaran/lvqubo/sampler"
)

var (
	// ErrInvalidPartition indicates the selected sample splits the vertices
	// into sides whose sizes differ by more than the tolerance.
	ErrInvalidPartition = errors.New("partition: invalid partition")

	// ErrNilGraph indicates a nil instance graph.
	ErrNilGraph = errors.New("partition: graph is nil")

	// ErrBadGamma indicates a negative, NaN or infinite penalty weight.
	ErrBadGamma = errors.New("partition: gamma must be finite and non-negative")
)

// Result is a decoded partition.
type Result struct {
	Assignment qubo.Assignment
	Set0       []int
	Set1       []int
	CutSize    float64
	Energy     float64

	// Valid reports whether |Set1| is n/2 (n even) or ⌊n/2⌋/⌈n/2⌉ (n odd).
	Valid bool
}

// Objective returns the cut model of g, whose energy equals the weighted cut
// size of every assignment.
func Objective(g *core.Graph) (*qubo.Model, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return maxcut.CutObjective(g)
}

// SizePenalty returns P(x) over vars for a graph of n vertices.
//
// Complexity: O(len(vars)²).
func SizePenalty(vars []int, n int) *qubo.Model {
	m := qubo.SquaredPenalty(qubo.Ones(vars), float64(n)/2)
	if n%2 != 0 {
		m.AddConstant(-0.25)
	}
	return m
}

// Encode returns Objective(g) + gamma·SizePenalty(V, |V|).
//
// Errors: ErrNilGraph, ErrBadGamma.
func Encode(g *core.Graph, gamma float64) (*qubo.Model, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma < 0 {
		return nil, fmt.Errorf("Encode: gamma=%v: %w", gamma, ErrBadGamma)
	}
	m, err := Objective(g)
	if err != nil {
		return nil, err
	}
	vs := g.Vertices()
	m.AddModel(SizePenalty(vs, len(vs)), gamma)
	return m, nil
}

// ValidSize reports whether one side of k vertices out of n is balanced.
func ValidSize(n, k int) bool {
	return k == n/2 || k == (n+1)/2
}

// Interpret decodes the lowest-energy sample of set against g. An unbalanced
// sample yields the decoded Result together with ErrInvalidPartition.
//
// Errors: ErrNilGraph, sampler.ErrNoSamples, ErrInvalidPartition.
func Interpret(set sampler.SampleSet, g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	best, err := set.First()
	if err != nil {
		return Result{}, fmt.Errorf("partition: %w", err)
	}

	s0, s1 := maxcut.Decode(g, best.Assignment)
	res := Result{
		Assignment: best.Assignment,
		Set0:       s0,
		Set1:       s1,
		CutSize:    maxcut.CutSize(g, best.Assignment),
		Energy:     best.Energy,
		Valid:      ValidSize(len(s0)+len(s1), len(s1)),
	}
	if !res.Valid {
		return res, fmt.Errorf("partition: sizes %d/%d of %d: %w",
			len(s0), len(s1), len(s0)+len(s1), ErrInvalidPartition)
	}
	return res, nil
}

// Solve encodes g with gamma, samples it with s and interprets the result.
func Solve(g *core.Graph, gamma float64, s sampler.Sampler, p sampler.Params) (Result, error) {
	m, err := Encode(g, gamma)
	if err != nil {
		return Result{}, err
	}
	set, err := s.Sample(m, p)
	if err != nil {
		return Result{}, err
	}
	return Interpret(set, g)
}
