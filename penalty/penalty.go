// Package penalty implements the penalty method for a generic constrained
// binary problem: an objective Model plus declared constraints, merged into
// one QUBO as
//
//	objective + Σ_k λ_k·(expr_k − target_k)²
//
// where inequalities are first turned into equalities with binary slack
// (qubo.Constraint.Equality). The weights λ are the caller's; a weight too
// small for the objective's scale surfaces as ErrInfeasible from Interpret.
package penalty

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/katalvlaran/lvqubo/sampler"
)

var (
	// ErrInfeasible indicates the selected sample violates a constraint.
	ErrInfeasible = errors.New("penalty: infeasible result")

	// ErrWeightCount indicates Encode got neither one weight nor one per constraint.
	ErrWeightCount = errors.New("penalty: weight count does not match constraints")

	// ErrNilObjective indicates a Problem without an objective.
	ErrNilObjective = errors.New("penalty: objective is nil")

	// ErrNegativeWeight indicates a penalty weight below zero.
	ErrNegativeWeight = errors.New("penalty: negative weight")
)

// Problem is an objective to minimize subject to Constraints.
type Problem struct {
	Objective   *qubo.Model
	Constraints []qubo.Constraint
}

// Variables returns the sorted union of objective and constraint variables.
func (p Problem) Variables() []int {
	seen := make(map[int]struct{})
	if p.Objective != nil {
		for _, v := range p.Objective.Variables() {
			seen[v] = struct{}{}
		}
	}
	for _, c := range p.Constraints {
		for _, v := range c.Expr.Vars() {
			seen[v] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Validate checks the objective and every constraint.
func (p Problem) Validate() error {
	if p.Objective == nil {
		return ErrNilObjective
	}
	if err := p.Objective.Validate(); err != nil {
		return err
	}
	for _, c := range p.Constraints {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Encode returns the penalized model of p. weights holds either a single λ
// applied to every constraint or one λ per constraint, in order. Slack
// variables are numbered above every problem variable.
//
// Errors: ErrNilObjective, ErrWeightCount, ErrNegativeWeight, qubo.ErrNonFinite,
// qubo.ErrUnknownSense, qubo.ErrFractionalSlack.
func Encode(p Problem, weights ...float64) (*qubo.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	ws, err := expandWeights(len(p.Constraints), weights)
	if err != nil {
		return nil, err
	}

	m := p.Objective.Clone()
	next := 0
	if vs := p.Variables(); len(vs) > 0 {
		next = vs[len(vs)-1] + 1
	}
	for k, c := range p.Constraints {
		slack, err := m.AddConstraint(c, ws[k], next)
		if err != nil {
			return nil, fmt.Errorf("Encode: %w", err)
		}
		next += len(slack)
	}
	return m, nil
}

func expandWeights(n int, weights []float64) ([]float64, error) {
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("Encode: weight=%v: %w", w, qubo.ErrNonFinite)
		}
		if w < 0 {
			return nil, fmt.Errorf("Encode: weight=%v: %w", w, ErrNegativeWeight)
		}
	}
	switch {
	case n == 0 && len(weights) <= 1:
		return nil, nil
	case len(weights) == n:
		return weights, nil
	case len(weights) == 1:
		ws := make([]float64, n)
		for k := range ws {
			ws[k] = weights[0]
		}
		return ws, nil
	default:
		return nil, fmt.Errorf("Encode: %d weights for %d constraints: %w", len(weights), n, ErrWeightCount)
	}
}

// Violation is one unmet constraint.
type Violation struct {
	Label  string
	Amount float64
}

// Report is the outcome of Check.
type Report struct {
	Violations []Violation
}

// Feasible reports whether no constraint is violated.
func (r Report) Feasible() bool { return len(r.Violations) == 0 }

// Check evaluates every constraint of p on a, in declaration order.
func Check(p Problem, a qubo.Assignment) Report {
	var r Report
	for _, c := range p.Constraints {
		if v := c.Violation(a); v > 0 {
			r.Violations = append(r.Violations, Violation{Label: c.Label, Amount: v})
		}
	}
	return r
}

// Result is the interpreted top sample.
type Result struct {
	// Assignment holds problem variables only; slack is dropped.
	Assignment qubo.Assignment

	// Objective is the objective energy of Assignment, penalties excluded.
	Objective float64

	// Energy is the sampler-reported energy.
	Energy float64

	Report Report
}

// Interpret decodes the lowest-energy sample of set. A sample that violates
// any constraint yields its Result together with ErrInfeasible.
func Interpret(set sampler.SampleSet, p Problem) (Result, error) {
	if p.Objective == nil {
		return Result{}, ErrNilObjective
	}
	best, err := set.First()
	if err != nil {
		return Result{}, fmt.Errorf("penalty: %w", err)
	}

	vars := p.Variables()
	a := make(qubo.Assignment, len(vars))
	for _, v := range vars {
		a[v] = best.Assignment.Get(v)
	}
	res := Result{
		Assignment: a,
		Objective:  p.Objective.Energy(a),
		Energy:     best.Energy,
		Report:     Check(p, a),
	}
	if !res.Report.Feasible() {
		return res, fmt.Errorf("penalty: %d violated: %w", len(res.Report.Violations), ErrInfeasible)
	}
	return res, nil
}

// Solve encodes p with weights, samples it with s and interprets the result.
func Solve(p Problem, s sampler.Sampler, sp sampler.Params, weights ...float64) (Result, error) {
	m, err := Encode(p, weights...)
	if err != nil {
		return Result{}, err
	}
	set, err := s.Sample(m, sp)
	if err != nil {
		return Result{}, err
	}
	return Interpret(set, p)
}
