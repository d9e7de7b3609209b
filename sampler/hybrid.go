package sampler

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvqubo/qubo"
)

const backendHybrid = "hybrid"

// Hybrid is a constraint-aware backend. Declared constraints never reach the
// caller's model: Hybrid folds them into a private copy, samples it with
// Base, drops its own slack variables, re-evaluates every state on the
// caller's objective and flags each sample Feasible or Infeasible (Unknown
// when no constraint is declared).
//
// Folding rules:
//   - Equality: Weight·(expr − rhs)².
//   - ≤ / ≥ with integral coefficients: binary slack variables turn the
//     inequality into an equality over integers (see qubo.SlackCoefficients).
//   - ≤ / ≥ with fractional coefficients: ErrUnsupportedConstraint.
//
// Weight 0 selects Σ|objective coefficients| + 1, which exceeds the whole
// objective range, so any integral violation costs more than it can gain.
type Hybrid struct {
	Base   Sampler
	Weight float64
}

// compile-time interface check
var _ ConstrainedSampler = Hybrid{}

// Sample samples m without declared constraints. Nothing is checked, so
// every sample is flagged Unknown.
func (h Hybrid) Sample(m *qubo.Model, p Params) (SampleSet, error) {
	return h.SampleConstrained(m, nil, p)
}

// SampleConstrained samples m subject to cons. With no constraints the
// samples are flagged Unknown, otherwise Feasible or Infeasible.
//
// Errors: those of Base, ErrUnsupportedConstraint, qubo.ErrUnknownSense,
// qubo.ErrNonFinite, ErrEmptyModel.
func (h Hybrid) SampleConstrained(m *qubo.Model, cons []qubo.Constraint, p Params) (SampleSet, error) {
	start := time.Now()
	if err := p.validate(); err != nil {
		return SampleSet{}, fmt.Errorf("Hybrid: %w", err)
	}
	if m == nil {
		return SampleSet{}, fmt.Errorf("Hybrid: %w", ErrEmptyModel)
	}
	for _, c := range cons {
		if err := c.Validate(); err != nil {
			return SampleSet{}, fmt.Errorf("Hybrid: %w", err)
		}
	}

	vars := problemVars(m, cons)
	if len(vars) == 0 {
		return SampleSet{}, fmt.Errorf("Hybrid: %w", ErrEmptyModel)
	}

	weight := h.Weight
	if weight <= 0 {
		weight = autoWeight(m)
	}
	folded, err := fold(m, cons, vars, weight)
	if err != nil {
		return SampleSet{}, fmt.Errorf("Hybrid: %w", err)
	}

	base := h.Base
	if base == nil {
		base = Annealer{}
	}
	raw, err := base.Sample(folded, p)
	if err != nil {
		return SampleSet{}, err
	}

	samples := make([]Sample, 0, raw.Len())
	for _, smp := range raw.Samples {
		a := make(qubo.Assignment, len(vars))
		for _, v := range vars {
			a[v] = smp.Assignment.Get(v)
		}
		f := Unknown
		if len(cons) > 0 {
			f = Feasible
			if !qubo.AllSatisfied(cons, a) {
				f = Infeasible
			}
		}
		samples = append(samples, Sample{
			Assignment:  a,
			Energy:      m.Energy(a),
			Occurrences: smp.Occurrences,
			Feasibility: f,
		})
	}
	samples = aggregate(samples, vars)
	rank(samples, vars)

	info := p.info(backendHybrid, len(vars))
	info.Elapsed = time.Since(start)
	return SampleSet{Samples: samples, Info: info}, nil
}

// problemVars returns the sorted union of model and constraint variables.
func problemVars(m *qubo.Model, cons []qubo.Constraint) []int {
	u := qubo.NewModel()
	for _, v := range m.Variables() {
		u.AddLinear(v, 1)
	}
	for _, c := range cons {
		for _, v := range c.Expr.Vars() {
			u.AddLinear(v, 1)
		}
	}
	return u.Variables()
}

// autoWeight returns Σ|Q| + 1 over the objective.
func autoWeight(m *qubo.Model) float64 {
	var s float64
	for _, e := range m.Entries() {
		s += math.Abs(e.Value)
	}
	return s + 1
}

// fold returns m plus weighted penalties for cons. Slack variables are
// numbered above every variable in vars.
func fold(m *qubo.Model, cons []qubo.Constraint, vars []int, weight float64) (*qubo.Model, error) {
	out := m.Clone()
	next := vars[len(vars)-1] + 1

	for _, c := range cons {
		slack, err := out.AddConstraint(c, weight, next)
		if errors.Is(err, qubo.ErrFractionalSlack) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedConstraint, err)
		}
		if err != nil {
			return nil, err
		}
		next += len(slack)
	}
	return out, nil
}
