// Package knapsack encodes the 0/1 knapsack problem for QUBO samplers.
//
// Item i is variable i; x_i=1 packs it. Two encodings are offered:
//
//   - Constrained: Objective plus the declared CapacityConstraint, handed to
//     a sampler.ConstrainedSampler that reports feasibility per sample.
//   - Penalty: EncodePenalty folds the capacity into the model as
//     A·(Σ w_i·x_i + Σ c_k·y_k − C)² with binary slack y numbered from
//     len(Weights) upward (see qubo.SlackCoefficients).
//
// Interpret selects the lowest-energy feasible sample for either encoding.
package knapsack

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/katalvlaran/lvqubo/sampler"
)

var (
	// ErrNoFeasibleSolution indicates no sample of the set respects the capacity.
	ErrNoFeasibleSolution = errors.New("knapsack: no feasible solution")

	// ErrDimensionMismatch indicates len(Weights) != len(Values).
	ErrDimensionMismatch = errors.New("knapsack: weights and values differ in length")

	// ErrNegativeInput indicates a negative weight, value, capacity or penalty.
	ErrNegativeInput = errors.New("knapsack: negative input")

	// ErrNonIntegral indicates fractional weights under the penalty encoding.
	ErrNonIntegral = errors.New("knapsack: weights must be integral")

	// ErrEmptyInstance indicates an instance without items.
	ErrEmptyInstance = errors.New("knapsack: no items")
)

// capacityLabel names the capacity constraint.
const capacityLabel = "capacity"

// Instance is a 0/1 knapsack: pick items maximizing Σ Values subject to
// Σ Weights ≤ Capacity.
type Instance struct {
	Weights  []float64
	Values   []float64
	Capacity float64
}

// Len returns the number of items.
func (in Instance) Len() int { return len(in.Weights) }

// Validate checks dimensions, signs and finiteness.
func (in Instance) Validate() error {
	if len(in.Weights) == 0 {
		return ErrEmptyInstance
	}
	if len(in.Weights) != len(in.Values) {
		return fmt.Errorf("Validate: %d weights, %d values: %w", len(in.Weights), len(in.Values), ErrDimensionMismatch)
	}
	if err := checkNumber("capacity", in.Capacity); err != nil {
		return err
	}
	for i := range in.Weights {
		if err := checkNumber(fmt.Sprintf("weight[%d]", i), in.Weights[i]); err != nil {
			return err
		}
		if err := checkNumber(fmt.Sprintf("value[%d]", i), in.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

func checkNumber(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Validate: %s=%v: %w", name, v, qubo.ErrNonFinite)
	}
	if v < 0 {
		return fmt.Errorf("Validate: %s=%v: %w", name, v, ErrNegativeInput)
	}
	return nil
}

// items returns 0..n-1.
func (in Instance) items() []int {
	out := make([]int, in.Len())
	for i := range out {
		out[i] = i
	}
	return out
}

// Objective returns −Σ v_i·x_i, so that the energy of any selection is its
// negated total value.
func Objective(in Instance) (*qubo.Model, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m := qubo.NewModel()
	for i, v := range in.Values {
		m.AddLinear(i, -v)
	}
	return m, nil
}

// CapacityConstraint returns Σ w_i·x_i ≤ Capacity.
func CapacityConstraint(in Instance) qubo.Constraint {
	return qubo.Constraint{
		Label: capacityLabel,
		Expr:  qubo.Weighted(in.items(), in.Weights),
		Sense: qubo.LessEqual,
		RHS:   in.Capacity,
	}
}

// EncodePenalty returns Objective(in) + a·(capacity as an equality with
// slack)². Slack variables are numbered from in.Len(); Interpret ignores them.
//
// Errors: those of Validate, ErrNegativeInput for a < 0, ErrNonIntegral.
func EncodePenalty(in Instance, a float64) (*qubo.Model, error) {
	m, err := Objective(in)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return nil, fmt.Errorf("EncodePenalty: a=%v: %w", a, qubo.ErrNonFinite)
	}
	if a < 0 {
		return nil, fmt.Errorf("EncodePenalty: a=%v: %w", a, ErrNegativeInput)
	}
	_, err = m.AddConstraint(CapacityConstraint(in), a, in.Len())
	if errors.Is(err, qubo.ErrFractionalSlack) {
		return nil, fmt.Errorf("EncodePenalty: %w", ErrNonIntegral)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Selection summarizes the packed items of an assignment.
type Selection struct {
	Items       []int
	TotalWeight float64
	TotalValue  float64
	Feasible    bool
}

// Evaluate decodes a against in. Variables at or beyond in.Len() are ignored.
func Evaluate(in Instance, a qubo.Assignment) Selection {
	var s Selection
	for i := 0; i < in.Len(); i++ {
		if a.Get(i) != 1 {
			continue
		}
		s.Items = append(s.Items, i)
		s.TotalWeight += in.Weights[i]
		s.TotalValue += in.Values[i]
	}
	s.Feasible = CapacityConstraint(in).Satisfied(a)
	return s
}

// Result is the interpreted outcome of a knapsack run.
type Result struct {
	Selection

	// Assignment holds the item variables of the chosen sample only.
	Assignment qubo.Assignment

	// Energy is the sampler-reported energy of the chosen sample.
	Energy float64
}

// Interpret picks the lowest-energy feasible sample. Every sample is checked
// against the capacity; a sample a backend flagged Infeasible is dropped
// even if the check passes. No feasible sample yields ErrNoFeasibleSolution.
func Interpret(set sampler.SampleSet, in Instance) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	if set.Len() == 0 {
		return Result{}, fmt.Errorf("knapsack: %w", sampler.ErrNoSamples)
	}

	cons := CapacityConstraint(in)
	feasible := set.Filter(func(s sampler.Sample) bool {
		return s.Feasibility != sampler.Infeasible && cons.Satisfied(s.Assignment)
	})
	best, err := feasible.First()
	if err != nil {
		return Result{}, fmt.Errorf("knapsack: %d samples: %w", set.Len(), ErrNoFeasibleSolution)
	}

	a := make(qubo.Assignment, in.Len())
	for i := 0; i < in.Len(); i++ {
		a[i] = best.Assignment.Get(i)
	}
	return Result{
		Selection:  Evaluate(in, a),
		Assignment: a,
		Energy:     best.Energy,
	}, nil
}

// SolvePenalty encodes in with penalty weight a, samples it with s and
// interprets the result.
func SolvePenalty(in Instance, a float64, s sampler.Sampler, p sampler.Params) (Result, error) {
	m, err := EncodePenalty(in, a)
	if err != nil {
		return Result{}, err
	}
	set, err := s.Sample(m, p)
	if err != nil {
		return Result{}, err
	}
	return Interpret(set, in)
}

// SolveConstrained hands Objective(in) and the capacity constraint to cs.
func SolveConstrained(in Instance, cs sampler.ConstrainedSampler, p sampler.Params) (Result, error) {
	m, err := Objective(in)
	if err != nil {
		return Result{}, err
	}
	set, err := cs.SampleConstrained(m, []qubo.Constraint{CapacityConstraint(in)}, p)
	if err != nil {
		return Result{}, err
	}
	return Interpret(set, in)
}
