package penalty_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvqubo/penalty"
	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/katalvlaran/lvqubo/sampler"
	"github.com/stretchr/testify/require"
)

func TestToy_Solve(t *testing.T) {
	res, err := penalty.Solve(penalty.Toy(), sampler.Exact{}, sampler.Params{NumReads: 3}, penalty.ToyWeight)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, res.Assignment.Ones())
	require.Equal(t, 1.0, res.Objective)
	require.Equal(t, 1.0, res.Energy)
	require.True(t, res.Report.Feasible())
}

func TestToy_SmallWeightIsInfeasible(t *testing.T) {
	res, err := penalty.Solve(penalty.Toy(), sampler.Exact{}, sampler.Params{NumReads: 1}, 0.1)
	require.ErrorIs(t, err, penalty.ErrInfeasible)
	require.Empty(t, res.Assignment.Ones())
	require.Len(t, res.Report.Violations, 1)
	require.Equal(t, "choose-two", res.Report.Violations[0].Label)
	require.Equal(t, 2.0, res.Report.Violations[0].Amount)
}

// TestEncode_PenaltyMatchesViolation checks, for every assignment, that the
// encoded energy is the objective plus λ·(lhs − rhs)².
func TestEncode_PenaltyMatchesViolation(t *testing.T) {
	p := penalty.Toy()
	m, err := penalty.Encode(p, 2.5)
	require.NoError(t, err)

	for mask := uint64(0); mask < 8; mask++ {
		a := qubo.FromBits([]int{0, 1, 2}, mask)
		d := float64(a.Count()) - 2
		require.InDelta(t, p.Objective.Energy(a)+2.5*d*d, m.Energy(a), 1e-9)
	}
}

func TestEncode_Weights(t *testing.T) {
	p := penalty.Toy()
	p.Constraints = append(p.Constraints, qubo.Constraint{
		Label: "no-one",
		Expr:  qubo.Ones([]int{1}),
		Sense: qubo.LessEqual,
		RHS:   0,
	})

	_, err := penalty.Encode(p, 1, 2, 3)
	require.ErrorIs(t, err, penalty.ErrWeightCount)
	_, err = penalty.Encode(p)
	require.ErrorIs(t, err, penalty.ErrWeightCount)
	_, err = penalty.Encode(p, math.Inf(1))
	require.ErrorIs(t, err, qubo.ErrNonFinite)
	_, err = penalty.Encode(p, 3, -1)
	require.ErrorIs(t, err, penalty.ErrNegativeWeight)

	one, err := penalty.Encode(p, 3)
	require.NoError(t, err)
	each, err := penalty.Encode(p, 3, 3)
	require.NoError(t, err)
	require.True(t, one.Equal(each))

	_, err = penalty.Encode(penalty.Problem{})
	require.ErrorIs(t, err, penalty.ErrNilObjective)
}

func TestEncode_InequalityUsesSlackAboveProblemVars(t *testing.T) {
	obj := qubo.NewModel()
	obj.AddLinear(3, -1)
	obj.AddLinear(5, -1)
	p := penalty.Problem{
		Objective: obj,
		Constraints: []qubo.Constraint{{
			Label: "atmost1",
			Expr:  qubo.Ones([]int{3, 5}),
			Sense: qubo.LessEqual,
			RHS:   1,
		}},
	}
	m, err := penalty.Encode(p, 5)
	require.NoError(t, err)
	require.Equal(t, []int{3, 5, 6}, m.Variables())

	res, err := penalty.Solve(p, sampler.Exact{}, sampler.Params{NumReads: 2}, 5)
	require.NoError(t, err)
	require.Equal(t, 1, res.Assignment.Count())
	require.Len(t, res.Assignment, 2)
	require.Equal(t, -1.0, res.Objective)
}

func TestCheck(t *testing.T) {
	p := penalty.Toy()
	require.True(t, penalty.Check(p, qubo.Assignment{0: 1, 1: 1}).Feasible())
	r := penalty.Check(p, qubo.Assignment{0: 1, 1: 1, 2: 1})
	require.False(t, r.Feasible())
	require.Equal(t, 1.0, r.Violations[0].Amount)
}

func TestInterpret_Empty(t *testing.T) {
	_, err := penalty.Interpret(sampler.SampleSet{}, penalty.Toy())
	require.ErrorIs(t, err, sampler.ErrNoSamples)
}
