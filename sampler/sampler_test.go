package sampler_test

import (
	"testing"

	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/katalvlaran/lvqubo/sampler"
	"github.com/stretchr/testify/require"
)

// triangleCut is the max-cut QUBO of a triangle on {0,1,2}: every 2|1 split
// cuts two edges (energy −2).
func triangleCut() *qubo.Model {
	m := qubo.NewModel()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		m.AddLinear(e[0], -1)
		m.AddLinear(e[1], -1)
		m.Add(e[0], e[1], 2)
	}
	return m
}

// frustrated returns a 10-variable model with mixed-sign couplings.
func frustrated() *qubo.Model {
	m := qubo.NewModel()
	for i := 0; i < 10; i++ {
		m.AddLinear(i, float64(i%3)-1.25)
		for j := i + 1; j < 10; j++ {
			if (i*7+j*3)%4 == 0 {
				m.Add(i, j, float64((i+j)%5)-2)
			}
		}
	}
	return m
}

func TestExact_RanksAscending(t *testing.T) {
	set, err := sampler.Exact{}.Sample(triangleCut(), sampler.Params{NumReads: 8, Label: "triangle"})
	require.NoError(t, err)
	require.Equal(t, 8, set.Len())
	require.Equal(t, "exact", set.Info.Backend)
	require.Equal(t, "triangle", set.Info.Label)
	require.Equal(t, 3, set.Info.NumVariables)

	for n := 1; n < set.Len(); n++ {
		require.LessOrEqual(t, set.Samples[n-1].Energy, set.Samples[n].Energy)
	}
	first, err := set.First()
	require.NoError(t, err)
	require.Equal(t, -2.0, first.Energy)
	require.Equal(t, 6, len(set.Filter(func(s sampler.Sample) bool { return s.Energy == -2 }).Samples))
	require.Equal(t, 0.0, set.Samples[7].Energy)
}

func TestExact_Errors(t *testing.T) {
	_, err := sampler.Exact{}.Sample(triangleCut(), sampler.Params{})
	require.ErrorIs(t, err, sampler.ErrBadNumReads)

	_, err = sampler.Exact{}.Sample(qubo.NewModel(), sampler.Params{NumReads: 1})
	require.ErrorIs(t, err, sampler.ErrEmptyModel)

	_, err = sampler.Exact{}.Sample(triangleCut(), sampler.Params{NumReads: 1, ChainStrength: -1})
	require.ErrorIs(t, err, sampler.ErrBadChainStrength)

	big := qubo.NewModel()
	for i := 0; i <= sampler.MaxExactVariables; i++ {
		big.AddLinear(i, 1)
	}
	_, err = sampler.Exact{}.Sample(big, sampler.Params{NumReads: 1})
	require.ErrorIs(t, err, sampler.ErrTooManyVariables)
}

func TestAnnealer_FindsGroundState(t *testing.T) {
	m := frustrated()
	truth, err := sampler.Exact{}.Sample(m, sampler.Params{NumReads: 1})
	require.NoError(t, err)
	want, _ := truth.First()

	p := sampler.DefaultParams()
	p.NumReads = 20
	p.Seed = 11
	got, err := sampler.Annealer{}.Sample(m, p)
	require.NoError(t, err)
	best, err := got.First()
	require.NoError(t, err)
	require.Equal(t, want.Energy, best.Energy)
	require.Equal(t, 20, got.TotalOccurrences())
	require.Equal(t, "simulated-annealing", got.Info.Backend)
}

func TestAnnealer_Deterministic(t *testing.T) {
	p := sampler.Params{NumReads: 5, Sweeps: 50, Seed: 3}
	a, err := sampler.Annealer{}.Sample(frustrated(), p)
	require.NoError(t, err)
	b, err := sampler.Annealer{}.Sample(frustrated(), p)
	require.NoError(t, err)
	require.Equal(t, a.Samples, b.Samples)
	require.NotEqual(t, a.Info.RunID, b.Info.RunID)
}

func TestAnnealer_ScheduleValidation(t *testing.T) {
	_, err := sampler.Annealer{}.Sample(frustrated(), sampler.Params{NumReads: 1})
	require.ErrorIs(t, err, sampler.ErrBadSchedule)

	_, err = sampler.Annealer{}.Sample(frustrated(), sampler.Params{NumReads: 1, Sweeps: 10, BetaMin: 2, BetaMax: 1})
	require.ErrorIs(t, err, sampler.ErrBadSchedule)

	set, err := sampler.Annealer{}.Sample(frustrated(), sampler.Params{NumReads: 1, Sweeps: 1, BetaMin: 0.1, BetaMax: 5})
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
}

func TestHybrid_FlagsFeasibility(t *testing.T) {
	// maximize 3a + 4b + 5c subject to 2a + 3b + 4c <= 5
	obj := qubo.NewModel()
	obj.AddLinear(0, -3)
	obj.AddLinear(1, -4)
	obj.AddLinear(2, -5)
	capacity := qubo.Constraint{
		Label: "capacity",
		Expr:  qubo.Weighted([]int{0, 1, 2}, []float64{2, 3, 4}),
		Sense: qubo.LessEqual,
		RHS:   5,
	}

	h := sampler.Hybrid{Base: sampler.Exact{}}
	set, err := h.SampleConstrained(obj, []qubo.Constraint{capacity}, sampler.Params{NumReads: 64})
	require.NoError(t, err)
	require.Equal(t, "hybrid", set.Info.Backend)

	for _, s := range set.Samples {
		require.Len(t, s.Assignment, 3, "slack variables are stripped")
		require.Equal(t, capacity.Satisfied(s.Assignment), s.Feasibility == sampler.Feasible)
		require.Equal(t, obj.Energy(s.Assignment), s.Energy)
	}

	feasible := set.Feasible()
	best, err := feasible.First()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, best.Assignment.Ones())
	require.Equal(t, -7.0, best.Energy)

	// The unconstrained optimum takes every item and is reported, flagged.
	top, err := set.First()
	require.NoError(t, err)
	require.Equal(t, sampler.Infeasible, top.Feasibility)
	require.Equal(t, -12.0, top.Energy)
}

// TestHybrid_NoConstraintsIsUnknown checks that Hybrid never claims
// feasibility for a model it was given no constraints for.
func TestHybrid_NoConstraintsIsUnknown(t *testing.T) {
	h := sampler.Hybrid{Base: sampler.Exact{}}
	set, err := h.Sample(triangleCut(), sampler.Params{NumReads: 8})
	require.NoError(t, err)
	require.Equal(t, 8, set.Len())
	for _, s := range set.Samples {
		require.Equal(t, sampler.Unknown, s.Feasibility)
	}
	require.Zero(t, set.Feasible().Len())

	set, err = h.SampleConstrained(triangleCut(), nil, sampler.Params{NumReads: 8})
	require.NoError(t, err)
	for _, s := range set.Samples {
		require.Equal(t, sampler.Unknown, s.Feasibility)
	}
}

func TestHybrid_GreaterEqualAndEquality(t *testing.T) {
	obj := qubo.NewModel()
	obj.AddLinear(0, 1)
	obj.AddLinear(1, 2)
	obj.AddLinear(2, 3)
	cons := []qubo.Constraint{
		{Label: "atleast2", Expr: qubo.Ones([]int{0, 1, 2}), Sense: qubo.GreaterEqual, RHS: 2},
		{Label: "pick0", Expr: qubo.Ones([]int{0}), Sense: qubo.Equal, RHS: 1},
	}
	set, err := sampler.Hybrid{Base: sampler.Exact{}}.SampleConstrained(obj, cons, sampler.Params{NumReads: 32})
	require.NoError(t, err)
	best, err := set.Feasible().First()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, best.Assignment.Ones())
}

func TestHybrid_Errors(t *testing.T) {
	obj := qubo.NewModel()
	obj.AddLinear(0, -1)
	frac := qubo.Constraint{Expr: qubo.Weighted([]int{0}, []float64{0.5}), Sense: qubo.LessEqual, RHS: 1}
	_, err := sampler.Hybrid{}.SampleConstrained(obj, []qubo.Constraint{frac}, sampler.Params{NumReads: 1, Sweeps: 10})
	require.ErrorIs(t, err, sampler.ErrUnsupportedConstraint)

	bad := qubo.Constraint{Expr: qubo.Ones([]int{0}), Sense: qubo.Sense(7)}
	_, err = sampler.Hybrid{}.SampleConstrained(obj, []qubo.Constraint{bad}, sampler.Params{NumReads: 1, Sweeps: 10})
	require.ErrorIs(t, err, qubo.ErrUnknownSense)

	_, err = sampler.Hybrid{}.Sample(nil, sampler.Params{NumReads: 1})
	require.ErrorIs(t, err, sampler.ErrEmptyModel)
}

func TestSampleSet_Empty(t *testing.T) {
	_, err := sampler.SampleSet{}.First()
	require.ErrorIs(t, err, sampler.ErrNoSamples)
	require.Equal(t, 0, sampler.SampleSet{}.Feasible().Len())
}
