package qubo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/stretchr/testify/require"
)

// allAssignments enumerates every binary assignment over vars.
func allAssignments(vars []int) []qubo.Assignment {
	out := make([]qubo.Assignment, 0, 1<<uint(len(vars)))
	for mask := uint64(0); mask < 1<<uint(len(vars)); mask++ {
		out = append(out, qubo.FromBits(vars, mask))
	}
	return out
}

func TestModel_AddAccumulates(t *testing.T) {
	m := qubo.NewModel()
	m.Add(2, 1, 1.5)
	m.Add(1, 2, 0.5)
	m.AddLinear(3, -1)
	m.AddLinear(3, -2)

	require.Equal(t, 2.0, m.Coefficient(1, 2))
	require.Equal(t, 2.0, m.Coefficient(2, 1))
	require.Equal(t, -3.0, m.Linear(3))
	require.Equal(t, 0.0, m.Coefficient(4, 5))
	require.Equal(t, 2, m.Len())
	require.Equal(t, []int{1, 2, 3}, m.Variables())
}

func TestModel_ZeroOnAbsentPairIsNoop(t *testing.T) {
	m := qubo.NewModel()
	m.Add(1, 2, 0)
	require.Equal(t, 0, m.Len())

	m.Add(1, 2, 1)
	m.Add(1, 2, -1)
	require.Equal(t, 1, m.Len(), "accumulated zero keeps the pair")
	require.True(t, m.Equal(qubo.NewModel()))
}

func TestModel_EntriesSorted(t *testing.T) {
	m := qubo.FromEntries([]qubo.Entry{
		{I: 3, J: 1, Value: 1},
		{I: 0, J: 0, Value: 2},
		{I: 1, J: 3, Value: 1},
		{I: 1, J: 2, Value: -4},
	})
	require.Equal(t, []qubo.Entry{
		{I: 0, J: 0, Value: 2},
		{I: 1, J: 2, Value: -4},
		{I: 1, J: 3, Value: 2},
	}, m.Entries())
}

func TestModel_EnergyIncludesOffset(t *testing.T) {
	m := qubo.NewModel()
	m.AddLinear(0, -1)
	m.AddLinear(1, -1)
	m.Add(0, 1, 3)
	m.AddConstant(10)

	require.Equal(t, 10.0, m.Energy(qubo.Assignment{}))
	require.Equal(t, 9.0, m.Energy(qubo.Assignment{0: 1}))
	require.Equal(t, 11.0, m.Energy(qubo.Assignment{0: 1, 1: 1}))
}

func TestModel_AddModelScaledAndClone(t *testing.T) {
	a := qubo.NewModel()
	a.Add(0, 1, 1)
	a.AddConstant(1)

	b := a.Clone()
	b.AddModel(a, 2)
	require.Equal(t, 3.0, b.Coefficient(0, 1))
	require.Equal(t, 3.0, b.Offset())
	require.Equal(t, 1.0, a.Coefficient(0, 1), "clone must be independent")

	s := a.Scaled(-1)
	require.Equal(t, -1.0, s.Coefficient(0, 1))
	require.Equal(t, -1.0, s.Offset())
}

func TestModel_Validate(t *testing.T) {
	m := qubo.NewModel()
	m.Add(0, 1, 1)
	require.NoError(t, m.Validate())

	m.AddLinear(2, math.NaN())
	require.ErrorIs(t, m.Validate(), qubo.ErrNonFinite)
}

func TestModel_DenseUpperTriangular(t *testing.T) {
	m := qubo.NewModel()
	m.AddLinear(7, -1)
	m.Add(9, 7, 2)
	m.AddLinear(9, -3)

	q, vars := m.Dense()
	require.Equal(t, []int{7, 9}, vars)
	require.Equal(t, [][]float64{{-1, 2}, {0, -3}}, q)
}

func TestModel_IsingRoundTrip(t *testing.T) {
	m := qubo.NewModel()
	m.AddLinear(1, -2)
	m.AddLinear(2, 1.5)
	m.AddLinear(3, -0.5)
	m.Add(1, 2, 2)
	m.Add(2, 3, -1)
	m.Add(1, 3, 4)
	m.AddConstant(0.25)

	is := m.ToIsing()
	vars := m.Variables()
	for _, a := range allAssignments(vars) {
		require.InDelta(t, m.Energy(a), is.Energy(qubo.SpinsOf(a, vars)), 1e-12)
	}

	back := qubo.FromIsing(is)
	for _, a := range allAssignments(vars) {
		require.InDelta(t, m.Energy(a), back.Energy(a), 1e-12)
	}
}

func TestAssignment_Helpers(t *testing.T) {
	a := qubo.Assignment{4: 1, 2: 0, 1: 1}
	require.Equal(t, []int{1, 4}, a.Ones())
	require.Equal(t, []int{2, 3}, a.Zeros([]int{1, 2, 3, 4}))
	require.Equal(t, 2, a.Count())
	require.Equal(t, uint8(0), a.Get(99))

	c := a.Clone()
	c[2] = 1
	require.Equal(t, uint8(0), a.Get(2))

	require.Equal(t, qubo.Assignment{5: 1, 6: 0, 7: 1}, qubo.FromBits([]int{5, 6, 7}, 0b101))
}
