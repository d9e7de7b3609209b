package qubo

// SquaredPenalty expands (Σ a_i·x_i − target)² into a Model.
//
// With binary x, x_i² = x_i, so the square collapses to
//
//	Σ_i (a_i² − 2·target·a_i)·x_i + Σ_{i<j} 2·a_i·a_j·x_i·x_j + target²
//
// The constant target² goes to the offset and never into the coefficient
// map. Energy of the returned model is therefore ≥ 0 everywhere and exactly 0
// where Σ a_i·x_i == target. Duplicate variables in expr are merged before
// expanding.
//
// Complexity: O(k²) for k distinct variables.
func SquaredPenalty(expr LinearExpr, target float64) *Model {
	m := NewModel()
	ts := expr.merged()

	var (
		i, j   int
		ai, aj float64
	)
	for i = 0; i < len(ts); i++ {
		ai = ts[i].Coef
		m.AddLinear(ts[i].Var, ai*ai-2*target*ai)
		for j = i + 1; j < len(ts); j++ {
			aj = ts[j].Coef
			m.Add(ts[i].Var, ts[j].Var, 2*ai*aj)
		}
	}
	m.AddConstant(target * target)
	return m
}

// AddPenalty accumulates weight·(expr − target)² into m.
func (m *Model) AddPenalty(expr LinearExpr, target, weight float64) {
	m.AddModel(SquaredPenalty(expr, target), weight)
}
