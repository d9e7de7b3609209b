package sampler

import (
	"math"

	"github.com/katalvlaran/lvqubo/qubo"
)

// neighbor is one off-diagonal coupling seen from a variable.
type neighbor struct {
	j int
	w float64
}

// pair is one stored coefficient in dense-index form.
type pair struct {
	a, b int
	v    float64
}

// compiled is a Model re-indexed to 0..n-1 for fast local moves.
//
// entries keep Model.Entries() order, so energy() sums terms in the same
// order as qubo.Model.Energy and both agree bit for bit.
type compiled struct {
	vars    []int
	lin     []float64
	nbrs    [][]neighbor
	entries []pair
	offset  float64
}

// compile re-indexes m over its sorted Variables().
func compile(m *qubo.Model) compiled {
	vars := m.Variables()
	idx := make(map[int]int, len(vars))
	for n, v := range vars {
		idx[v] = n
	}
	c := compiled{
		vars:   vars,
		lin:    make([]float64, len(vars)),
		nbrs:   make([][]neighbor, len(vars)),
		offset: m.Offset(),
	}
	for _, e := range m.Entries() {
		a, b := idx[e.I], idx[e.J]
		c.entries = append(c.entries, pair{a: a, b: b, v: e.Value})
		if a == b {
			c.lin[a] += e.Value
			continue
		}
		c.nbrs[a] = append(c.nbrs[a], neighbor{j: b, w: e.Value})
		c.nbrs[b] = append(c.nbrs[b], neighbor{j: a, w: e.Value})
	}
	return c
}

// energy evaluates the state x (indexed like vars).
func (c compiled) energy(x []uint8) float64 {
	e := c.offset
	for _, p := range c.entries {
		if x[p.a] == 1 && x[p.b] == 1 {
			e += p.v
		}
	}
	return e
}

// flipDelta returns the energy change of flipping variable i in x.
func (c compiled) flipDelta(x []uint8, i int) float64 {
	f := c.lin[i]
	for _, nb := range c.nbrs[i] {
		if x[nb.j] == 1 {
			f += nb.w
		}
	}
	if x[i] == 1 {
		return -f
	}
	return f
}

// assignment maps a dense state back to variable indices.
func (c compiled) assignment(x []uint8) qubo.Assignment {
	a := make(qubo.Assignment, len(c.vars))
	for n, v := range c.vars {
		a[v] = x[n]
	}
	return a
}

// betaRange derives a default inverse-temperature range: hot enough that the
// largest single-flip uphill move is accepted with probability 1/2, cold
// enough that the smallest is accepted with probability 1/100.
func (c compiled) betaRange() (float64, float64) {
	var (
		maxField float64
		minCoef  = math.Inf(1)
	)
	for i := range c.vars {
		f := math.Abs(c.lin[i])
		if c.lin[i] != 0 && f < minCoef {
			minCoef = f
		}
		for _, nb := range c.nbrs[i] {
			w := math.Abs(nb.w)
			f += w
			if w != 0 && w < minCoef {
				minCoef = w
			}
		}
		if f > maxField {
			maxField = f
		}
	}
	if maxField == 0 || math.IsInf(minCoef, 1) {
		return 1, 1
	}
	return math.Ln2 / maxField, math.Log(100) / minCoef
}
