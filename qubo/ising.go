package qubo

import "sort"

// Ising is a spin-model problem: E(s) = Σ H[i]·s_i + Σ J[{i,j}]·s_i·s_j + Offset
// with s_i ∈ {−1,+1}.
type Ising struct {
	H      map[int]float64
	J      map[Key]float64
	Offset float64
}

// Spins maps a variable to ±1.
type Spins map[int]int8

// Energy evaluates the Ising model at s. Variables absent from s read as −1.
func (is Ising) Energy(s Spins) float64 {
	spin := func(v int) float64 {
		if s[v] > 0 {
			return 1
		}
		return -1
	}
	e := is.Offset
	hs := make([]int, 0, len(is.H))
	for v := range is.H {
		hs = append(hs, v)
	}
	sort.Ints(hs)
	for _, v := range hs {
		e += is.H[v] * spin(v)
	}
	js := make([]Key, 0, len(is.J))
	for k := range is.J {
		js = append(js, k)
	}
	sort.Slice(js, func(a, b int) bool { return js[a].less(js[b]) })
	for _, k := range js {
		e += is.J[k] * spin(k.I) * spin(k.J)
	}
	return e
}

// ToIsing converts m through x = (1+s)/2. Energies agree for matching states:
// m.Energy(a) == ToIsing().Energy(SpinsOf(a)).
//
// Complexity: O(k) for k stored pairs.
func (m *Model) ToIsing() Ising {
	is := Ising{
		H:      make(map[int]float64),
		J:      make(map[Key]float64),
		Offset: m.offset,
	}
	for _, k := range m.keys() {
		q := m.coef[k]
		if k.Linear() {
			is.H[k.I] += q / 2
			is.Offset += q / 2
			continue
		}
		is.J[k] += q / 4
		is.H[k.I] += q / 4
		is.H[k.J] += q / 4
		is.Offset += q / 4
	}
	return is
}

// FromIsing converts an Ising model back to QUBO form through s = 2x − 1.
func FromIsing(is Ising) *Model {
	m := NewModel()
	m.AddConstant(is.Offset)

	hs := make([]int, 0, len(is.H))
	for v := range is.H {
		hs = append(hs, v)
	}
	sort.Ints(hs)
	for _, v := range hs {
		m.AddLinear(v, 2*is.H[v])
		m.AddConstant(-is.H[v])
	}

	js := make([]Key, 0, len(is.J))
	for k := range is.J {
		js = append(js, k)
	}
	sort.Slice(js, func(a, b int) bool { return js[a].less(js[b]) })
	for _, k := range js {
		j := is.J[k]
		m.Add(k.I, k.J, 4*j)
		m.AddLinear(k.I, -2*j)
		m.AddLinear(k.J, -2*j)
		m.AddConstant(j)
	}
	return m
}

// SpinsOf maps a binary assignment onto spins (0 → −1, 1 → +1) over vars.
func SpinsOf(a Assignment, vars []int) Spins {
	s := make(Spins, len(vars))
	for _, v := range vars {
		if a.Get(v) == 1 {
			s[v] = 1
		} else {
			s[v] = -1
		}
	}
	return s
}

// Dense returns the upper-triangular coefficient matrix over Variables()
// order, together with that order.
func (m *Model) Dense() ([][]float64, []int) {
	vars := m.Variables()
	idx := make(map[int]int, len(vars))
	for n, v := range vars {
		idx[v] = n
	}
	q := make([][]float64, len(vars))
	for r := range q {
		q[r] = make([]float64, len(vars))
	}
	for k, v := range m.coef {
		q[idx[k.I]][idx[k.J]] = v
	}
	return q, vars
}
