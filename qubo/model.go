package qubo

import (
	"fmt"
	"math"
	"sort"
)

// Model is a sparse QUBO coefficient map plus a constant offset.
//
// The zero value is not usable; call NewModel. A Model is built by a single
// goroutine and handed to a sampler afterwards; it carries no locks.
type Model struct {
	coef   map[Key]float64
	offset float64
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{coef: make(map[Key]float64)}
}

// FromEntries builds a Model by accumulating every entry in es.
// Duplicate and mirrored pairs are merged by summing, so FromEntries also
// canonicalizes an arbitrary entry list.
func FromEntries(es []Entry) *Model {
	m := NewModel()
	for _, e := range es {
		m.Add(e.I, e.J, e.Value)
	}
	return m
}

// Add accumulates v onto the coefficient of the pair {i, j}.
// A zero v on an absent pair leaves the map untouched.
//
// Complexity: O(1) amortized.
func (m *Model) Add(i, j int, v float64) {
	k := NewKey(i, j)
	if cur, ok := m.coef[k]; ok {
		m.coef[k] = cur + v
		return
	}
	if v == 0 {
		return
	}
	m.coef[k] = v
}

// AddLinear accumulates v onto the diagonal term of variable i.
func (m *Model) AddLinear(i int, v float64) { m.Add(i, i, v) }

// AddConstant accumulates v onto the offset.
func (m *Model) AddConstant(v float64) { m.offset += v }

// Coefficient returns Q[i,j] (0 when absent).
func (m *Model) Coefficient(i, j int) float64 { return m.coef[NewKey(i, j)] }

// Linear returns the diagonal coefficient of i.
func (m *Model) Linear(i int) float64 { return m.coef[Key{I: i, J: i}] }

// Offset returns the constant term dropped from the coefficient map.
func (m *Model) Offset() float64 { return m.offset }

// Len returns the number of stored pairs.
func (m *Model) Len() int { return len(m.coef) }

// Variables returns every variable index referenced by the map, sorted.
func (m *Model) Variables() []int {
	seen := make(map[int]struct{}, len(m.coef))
	for k := range m.coef {
		seen[k.I] = struct{}{}
		seen[k.J] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// keys returns the stored keys sorted by (I, J).
func (m *Model) keys() []Key {
	ks := make([]Key, 0, len(m.coef))
	for k := range m.coef {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(a, b int) bool { return ks[a].less(ks[b]) })
	return ks
}

// Entries returns the coefficient map as a list sorted by (I, J).
func (m *Model) Entries() []Entry {
	ks := m.keys()
	out := make([]Entry, len(ks))
	for n, k := range ks {
		out[n] = Entry{I: k.I, J: k.J, Value: m.coef[k]}
	}
	return out
}

// Map returns a copy of the coefficient map. The offset is not included.
func (m *Model) Map() map[Key]float64 {
	out := make(map[Key]float64, len(m.coef))
	for k, v := range m.coef {
		out[k] = v
	}
	return out
}

// Energy evaluates the model, offset included, at assignment a.
// Terms are summed in (I, J) order so repeated calls agree bit for bit.
//
// Complexity: O(k log k) for k stored pairs.
func (m *Model) Energy(a Assignment) float64 {
	e := m.offset
	for _, k := range m.keys() {
		if a.Get(k.I) == 1 && a.Get(k.J) == 1 {
			e += m.coef[k]
		}
	}
	return e
}

// AddModel accumulates scale·other into m, offset included.
func (m *Model) AddModel(other *Model, scale float64) {
	if other == nil {
		return
	}
	for _, k := range other.keys() {
		m.Add(k.I, k.J, scale*other.coef[k])
	}
	m.offset += scale * other.offset
}

// Scaled returns a new Model equal to scale·m.
func (m *Model) Scaled(scale float64) *Model {
	out := NewModel()
	out.AddModel(m, scale)
	return out
}

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	return &Model{coef: m.Map(), offset: m.offset}
}

// Equal reports whether m and o hold the same coefficients and offset.
// An explicit zero coefficient equals an absent one.
func (m *Model) Equal(o *Model) bool {
	if o == nil {
		return false
	}
	if m.offset != o.offset {
		return false
	}
	for k, v := range m.coef {
		if o.coef[k] != v {
			return false
		}
	}
	for k, v := range o.coef {
		if m.coef[k] != v {
			return false
		}
	}
	return true
}

// Validate rejects NaN and infinite coefficients.
func (m *Model) Validate() error {
	for _, k := range m.keys() {
		v := m.coef[k]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("Validate: Q[%d,%d]=%v: %w", k.I, k.J, v, ErrNonFinite)
		}
	}
	if math.IsNaN(m.offset) || math.IsInf(m.offset, 0) {
		return fmt.Errorf("Validate: offset=%v: %w", m.offset, ErrNonFinite)
	}
	return nil
}

// MaxAbs returns the largest coefficient magnitude in the map.
// Useful when picking a penalty weight relative to the objective.
func (m *Model) MaxAbs() float64 {
	var mx float64
	for _, v := range m.coef {
		if v < 0 {
			v = -v
		}
		if v > mx {
			mx = v
		}
	}
	return mx
}
