package sampler

import (
	"container/heap"
	"fmt"
	"math/bits"
	"time"

	"github.com/katalvlaran/lvqubo/qubo"
)

// MaxExactVariables bounds the Exact backend (2^24 states).
const MaxExactVariables = 24

const backendExact = "exact"

// Exact enumerates every state and returns the NumReads lowest ones, each
// with Occurrences 1. It is the ground truth for tests and tiny instances.
type Exact struct{}

// compile-time interface check
var _ Sampler = Exact{}

// candidate is a retained state in the bounded selection heap.
type candidate struct {
	energy float64
	mask   uint64
}

// worstFirst is a max-heap on (energy, mask): the root is the state to evict.
type worstFirst []candidate

func (h worstFirst) Len() int { return len(h) }
func (h worstFirst) Less(i, j int) bool {
	if h[i].energy != h[j].energy {
		return h[i].energy > h[j].energy
	}
	return h[i].mask > h[j].mask
}
func (h worstFirst) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *worstFirst) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *worstFirst) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Sample walks all 2^n states in Gray-code order, updating the energy with
// single-flip deltas, and keeps the NumReads best. Retained states are
// re-evaluated exactly before ranking.
//
// Errors: ErrBadNumReads, ErrBadChainStrength, ErrEmptyModel, ErrTooManyVariables.
// Complexity: O(2^n · d) time for average degree d, O(NumReads) space.
func (Exact) Sample(m *qubo.Model, p Params) (SampleSet, error) {
	start := time.Now()
	if err := p.validate(); err != nil {
		return SampleSet{}, fmt.Errorf("Exact: %w", err)
	}
	if m == nil || m.Len() == 0 {
		return SampleSet{}, fmt.Errorf("Exact: %w", ErrEmptyModel)
	}
	c := compile(m)
	n := len(c.vars)
	if n > MaxExactVariables {
		return SampleSet{}, fmt.Errorf("Exact: n=%d > max=%d: %w", n, MaxExactVariables, ErrTooManyVariables)
	}

	var (
		x     = make([]uint8, n)
		e     = c.energy(x)
		mask  uint64
		h     = make(worstFirst, 0, p.NumReads+1)
		total = uint64(1) << uint(n)
		step  uint64
		bit   int
	)
	keep := func(e float64, mask uint64) {
		if h.Len() < p.NumReads {
			heap.Push(&h, candidate{energy: e, mask: mask})
			return
		}
		root := h[0]
		if e < root.energy || (e == root.energy && mask < root.mask) {
			h[0] = candidate{energy: e, mask: mask}
			heap.Fix(&h, 0)
		}
	}
	keep(e, mask)
	for step = 1; step < total; step++ {
		bit = bits.TrailingZeros64(step)
		e += c.flipDelta(x, bit)
		x[bit] ^= 1
		mask ^= uint64(1) << uint(bit)
		keep(e, mask)
	}

	samples := make([]Sample, 0, h.Len())
	for _, cd := range h {
		a := qubo.FromBits(c.vars, cd.mask)
		samples = append(samples, Sample{Assignment: a, Energy: m.Energy(a), Occurrences: 1})
	}
	rank(samples, c.vars)

	info := p.info(backendExact, n)
	info.Elapsed = time.Since(start)
	return SampleSet{Samples: samples, Info: info}, nil
}
