package qubo

import (
	"errors"
	"sort"
)

// Sentinel errors for model construction and evaluation.
var (
	// ErrUnknownSense indicates a Constraint with a Sense outside Equal/LessEqual/GreaterEqual.
	ErrUnknownSense = errors.New("qubo: unknown constraint sense")

	// ErrNonFinite indicates a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("qubo: non-finite coefficient")

	// ErrFractionalSlack indicates an inequality whose coefficients are not
	// integers, so no binary slack encoding reaches every feasible value.
	ErrFractionalSlack = errors.New("qubo: inequality needs integral coefficients")
)

// Key identifies an unordered pair of variables. Keys built with NewKey
// always satisfy I ≤ J; I==J denotes a linear term.
type Key struct {
	I int
	J int
}

// NewKey returns the canonical key for the pair {i, j}.
func NewKey(i, j int) Key {
	if i > j {
		i, j = j, i
	}
	return Key{I: i, J: j}
}

// Linear reports whether k addresses a diagonal term.
func (k Key) Linear() bool { return k.I == k.J }

// less orders keys by I then J.
func (k Key) less(o Key) bool {
	if k.I != o.I {
		return k.I < o.I
	}
	return k.J < o.J
}

// An Entry is a single coefficient. If I==J it is a linear term, otherwise a
// quadratic one.
type Entry struct {
	I     int
	J     int
	Value float64
}

// Assignment maps a variable index to its binary value.
// Missing variables read as 0.
type Assignment map[int]uint8

// Get returns the value of variable v (0 when absent).
func (a Assignment) Get(v int) uint8 {
	if a[v] != 0 {
		return 1
	}
	return 0
}

// Ones returns the sorted indices set to 1.
func (a Assignment) Ones() []int {
	out := make([]int, 0, len(a))
	for v, x := range a {
		if x != 0 {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// Zeros returns the sorted indices of vars that are 0 in a.
func (a Assignment) Zeros(vars []int) []int {
	out := make([]int, 0, len(vars))
	for _, v := range vars {
		if a.Get(v) == 0 {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// Count returns the number of variables set to 1.
func (a Assignment) Count() int {
	var n int
	for _, x := range a {
		if x != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for v, x := range a {
		out[v] = x
	}
	return out
}

// FromBits builds an Assignment over vars from the low bits of mask:
// vars[k] takes bit k.
func FromBits(vars []int, mask uint64) Assignment {
	a := make(Assignment, len(vars))
	for k, v := range vars {
		a[v] = uint8((mask >> uint(k)) & 1)
	}
	return a
}
