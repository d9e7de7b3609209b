package sampler

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvqubo/qubo"
)

// Sentinel errors for sampling.
var (
	// ErrBadNumReads indicates Params.NumReads < 1.
	ErrBadNumReads = errors.New("sampler: num_reads must be positive")

	// ErrBadSchedule indicates an invalid annealing schedule (sweeps or β range).
	ErrBadSchedule = errors.New("sampler: invalid annealing schedule")

	// ErrBadChainStrength indicates a negative or non-finite chain strength.
	ErrBadChainStrength = errors.New("sampler: invalid chain strength")

	// ErrEmptyModel indicates a nil model or one without variables.
	ErrEmptyModel = errors.New("sampler: model has no variables")

	// ErrTooManyVariables indicates the Exact backend was asked to enumerate
	// more variables than it supports.
	ErrTooManyVariables = errors.New("sampler: too many variables for exhaustive search")

	// ErrUnsupportedConstraint indicates Hybrid cannot fold a declared constraint
	// into the model (non-integral coefficients on an inequality).
	ErrUnsupportedConstraint = errors.New("sampler: unsupported constraint")

	// ErrNoSamples indicates an empty SampleSet where one sample was required.
	ErrNoSamples = errors.New("sampler: no samples")
)

// Sampler draws low-energy assignments of a QUBO model.
type Sampler interface {
	Sample(m *qubo.Model, p Params) (SampleSet, error)
}

// ConstrainedSampler additionally understands declared constraints and
// annotates each returned sample with its feasibility.
type ConstrainedSampler interface {
	Sampler
	SampleConstrained(m *qubo.Model, cons []qubo.Constraint, p Params) (SampleSet, error)
}

// Feasibility tells whether a sample meets the declared constraints.
type Feasibility int

const (
	// Unknown means the backend did not check constraints.
	Unknown Feasibility = iota
	// Feasible means every declared constraint holds.
	Feasible
	// Infeasible means at least one declared constraint is violated.
	Infeasible
)

// String renders the flag.
func (f Feasibility) String() string {
	switch f {
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Sample is one distinct assignment returned by a backend.
type Sample struct {
	Assignment  qubo.Assignment
	Energy      float64
	Occurrences int
	Feasibility Feasibility
}

// Info carries bookkeeping about one sampler call.
type Info struct {
	Backend       string
	Label         string
	RunID         uuid.UUID
	NumReads      int
	NumVariables  int
	ChainStrength float64
	Elapsed       time.Duration
}

// SampleSet is the ranked result of one sampler call: ascending energy, ties
// broken by assignment so the order is reproducible.
type SampleSet struct {
	Samples []Sample
	Info    Info
}

// Len returns the number of distinct samples.
func (s SampleSet) Len() int { return len(s.Samples) }

// First returns the lowest-energy sample.
func (s SampleSet) First() (Sample, error) {
	if len(s.Samples) == 0 {
		return Sample{}, ErrNoSamples
	}
	return s.Samples[0], nil
}

// Feasible returns the subset flagged Feasible, keeping the ranking.
func (s SampleSet) Feasible() SampleSet {
	out := SampleSet{Info: s.Info, Samples: make([]Sample, 0, len(s.Samples))}
	for _, smp := range s.Samples {
		if smp.Feasibility == Feasible {
			out.Samples = append(out.Samples, smp)
		}
	}
	return out
}

// Filter returns the samples for which keep returns true, keeping the ranking.
func (s SampleSet) Filter(keep func(Sample) bool) SampleSet {
	out := SampleSet{Info: s.Info, Samples: make([]Sample, 0, len(s.Samples))}
	for _, smp := range s.Samples {
		if keep(smp) {
			out.Samples = append(out.Samples, smp)
		}
	}
	return out
}

// TotalOccurrences returns Σ Occurrences.
func (s SampleSet) TotalOccurrences() int {
	var n int
	for _, smp := range s.Samples {
		n += smp.Occurrences
	}
	return n
}

// stateKey renders the values of vars in a as a '0'/'1' string.
func stateKey(a qubo.Assignment, vars []int) string {
	var b strings.Builder
	b.Grow(len(vars))
	for _, v := range vars {
		if a.Get(v) == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// rank sorts samples by energy, then by state over vars.
func rank(samples []Sample, vars []int) {
	type keyed struct {
		key string
		smp Sample
	}
	ks := make([]keyed, len(samples))
	for n, smp := range samples {
		ks[n] = keyed{key: stateKey(smp.Assignment, vars), smp: smp}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].smp.Energy != ks[j].smp.Energy {
			return ks[i].smp.Energy < ks[j].smp.Energy
		}
		return ks[i].key < ks[j].key
	})
	for n := range ks {
		samples[n] = ks[n].smp
	}
}

// aggregate merges identical assignments over vars, summing occurrences.
// A merged sample keeps the first energy and feasibility seen.
func aggregate(samples []Sample, vars []int) []Sample {
	idx := make(map[string]int, len(samples))
	out := make([]Sample, 0, len(samples))
	for _, smp := range samples {
		k := stateKey(smp.Assignment, vars)
		if n, ok := idx[k]; ok {
			out[n].Occurrences += smp.Occurrences
			continue
		}
		idx[k] = len(out)
		out = append(out, smp)
	}
	return out
}

// String summarizes a sample for logs and examples.
func (s Sample) String() string {
	return fmt.Sprintf("%v energy=%g occurrences=%d %s", s.Assignment.Ones(), s.Energy, s.Occurrences, s.Feasibility)
}

// newRunID issues the identifier stored in Info.RunID.
var newRunID = uuid.New
