package sampler

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvqubo/qubo"
)

const backendAnneal = "simulated-annealing"

// Annealer is a classical simulated-annealing backend.
//
// Each read starts from a uniformly random state and performs Params.Sweeps
// Metropolis sweeps over the variables in index order, with β rising
// geometrically from BetaMin to BetaMax. Reads use independent RNG streams
// derived from Params.Seed, so results are reproducible.
type Annealer struct{}

// compile-time interface check
var _ Sampler = Annealer{}

// Sample runs NumReads independent anneals and returns the distinct final
// states ranked by energy.
//
// Errors: ErrBadNumReads, ErrBadChainStrength, ErrBadSchedule, ErrEmptyModel.
// Complexity: O(NumReads · Sweeps · (n + Σd)).
func (Annealer) Sample(m *qubo.Model, p Params) (SampleSet, error) {
	start := time.Now()
	if err := p.validate(); err != nil {
		return SampleSet{}, fmt.Errorf("Annealer: %w", err)
	}
	if err := p.validateSchedule(); err != nil {
		return SampleSet{}, fmt.Errorf("Annealer: %w", err)
	}
	if m == nil || m.Len() == 0 {
		return SampleSet{}, fmt.Errorf("Annealer: %w", ErrEmptyModel)
	}

	c := compile(m)
	betaMin, betaMax := p.BetaMin, p.BetaMax
	if betaMin == 0 && betaMax == 0 {
		betaMin, betaMax = c.betaRange()
	}
	betas := schedule(betaMin, betaMax, p.Sweeps)

	samples := make([]Sample, 0, p.NumReads)
	for r := 0; r < p.NumReads; r++ {
		x := c.anneal(betas, p.Seed, r)
		a := c.assignment(x)
		samples = append(samples, Sample{Assignment: a, Energy: m.Energy(a), Occurrences: 1})
	}
	samples = aggregate(samples, c.vars)
	rank(samples, c.vars)

	info := p.info(backendAnneal, len(c.vars))
	info.Elapsed = time.Since(start)
	return SampleSet{Samples: samples, Info: info}, nil
}

// schedule returns sweeps inverse temperatures spaced geometrically.
func schedule(betaMin, betaMax float64, sweeps int) []float64 {
	out := make([]float64, sweeps)
	if sweeps == 1 {
		out[0] = betaMax
		return out
	}
	ratio := math.Pow(betaMax/betaMin, 1/float64(sweeps-1))
	b := betaMin
	for s := range out {
		out[s] = b
		b *= ratio
	}
	return out
}

// anneal performs one read and returns its final state.
func (c compiled) anneal(betas []float64, seed int64, read int) []uint8 {
	rng := readRNG(seed, read)
	n := len(c.vars)
	x := make([]uint8, n)
	for i := range x {
		x[i] = uint8(rng.Intn(2))
	}

	var (
		i     int
		delta float64
	)
	for _, beta := range betas {
		for i = 0; i < n; i++ {
			delta = c.flipDelta(x, i)
			if delta <= 0 || rng.Float64() < math.Exp(-beta*delta) {
				x[i] ^= 1
			}
		}
	}

	// Final zero-temperature pass: settle into the local minimum.
	improved := true
	for improved {
		improved = false
		for i = 0; i < n; i++ {
			if c.flipDelta(x, i) < 0 {
				x[i] ^= 1
				improved = true
			}
		}
	}
	return x
}
