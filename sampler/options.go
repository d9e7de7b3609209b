// Package sampler - Params and their validation.
//
// Validation is deterministic and side-effect free; it returns sentinel
// errors wrapped with the offending field.
package sampler

import (
	"fmt"
	"math"
)

// Defaults for Params.
const (
	DefaultNumReads = 10
	DefaultSweeps   = 1000
)

// Params configures one sampler call.
type Params struct {
	// NumReads is the number of independent candidate samples to draw (>0).
	// Exact returns at most NumReads distinct lowest states.
	NumReads int

	// Label is free text recorded in Info.
	Label string

	// Seed drives every random choice; 0 selects a fixed default seed.
	Seed int64

	// ChainStrength is the coupling strength used by embedding backends.
	// Software backends record it and ignore it.
	ChainStrength float64

	// Sweeps is the number of full Metropolis sweeps per read (Annealer only).
	Sweeps int

	// BetaMin and BetaMax bound the geometric inverse-temperature schedule
	// (Annealer only). Both zero selects a range derived from the model.
	BetaMin float64
	BetaMax float64
}

// DefaultParams returns Params with DefaultNumReads and DefaultSweeps.
func DefaultParams() Params {
	return Params{
		NumReads: DefaultNumReads,
		Sweeps:   DefaultSweeps,
	}
}

// validate checks the fields every backend relies on.
func (p Params) validate() error {
	if p.NumReads < 1 {
		return fmt.Errorf("NumReads=%d: %w", p.NumReads, ErrBadNumReads)
	}
	if p.ChainStrength < 0 || math.IsNaN(p.ChainStrength) || math.IsInf(p.ChainStrength, 0) {
		return fmt.Errorf("ChainStrength=%v: %w", p.ChainStrength, ErrBadChainStrength)
	}
	return nil
}

// validateSchedule checks the annealing fields.
func (p Params) validateSchedule() error {
	if p.Sweeps < 1 {
		return fmt.Errorf("Sweeps=%d: %w", p.Sweeps, ErrBadSchedule)
	}
	if p.BetaMin == 0 && p.BetaMax == 0 {
		return nil
	}
	if !(p.BetaMin > 0) || p.BetaMax < p.BetaMin || math.IsInf(p.BetaMax, 0) {
		return fmt.Errorf("beta range [%v,%v]: %w", p.BetaMin, p.BetaMax, ErrBadSchedule)
	}
	return nil
}

// info seeds the bookkeeping record of a call.
func (p Params) info(backend string, numVars int) Info {
	return Info{
		Backend:       backend,
		Label:         p.Label,
		RunID:         newRunID(),
		NumReads:      p.NumReads,
		NumVariables:  numVars,
		ChainStrength: p.ChainStrength,
	}
}
