package qubo

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// satTol is the tolerance used when comparing a constraint's left-hand side
// against its right-hand side.
const satTol = 1e-9

// Term is one coefficient·variable product of a linear expression.
type Term struct {
	Var  int
	Coef float64
}

// LinearExpr is Σ Coef·x_Var. A variable may appear more than once; its
// coefficients add up.
type LinearExpr []Term

// Ones returns the expression Σ x_v over vars.
func Ones(vars []int) LinearExpr {
	e := make(LinearExpr, len(vars))
	for n, v := range vars {
		e[n] = Term{Var: v, Coef: 1}
	}
	return e
}

// Weighted returns Σ coefs[n]·x_vars[n]. Extra values on either side are ignored.
func Weighted(vars []int, coefs []float64) LinearExpr {
	n := len(vars)
	if len(coefs) < n {
		n = len(coefs)
	}
	e := make(LinearExpr, n)
	for k := 0; k < n; k++ {
		e[k] = Term{Var: vars[k], Coef: coefs[k]}
	}
	return e
}

// Eval returns the value of the expression at a.
func (e LinearExpr) Eval(a Assignment) float64 {
	var s float64
	for _, t := range e {
		if a.Get(t.Var) == 1 {
			s += t.Coef
		}
	}
	return s
}

// Vars returns the distinct variables of e, sorted.
func (e LinearExpr) Vars() []int {
	seen := make(map[int]struct{}, len(e))
	out := make([]int, 0, len(e))
	for _, t := range e {
		if _, ok := seen[t.Var]; ok {
			continue
		}
		seen[t.Var] = struct{}{}
		out = append(out, t.Var)
	}
	sort.Ints(out)
	return out
}

// merged folds duplicate variables together and returns terms sorted by Var.
func (e LinearExpr) merged() LinearExpr {
	acc := make(map[int]float64, len(e))
	for _, t := range e {
		acc[t.Var] += t.Coef
	}
	out := make(LinearExpr, 0, len(acc))
	for v, c := range acc {
		out = append(out, Term{Var: v, Coef: c})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Var < out[b].Var })
	return out
}

// Bounds returns the smallest and largest values e can take over binary inputs.
func (e LinearExpr) Bounds() (lo, hi float64) {
	for _, t := range e.merged() {
		if t.Coef < 0 {
			lo += t.Coef
		} else {
			hi += t.Coef
		}
	}
	return lo, hi
}

// Sense is the relation of a Constraint.
type Sense int

const (
	// Equal requires lhs == rhs.
	Equal Sense = iota
	// LessEqual requires lhs <= rhs.
	LessEqual
	// GreaterEqual requires lhs >= rhs.
	GreaterEqual
)

// String renders the sense as its operator.
func (s Sense) String() string {
	switch s {
	case Equal:
		return "=="
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Constraint declares Expr (Sense) RHS over binary variables.
type Constraint struct {
	Label string
	Expr  LinearExpr
	Sense Sense
	RHS   float64
}

// Validate checks the sense and that every number is finite.
func (c Constraint) Validate() error {
	switch c.Sense {
	case Equal, LessEqual, GreaterEqual:
	default:
		return fmt.Errorf("Constraint %q: %v: %w", c.Label, c.Sense, ErrUnknownSense)
	}
	if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
		return fmt.Errorf("Constraint %q: rhs=%v: %w", c.Label, c.RHS, ErrNonFinite)
	}
	for _, t := range c.Expr {
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return fmt.Errorf("Constraint %q: coef of x%d=%v: %w", c.Label, t.Var, t.Coef, ErrNonFinite)
		}
	}
	return nil
}

// Violation returns how far a misses the constraint; 0 means satisfied.
func (c Constraint) Violation(a Assignment) float64 {
	lhs := c.Expr.Eval(a)
	var d float64
	switch c.Sense {
	case Equal:
		d = math.Abs(lhs - c.RHS)
	case LessEqual:
		d = math.Max(0, lhs-c.RHS)
	case GreaterEqual:
		d = math.Max(0, c.RHS-lhs)
	default:
		return math.Inf(1)
	}
	if d <= satTol {
		return 0
	}
	return d
}

// Satisfied reports whether a meets the constraint.
func (c Constraint) Satisfied(a Assignment) bool { return c.Violation(a) == 0 }

// String renders the constraint in a compact human-readable form.
func (c Constraint) String() string {
	var b strings.Builder
	if c.Label != "" {
		b.WriteString(c.Label)
		b.WriteString(": ")
	}
	for n, t := range c.Expr {
		if n > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%g·x%d", t.Coef, t.Var)
	}
	fmt.Fprintf(&b, " %s %g", c.Sense, c.RHS)
	return b.String()
}

// AllSatisfied reports whether a meets every constraint in cons.
func AllSatisfied(cons []Constraint, a Assignment) bool {
	for _, c := range cons {
		if !c.Satisfied(a) {
			return false
		}
	}
	return true
}
