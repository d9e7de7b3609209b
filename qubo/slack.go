package qubo

import (
	"fmt"
	"math"
)

// SlackCoefficients returns the coefficients c_0..c_{k-1} of a binary slack
// encoding of an integer in [0, upper]: powers of two with the last one
// clipped so that Σ c_k == upper. Every integer in range is reachable and
// none beyond it.
//
//	upper=0  → []
//	upper=5  → [1 2 2]
//	upper=7  → [1 2 4]
//	upper=10 → [1 2 4 3]
//
// Complexity: O(log upper).
func SlackCoefficients(upper int) []float64 {
	if upper <= 0 {
		return nil
	}
	var (
		out []float64
		sum int
		p   = 1
	)
	for sum+p <= upper {
		out = append(out, float64(p))
		sum += p
		p <<= 1
	}
	if rest := upper - sum; rest > 0 {
		out = append(out, float64(rest))
	}
	return out
}

// Integral reports whether every coefficient of e is an integer.
func (e LinearExpr) Integral() bool {
	for _, t := range e {
		if t.Coef != math.Trunc(t.Coef) {
			return false
		}
	}
	return true
}

// Equality rewrites c as an equality Σ a_i·x_i + Σ s_k·y_k == target over
// binary slack variables y numbered from next upward. It returns the
// augmented expression, the integer target and the slack variables used.
//
//	==  expr unchanged, target = RHS, no slack
//	<=  expr + slack, target = floor(RHS), slack ∈ [0, target − min(expr)]
//	>=  expr − slack, target = ceil(RHS),  slack ∈ [0, max(expr) − target]
//
// Inequalities need integral coefficients; otherwise ErrFractionalSlack.
// An inequality that holds for every binary input (max(expr) ≤ RHS for <=,
// min(expr) ≥ RHS for >=) returns an empty expression with target 0: its
// penalty is identically zero and it uses no slack. One that can never be
// met yields a negative range, also without slack, and its penalty stays
// positive everywhere.
func (c Constraint) Equality(next int) (LinearExpr, float64, []int, error) {
	if err := c.Validate(); err != nil {
		return nil, 0, nil, err
	}
	expr := append(LinearExpr(nil), c.Expr...)
	if c.Sense == Equal {
		return expr, c.RHS, nil, nil
	}
	if !c.Expr.Integral() {
		return nil, 0, nil, fmt.Errorf("Constraint %q: %s: %w", c.Label, c.Sense, ErrFractionalSlack)
	}

	lo, hi := c.Expr.Bounds()
	if (c.Sense == LessEqual && hi <= c.RHS) || (c.Sense == GreaterEqual && lo >= c.RHS) {
		return nil, 0, nil, nil
	}
	var (
		target float64
		upper  int
		sign   float64
	)
	if c.Sense == LessEqual {
		target = math.Floor(c.RHS)
		upper = int(target - lo)
		sign = 1
	} else {
		target = math.Ceil(c.RHS)
		upper = int(hi - target)
		sign = -1
	}

	coefs := SlackCoefficients(upper)
	slack := make([]int, 0, len(coefs))
	for _, s := range coefs {
		expr = append(expr, Term{Var: next, Coef: sign * s})
		slack = append(slack, next)
		next++
	}
	return expr, target, slack, nil
}

// AddConstraint accumulates weight·(Equality(c) − target)² into m and
// returns the slack variables it introduced, numbered from next.
func (m *Model) AddConstraint(c Constraint, weight float64, next int) ([]int, error) {
	expr, target, slack, err := c.Equality(next)
	if err != nil {
		return nil, err
	}
	m.AddPenalty(expr, target, weight)
	return slack, nil
}
