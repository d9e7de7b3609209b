package penalty

import "github.com/katalvlaran/lvqubo/qubo"

// ToyWeight is a penalty weight large enough for Toy.
const ToyWeight = 4.0

// Toy returns a three-variable instance: minimize
//
//	x0 + 2·x1 + 3·x2 − 3·x0·x2
//
// subject to x0 + x1 + x2 == 2. The unconstrained minimum is the empty
// selection (0); the constrained one is {0,2} with objective 1. Any weight
// below 1/4 lets the empty selection win.
func Toy() Problem {
	obj := qubo.NewModel()
	obj.AddLinear(0, 1)
	obj.AddLinear(1, 2)
	obj.AddLinear(2, 3)
	obj.Add(0, 2, -3)

	return Problem{
		Objective: obj,
		Constraints: []qubo.Constraint{{
			Label: "choose-two",
			Expr:  qubo.Ones([]int{0, 1, 2}),
			Sense: qubo.Equal,
			RHS:   2,
		}},
	}
}
