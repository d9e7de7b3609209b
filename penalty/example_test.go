package penalty_test

import (
	"fmt"

	"github.com/katalvlaran/lvqubo/penalty"
	"github.com/katalvlaran/lvqubo/sampler"
)

func ExampleToy() {
	p := penalty.Toy()
	for _, w := range []float64{0.1, penalty.ToyWeight} {
		res, err := penalty.Solve(p, sampler.Exact{}, sampler.Params{NumReads: 1}, w)
		fmt.Printf("weight=%g ones=%v objective=%g err=%v\n", w, res.Assignment.Ones(), res.Objective, err)
	}
	// Output:
	// weight=0.1 ones=[] objective=0 err=penalty: 1 violated: penalty: infeasible result
	// weight=4 ones=[0 2] objective=1 err=<nil>
}
