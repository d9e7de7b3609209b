// Command lvqubo encodes max-cut, balanced partition, knapsack and the
// penalty-method example as QUBO models, samples them and prints the
// interpreted result as JSON.
//
//	lvqubo maxcut --graph g.json --sampler exact
//	lvqubo partition --graph g.json --gamma 8 --num-reads 50
//	lvqubo knapsack --items items.json --sampler hybrid
//
// Flags may also come from LVQUBO_* environment variables (a .env file is
// honoured) or from ./lvqubo.yaml.
package main

import (
	"os"

	"github.com/katalvlaran/lvqubo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
