// SPDX-License-Identifier: MIT

package chain_test

import (
	"fmt"

	"github.com/katalvlaran/chainsort/chain"
)

// ExampleGenerate generates a small batch on the compiled path and checks
// the invariants every chain satisfies.
func ExampleGenerate() {
	c, err := chain.Generate(5, chain.WithPath(chain.Compiled), chain.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	lengths, _, _, _ := c.Unpack()
	fmt.Println("chains:", len(lengths))
	fmt.Println("valid:", c.Validate() == nil)
	// Output:
	// chains: 5
	// valid: true
}
