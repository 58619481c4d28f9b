package csp_test

import (
	"fmt"

	"github.com/katalvlaran/minuscule/csp"
)

// ExampleGaussianBinomial prints [5 choose 2]_q and its values at the 5th roots of unity.
func ExampleGaussianBinomial() {
	g := csp.GaussianBinomial(5, 2)
	fmt.Println(g)
	for p := 0; p < 5; p++ {
		ev, _ := csp.EvaluateAtRootOfUnity(g, 5, p)
		fmt.Print(ev.Rounded, " ")
	}
	fmt.Println()
	// Output:
	// [1 1 2 2 2 1 1]
	// 10 0 0 0 0
}
