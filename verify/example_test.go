package verify_test

import (
	"fmt"

	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
	"github.com/katalvlaran/minuscule/verify"
)

// ExampleVerifyExhaustively checks the vector representation of so(8).
func ExampleVerifyExhaustively() {
	p, _ := poset.Build(lie.TypeD, 4, 1)
	rep, err := verify.VerifyExhaustively(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rep.IdealsCount, rep.ExpectedCount, rep.DistinctWeights)
	fmt.Println(rep.Bijective, rep.Equivariant, rep.InOrbit)
	fmt.Println(rep.PhiExtensionIndependence.Ran, rep.AllPass)
	// Output:
	// 8 8 8
	// true true true
	// true true
}
