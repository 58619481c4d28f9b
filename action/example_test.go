package action_test

import (
	"fmt"

	"github.com/katalvlaran/minuscule/action"
	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

// ExampleOrbitFrom walks the Fon-Der-Flaass orbit of the empty ideal in A_3, k = 2.
func ExampleOrbitFrom() {
	p, _ := poset.Build(lie.TypeA, 3, 2)
	o, err := action.OrbitFrom(p, bitmask.Mask{}, action.FonDerFlaass{})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, m := range o.Masks {
		fmt.Println(m)
	}
	fmt.Println("length:", o.Length)
	// Output:
	// {}
	// {0}
	// {0,1,2}
	// {0,1,2,3}
	// length: 4
}
