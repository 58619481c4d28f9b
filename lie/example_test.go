package lie_test

import (
	"fmt"

	"github.com/katalvlaran/minuscule/lie"
)

// ExampleReflect applies s_2 to ω_2 in type A_3.
func ExampleReflect() {
	c, _ := lie.CartanMatrix(lie.TypeA, 3)
	w := lie.HighestWeight(3, 2)
	fmt.Println(lie.Reflect(w, 2, c))
	// Output:
	// [1 -1 1]
}

// ExampleValidate shows the structured rejection of a non-minuscule index.
func ExampleValidate() {
	fmt.Println(lie.Validate(lie.TypeD, 5, 2))
	// Output:
	// minuscule: invalid index 2 for D_5; allowed: 1, 4, 5
}
