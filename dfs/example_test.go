package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/minuscule/core"
	"github.com/katalvlaran/minuscule/dfs"
)

// ExampleLevel grades the Boolean lattice of {1,2} from the top.
func ExampleLevel() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("12", "1", 2)
	_, _ = g.AddEdge("12", "2", 1)
	_, _ = g.AddEdge("1", "0", 1)
	_, _ = g.AddEdge("2", "0", 2)

	lv, err := dfs.Level(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(lv.Order)
	fmt.Println(lv.Depth["12"], lv.Depth["1"], lv.Depth["0"], lv.MaxDepth)
	// Output:
	// [12 2 1 0]
	// 0 1 2 2
}
