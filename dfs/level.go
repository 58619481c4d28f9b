// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/minuscule/core"
)

// Level returns a topological order of g and the longest-path depth of every
// vertex, relaxing each edge once along that order.
//
// Complexity: O(V log V + E) time, O(V) memory.
func Level(g *core.Graph, options ...TopoOption) (*Leveling, error) {
	order, err := TopologicalSort(g, options...)
	if err != nil {
		return nil, err
	}

	lv := &Leveling{Order: order, Depth: make(map[string]int, len(order))}
	var edges []*core.Edge
	for _, u := range order {
		du := lv.Depth[u]
		lv.Depth[u] = du // sources are never relaxed
		if edges, err = g.Neighbors(u); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNeighborFetch, err)
		}
		for _, e := range edges {
			if !e.Directed || e.From != u {
				continue
			}
			if du+1 > lv.Depth[e.To] {
				lv.Depth[e.To] = du + 1
			}
		}
		if du > lv.MaxDepth {
			lv.MaxDepth = du
		}
	}

	return lv, nil
}
