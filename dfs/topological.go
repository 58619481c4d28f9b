// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/minuscule/core"
)

type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[string]int
	order []string
}

// TopologicalSort computes a topological ordering of all vertices in g.
//
// Steps:
//  1. Validate the graph and apply options.
//  2. DFS from every White vertex in sorted-ID order, recording post-order.
//  3. Reverse the post-order.
//
// Complexity: O(V log V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 2. Forest traversal
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 3. Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit explores id, reporting a back edge as ErrCycleDetected.
func (t *topoSorter) visit(id string) error {
	// 1. Cancellation
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	// 2. Gray means id is on the stack: back edge
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: back edge into %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	// 3. Outgoing edges
	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNeighborFetch, err)
	}
	for _, e := range neighbors {
		if !e.Directed || e.From != id {
			continue
		}
		if err = t.visit(e.To); err != nil {
			return err
		}
	}

	// 4. Finished
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
