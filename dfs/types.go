// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/minuscule/fault"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = fmt.Errorf("dfs: graph is nil: %w", fault.ErrConfiguration)

	// ErrUndirected is returned when an ordering is requested on an undirected graph.
	ErrUndirected = fmt.Errorf("dfs: topological order requires a directed graph: %w", fault.ErrConfiguration)

	// ErrCycleDetected indicates a back edge during TopologicalSort.
	ErrCycleDetected = fmt.Errorf("dfs: cycle detected: %w", fault.ErrInvariant)

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = fmt.Errorf("dfs: failed to fetch neighbors: %w", fault.ErrInvariant)
)

// TopoOption configures TopologicalSort and Level.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Leveling is a topological order together with longest-path depths.
type Leveling struct {
	// Order lists every vertex so that each edge u → v has u before v.
	Order []string

	// Depth maps a vertex to the length of the longest path reaching it from
	// a source; sources have depth 0.
	Depth map[string]int

	// MaxDepth is the largest value in Depth (0 for an empty graph).
	MaxDepth int
}
