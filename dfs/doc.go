// Package dfs orders directed core.Graph values by depth-first search.
//
// TopologicalSort returns the reverse DFS post-order of every vertex, started
// from each unvisited vertex in sorted-ID order, so the result is
// deterministic. A back edge (including a self-loop) aborts the sort with
// ErrCycleDetected.
//
// Level builds on that order: one relaxation pass assigns every vertex its
// longest-path distance from a source. The weight lattice uses it to grade
// weights below ω_k, and poset construction uses it to rank cover graphs.
//
// Complexity:
//
//   - Time:   O(V log V + E) (vertex sort, then each edge visited once)
//   - Memory: O(V)           (recursion stack and state map)
//
// Errors:
//
//   - ErrGraphNil        (configuration class) nil graph.
//   - ErrUndirected      (configuration class) graph built without WithDirected(true).
//   - ErrCycleDetected   (invariant class) the graph has a directed cycle.
//   - ErrNeighborFetch   neighbor lookup failed.
//   - ctx.Err()          the context passed to WithCancelContext was cancelled.
package dfs
