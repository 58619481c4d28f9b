// Package core is the small directed graph the minuscule engine levels its
// weight orbits and cover relations on.
//
// A Graph stores string vertex IDs and int64-weighted edges. Both
// lattice.Build (vertices are weight keys, the weight of an edge is the
// reflection label) and poset.Build (vertices are node display names) build
// one and hand it to package dfs for ordering and cycle detection.
//
// Configuration Options (GraphOption):
//
//	WithDirected(bool)  default orientation of new edges; undirected edges
//	                    are mirrored into the adjacency of both endpoints.
//	WithWeighted()      permits non-zero weights; otherwise ErrBadWeight.
//	WithLoops()         permits from == to; otherwise ErrLoopNotAllowed.
//
// Parallel edges are always rejected with ErrMultiEdgeNotAllowed.
//
// Determinism:
//
//   - Vertices() is sorted lexicographically.
//   - Neighbors(id) returns edges in insertion order.
//   - Edge IDs are "e1", "e2", ... in insertion order.
//
// Concurrency: every method takes the graph's RWMutex, so a Graph may be read
// from several goroutines while another one adds to it.
//
// Errors:
//
//   - ErrEmptyVertexID        (configuration class) empty vertex ID.
//   - ErrVertexNotFound       (configuration class) unknown vertex ID.
//   - ErrBadWeight            (configuration class) weight on an unweighted graph.
//   - ErrLoopNotAllowed       (configuration class) self-loop without WithLoops.
//   - ErrMultiEdgeNotAllowed  (configuration class) second edge between the same endpoints.
package core
