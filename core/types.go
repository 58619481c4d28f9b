// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/minuscule/fault"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyVertexID indicates an empty vertex ID.
	ErrEmptyVertexID = fmt.Errorf("core: vertex ID is empty: %w", fault.ErrConfiguration)

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = fmt.Errorf("core: vertex not found: %w", fault.ErrConfiguration)

	// ErrBadWeight indicates a non-zero weight on an unweighted graph.
	ErrBadWeight = fmt.Errorf("core: bad weight for unweighted graph: %w", fault.ErrConfiguration)

	// ErrLoopNotAllowed indicates a self-loop on a graph built without WithLoops.
	ErrLoopNotAllowed = fmt.Errorf("core: self-loop not allowed: %w", fault.ErrConfiguration)

	// ErrMultiEdgeNotAllowed indicates a parallel edge.
	ErrMultiEdgeNotAllowed = fmt.Errorf("core: multi-edges not allowed: %w", fault.ErrConfiguration)
)

// Edge is a connection From → To.
//
// For undirected edges the same *Edge appears in the adjacency of both
// endpoints; Directed is false and From/To keep the insertion order.
type Edge struct {
	// ID is "e<n>" for the n-th inserted edge.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight carries caller data; lattice stores the reflection label here.
	Weight int64

	// Directed is the orientation the edge was inserted with.
	Directed bool
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops allows self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory adjacency-list graph.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]struct{}
	adjacency  map[string][]*Edge          // vertex ID → incident edges, insertion order
	pairs      map[string]map[string]*Edge // from → to → edge, mirrored when undirected
	edgeCount  int
}

// NewGraph creates an empty Graph. The default graph is undirected,
// unweighted and loop-free.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]*Edge),
		pairs:     make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the orientation of new edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
