// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts id if absent. Re-adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts from → to with the given weight and returns the new edge
// ID. Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Reject a second edge between the same endpoints.
//  3. Register the edge in the adjacency of from, and of to when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1. Validate
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if weight != 0 && !g.weighted {
		return "", fmt.Errorf("%w: %d on %s→%s", ErrBadWeight, weight, from, to)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	// 2. Parallel edges
	if _, dup := g.pairs[from][to]; dup {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}

	// 3. Register
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.nextEdgeID++
	e := &Edge{
		ID:       fmt.Sprintf("e%d", g.nextEdgeID),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.link(from, to, e)
	g.adjacency[from] = append(g.adjacency[from], e)
	if !g.directed && from != to {
		g.link(to, from, e)
		g.adjacency[to] = append(g.adjacency[to], e)
	}
	g.edgeCount++

	return e.ID, nil
}

func (g *Graph) link(from, to string, e *Edge) {
	if g.pairs[from] == nil {
		g.pairs[from] = make(map[string]*Edge)
	}
	g.pairs[from][to] = e
}

// HasEdge reports whether an edge from → to exists (in either direction for
// undirected edges).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pairs[from][to]

	return ok
}

// Neighbors returns the edges incident to id in insertion order: outgoing
// edges for a directed graph, every incident edge for an undirected one.
// The returned slice is a copy; the *Edge values are shared.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return append([]*Edge(nil), g.adjacency[id]...), nil
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
