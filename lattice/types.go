// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
)

var (
	// ErrCyclic indicates that the oriented weight graph is not a DAG.
	ErrCyclic = fmt.Errorf("lattice: oriented weight graph has a cycle: %w", fault.ErrInvariant)

	// ErrUnorientedEdge indicates a reflected weight missing from the orbit.
	ErrUnorientedEdge = fmt.Errorf("lattice: reflected weight outside the orbit: %w", fault.ErrInvariant)

	// ErrEmptyInput is returned for an empty Cartan matrix or a highest
	// weight whose length does not match it.
	ErrEmptyInput = errors.New("lattice: cartan matrix and highest weight must be non-empty and of equal size")
)

// Edge is a labeled covering edge From → To with To = s_Label(From).
type Edge struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Label int `json:"label"`
}

// Lattice is the oriented Weyl orbit of a highest weight.
type Lattice struct {
	n        int
	weights  [][]int
	index    map[string]int
	top      int
	down     [][]Edge
	up       [][]Edge
	topo     []int
	depth    []int
	maxDepth int
	closure  []bitmask.Mask
}

// Len returns the number of weights.
func (l *Lattice) Len() int { return len(l.weights) }

// Rank returns n, the length of every weight vector.
func (l *Lattice) Rank() int { return l.n }

// Top returns the index of the highest weight (always 0).
func (l *Lattice) Top() int { return l.top }

// Weight returns a copy of weight i.
func (l *Lattice) Weight(i int) []int { return append([]int(nil), l.weights[i]...) }

// Weights returns copies of all weights in discovery order.
func (l *Lattice) Weights() [][]int {
	out := make([][]int, len(l.weights))
	for i := range l.weights {
		out[i] = l.Weight(i)
	}

	return out
}

// IndexOf returns the lattice index of weight.
func (l *Lattice) IndexOf(weight []int) (int, bool) {
	i, ok := l.index[key(weight)]

	return i, ok
}

// Contains reports whether weight lies in the orbit.
func (l *Lattice) Contains(weight []int) bool {
	_, ok := l.IndexOf(weight)

	return ok
}

// Down returns the outgoing (downward) edges of weight i.
func (l *Lattice) Down(i int) []Edge { return append([]Edge(nil), l.down[i]...) }

// Up returns the incoming edges of weight i.
func (l *Lattice) Up(i int) []Edge { return append([]Edge(nil), l.up[i]...) }

// Topological returns a topological order from the top down.
func (l *Lattice) Topological() []int { return append([]int(nil), l.topo...) }

// Depth returns the longest-path distance of weight i below the top.
func (l *Lattice) Depth(i int) int { return l.depth[i] }

// MaxDepth returns the largest depth.
func (l *Lattice) MaxDepth() int { return l.maxDepth }

// Closure returns the downward closure of weight i, including i.
func (l *Lattice) Closure(i int) bitmask.Mask { return l.closure[i] }

// Below reports whether b is reachable from a by down edges (a ≥ b).
func (l *Lattice) Below(a, b int) bool { return l.closure[a].Has(b) }

// JoinIrreducibles returns, in increasing index order, the weights with
// exactly one down edge.
func (l *Lattice) JoinIrreducibles() []int {
	var out []int
	for i, edges := range l.down {
		if len(edges) == 1 {
			out = append(out, i)
		}
	}

	return out
}
