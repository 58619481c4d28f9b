// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/core"
	"github.com/katalvlaran/minuscule/dfs"
	"github.com/katalvlaran/minuscule/lie"
)

// Build computes the oriented orbit lattice of highest under the Weyl group
// of cartan.
//
// Errors:
//   - ErrEmptyInput for mismatched or empty inputs.
//   - bitmask.ErrCapacity when the orbit exceeds bitmask.MaxBits weights.
//   - ErrCyclic or ErrUnorientedEdge (invariant class) for a malformed orientation.
func Build(cartan lie.Matrix, highest []int) (*Lattice, error) {
	// 1. Validate shapes
	n := cartan.Size()
	if n == 0 || len(highest) != n {
		return nil, ErrEmptyInput
	}

	l := &Lattice{
		n:     n,
		index: make(map[string]int),
	}

	// 2. Breadth-first orbit; the slice itself serves as the queue
	l.top = l.add(highest)
	for q := 0; q < len(l.weights); q++ {
		for label := 1; label <= n; label++ {
			l.add(lie.Reflect(l.weights[q], label, cartan))
		}
		if err := bitmask.CheckCapacity(len(l.weights)); err != nil {
			return nil, fmt.Errorf("lattice: weight orbit: %w", err)
		}
	}

	// 3. Orient edges by positive pairing
	size := len(l.weights)
	l.down = make([][]Edge, size)
	l.up = make([][]Edge, size)
	for from, w := range l.weights {
		for label := 1; label <= n; label++ {
			if lie.Pairing(w, label) <= 0 {
				continue
			}
			to, ok := l.IndexOf(lie.Reflect(w, label, cartan))
			if !ok {
				return nil, fmt.Errorf("%w: s_%d of weight %d", ErrUnorientedEdge, label, from)
			}
			e := Edge{From: from, To: to, Label: label}
			l.down[from] = append(l.down[from], e)
			l.up[to] = append(l.up[to], e)
		}
	}

	// 4. Topological order with longest-path depths
	if err := l.level(); err != nil {
		return nil, err
	}

	// 5. Downward closures in reverse topological order
	l.closure = make([]bitmask.Mask, size)
	for i := len(l.topo) - 1; i >= 0; i-- {
		v := l.topo[i]
		c := bitmask.FromIndices(v)
		for _, e := range l.down[v] {
			c = c.Or(l.closure[e.To])
		}
		l.closure[v] = c
	}

	return l, nil
}

// add inserts w if unseen and returns its index.
func (l *Lattice) add(w []int) int {
	k := key(w)
	if i, ok := l.index[k]; ok {
		return i
	}
	i := len(l.weights)
	l.weights = append(l.weights, append([]int(nil), w...))
	l.index[k] = i

	return i
}

// level orders the oriented orbit with dfs.Level over a directed core.Graph
// keyed by weight key, whose edge weights are the reflection labels.
func (l *Lattice) level() error {
	// 1. Weight graph; loops are admitted so a fixed weight reads as a cycle
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	ids := make([]string, len(l.weights))
	for i, w := range l.weights {
		ids[i] = key(w)
		if err := g.AddVertex(ids[i]); err != nil {
			return fmt.Errorf("lattice: weight %d: %w", i, err)
		}
	}
	for _, edges := range l.down {
		for _, e := range edges {
			if _, err := g.AddEdge(ids[e.From], ids[e.To], int64(e.Label)); err != nil {
				return fmt.Errorf("lattice: edge %d→%d: %w", e.From, e.To, err)
			}
		}
	}

	// 2. Topological order and longest-path depths
	lv, err := dfs.Level(g)
	if errors.Is(err, dfs.ErrCycleDetected) {
		return fmt.Errorf("%w: %w", ErrCyclic, err)
	}
	if err != nil {
		return fmt.Errorf("lattice: leveling: %w", err)
	}

	// 3. Back to lattice indices
	l.topo = make([]int, len(lv.Order))
	for p, id := range lv.Order {
		l.topo[p] = l.index[id]
	}
	l.depth = make([]int, len(ids))
	for i, id := range ids {
		l.depth[i] = lv.Depth[id]
	}
	l.maxDepth = lv.MaxDepth

	return nil
}

func key(w []int) string { return lie.WeightKey(w) }
