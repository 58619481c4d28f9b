// SPDX-License-Identifier: MIT

package poset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/core"
	"github.com/katalvlaran/minuscule/dfs"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/lattice"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/rational"
)

// Build validates (t, n, k) and constructs the minuscule poset of V(ω_k).
//
// Errors:
//   - *fault.ConfigError for an unsupported type, rank or index.
//   - invariant-class errors (ErrLabelRange, ErrNoJoinIrreducibles, ErrNotAntisymmetric,
//     ErrNotAcyclic, lattice.ErrCyclic, rational.ErrSingular) for internal defects.
func Build(t lie.Type, n, k int) (*Poset, error) {
	if err := lie.Validate(t, n, k); err != nil {
		return nil, err
	}
	if t == lie.TypeA {
		return BuildTypeA(n, k)
	}

	return buildFromLattice(t, n, k)
}

// BuildTypeA constructs the k×(n+1−k) grid poset of type A_n.
//
// Complexity: O(k·(n+1−k)).
func BuildTypeA(n, k int) (*Poset, error) {
	// 1. Validate
	if err := lie.Validate(lie.TypeA, n, k); err != nil {
		return nil, err
	}
	cols := n + 1 - k
	if err := checkCapacity(k*cols, n); err != nil {
		return nil, err
	}

	// 2. Grid nodes in row-major order
	nodes := make([]Node, 0, k*cols)
	var row, col, idx, label int
	var err error
	for row = 1; row <= k; row++ {
		for col = 1; col <= cols; col++ {
			if label, err = gridLabel(n, k, row, col); err != nil {
				return nil, err
			}
			idx = len(nodes)
			nd := Node{
				Index:        idx,
				Label:        label,
				Rank:         row + col,
				Row:          row,
				Col:          col,
				LatticeIndex: -1,
				Display:      fmt.Sprintf("(%d,%d)", row, col),
			}
			if row > 1 {
				nd.Preds = append(nd.Preds, (row-2)*cols+(col-1))
			}
			if col > 1 {
				nd.Preds = append(nd.Preds, (row-1)*cols+(col-2))
			}
			sort.Ints(nd.Preds)
			nodes = append(nodes, nd)
		}
	}

	// 3. Upper covers mirror the lower ones
	for _, nd := range nodes {
		for _, p := range nd.Preds {
			nodes[p].Succs = append(nodes[p].Succs, nd.Index)
		}
	}

	p := &Poset{typ: lie.TypeA, n: n, k: k, nodes: nodes}
	p.expected = int(rational.Binomial(n+1, k))
	if err = p.finish(); err != nil {
		return nil, err
	}

	return p, nil
}

// gridLabel returns the simple-root label k−row+col of a type A grid cell,
// which must lie in [1, n].
func gridLabel(n, k, row, col int) (int, error) {
	label := k - row + col
	if label < 1 || label > n {
		return 0, fmt.Errorf("%w: cell (%d,%d) of A_%d k=%d has label %d", ErrLabelRange, row, col, n, k, label)
	}

	return label, nil
}

// buildFromLattice extracts the join-irreducible poset of the D/E weight lattice.
//
// Blueprint:
//
//	Stage 1 (Lattice):  oriented Weyl orbit of ω_k.
//	Stage 2 (Select):   weights with exactly one down edge, sorted by depth
//	                    desc, label asc, lattice index asc.
//	Stage 3 (Order):    a ≤ b iff closure(a) ∋ b; reject non-antisymmetry.
//	Stage 4 (Reduce):   keep a → b only when nothing lies strictly between.
//	Stage 5 (Rank):     dfs.Level over the cover graph; minimal elements get 0.
//
// Complexity: O(m³) for m join-irreducibles (m ≤ 28).
func buildFromLattice(t lie.Type, n, k int) (*Poset, error) {
	// Stage 1: lattice
	cartan, err := lie.CartanMatrix(t, n)
	if err != nil {
		return nil, err
	}
	lat, err := lattice.Build(cartan, lie.HighestWeight(n, k))
	if err != nil {
		return nil, err
	}

	// Stage 2: join-irreducibles
	joins := lat.JoinIrreducibles()
	if len(joins) == 0 {
		return nil, fmt.Errorf("%w: %s_%d k=%d", ErrNoJoinIrreducibles, t, n, k)
	}
	if err = checkCapacity(len(joins), n); err != nil {
		return nil, err
	}
	label := func(li int) int { return lat.Down(li)[0].Label }
	sort.SliceStable(joins, func(a, b int) bool {
		ja, jb := joins[a], joins[b]
		if da, db := lat.Depth(ja), lat.Depth(jb); da != db {
			return da > db
		}
		if la, lb := label(ja), label(jb); la != lb {
			return la < lb
		}

		return ja < jb
	})

	// Stage 3: closure order
	m := len(joins)
	lessEq := make([][]bool, m)
	for a := range lessEq {
		lessEq[a] = make([]bool, m)
		for b := range lessEq[a] {
			lessEq[a][b] = lat.Below(joins[a], joins[b])
		}
	}
	for a := 0; a < m; a++ {
		for b := a + 1; b < m; b++ {
			if lessEq[a][b] && lessEq[b][a] {
				return nil, fmt.Errorf("%w: nodes %d and %d", ErrNotAntisymmetric, a, b)
			}
		}
	}

	nodes := make([]Node, m)
	for i, li := range joins {
		nodes[i] = Node{
			Index:        i,
			Label:        label(li),
			LatticeIndex: li,
			Display:      fmt.Sprintf("j%d", i+1),
		}
	}

	// Stage 4: transitive reduction
	var c int
	var cover bool
	for a := 0; a < m; a++ {
		for b := 0; b < m; b++ {
			if a == b || !lessEq[a][b] || lessEq[b][a] {
				continue
			}
			cover = true
			for c = 0; c < m; c++ {
				if c != a && c != b && lessEq[a][c] && lessEq[c][b] {
					cover = false
					break
				}
			}
			if cover {
				nodes[a].Succs = append(nodes[a].Succs, b)
				nodes[b].Preds = append(nodes[b].Preds, a)
			}
		}
	}

	// Stage 5: ranks
	ranks, err := coverRanks(nodes)
	if err != nil {
		return nil, err
	}
	for i := range nodes {
		nodes[i].Rank = ranks[i]
	}

	p := &Poset{
		typ:      t,
		n:        n,
		k:        k,
		nodes:    nodes,
		cartan:   cartan,
		expected: lat.Len(),
		lat:      lat,
	}
	if err = p.finish(); err != nil {
		return nil, err
	}

	return p, nil
}

// coverRanks levels the cover graph with dfs.Level; minimal nodes get rank 0.
func coverRanks(nodes []Node) ([]int, error) {
	g := core.NewGraph(core.WithDirected(true))
	for _, nd := range nodes {
		if err := g.AddVertex(nd.Display); err != nil {
			return nil, fmt.Errorf("poset: node %d: %w", nd.Index, err)
		}
	}
	for _, nd := range nodes {
		for _, s := range nd.Succs {
			if _, err := g.AddEdge(nd.Display, nodes[s].Display, 0); err != nil {
				return nil, fmt.Errorf("poset: cover %d→%d: %w", nd.Index, s, err)
			}
		}
	}

	lv, err := dfs.Level(g)
	if errors.Is(err, dfs.ErrCycleDetected) {
		return nil, fmt.Errorf("%w: %w", ErrNotAcyclic, err)
	}
	if err != nil {
		return nil, fmt.Errorf("poset: leveling: %w", err)
	}

	rank := make([]int, len(nodes))
	for i, nd := range nodes {
		rank[i] = lv.Depth[nd.Display]
	}

	return rank, nil
}

// finish fills the shared derived data of both construction paths.
func (p *Poset) finish() error {
	var err error
	if p.cartan == nil {
		if p.cartan, err = lie.CartanMatrix(p.typ, p.n); err != nil {
			return err
		}
	}
	p.highest = lie.HighestWeight(p.n, p.k)
	if p.coxeter, err = lie.CoxeterNumber(p.typ, p.n); err != nil {
		return err
	}
	if p.invColumn, err = lie.InverseColumn(p.cartan, p.k); err != nil {
		return err
	}
	if p.rep, err = lie.Describe(p.typ, p.n, p.k); err != nil {
		return err
	}

	p.predMask = make([]bitmask.Mask, len(p.nodes))
	p.succMask = make([]bitmask.Mask, len(p.nodes))
	p.byLabel = make([][]int, p.n+1)
	p.byRank = make(map[int][]int)
	for i, nd := range p.nodes {
		p.predMask[i] = bitmask.FromIndices(nd.Preds...)
		p.succMask[i] = bitmask.FromIndices(nd.Succs...)
		p.byLabel[nd.Label] = append(p.byLabel[nd.Label], i)
		p.byRank[nd.Rank] = append(p.byRank[nd.Rank], i)
		if i == 0 || nd.Rank < p.rankMin {
			p.rankMin = nd.Rank
		}
		if i == 0 || nd.Rank > p.rankMax {
			p.rankMax = nd.Rank
		}
	}

	return nil
}

// checkCapacity turns a mask overflow into a configuration error.
func checkCapacity(size, n int) error {
	if err := bitmask.CheckCapacity(size); err != nil {
		return fmt.Errorf("%w: rank %d: %w", fault.ErrConfiguration, n, err)
	}

	return nil
}
