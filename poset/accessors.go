// SPDX-License-Identifier: MIT

package poset

import (
	"github.com/katalvlaran/minuscule/lattice"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/rational"
)

// Type returns the Lie type.
func (p *Poset) Type() lie.Type { return p.typ }

// Rank returns n.
func (p *Poset) Rank() int { return p.n }

// Index returns k.
func (p *Poset) Index() int { return p.k }

// Size returns the number of nodes.
func (p *Poset) Size() int { return len(p.nodes) }

// Node returns a copy of node i.
func (p *Poset) Node(i int) Node { return p.nodes[i].clone() }

// Nodes returns copies of all nodes in index order.
func (p *Poset) Nodes() []Node {
	out := make([]Node, len(p.nodes))
	for i := range p.nodes {
		out[i] = p.nodes[i].clone()
	}

	return out
}

// Label returns the label of node i.
func (p *Poset) Label(i int) int { return p.nodes[i].Label }

// LabelIndices returns the node indices carrying label, increasing; nil for an unknown label.
func (p *Poset) LabelIndices(label int) []int {
	if label < 1 || label > p.n {
		return nil
	}

	return append([]int(nil), p.byLabel[label]...)
}

// RankIndices returns the node indices of rank r, increasing; nil for an unused rank.
func (p *Poset) RankIndices(r int) []int { return append([]int(nil), p.byRank[r]...) }

// RankMin returns the smallest node rank.
func (p *Poset) RankMin() int { return p.rankMin }

// RankMax returns the largest node rank.
func (p *Poset) RankMax() int { return p.rankMax }

// Cartan returns a copy of the Cartan matrix.
func (p *Poset) Cartan() lie.Matrix { return p.cartan.Clone() }

// HighestWeight returns a copy of ω_k.
func (p *Poset) HighestWeight() []int { return append([]int(nil), p.highest...) }

// ExpectedIdeals returns dim V(ω_k): C(n+1, k) for type A, the lattice size otherwise.
func (p *Poset) ExpectedIdeals() int { return p.expected }

// CoxeterNumber returns h.
func (p *Poset) CoxeterNumber() int { return p.coxeter }

// InverseCartanColumn returns column k of C⁻¹ as exact fractions.
func (p *Poset) InverseCartanColumn() []rational.Fraction {
	return append([]rational.Fraction(nil), p.invColumn...)
}

// Representation returns the model metadata.
func (p *Poset) Representation() lie.Representation {
	r := p.rep
	r.Notes = append([]string(nil), r.Notes...)

	return r
}

// HasWeightOracle reports whether KnowsWeight can answer (types D and E).
func (p *Poset) HasWeightOracle() bool { return p.lat != nil }

// KnowsWeight reports whether weight is in the orbit of ω_k. Without an
// oracle (type A) it always returns true.
func (p *Poset) KnowsWeight(weight []int) bool {
	if p.lat == nil {
		return true
	}

	return p.lat.Contains(weight)
}

// Lattice returns the weight lattice a D/E poset was extracted from, or nil.
func (p *Poset) Lattice() *lattice.Lattice { return p.lat }
