// SPDX-License-Identifier: MIT

package poset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/lattice"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/rational"
)

var (
	// ErrNoJoinIrreducibles indicates a weight lattice without join-irreducible weights.
	ErrNoJoinIrreducibles = fmt.Errorf("poset: no join-irreducible weights: %w", fault.ErrInvariant)

	// ErrNotAntisymmetric indicates two distinct join-irreducibles that dominate each other.
	ErrNotAntisymmetric = fmt.Errorf("poset: closure order is not antisymmetric: %w", fault.ErrInvariant)

	// ErrNotAcyclic indicates a cover graph with a cycle.
	ErrNotAcyclic = fmt.Errorf("poset: cover graph is not acyclic: %w", fault.ErrInvariant)

	// ErrLabelRange indicates a type A grid cell whose label falls outside [1, n].
	ErrLabelRange = fmt.Errorf("poset: grid label out of range: %w", fault.ErrInvariant)

	// ErrInvalidExtension indicates an order that is not a linear extension of an ideal.
	ErrInvalidExtension = fmt.Errorf("poset: invalid linear extension: %w", fault.ErrInvariant)

	// ErrNotTypeA is returned by type A only helpers on D/E posets.
	ErrNotTypeA = errors.New("poset: operation defined for type A only")
)

// Node is one element of a minuscule poset.
type Node struct {
	Index int   `json:"index"`
	Label int   `json:"label"`
	Preds []int `json:"preds"` // lower covers, increasing
	Succs []int `json:"succs"` // upper covers, increasing
	Rank  int   `json:"rank"`

	// Row and Col locate a type A node in its grid (1-based); 0 otherwise.
	Row int `json:"row,omitempty"`
	Col int `json:"col,omitempty"`

	// LatticeIndex is the weight-lattice index of a D/E node; -1 for type A.
	LatticeIndex int `json:"latticeIndex"`

	// Display is "(r,c)" for type A and "j<i>" (1-based) otherwise.
	Display string `json:"display"`
}

func (n Node) clone() Node {
	n.Preds = append([]int(nil), n.Preds...)
	n.Succs = append([]int(nil), n.Succs...)

	return n
}

// Poset is an immutable minuscule poset together with its Lie data.
type Poset struct {
	typ lie.Type
	n   int
	k   int

	nodes     []Node
	predMask  []bitmask.Mask
	succMask  []bitmask.Mask
	byLabel   [][]int // index = label, entry 0 unused
	byRank    map[int][]int
	rankMin   int
	rankMax   int
	cartan    lie.Matrix
	highest   []int
	expected  int
	coxeter   int
	invColumn []rational.Fraction
	rep       lie.Representation

	// D/E only.
	lat *lattice.Lattice
}

// ToggleResult is the outcome of a toggle sequence.
type ToggleResult struct {
	Mask    bitmask.Mask `json:"mask"`
	Changed []int        `json:"changed"` // node indices whose membership flipped, in order
}

// PhiResult is φ(I) with its witness.
type PhiResult struct {
	Weight []int `json:"weight"`
	Labels []int `json:"labels"` // labels read along Order
	Order  []int `json:"order"`  // the linear extension used
}

// Stats are the per-ideal statistics used for orbit averages.
type Stats struct {
	Size          int   `json:"size"`
	LabelCounts   []int `json:"labelCounts"` // index i counts label i+1
	AntichainSize int   `json:"antichainSize"`
}
