// SPDX-License-Identifier: MIT

package poset

import (
	"fmt"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/lie"
)

// Chooser picks the next element of a linear extension from ready, the
// increasing list of elements whose lower covers inside the ideal have all
// been emitted. It must return a member of ready.
type Chooser func(p *Poset, ready []int) int

// ChooseMinIndex picks the least index; it is the default chooser.
func ChooseMinIndex(_ *Poset, ready []int) int { return ready[0] }

// ChooseMaxIndex picks the greatest index.
func ChooseMaxIndex(_ *Poset, ready []int) int { return ready[len(ready)-1] }

// ChooseMinLabel picks the smallest label, ties to the lower index.
func ChooseMinLabel(p *Poset, ready []int) int {
	chosen := ready[0]
	for _, i := range ready[1:] {
		if p.nodes[i].Label < p.nodes[chosen].Label {
			chosen = i
		}
	}

	return chosen
}

// ChooseMaxLabel picks the largest label, ties to the higher index.
func ChooseMaxLabel(p *Poset, ready []int) int {
	chosen := ready[0]
	for _, i := range ready[1:] {
		if p.nodes[i].Label >= p.nodes[chosen].Label {
			chosen = i
		}
	}

	return chosen
}

// LinearExtension orders the elements of mask so that every element follows
// its lower covers. A nil chooser means ChooseMinIndex.
//
// Complexity: O(|I|²) mask operations.
func (p *Poset) LinearExtension(mask bitmask.Mask, choose Chooser) ([]int, error) {
	if choose == nil {
		choose = ChooseMinIndex
	}
	remaining := bitmask.Mask{}
	for _, i := range mask.Indices() {
		if i < len(p.nodes) {
			remaining = remaining.Set(i)
		}
	}

	order := make([]int, 0, remaining.Count())
	ready := make([]int, 0, remaining.Count())
	for !remaining.IsZero() {
		ready = ready[:0]
		for _, i := range remaining.Indices() {
			if remaining.And(p.predMask[i]).IsZero() {
				ready = append(ready, i)
			}
		}
		if len(ready) == 0 {
			return nil, fmt.Errorf("%w: no minimal element among %s", ErrInvalidExtension, remaining)
		}
		next := choose(p, append([]int(nil), ready...))
		if !remaining.Has(next) || !remaining.And(p.predMask[next]).IsZero() {
			return nil, fmt.Errorf("%w: chooser returned %d, not ready", ErrInvalidExtension, next)
		}
		remaining = remaining.Clear(next)
		order = append(order, next)
	}

	return order, nil
}

// IsLinearExtension reports whether order lists each node of mask exactly
// once with every lower cover inside mask before its upper cover.
func (p *Poset) IsLinearExtension(order []int, mask bitmask.Mask) bool {
	expected := 0
	for _, i := range mask.Indices() {
		if i < len(p.nodes) {
			expected++
		}
	}
	if len(order) != expected {
		return false
	}

	position := make(map[int]int, len(order))
	for pos, i := range order {
		if i < 0 || i >= len(p.nodes) || !mask.Has(i) {
			return false
		}
		if _, dup := position[i]; dup {
			return false
		}
		position[i] = pos
	}
	for _, i := range order {
		for _, pred := range p.nodes[i].Preds {
			if mask.Has(pred) && position[pred] > position[i] {
				return false
			}
		}
	}

	return true
}

// Phi computes φ(mask): starting from ω_k, apply s_label for each node along
// order. A nil order uses the least-index linear extension; a non-nil order
// that is not a linear extension of mask yields ErrInvalidExtension.
//
// Complexity: O(|I|·n) after the extension.
func (p *Poset) Phi(mask bitmask.Mask, order []int) (PhiResult, error) {
	var err error
	if order == nil {
		if order, err = p.LinearExtension(mask, nil); err != nil {
			return PhiResult{}, err
		}
	} else {
		if !p.IsLinearExtension(order, mask) {
			return PhiResult{}, fmt.Errorf("%w: %v for %s", ErrInvalidExtension, order, mask)
		}
		order = append([]int(nil), order...)
	}

	res := PhiResult{
		Weight: p.HighestWeight(),
		Labels: make([]int, 0, len(order)),
		Order:  order,
	}
	for _, i := range order {
		l := p.nodes[i].Label
		res.Labels = append(res.Labels, l)
		res.Weight = lie.Reflect(res.Weight, l, p.cartan)
	}

	return res, nil
}
