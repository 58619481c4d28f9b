// SPDX-License-Identifier: MIT

package poset

import "github.com/katalvlaran/minuscule/bitmask"

// CanAdd reports whether node i is absent from mask and all of its lower
// covers are present.
func (p *Poset) CanAdd(mask bitmask.Mask, i int) bool {
	if i < 0 || i >= len(p.nodes) || mask.Has(i) {
		return false
	}

	return mask.Contains(p.predMask[i])
}

// CanRemove reports whether node i is present in mask and none of its upper
// covers are.
func (p *Poset) CanRemove(mask bitmask.Mask, i int) bool {
	if i < 0 || i >= len(p.nodes) || !mask.Has(i) {
		return false
	}

	return mask.And(p.succMask[i]).IsZero()
}

// ToggleNode adds i if it can be added, removes it if it can be removed and
// otherwise returns mask unchanged.
func (p *Poset) ToggleNode(mask bitmask.Mask, i int) bitmask.Mask {
	if p.CanAdd(mask, i) {
		return mask.Set(i)
	}
	if p.CanRemove(mask, i) {
		return mask.Clear(i)
	}

	return mask
}

// ApplyToggles toggles indices in order and records which ones changed.
func (p *Poset) ApplyToggles(mask bitmask.Mask, indices []int) ToggleResult {
	res := ToggleResult{Mask: mask, Changed: []int{}}
	var next bitmask.Mask
	for _, i := range indices {
		next = p.ToggleNode(res.Mask, i)
		if next != res.Mask {
			res.Mask = next
			res.Changed = append(res.Changed, i)
		}
	}

	return res
}

// ToggleByLabel toggles every node with the given label in increasing index
// order. Nodes of one label are pairwise incomparable in a minuscule poset,
// so the order does not matter; package verify checks this.
func (p *Poset) ToggleByLabel(mask bitmask.Mask, label int) ToggleResult {
	return p.ApplyToggles(mask, p.LabelIndices(label))
}

// ToggleByRank toggles every node of rank r in increasing index order.
func (p *Poset) ToggleByRank(mask bitmask.Mask, r int) ToggleResult {
	return p.ApplyToggles(mask, p.byRank[r])
}

// IsIdeal reports whether mask is a down-set of the poset using only node bits.
func (p *Poset) IsIdeal(mask bitmask.Mask) bool {
	for _, i := range mask.Indices() {
		if i >= len(p.nodes) || !mask.Contains(p.predMask[i]) {
			return false
		}
	}

	return true
}

// EnumerateIdeals returns J(P) in breadth-first discovery order from the
// empty ideal, closing under single-node toggles. The first element is
// always the empty mask.
//
// Complexity: O(|J(P)|·|P|) toggles.
func (p *Poset) EnumerateIdeals() []bitmask.Mask {
	start := bitmask.Mask{}
	queue := []bitmask.Mask{start}
	seen := map[bitmask.Mask]struct{}{start: {}}

	var next bitmask.Mask
	for q := 0; q < len(queue); q++ {
		cur := queue[q]
		for i := range p.nodes {
			next = p.ToggleNode(cur, i)
			if next == cur {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return queue
}

// MaximalElements returns the nodes of mask with no upper cover in mask,
// increasing. For an ideal this is the antichain that generates it.
func (p *Poset) MaximalElements(mask bitmask.Mask) []int {
	out := []int{}
	for _, i := range mask.Indices() {
		if i < len(p.nodes) && mask.And(p.succMask[i]).IsZero() {
			out = append(out, i)
		}
	}

	return out
}

// Statistics returns size, per-label counts and the antichain size of mask.
func (p *Poset) Statistics(mask bitmask.Mask) Stats {
	st := Stats{LabelCounts: make([]int, p.n)}
	for _, i := range mask.Indices() {
		if i >= len(p.nodes) {
			continue
		}
		st.Size++
		st.LabelCounts[p.nodes[i].Label-1]++
		if mask.And(p.succMask[i]).IsZero() {
			st.AntichainSize++
		}
	}

	return st
}
