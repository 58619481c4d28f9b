// SPDX-License-Identifier: MIT

package poset

import (
	"fmt"

	"github.com/katalvlaran/minuscule/lie"
)

// SubsetOf realizes a type A label word as a k-subset of {1..n+1}: start from
// {1..k} and let each label i swap the membership of i and i+1. For the
// labels of φ(I) the subset is the standard-basis support of the weight.
func (p *Poset) SubsetOf(labels []int) ([]int, error) {
	if p.typ != lie.TypeA {
		return nil, fmt.Errorf("%w: subset model on %s_%d", ErrNotTypeA, p.typ, p.n)
	}

	present := make([]bool, p.n+2)
	for i := 1; i <= p.k; i++ {
		present[i] = true
	}
	for _, l := range labels {
		if l < 1 || l > p.n {
			return nil, fmt.Errorf("poset: label %d outside 1..%d", l, p.n)
		}
		present[l], present[l+1] = present[l+1], present[l]
	}

	subset := make([]int, 0, p.k)
	for i := 1; i <= p.n+1; i++ {
		if present[i] {
			subset = append(subset, i)
		}
	}

	return subset, nil
}

// FundamentalFromSubset converts a subset S ⊆ {1..n+1} to fundamental-weight
// coordinates: with m the 0/1 indicator of S, coordinate i is m_i − m_{i+1}.
func FundamentalFromSubset(subset []int, n int) []int {
	m := make([]int, n+1)
	for _, s := range subset {
		if s >= 1 && s <= n+1 {
			m[s-1] = 1
		}
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = m[i] - m[i+1]
	}

	return out
}
