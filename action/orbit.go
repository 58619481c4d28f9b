// SPDX-License-Identifier: MIT

package action

import (
	"fmt"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/poset"
	"github.com/katalvlaran/minuscule/rational"
)

// OrbitFrom applies a repeatedly until the start mask reappears.
//
// Errors: ErrOrbitNotClosed when a non-start mask repeats or more than
// ExpectedIdeals()+1 steps are taken.
//
// Complexity: O(L·|P|) toggles for an orbit of length L.
func OrbitFrom(p *poset.Poset, start bitmask.Mask, a Action) (Orbit, error) {
	o := Orbit{Start: start, Masks: []bitmask.Mask{start}}
	seen := map[bitmask.Mask]struct{}{start: {}}
	guardCap := p.ExpectedIdeals() + 1

	cur := start
	for guard := 0; ; {
		res := a.apply(p, cur)
		o.Steps = append(o.Steps, Transition{From: cur, To: res.Mask, Changed: res.Changed})
		cur = res.Mask
		if cur == start {
			break
		}
		if _, ok := seen[cur]; ok {
			return Orbit{}, fmt.Errorf("%w: %s revisits %s before %s", ErrOrbitNotClosed, a, cur, start)
		}
		seen[cur] = struct{}{}
		o.Masks = append(o.Masks, cur)

		guard++
		if guard > guardCap {
			return Orbit{}, fmt.Errorf("%w: %s exceeded %d steps from %s", ErrOrbitNotClosed, a, guardCap, start)
		}
	}
	o.Length = len(o.Masks)
	o.FixedPoint = o.Length == 1

	return o, nil
}

// Orbits partitions ideals (nil means every ideal) into orbits of a, in order
// of first appearance.
func Orbits(p *poset.Poset, a Action, ideals []bitmask.Mask) ([]Orbit, error) {
	if ideals == nil {
		ideals = p.EnumerateIdeals()
	}
	covered := make(map[bitmask.Mask]struct{}, len(ideals))
	var out []Orbit
	for _, m := range ideals {
		if _, ok := covered[m]; ok {
			continue
		}
		o, err := OrbitFrom(p, m, a)
		if err != nil {
			return nil, err
		}
		for _, x := range o.Masks {
			covered[x] = struct{}{}
		}
		out = append(out, o)
	}

	return out, nil
}

// CountFixedPoints counts the ideals fixed by one application of a. A nil
// ideals slice enumerates J(P).
func CountFixedPoints(p *poset.Poset, a Action, ideals []bitmask.Mask) FixedPoints {
	if ideals == nil {
		ideals = p.EnumerateIdeals()
	}
	fp := FixedPoints{Checked: len(ideals), Masks: []bitmask.Mask{}}
	for _, m := range ideals {
		if a.apply(p, m).Mask == m {
			fp.Count++
			fp.Masks = append(fp.Masks, m)
		}
	}

	return fp
}

// CountFixedPointsOfPower counts the ideals fixed by a^power.
func CountFixedPointsOfPower(p *poset.Poset, a Action, power int, ideals []bitmask.Mask) FixedPoints {
	if ideals == nil {
		ideals = p.EnumerateIdeals()
	}
	fp := FixedPoints{Checked: len(ideals), Masks: []bitmask.Mask{}}
	for _, m := range ideals {
		if Iterate(p, m, a, power) == m {
			fp.Count++
			fp.Masks = append(fp.Masks, m)
		}
	}

	return fp
}

// Summarize averages size, antichain size and per-label counts over masks
// exactly.
func Summarize(p *poset.Poset, masks []bitmask.Mask) (Summary, error) {
	if len(masks) == 0 {
		return Summary{}, ErrEmptyOrbit
	}

	var totalSize, totalAntichain int64
	byLabel := make([]int64, p.Rank())
	for _, m := range masks {
		st := p.Statistics(m)
		totalSize += int64(st.Size)
		totalAntichain += int64(st.AntichainSize)
		for i, c := range st.LabelCounts {
			byLabel[i] += int64(c)
		}
	}

	length := int64(len(masks))
	s := Summary{Length: len(masks), AvgLabelCounts: make([]rational.Fraction, len(byLabel))}
	// length > 0, so New cannot fail.
	s.AvgSize, _ = rational.New(totalSize, length)
	s.AvgAntichainSize, _ = rational.New(totalAntichain, length)
	for i, c := range byLabel {
		s.AvgLabelCounts[i], _ = rational.New(c, length)
	}

	return s, nil
}
