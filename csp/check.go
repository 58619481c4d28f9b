// SPDX-License-Identifier: MIT

package csp

import (
	"github.com/katalvlaran/minuscule/action"
	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

// Check counts the ideals fixed by FDF^power for every power in 0..h-1 and
// compares them with the rank-generating prediction (and, for type A, the
// closed form). A nil ideals slice enumerates J(P).
//
// Complexity: O(h²·|J(P)|·|P|) toggles.
func Check(p *poset.Poset, ideals []bitmask.Mask) (Report, error) {
	if ideals == nil {
		ideals = p.EnumerateIdeals()
	}
	h := p.CoxeterNumber()
	rep := Report{
		Order:        h,
		Coefficients: RankGeneratingPolynomial(p, ideals),
		Powers:       make([]PowerCheck, 0, h),
		AllMatch:     true,
	}

	fdf := action.FonDerFlaass{}
	for power := 0; power < h; power++ {
		ev, err := EvaluateAtRootOfUnity(rep.Coefficients, h, power)
		if err != nil {
			return Report{}, err
		}
		row := PowerCheck{
			Power:      power,
			Observed:   action.CountFixedPointsOfPower(p, fdf, power, ideals).Count,
			Predicted:  ev.Rounded,
			Stable:     ev.Stable,
			ClosedForm: -1,
		}
		row.Match = row.Stable && int64(row.Observed) == row.Predicted
		if p.Type() == lie.TypeA {
			row.ClosedForm = ClosedFormTypeA(p.Rank()+1, p.Index(), power)
			row.Match = row.Match && row.ClosedForm == row.Predicted
		}
		if !row.Match {
			rep.AllMatch = false
		}
		rep.Powers = append(rep.Powers, row)
	}

	return rep, nil
}
