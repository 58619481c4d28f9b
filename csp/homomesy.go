// SPDX-License-Identifier: MIT

package csp

import (
	"strconv"

	"github.com/katalvlaran/minuscule/action"
	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
	"github.com/katalvlaran/minuscule/rational"
)

// HomomesyPredictions returns the general predictions: (C⁻¹)_{i,k} per label,
// their sum for the size and |P|/h for the antichain size.
func HomomesyPredictions(p *poset.Poset) Homomesy {
	col := p.InverseCartanColumn()
	// h > 0 for every supported type.
	antichain, _ := rational.New(int64(p.Size()), int64(p.CoxeterNumber()))

	return Homomesy{
		AvgLabelCounts:   col,
		AvgSize:          rational.Sum(col...),
		AvgAntichainSize: antichain,
		Source: HomomesySource{
			LabelCounts:   "(C^{-1})_{i,k}",
			Size:          "sum_i (C^{-1})_{i,k}",
			AntichainSize: "|P|/h",
		},
	}
}

// TypeAHomomesyPredictions returns the type A closed forms:
// min(i,k)(n+1−max(i,k))/(n+1), k(n+1−k)/2 and k(n+1−k)/(n+1).
func TypeAHomomesyPredictions(p *poset.Poset) (Homomesy, error) {
	if p.Type() != lie.TypeA {
		return Homomesy{}, ErrNotTypeA
	}
	n, k := int64(p.Rank()), int64(p.Index())

	h := Homomesy{
		AvgLabelCounts: make([]rational.Fraction, n),
		Source: HomomesySource{
			LabelCounts:   "min(i,k)(n+1-max(i,k))/(n+1)",
			Size:          "k(n+1-k)/2",
			AntichainSize: "k(n+1-k)/(n+1)",
		},
	}
	for i := int64(1); i <= n; i++ {
		h.AvgLabelCounts[i-1], _ = rational.New(min(i, k)*(n+1-max(i, k)), n+1)
	}
	h.AvgSize, _ = rational.New(k*(n+1-k), 2)
	h.AvgAntichainSize, _ = rational.New(k*(n+1-k), n+1)

	return h, nil
}

// CheckHomomesy partitions J(P) into orbits of a and compares each orbit
// average with HomomesyPredictions. Size and per-label counts are homomesic
// under every supported action; antichain size only under Fon-Der-Flaass.
// Mismatches are reported, not returned as errors; the error covers orbits
// that fail to close.
func CheckHomomesy(p *poset.Poset, a action.Action, ideals []bitmask.Mask) (HomomesyReport, error) {
	orbits, err := action.Orbits(p, a, ideals)
	if err != nil {
		return HomomesyReport{}, err
	}

	pred := HomomesyPredictions(p)
	rep := HomomesyReport{
		Orbits:        len(orbits),
		Predictions:   pred,
		SizePass:      true,
		AntichainPass: true,
		LabelPass:     make([]bool, p.Rank()),
	}
	switch a.(type) {
	case action.FonDerFlaass, *action.FonDerFlaass:
		rep.AntichainExpected = true
	}
	for i := range rep.LabelPass {
		rep.LabelPass[i] = true
	}

	mismatch := func(stat string, o action.Orbit, got, want rational.Fraction) {
		if rep.Counterexample == nil {
			rep.Counterexample = &OrbitMismatch{
				Statistic: stat,
				Start:     o.Start,
				Length:    o.Length,
				Observed:  got,
				Predicted: want,
			}
		}
	}

	for _, o := range orbits {
		s, err := action.Summarize(p, o.Masks)
		if err != nil {
			return HomomesyReport{}, err
		}
		if !s.AvgSize.Equal(pred.AvgSize) {
			rep.SizePass = false
			mismatch("size", o, s.AvgSize, pred.AvgSize)
		}
		if !s.AvgAntichainSize.Equal(pred.AvgAntichainSize) {
			rep.AntichainPass = false
			if rep.AntichainExpected {
				mismatch("antichain", o, s.AvgAntichainSize, pred.AvgAntichainSize)
			}
		}
		for i, avg := range s.AvgLabelCounts {
			if !avg.Equal(pred.AvgLabelCounts[i]) {
				rep.LabelPass[i] = false
				mismatch("label "+strconv.Itoa(i+1), o, avg, pred.AvgLabelCounts[i])
			}
		}
	}

	rep.AllPass = rep.SizePass && (rep.AntichainPass || !rep.AntichainExpected)
	for _, ok := range rep.LabelPass {
		rep.AllPass = rep.AllPass && ok
	}

	return rep, nil
}
