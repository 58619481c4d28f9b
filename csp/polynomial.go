// SPDX-License-Identifier: MIT

package csp

import (
	"math"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
	"github.com/katalvlaran/minuscule/rational"
)

// RankGeneratingPolynomial returns M_P(q): coefficient m counts the ideals
// of size m. A nil ideals slice enumerates J(P).
func RankGeneratingPolynomial(p *poset.Poset, ideals []bitmask.Mask) rational.Poly {
	if ideals == nil {
		ideals = p.EnumerateIdeals()
	}
	coeffs := make(rational.Poly, p.Size()+1)
	for _, m := range ideals {
		if c := m.Count(); c < len(coeffs) {
			coeffs[c]++
		}
	}

	return coeffs.Trim()
}

// GaussianBinomial returns the coefficients of [n choose k]_q via the
// q-Pascal rule [m, j] = [m-1, j] + q^{m-j}·[m-1, j-1]. Out-of-range k gives [0].
//
// Complexity: O(n·k) polynomial additions.
func GaussianBinomial(n, k int) rational.Poly {
	if k < 0 || k > n {
		return rational.Poly{0}
	}
	kk := k
	if n-k < kk {
		kk = n - k
	}

	row := make([]rational.Poly, kk+1)
	row[0] = rational.Poly{1}
	for m := 1; m <= n; m++ {
		next := make([]rational.Poly, kk+1)
		next[0] = rational.Poly{1}
		upto := kk
		if m < upto {
			upto = m
		}
		for j := 1; j <= upto; j++ {
			if j == m {
				next[j] = rational.Poly{1}
				continue
			}
			left, right := row[j], row[j-1]
			if left == nil {
				left = rational.Poly{0}
			}
			if right == nil {
				right = rational.Poly{0}
			}
			next[j] = left.Add(right.Shift(m - j))
		}
		row = next
	}

	if row[kk] == nil {
		return rational.Poly{0}
	}

	return row[kk].Trim()
}

// EvaluateAtRootOfUnity evaluates coeffs at ζ^power, ζ = e^{2πi/order}.
//
// Blueprint:
//
//	Stage 1: normalize power into [0, order); power 0 is the coefficient sum.
//	Stage 2: reduce to a primitive root of order order/gcd(order, power).
//	Stage 3: fold coefficients by exponent residue modulo that root order.
//	Stage 4: sum residue·e^{2πi·unitPower·r/rootOrder} and round.
func EvaluateAtRootOfUnity(coeffs rational.Poly, order, power int) (Evaluation, error) {
	if order <= 0 {
		return Evaluation{}, ErrOrder
	}

	// Stage 1
	ev := Evaluation{Order: order, Power: rational.Mod(power, order)}
	if ev.Power == 0 {
		ev.GCD, ev.RootOrder, ev.UnitPower = order, 1, 0
		ev.Real = float64(coeffs.Sum())
		ev.Rounded = coeffs.Sum()
		ev.Stable = true

		return ev, nil
	}

	// Stage 2
	ev.GCD = rational.GCD(order, ev.Power)
	ev.RootOrder = order / ev.GCD
	ev.UnitPower = ev.Power / ev.GCD

	// Stage 3
	residues := make([]int64, ev.RootOrder)
	for exp, c := range coeffs {
		residues[exp%ev.RootOrder] += c
	}

	// Stage 4
	unit := 2 * math.Pi * float64(ev.UnitPower) / float64(ev.RootOrder)
	for r, c := range residues {
		if c == 0 {
			continue
		}
		angle := unit * float64(r)
		ev.Real += float64(c) * math.Cos(angle)
		ev.Imag += float64(c) * math.Sin(angle)
	}
	rounded := math.Round(ev.Real)
	ev.Rounded = int64(rounded)
	ev.RealResidual = math.Abs(ev.Real - rounded)
	ev.Stable = math.Abs(ev.Imag) <= stabilityTolerance && ev.RealResidual <= stabilityTolerance

	return ev, nil
}

// FixedPointsFromRankGenerating predicts the fixed points of the power-th
// power of the Fon-Der-Flaass action as M_P(ζ_h^power).
func FixedPointsFromRankGenerating(p *poset.Poset, power int, ideals []bitmask.Mask) (RankPrediction, error) {
	if ideals == nil {
		ideals = p.EnumerateIdeals()
	}
	coeffs := RankGeneratingPolynomial(p, ideals)
	ev, err := EvaluateAtRootOfUnity(coeffs, p.CoxeterNumber(), power)
	if err != nil {
		return RankPrediction{}, err
	}

	return RankPrediction{
		FixedPoints:  ev.Rounded,
		Coefficients: coeffs,
		Ideals:       len(ideals),
		Evaluation:   ev,
	}, nil
}

// ClosedFormTypeA returns the number of k-subsets of Z/order fixed by
// rotation by power: C(order, k) when the rotation is trivial, C(g, k/r) when
// r = order/g divides k, and 0 otherwise.
func ClosedFormTypeA(order, k, power int) int64 {
	if order <= 0 {
		return 0
	}
	g := rational.GCD(order, rational.Mod(power, order))
	r := order / g
	if r == 1 {
		return rational.Binomial(order, k)
	}
	if k%r != 0 {
		return 0
	}

	return rational.Binomial(g, k/r)
}

// FixedPointsTypeA predicts fixed points for a type A poset with the
// closed form and the Gaussian binomial [n+1 choose k]_q.
func FixedPointsTypeA(p *poset.Poset, power int) (TypeAPrediction, error) {
	if p.Type() != lie.TypeA {
		return TypeAPrediction{}, ErrNotTypeA
	}
	order, k := p.Rank()+1, p.Index()
	pred := TypeAPrediction{
		Order:        order,
		Power:        rational.Mod(power, order),
		GaussianN:    order,
		GaussianK:    k,
		Coefficients: GaussianBinomial(order, k),
	}
	pred.GCD = rational.GCD(order, pred.Power)
	pred.RootOrder = order / pred.GCD
	pred.Divisible = k%pred.RootOrder == 0
	if pred.Divisible {
		pred.QuotientK = k / pred.RootOrder
	}
	pred.FixedPoints = ClosedFormTypeA(order, k, pred.Power)

	return pred, nil
}
