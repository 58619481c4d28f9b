// SPDX-License-Identifier: MIT

package lie

import "fmt"

// Describe returns representation metadata for a validated triple.
func Describe(t Type, n, k int) (Representation, error) {
	if err := Validate(t, n, k); err != nil {
		return Representation{}, err
	}
	hw := fmt.Sprintf("ω_%d", k)

	switch {
	case t == TypeA:
		return Representation{
			Model:         fmt.Sprintf("V(ω_%d) = ∧^%d(ℂ^%d)", k, k, n+1),
			HighestWeight: hw,
			Notes: []string{
				fmt.Sprintf("Type A_%d minuscule model with subset realization in the standard basis of ℂ^%d.", n, n+1),
			},
		}, nil
	case t == TypeD && k == 1:
		return Representation{
			Model:         fmt.Sprintf("V(ω_1) for so(%d) (vector representation)", 2*n),
			HighestWeight: hw,
			Notes:         []string{"Weights are ±e_i in the standard orthogonal realization."},
		}, nil
	case t == TypeD:
		return Representation{
			Model:         fmt.Sprintf("V(ω_%d) for so(%d) (half-spin representation)", k, 2*n),
			HighestWeight: hw,
			Notes:         []string{"Spin weights correspond to parity-constrained sign choices in the e_i model."},
		}, nil
	case n == 6:
		return Representation{
			Model:         fmt.Sprintf("V(ω_%d) for E_6 (minuscule 27-dimensional representation)", k),
			HighestWeight: hw,
			Notes:         []string{"The two minuscule nodes are dual (k = 1 or 6)."},
		}, nil
	default:
		return Representation{
			Model:         "V(ω_7) for E_7 (56-dimensional minuscule representation)",
			HighestWeight: hw,
			Notes:         []string{"Unique minuscule representation in type E_7."},
		}, nil
	}
}

// Dimension returns dim V(ω_k): C(n+1, k) for A, 2n (k=1) or 2^(n-1) for D,
// 27 for E_6 and 56 for E_7.
func Dimension(t Type, n, k int) (int, error) {
	if err := Validate(t, n, k); err != nil {
		return 0, err
	}
	switch {
	case t == TypeA:
		d := 1
		for i := 0; i < k; i++ {
			d = d * (n + 1 - i) / (i + 1)
		}

		return d, nil
	case t == TypeD && k == 1:
		return 2 * n, nil
	case t == TypeD:
		return 1 << (n - 1), nil
	case n == 6:
		return 27, nil
	default:
		return 56, nil
	}
}
