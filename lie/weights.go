// SPDX-License-Identifier: MIT

package lie

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/minuscule/rational"
)

// HighestWeight returns ω_k as a length-n vector: 1 at position k-1, 0 elsewhere.
// An out-of-range k yields the zero vector.
func HighestWeight(n, k int) []int {
	w := make([]int, n)
	if k >= 1 && k <= n {
		w[k-1] = 1
	}

	return w
}

// Reflect applies the simple reflection s_label to weight:
//
//	out[j] = weight[j] - weight[i]·C[i][j],  i = label-1.
//
// The input is not modified. A label outside 1..len(weight) returns an
// unchanged copy.
//
// Complexity: O(n).
func Reflect(weight []int, label int, cartan Matrix) []int {
	out := append([]int(nil), weight...)
	i := label - 1
	if i < 0 || i >= len(weight) || i >= len(cartan) {
		return out
	}
	p := weight[i]
	if p == 0 {
		return out
	}
	for j := range out {
		out[j] -= p * cartan[i][j]
	}

	return out
}

// Pairing returns ⟨weight, α_label^∨⟩, which is simply weight[label-1] in
// fundamental-weight coordinates; 0 for an out-of-range label.
func Pairing(weight []int, label int) int {
	if label < 1 || label > len(weight) {
		return 0
	}

	return weight[label-1]
}

// WeightKey renders a weight as "a,b,c" for use as a map key.
func WeightKey(weight []int) string {
	parts := make([]string, len(weight))
	for i, v := range weight {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// InverseColumn returns column k (1-based) of cartan⁻¹ as exact fractions,
// i.e. the solution x of C·x = e_k. It expresses ω_k in the basis of simple
// roots.
//
// Complexity: O(n³).
func InverseColumn(cartan Matrix, k int) ([]rational.Fraction, error) {
	return rational.Solve(rational.IntMatrix(cartan), rational.UnitVector(len(cartan), k-1))
}

// FormatWeight renders a weight as a combination of fundamental weights,
// e.g. "ω_1 - 2ω_3"; the zero weight renders as "0".
func FormatWeight(weight []int) string {
	var b strings.Builder
	for i, c := range weight {
		if c == 0 {
			continue
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if abs != 1 {
			b.WriteString(strconv.Itoa(abs))
		}
		b.WriteString("ω_")
		b.WriteString(strconv.Itoa(i + 1))
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
