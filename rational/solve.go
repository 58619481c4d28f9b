// SPDX-License-Identifier: MIT

package rational

import "fmt"

// Solve returns x with a·x = rhs using exact Gauss–Jordan elimination with
// full pivoting. Inputs are copied; a and rhs are not modified.
//
// Blueprint:
//
//	Stage 1 (Validate):  a is n×n and len(rhs) == n.
//	Stage 2 (Pivot):     pick the largest |entry| of the remaining submatrix,
//	                     first in row-major order on ties; swap it to (col, col)
//	                     and record the column swap.
//	Stage 3 (Normalize): scale the pivot row so the pivot becomes 1.
//	Stage 4 (Eliminate): clear the column in every other row, above and below.
//	Stage 5 (Finalize):  undo the column permutation on the augmented column.
//
// Complexity: O(n³) fraction operations, O(n²) memory.
func Solve(a [][]Fraction, rhs []Fraction) ([]Fraction, error) {
	// Stage 1: validate shape
	n := len(a)
	if len(rhs) != n {
		return nil, fmt.Errorf("%w: %d rows, %d right-hand sides", ErrDimensionMismatch, n, len(rhs))
	}
	m := make([][]Fraction, n)
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
		m[i] = make([]Fraction, n)
		for j, v := range row {
			m[i][j] = v.norm()
		}
	}
	x := make([]Fraction, n)
	for i, v := range rhs {
		x[i] = v.norm()
	}
	perm := make([]int, n) // perm[c] is the unknown held in column c
	for c := range perm {
		perm[c] = c
	}

	var (
		col, row, j, pivotRow, pivotCol int
		pivot, best, factor             Fraction
		err                             error
	)
	for col = 0; col < n; col++ {
		// Stage 2: full pivot search
		pivotRow, pivotCol, best = -1, -1, Int(0)
		for row = col; row < n; row++ {
			for j = col; j < n; j++ {
				if v := m[row][j].Abs(); v.Cmp(best) > 0 {
					pivotRow, pivotCol, best = row, j, v
				}
			}
		}
		if pivotRow == -1 {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, col)
		}
		if pivotRow != col {
			m[col], m[pivotRow] = m[pivotRow], m[col]
			x[col], x[pivotRow] = x[pivotRow], x[col]
		}
		if pivotCol != col {
			for row = 0; row < n; row++ {
				m[row][col], m[row][pivotCol] = m[row][pivotCol], m[row][col]
			}
			perm[col], perm[pivotCol] = perm[pivotCol], perm[col]
		}

		// Stage 3: normalize pivot row
		pivot = m[col][col]
		for j = col; j < n; j++ {
			if m[col][j], err = m[col][j].Div(pivot); err != nil {
				return nil, err
			}
		}
		if x[col], err = x[col].Div(pivot); err != nil {
			return nil, err
		}

		// Stage 4: eliminate the column everywhere else
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			factor = m[row][col]
			if factor.IsZero() {
				continue
			}
			for j = col; j < n; j++ {
				m[row][j] = m[row][j].Sub(factor.Mul(m[col][j]))
			}
			x[row] = x[row].Sub(factor.Mul(x[col]))
		}
	}

	// Stage 5: row c of x solves for unknown perm[c]
	out := make([]Fraction, n)
	for c, v := range x {
		out[perm[c]] = v
	}

	return out, nil
}

// IntMatrix converts an integer matrix to fractions.
func IntMatrix(a [][]int) [][]Fraction {
	out := make([][]Fraction, len(a))
	for i, row := range a {
		out[i] = make([]Fraction, len(row))
		for j, v := range row {
			out[i][j] = Int(int64(v))
		}
	}

	return out
}

// UnitVector returns e_i of length n as fractions (0-based i).
func UnitVector(n, i int) []Fraction {
	out := make([]Fraction, n)
	for j := range out {
		out[j] = Int(0)
	}
	if i >= 0 && i < n {
		out[i] = Int(1)
	}

	return out
}
