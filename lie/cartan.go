// SPDX-License-Identifier: MIT

package lie

// dynkinEdges returns the Dynkin diagram of t_n as 1-based label pairs.
// The rank must already be validated.
func dynkinEdges(t Type, n int) [][2]int {
	var edges [][2]int
	switch t {
	case TypeA:
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}
	case TypeD:
		// path 1 - 2 - ... - (n-2), then the fork (n-2)-(n-1) and (n-2)-n
		for i := 1; i < n-2; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}
		edges = append(edges, [2]int{n - 2, n - 1}, [2]int{n - 2, n})
	case TypeE:
		edges = [][2]int{{1, 3}, {3, 4}, {4, 5}, {5, 6}, {2, 4}}
		if n == 7 {
			edges = append(edges, [2]int{6, 7})
		}
	}

	return edges
}

// CartanMatrix returns the Cartan matrix of t_n: 2 on the diagonal, -1 for
// every Dynkin edge and 0 elsewhere. Unsupported (t, n) yields a
// *fault.ConfigError.
//
// Complexity: O(n²).
func CartanMatrix(t Type, n int) (Matrix, error) {
	if err := ValidateRank(t, n); err != nil {
		return nil, err
	}

	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
		m[i][i] = 2
	}
	for _, e := range dynkinEdges(t, n) {
		a, b := e[0]-1, e[1]-1
		m[a][b] = -1
		m[b][a] = -1
	}

	return m, nil
}

// CoxeterNumber returns h for t_n: n+1 for A, 2n-2 for D, 12 for E_6 and 18
// for E_7.
func CoxeterNumber(t Type, n int) (int, error) {
	if err := ValidateRank(t, n); err != nil {
		return 0, err
	}
	switch t {
	case TypeA:
		return n + 1, nil
	case TypeD:
		return 2*n - 2, nil
	default:
		if n == 6 {
			return 12, nil
		}

		return 18, nil
	}
}
