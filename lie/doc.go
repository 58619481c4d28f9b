// Package lie holds the root-system data of the simply-laced types A, D and E
// that the minuscule constructions are built on.
//
// It answers configuration questions (which types, ranks and indices are
// supported and minuscule), builds Cartan matrices from Dynkin diagrams,
// returns Coxeter numbers, applies simple reflections to weights written in
// fundamental-weight coordinates, and solves for columns of the inverse
// Cartan matrix exactly.
//
// Conventions:
//   - Labels (simple-root indices) are 1-based, as in the Bourbaki numbering;
//     slice positions are 0-based, so label i lives at position i-1.
//   - Weights are []int in the basis of fundamental weights ω_1..ω_n.
//   - The highest weight of V(ω_k) is the unit vector at position k-1.
//
// Supported configurations:
//
//	A_n, 2 ≤ n ≤ 8, every k in 1..n
//	D_n, 4 ≤ n ≤ 8, k ∈ {1, n-1, n}
//	E_6, k ∈ {1, 6}
//	E_7, k = 7
//
// All functions are pure; a Matrix returned by CartanMatrix is a fresh copy
// that the caller owns.
package lie
