// Package lattice builds the weight lattice of a minuscule representation:
// the Weyl-group orbit of a highest weight, oriented by simple reflections.
//
// Construction (Build):
//  1. Breadth-first closure of the highest weight under s_1..s_n.
//  2. A labeled down edge w →ᵢ s_i(w) for every label i with ⟨w, α_i^∨⟩ > 0.
//  3. The edges are loaded into a directed core.Graph keyed by weight key
//     (edge weight = label) and dfs.Level returns a topological order and the
//     longest-path depth of every weight below the top; a back edge means the
//     orientation has a cycle (ErrCyclic).
//  4. Downward closures are accumulated in reverse topological order and
//     stored as bitmask.Mask values over lattice indices.
//
// The join-irreducible weights (exactly one down edge) are the raw material
// for the minuscule poset of types D and E; see package poset.
//
// A Lattice is immutable; accessors return copies.
//
// Complexity: O(|W|·n²) for the orbit and edges, O(|W|·E/64) for closures,
// where |W| ≤ bitmask.MaxBits.
package lattice
