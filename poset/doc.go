// Package poset builds minuscule posets and implements the order-ideal
// engine and the bijection φ from ideals to weights.
//
// A minuscule poset P for V(ω_k) has one node per element, each node carrying
// a simple-root label in 1..n. Order ideals J(P) are stored as bitmask.Mask
// values over node indices, and |J(P)| equals dim V(ω_k).
//
// Construction (Build):
//
//	Type A:  the k×(n+1−k) grid with label k−r+c, covers (r−1,c)→(r,c) and
//	         (r,c−1)→(r,c), rank r+c.
//	Type D/E: the join-irreducible weights of the weight lattice (package
//	         lattice), ordered by closure containment, reduced to covers and
//	         ranked by longest path from the minimal elements.
//
// Ideal engine: CanAdd, CanRemove, ToggleNode, ApplyToggles, ToggleByLabel,
// ToggleByRank, IsIdeal, EnumerateIdeals, MaximalElements and Statistics.
// A toggle at an ineligible node is a no-op.
//
// Bijection φ: read the labels of an ideal along a linear extension and apply
// the corresponding simple reflections to the highest weight. The result does
// not depend on the extension; package verify checks this exhaustively.
//
// A *Poset is immutable after Build and safe for concurrent reads.
package poset
