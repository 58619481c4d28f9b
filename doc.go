// Package minuscule is an in-memory toolkit for the minuscule posets of the
// simply-laced Lie types and the lattices of order ideals they generate.
//
// What is it?
//
//	For a minuscule weight ω_k of A_n, D_n, E_6 or E_7 the weights of the
//	representation V(ω_k) form one Weyl-group orbit, and that orbit is
//	isomorphic, as a distributive lattice, to J(P): the order ideals of a
//	small labeled poset P. This module builds P, enumerates J(P) and checks
//	the bijection φ: J(P) → W·ω_k exhaustively.
//
// Packages:
//
//	fault/    error taxonomy: configuration errors vs invariant violations
//	bitmask/  fixed-width 256-bit sets used as order-ideal masks
//	rational/ exact int64 fractions, integer polynomials, Gauss–Jordan solve
//	lie/      supported triples, Cartan matrices, reflections, metadata
//	lattice/  the weight orbit of ω_k as a graded graph (types D and E)
//	poset/    poset construction, ideal toggles, linear extensions and φ
//	action/   Fon-Der-Flaass and Coxeter-word toggle actions, orbits
//	verify/   exhaustive bijection, equivariance and label-structure checks
//	csp/      cyclic sieving and homomesy predictions
//
// The command-line tool lives in cmd/minuscule (see internal/cli).
//
// Quick start:
//
//	p, err := poset.Build(lie.TypeE, 6, 1)   // 16 nodes, 27 ideals
//	if err != nil { ... }
//	rep, err := verify.VerifyExhaustively(p)
//	fmt.Println(rep.AllPass)                 // true
//
// Guarantees:
//
//   - Library packages are pure and synchronous; a built Poset is immutable
//     and safe to share between goroutines.
//   - Randomness appears only in the φ-extension sampler and is seeded
//     deterministically from its inputs.
//   - Library packages never log; the CLI logs through zap.
package minuscule
