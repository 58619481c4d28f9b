// Package verify runs exhaustive structural checks on a minuscule poset.
//
// VerifyExhaustively enumerates J(P) and checks, over every ideal:
//   - the count equals dim V(ω_k);
//   - φ is injective (hence bijective onto the weights);
//   - φ is equivariant: φ(τ_i(I)) = s_i(φ(I)) for every label i;
//   - φ(I) lies in the Weyl orbit of ω_k (types D and E, via the lattice);
//   - for type A, φ agrees with the k-subset model of ∧^k(ℂ^{n+1}).
//
// AnalyzeLabelStructure checks that no cover joins two equally labeled
// nodes and that toggling the nodes of one label is order independent.
// CheckPhiExtensionIndependence samples several linear extensions of each
// ideal (four deterministic choosers plus seeded xorshift32 streams) and
// compares the resulting weights.
//
// Failures of the mathematical contract are reported as data with the first
// counterexample; only internal defects surface as errors.
//
// Options follow the functional style: DefaultOptions then Option values.
package verify
