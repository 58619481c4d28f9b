// Package csp predicts fixed-point counts and orbit averages of toggle
// actions on minuscule posets and checks the predictions against the
// observed actions.
//
// Cyclic sieving: with M_P(q) = Σ_{I ∈ J(P)} q^{|I|} the rank-generating
// polynomial and h the Coxeter number, the number of ideals fixed by the
// p-th power of the Fon-Der-Flaass action equals M_P(ζ^p), ζ = e^{2πi/h}.
// For type A, M_P(q) is the Gaussian binomial [n+1 choose k]_q and the value
// has the closed form C(g, k/r) with g = gcd(n+1, p), r = (n+1)/g, or 0 when
// r does not divide k.
//
// Root-of-unity values are computed in float64 after folding exponents into
// residues modulo the reduced root order; results carry a stability flag
// (imaginary part and rounding residual both within 1e-7).
//
// Homomesy: every orbit average of the number of i-labeled elements is
// predicted to be (C⁻¹)_{i,k}; their sum predicts the average ideal size, and
// |P|/h predicts the average antichain size under Fon-Der-Flaass. All
// predictions are exact rational.Fraction values.
package csp
