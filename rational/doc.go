// Package rational provides the exact arithmetic the minuscule engine needs:
// a reduced int64 Fraction, integer-coefficient polynomials (Poly), exact
// Gauss–Jordan solving over fractions, and small combinatorial helpers.
//
// Floating point never appears here. Inverse-Cartan entries, homomesy averages
// and Gaussian binomial coefficients are compared for equality, so they must be
// exact.
//
// Canonical form:
//
//   - Fraction: gcd(num, den) = 1, den > 0, zero is 0/1.
//   - Poly:     coefficient i multiplies q^i; trailing zero coefficients are
//     trimmed, and the zero polynomial is Poly{0}.
//
// Errors:
//
//   - ErrZeroDenominator  New(x, 0) or division by a zero Fraction
//     (wraps fault.ErrInvariant).
//   - ErrSingular         Solve found the remaining submatrix all zero
//     (wraps fault.ErrInvariant: a Cartan matrix is never singular).
//   - ErrDimensionMismatch Solve received a non-square system
//     (wraps fault.ErrConfiguration).
package rational
