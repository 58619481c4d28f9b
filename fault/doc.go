// Package fault defines the error taxonomy shared by every minuscule package.
//
// Two classes exist:
//
//   - ErrConfiguration: the caller asked for something the engine does not
//     support (unknown Lie type, rank outside the supported list, an index that
//     is not minuscule, a malformed Coxeter word, a poset too large for the mask
//     width). These are returned as *ConfigError, which names the parameter,
//     the offending value and the valid alternatives.
//   - ErrInvariant: an internal defect (cyclic weight graph, singular Cartan
//     matrix, invalid linear extension, orbit that never closes). Package-level
//     sentinels in the algorithm packages wrap ErrInvariant so callers can
//     classify them with errors.Is.
//
// Verification counterexamples are not errors; they are reported as data by
// package verify.
package fault
