// Package bitmask provides Mask, a fixed-width comparable bit set used to
// represent order ideals of a poset and downward closures in a weight lattice.
//
// A Mask is a value: every operation returns a new Mask and never mutates its
// receiver. Because Mask is comparable it can be used directly as a map key,
// which the ideal enumeration and orbit code rely on.
//
// Capacity:
//
//	MaxBits = 256. The largest supported configuration needs 28 poset
//	elements (D_8 half-spin) and 128 lattice weights, so one Mask covers both.
//
// Complexity:
//
//   - Has, Set, Clear:          O(1)
//   - Count, Or, And, AndNot:   O(Words)
//   - Indices, String:          O(MaxBits)
package bitmask
