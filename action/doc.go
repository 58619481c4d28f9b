// Package action implements toggle-group actions on the order ideals of a
// minuscule poset: the Fon-Der-Flaass action (rowmotion by rank toggles) and
// the action of a Coxeter element given as a word in simple-root toggles.
//
// Action is a closed set of variants; the unexported method keeps callers
// from adding new ones. Apply records every elementary step so the caller
// can replay or render it; OrbitFrom walks a full orbit; CountFixedPoints and
// Summarize feed the cyclic-sieving and homomesy checks in package csp.
//
//	FonDerFlaass: toggle ranks from RankMax down to RankMin.
//	CoxeterWord:  for c = s_{i1}…s_{in}, toggle labels i_n, …, i_1 (right to left).
//
// On every supported configuration the Fon-Der-Flaass action has order
// dividing the Coxeter number h.
package action
