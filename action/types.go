// SPDX-License-Identifier: MIT

package action

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/poset"
	"github.com/katalvlaran/minuscule/rational"
)

var (
	// ErrOrbitNotClosed indicates an orbit that revisits a non-start ideal or
	// exceeds |J(P)|+1 steps.
	ErrOrbitNotClosed = fmt.Errorf("action: orbit does not return to its start: %w", fault.ErrInvariant)

	// ErrEmptyOrbit is returned by Summarize for an empty mask list.
	ErrEmptyOrbit = errors.New("action: empty orbit")
)

// Action is one of FonDerFlaass or CoxeterWord.
type Action interface {
	// Name is a short identifier: "fdf" or "coxeter".
	Name() string
	// String describes the action for display.
	String() string

	apply(p *poset.Poset, mask bitmask.Mask) Result
}

// Step is one elementary toggle round. Rank is set for Fon-Der-Flaass;
// Label and WordPosition (0-based) for Coxeter words.
type Step struct {
	Rank         int          `json:"rank"`
	Label        int          `json:"label"`
	WordPosition int          `json:"wordPosition"`
	Before       bitmask.Mask `json:"before"`
	After        bitmask.Mask `json:"after"`
	Changed      []int        `json:"changed"`
}

// Result is the outcome of one application of an action.
type Result struct {
	Mask    bitmask.Mask `json:"mask"`
	Steps   []Step       `json:"steps"`
	Changed []int        `json:"changed"` // union of step changes, first-seen order
}

// Transition is one application inside an orbit walk.
type Transition struct {
	From    bitmask.Mask `json:"from"`
	To      bitmask.Mask `json:"to"`
	Changed []int        `json:"changed"`
}

// Orbit is the cycle of an ideal under an action.
type Orbit struct {
	Start      bitmask.Mask   `json:"start"`
	Masks      []bitmask.Mask `json:"masks"` // Masks[0] == Start
	Steps      []Transition   `json:"steps"`
	Length     int            `json:"length"`
	FixedPoint bool           `json:"fixedPoint"`
}

// FixedPoints counts the ideals an action leaves unchanged.
type FixedPoints struct {
	Count   int            `json:"count"`
	Checked int            `json:"checked"`
	Masks   []bitmask.Mask `json:"masks"`
}

// Summary holds exact orbit averages of the ideal statistics.
type Summary struct {
	Length           int                 `json:"length"`
	AvgSize          rational.Fraction   `json:"avgSize"`
	AvgAntichainSize rational.Fraction   `json:"avgAntichainSize"`
	AvgLabelCounts   []rational.Fraction `json:"avgLabelCounts"`
}
