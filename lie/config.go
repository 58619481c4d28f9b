// SPDX-License-Identifier: MIT

package lie

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/minuscule/fault"
)

// SupportedTypes returns the type letters in display order.
func SupportedTypes() []Type { return []Type{TypeA, TypeD, TypeE} }

// SupportedRanks returns the ranks available for t in increasing order, or
// nil for an unknown type.
func SupportedRanks(t Type) []int {
	switch t {
	case TypeA:
		return intRange(2, 8)
	case TypeD:
		return intRange(4, 8)
	case TypeE:
		return []int{6, 7}
	default:
		return nil
	}
}

// MinusculeIndices returns the minuscule node labels of t_n in increasing
// order, or nil when the rank is not supported.
func MinusculeIndices(t Type, n int) []int {
	if !rankSupported(t, n) {
		return nil
	}
	switch t {
	case TypeA:
		return intRange(1, n)
	case TypeD:
		return []int{1, n - 1, n}
	default:
		if n == 6 {
			return []int{1, 6}
		}

		return []int{7}
	}
}

// IsMinuscule reports whether (t, n, k) is a supported minuscule triple.
func IsMinuscule(t Type, n, k int) bool {
	for _, m := range MinusculeIndices(t, n) {
		if m == k {
			return true
		}
	}

	return false
}

// Validate checks type, then rank, then index, and returns a
// *fault.ConfigError naming the first rejected parameter.
func Validate(t Type, n, k int) error {
	if err := ValidateRank(t, n); err != nil {
		return err
	}
	if !IsMinuscule(t, n, k) {
		return fault.Config("index", k, MinusculeIndices(t, n), fmt.Sprintf("for %s_%d", t, n))
	}

	return nil
}

// ValidateRank checks type and rank only.
func ValidateRank(t Type, n int) error {
	ranks := SupportedRanks(t)
	if ranks == nil {
		return fault.Config("type", t, SupportedTypes(), "")
	}
	if !rankSupported(t, n) {
		return fault.Config("rank", n, ranks, "for type "+string(t))
	}

	return nil
}

// Triple is one supported (type, rank, index) configuration.
type Triple struct {
	Type  Type `json:"type" yaml:"type"`
	Rank  int  `json:"rank" yaml:"rank"`
	Index int  `json:"index" yaml:"index"`
}

// String renders "A_4 k=2".
func (tr Triple) String() string {
	return string(tr.Type) + "_" + strconv.Itoa(tr.Rank) + " k=" + strconv.Itoa(tr.Index)
}

// AllTriples lists every supported configuration in type, rank, index order.
func AllTriples() []Triple {
	var out []Triple
	for _, t := range SupportedTypes() {
		for _, n := range SupportedRanks(t) {
			for _, k := range MinusculeIndices(t, n) {
				out = append(out, Triple{Type: t, Rank: n, Index: k})
			}
		}
	}

	return out
}

func rankSupported(t Type, n int) bool {
	for _, r := range SupportedRanks(t) {
		if r == n {
			return true
		}
	}

	return false
}

func intRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	return out
}
