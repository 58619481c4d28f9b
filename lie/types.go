// SPDX-License-Identifier: MIT

package lie

import (
	"strings"

	"github.com/katalvlaran/minuscule/fault"
)

// Type is a simply-laced Lie type letter.
type Type string

// Supported types.
const (
	TypeA Type = "A"
	TypeD Type = "D"
	TypeE Type = "E"
)

// String returns the type letter.
func (t Type) String() string { return string(t) }

// ParseType accepts "a", " D ", "E" and similar; anything else is a
// *fault.ConfigError listing the supported letters.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypeA, TypeD, TypeE:
		return t, nil
	}

	return "", fault.Config("type", s, SupportedTypes(), "")
}

// Matrix is a square integer matrix indexed [row][col], 0-based.
type Matrix [][]int

// Size returns the number of rows.
func (m Matrix) Size() int { return len(m) }

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}

	return out
}

// Representation describes the minuscule module V(ω_k) a poset models.
type Representation struct {
	// Model is a short name such as "V(ω_2) = ∧^2(ℂ^5)".
	Model string `json:"model"`
	// HighestWeight names the highest weight, e.g. "ω_2".
	HighestWeight string `json:"highestWeight"`
	// Notes carries one-line remarks about the realization.
	Notes []string `json:"notes"`
}
