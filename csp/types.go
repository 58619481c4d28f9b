// SPDX-License-Identifier: MIT

package csp

import (
	"fmt"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/rational"
)

const stabilityTolerance = 1e-7

var (
	// ErrOrder is returned for a non-positive root-of-unity order.
	ErrOrder = fmt.Errorf("csp: root-of-unity order must be positive: %w", fault.ErrConfiguration)

	// ErrNotTypeA is returned by the type A closed forms on D/E posets.
	ErrNotTypeA = fmt.Errorf("csp: closed form defined for type A only: %w", fault.ErrConfiguration)
)

// Evaluation is f(ζ^power) for ζ a primitive order-th root of unity.
type Evaluation struct {
	Order        int     `json:"order"`
	Power        int     `json:"power"` // normalized into [0, order)
	GCD          int     `json:"gcd"`
	RootOrder    int     `json:"rootOrder"` // order / gcd
	UnitPower    int     `json:"unitPower"` // power / gcd
	Real         float64 `json:"real"`
	Imag         float64 `json:"imag"`
	Rounded      int64   `json:"rounded"`
	RealResidual float64 `json:"realResidual"`
	Stable       bool    `json:"stable"`
}

// RankPrediction is the CSP prediction from the rank-generating polynomial.
type RankPrediction struct {
	FixedPoints  int64         `json:"fixedPoints"`
	Coefficients rational.Poly `json:"coefficients"`
	Ideals       int           `json:"ideals"`
	Evaluation   Evaluation    `json:"evaluation"`
}

// TypeAPrediction is the closed-form CSP prediction for type A.
type TypeAPrediction struct {
	FixedPoints  int64         `json:"fixedPoints"`
	Order        int           `json:"order"`
	Power        int           `json:"power"`
	GaussianN    int           `json:"gaussianN"`
	GaussianK    int           `json:"gaussianK"`
	Coefficients rational.Poly `json:"coefficients"`
	GCD          int           `json:"gcd"`
	RootOrder    int           `json:"rootOrder"`
	Divisible    bool          `json:"divisible"`
	QuotientK    int           `json:"quotientK,omitempty"`
}

// Homomesy holds predicted orbit averages.
type Homomesy struct {
	AvgLabelCounts   []rational.Fraction `json:"avgLabelCounts"`
	AvgSize          rational.Fraction   `json:"avgSize"`
	AvgAntichainSize rational.Fraction   `json:"avgAntichainSize"`
	Source           HomomesySource      `json:"source"`
}

// HomomesySource names the formula behind each prediction.
type HomomesySource struct {
	LabelCounts   string `json:"labelCounts"`
	Size          string `json:"size"`
	AntichainSize string `json:"antichainSize"`
}

// PowerCheck compares observed and predicted fixed points of a^power.
type PowerCheck struct {
	Power     int   `json:"power"`
	Observed  int   `json:"observed"`
	Predicted int64 `json:"predicted"`
	Stable    bool  `json:"stable"`
	// ClosedForm is the type A closed-form value; -1 for other types.
	ClosedForm int64 `json:"closedForm"`
	Match      bool  `json:"match"`
}

// Report is a full CSP check over powers 0..h-1.
type Report struct {
	Order        int           `json:"order"`
	Coefficients rational.Poly `json:"coefficients"`
	Powers       []PowerCheck  `json:"powers"`
	AllMatch     bool          `json:"allMatch"`
}

// OrbitMismatch is the first orbit whose average differs from a prediction.
type OrbitMismatch struct {
	Statistic string            `json:"statistic"` // "size", "antichain" or "label <i>"
	Start     bitmask.Mask      `json:"start"`
	Length    int               `json:"length"`
	Observed  rational.Fraction `json:"observed"`
	Predicted rational.Fraction `json:"predicted"`
}

// HomomesyReport compares every orbit against Homomesy predictions.
type HomomesyReport struct {
	Orbits         int            `json:"orbits"`
	Predictions    Homomesy       `json:"predictions"`
	SizePass       bool           `json:"sizePass"`
	AntichainPass  bool           `json:"antichainPass"`
	LabelPass      []bool         `json:"labelPass"` // index i is label i+1
	Counterexample *OrbitMismatch `json:"counterexample,omitempty"`

	// AntichainExpected is set for Fon-Der-Flaass, the only action whose
	// antichain averages are predicted to be constant.
	AntichainExpected bool `json:"antichainExpected"`

	// AllPass is SizePass and every LabelPass, plus AntichainPass when
	// AntichainExpected.
	AllPass bool `json:"allPass"`
}
