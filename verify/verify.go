// SPDX-License-Identifier: MIT

package verify

import (
	"slices"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

// DuplicateWeight is a pair of distinct ideals with the same φ.
type DuplicateWeight struct {
	Weight []int        `json:"weight"`
	First  bitmask.Mask `json:"firstMask"`
	Second bitmask.Mask `json:"secondMask"`
}

// EquivarianceFailure is an ideal and label with φ(τ_i(I)) ≠ s_i(φ(I)).
type EquivarianceFailure struct {
	Mask  bitmask.Mask `json:"mask"`
	Label int          `json:"label"`
	LHS   []int        `json:"lhs"` // φ(τ_i(I))
	RHS   []int        `json:"rhs"` // s_i(φ(I))
}

// OutOfOrbit is an ideal whose φ is not a weight of the lattice.
type OutOfOrbit struct {
	Mask   bitmask.Mask `json:"mask"`
	Weight []int        `json:"weight"`
}

// SubsetMismatch is a type A ideal whose φ disagrees with its k-subset.
type SubsetMismatch struct {
	Mask       bitmask.Mask `json:"mask"`
	Weight     []int        `json:"weight"`
	Subset     []int        `json:"subset"`
	FromSubset []int        `json:"fromSubset"`
}

// Report is the outcome of VerifyExhaustively. Boolean fields are checks;
// pointer fields hold the first counterexample of the matching check.
type Report struct {
	Config          lie.Triple `json:"config"`
	IdealsCount     int        `json:"idealsCount"`
	ExpectedCount   int        `json:"expectedCount"`
	DistinctWeights int        `json:"distinctWeights"`

	CountMatchesDimension bool `json:"countMatchesDimension"`
	Bijective             bool `json:"bijective"`
	Equivariant           bool `json:"equivariant"`
	InOrbit               bool `json:"inOrbit"`
	// SubsetModel is checked for type A only and true otherwise.
	SubsetModel        bool `json:"subsetModel"`
	SubsetModelChecked bool `json:"subsetModelChecked"`

	DuplicateWeight     *DuplicateWeight     `json:"duplicateWeight,omitempty"`
	EquivarianceFailure *EquivarianceFailure `json:"equivarianceFailure,omitempty"`
	OutOfOrbitWeight    *OutOfOrbit          `json:"outOfOrbitWeight,omitempty"`
	SubsetMismatch      *SubsetMismatch      `json:"subsetMismatch,omitempty"`

	LabelStructure           LabelReport `json:"labelStructure"`
	PhiExtensionIndependence PhiReport   `json:"phiExtensionIndependence"`

	AllPass bool `json:"allChecksPass"`
}

// VerifyExhaustively enumerates J(P) and runs every check on it.
//
// Blueprint:
//
//	Stage 1: enumerate ideals and compute the canonical φ of each.
//	Stage 2: per ideal, record weight collisions, lattice membership,
//	         equivariance under every label and (type A) the subset model.
//	Stage 3: label structure over the same ideals.
//	Stage 4: φ-extension independence, when the options enable it.
//	Stage 5: aggregate AllPass.
//
// Mismatches are data in the Report; the error is reserved for invariant
// failures inside φ itself.
//
// Complexity: O(|J(P)|·n·|P|²) plus the φ-extension sampler.
func VerifyExhaustively(p *poset.Poset, opts ...Option) (Report, error) {
	o := resolve(opts)
	n := p.Rank()

	// Stage 1
	ideals := p.EnumerateIdeals()
	rep := Report{
		Config:             lie.Triple{Type: p.Type(), Rank: n, Index: p.Index()},
		IdealsCount:        len(ideals),
		ExpectedCount:      p.ExpectedIdeals(),
		SubsetModelChecked: p.Type() == lie.TypeA,
	}
	cartan := p.Cartan()
	seen := make(map[string]bitmask.Mask, len(ideals))

	// Stage 2
	for _, mask := range ideals {
		info, err := p.Phi(mask, nil)
		if err != nil {
			return Report{}, err
		}

		key := lie.WeightKey(info.Weight)
		if rep.OutOfOrbitWeight == nil && !p.KnowsWeight(info.Weight) {
			rep.OutOfOrbitWeight = &OutOfOrbit{Mask: mask, Weight: info.Weight}
		}
		if first, ok := seen[key]; !ok {
			seen[key] = mask
		} else if first != mask && rep.DuplicateWeight == nil {
			rep.DuplicateWeight = &DuplicateWeight{Weight: info.Weight, First: first, Second: mask}
		}

		if rep.EquivarianceFailure == nil {
			for label := 1; label <= n; label++ {
				toggled, err := p.Phi(p.ToggleByLabel(mask, label).Mask, nil)
				if err != nil {
					return Report{}, err
				}
				rhs := lie.Reflect(info.Weight, label, cartan)
				if !slices.Equal(toggled.Weight, rhs) {
					rep.EquivarianceFailure = &EquivarianceFailure{Mask: mask, Label: label, LHS: toggled.Weight, RHS: rhs}

					break
				}
			}
		}

		if rep.SubsetModelChecked && rep.SubsetMismatch == nil {
			subset, err := p.SubsetOf(info.Labels)
			if err != nil {
				return Report{}, err
			}
			fromSubset := poset.FundamentalFromSubset(subset, n)
			if !slices.Equal(fromSubset, info.Weight) {
				rep.SubsetMismatch = &SubsetMismatch{Mask: mask, Weight: info.Weight, Subset: subset, FromSubset: fromSubset}
			}
		}
	}
	rep.DistinctWeights = len(seen)

	// Stage 3
	rep.LabelStructure = AnalyzeLabelStructure(p, ideals)

	// Stage 4
	if o.shouldRunPhiCheck(n) {
		phiRep, err := CheckPhiExtensionIndependence(p, ideals, opts...)
		if err != nil {
			return Report{}, err
		}
		rep.PhiExtensionIndependence = phiRep
	} else {
		rep.PhiExtensionIndependence = skipped(n)
	}

	// Stage 5
	rep.CountMatchesDimension = rep.IdealsCount == rep.ExpectedCount
	rep.Bijective = rep.DistinctWeights == rep.IdealsCount && rep.DuplicateWeight == nil
	rep.Equivariant = rep.EquivarianceFailure == nil
	rep.InOrbit = rep.OutOfOrbitWeight == nil
	rep.SubsetModel = rep.SubsetMismatch == nil
	rep.AllPass = rep.CountMatchesDimension &&
		rep.Bijective &&
		rep.Equivariant &&
		rep.InOrbit &&
		rep.SubsetModel &&
		rep.LabelStructure.Pass() &&
		rep.PhiExtensionIndependence.Passed()

	return rep, nil
}
