// SPDX-License-Identifier: MIT

package verify

import (
	"slices"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/poset"
)

// CoverViolation is a cover relation Lower ⋖ Upper whose ends share Label.
type CoverViolation struct {
	Label int `json:"label"`
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// ToggleViolation is an ideal on which the nodes of Label toggle to
// different masks in forward and reverse index order.
type ToggleViolation struct {
	Label   int          `json:"label"`
	Ideal   bitmask.Mask `json:"ideal"`
	Forward bitmask.Mask `json:"forward"`
	Reverse bitmask.Mask `json:"reverse"`
}

// LabelCheck is the per-label part of a LabelReport.
type LabelCheck struct {
	Label                  int              `json:"label"`
	NodeCount              int              `json:"nodeCount"`
	CoverPropertyPass      bool             `json:"coverPropertyPass"`
	CoverCounterexample    *CoverViolation  `json:"coverCounterexample,omitempty"`
	ToggleOrderIndependent bool             `json:"toggleOrderIndependent"`
	ToggleCounterexample   *ToggleViolation `json:"toggleCounterexample,omitempty"`
}

// LabelReport summarizes AnalyzeLabelStructure.
type LabelReport struct {
	Labels                      []LabelCheck     `json:"labels"`
	IdealsChecked               int              `json:"idealsChecked"`
	CoverPropertyPass           bool             `json:"coverPropertyPass"`
	ToggleOrderIndependencePass bool             `json:"toggleOrderIndependencePass"`
	CoverCounterexample         *CoverViolation  `json:"coverCounterexample,omitempty"`
	ToggleCounterexample        *ToggleViolation `json:"toggleCounterexample,omitempty"`
}

// Pass reports whether both properties hold for every label.
func (r LabelReport) Pass() bool { return r.CoverPropertyPass && r.ToggleOrderIndependencePass }

// AnalyzeLabelStructure checks, for every label 1..n, that no cover joins two
// nodes carrying it and that toggling its nodes in forward or reverse index
// order gives the same mask on every ideal. Nil ideals are enumerated.
//
// Complexity: O(n·|J(P)|·|P|) mask operations.
func AnalyzeLabelStructure(p *poset.Poset, ideals []bitmask.Mask) LabelReport {
	if ideals == nil {
		ideals = p.EnumerateIdeals()
	}

	rep := LabelReport{
		Labels:                      make([]LabelCheck, 0, p.Rank()),
		IdealsChecked:               len(ideals),
		CoverPropertyPass:           true,
		ToggleOrderIndependencePass: true,
	}
	for label := 1; label <= p.Rank(); label++ {
		check := checkLabel(p, label, ideals)
		if !check.CoverPropertyPass {
			rep.CoverPropertyPass = false
			if rep.CoverCounterexample == nil {
				rep.CoverCounterexample = check.CoverCounterexample
			}
		}
		if !check.ToggleOrderIndependent {
			rep.ToggleOrderIndependencePass = false
			if rep.ToggleCounterexample == nil {
				rep.ToggleCounterexample = check.ToggleCounterexample
			}
		}
		rep.Labels = append(rep.Labels, check)
	}

	return rep
}

func checkLabel(p *poset.Poset, label int, ideals []bitmask.Mask) LabelCheck {
	nodes := p.LabelIndices(label)
	check := LabelCheck{
		Label:                  label,
		NodeCount:              len(nodes),
		CoverPropertyPass:      true,
		ToggleOrderIndependent: true,
	}

	// 1. Cover property: first same-label cover wins.
	for _, i := range nodes {
		for _, pred := range p.Node(i).Preds {
			if p.Label(pred) == label {
				check.CoverPropertyPass = false
				check.CoverCounterexample = &CoverViolation{Label: label, Lower: pred, Upper: i}

				break
			}
		}
		if !check.CoverPropertyPass {
			break
		}
	}

	// 2. Toggle order independence; trivial for fewer than two nodes.
	if len(nodes) < 2 {
		return check
	}
	reversed := slices.Clone(nodes)
	slices.Reverse(reversed)
	for _, mask := range ideals {
		fwd := p.ApplyToggles(mask, nodes).Mask
		rev := p.ApplyToggles(mask, reversed).Mask
		if fwd != rev {
			check.ToggleOrderIndependent = false
			check.ToggleCounterexample = &ToggleViolation{Label: label, Ideal: mask, Forward: fwd, Reverse: rev}

			break
		}
	}

	return check
}
