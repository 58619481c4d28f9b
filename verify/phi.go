// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/poset"
)

// PhiCounterexample is an ideal whose φ depends on the linear extension.
type PhiCounterexample struct {
	Mask          bitmask.Mask `json:"mask"`
	BaseOrder     []int        `json:"baseOrder"`
	BaseWeight    []int        `json:"baseWeight"`
	WitnessOrder  []int        `json:"witnessOrder"`
	WitnessWeight []int        `json:"witnessWeight"`
}

// PhiReport summarizes CheckPhiExtensionIndependence. Pass is meaningful
// only when Ran is true; otherwise SkippedReason says why.
type PhiReport struct {
	Ran                bool               `json:"ran"`
	Pass               bool               `json:"pass"`
	SkippedReason      string             `json:"skippedReason,omitempty"`
	MaxSamplesPerIdeal int                `json:"maxSamplesPerIdeal,omitempty"`
	IdealsChecked      int                `json:"idealsChecked"`
	SamplesChecked     int                `json:"samplesChecked"`
	Counterexample     *PhiCounterexample `json:"counterexample,omitempty"`
}

// Passed treats a skipped check as passing.
func (r PhiReport) Passed() bool { return !r.Ran || r.Pass }

// skipped builds the report for a check the options turned off.
func skipped(n int) PhiReport {
	return PhiReport{
		SkippedReason: fmt.Sprintf("Skipped for n=%d; enabled by default only for n <= %d.", n, AutoPhiCheckMaxRank),
	}
}

// SampleLinearExtensions returns up to maxSamples distinct linear extensions
// of mask: the least-index, greatest-index, least-label and greatest-label
// orders first, then seeded random orders for at most 10·maxSamples
// attempts. The same inputs always give the same samples.
func SampleLinearExtensions(p *poset.Poset, mask bitmask.Mask, maxSamples int) ([][]int, error) {
	samples := make([][]int, 0, maxSamples)
	seen := make(map[string]struct{}, maxSamples)
	add := func(order []int) {
		key := orderKey(order)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		samples = append(samples, order)
	}

	// 1. Deterministic choosers.
	for _, choose := range []poset.Chooser{
		poset.ChooseMinIndex,
		poset.ChooseMaxIndex,
		poset.ChooseMinLabel,
		poset.ChooseMaxLabel,
	} {
		order, err := p.LinearExtension(mask, choose)
		if err != nil {
			return nil, err
		}
		add(order)
	}

	// 2. Seeded random choosers until the budget or attempt cap is hit.
	for attempt := 0; len(samples) < maxSamples && attempt < attemptFactor*maxSamples; attempt++ {
		rng := newXorshift32(deriveSeed(mask, attempt, p))
		order, err := p.LinearExtension(mask, randomChooser(rng))
		if err != nil {
			return nil, err
		}
		add(order)
	}

	return samples, nil
}

// CheckPhiExtensionIndependence compares φ along sampled linear extensions
// of each ideal against the canonical φ and stops at the first disagreement.
// It always runs; the PhiCheck option is honored by VerifyExhaustively.
// Nil ideals are enumerated.
//
// Complexity: O(|J(P)|·maxSamples·|P|²).
func CheckPhiExtensionIndependence(p *poset.Poset, ideals []bitmask.Mask, opts ...Option) (PhiReport, error) {
	o := resolve(opts)
	if ideals == nil {
		ideals = p.EnumerateIdeals()
	}
	if o.IdealSampleCap > 0 && o.IdealSampleCap < len(ideals) {
		ideals = ideals[:o.IdealSampleCap]
	}

	rep := PhiReport{Ran: true, MaxSamplesPerIdeal: o.MaxSamplesPerIdeal}
	for _, mask := range ideals {
		base, err := p.Phi(mask, nil)
		if err != nil {
			return PhiReport{}, err
		}
		samples, err := SampleLinearExtensions(p, mask, o.MaxSamplesPerIdeal)
		if err != nil {
			return PhiReport{}, err
		}

		for _, order := range samples {
			witness, err := p.Phi(mask, order)
			if err != nil {
				return PhiReport{}, err
			}
			rep.SamplesChecked++
			if !slices.Equal(base.Weight, witness.Weight) {
				rep.Counterexample = &PhiCounterexample{
					Mask:          mask,
					BaseOrder:     base.Order,
					BaseWeight:    base.Weight,
					WitnessOrder:  witness.Order,
					WitnessWeight: witness.Weight,
				}

				break
			}
		}
		rep.IdealsChecked++
		if rep.Counterexample != nil {
			break
		}
	}
	rep.Pass = rep.Counterexample == nil

	return rep, nil
}

func orderKey(order []int) string {
	var b strings.Builder
	for i, v := range order {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
