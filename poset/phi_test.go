package poset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

func TestPhi_Basics(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 2)

	res, err := p.Phi(bitmask.Mask{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 0}, res.Weight)
	assert.Empty(t, res.Labels)
	assert.Empty(t, res.Order)

	res, err = p.Phi(bitmask.FromIndices(0), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, -1, 1, 0}, res.Weight)
	assert.Equal(t, []int{2}, res.Labels)

	res, err = p.Phi(bitmask.FromIndices(0, 1, 3), []int{0, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1}, res.Order)
	assert.Equal(t, []int{2, 1, 3}, res.Labels)
}

func TestPhi_InvalidExtension(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 2)
	m := bitmask.FromIndices(0, 1, 3)

	_, err := p.Phi(m, []int{3, 0, 1})
	require.ErrorIs(t, err, poset.ErrInvalidExtension)
	assert.True(t, fault.IsInvariant(err))

	assert.True(t, p.IsLinearExtension([]int{0, 1, 3}, m))
	assert.True(t, p.IsLinearExtension([]int{0, 3, 1}, m))
	assert.False(t, p.IsLinearExtension([]int{0, 1}, m), "too short")
	assert.False(t, p.IsLinearExtension([]int{0, 1, 1}, m), "repeated")
	assert.False(t, p.IsLinearExtension([]int{0, 1, 4}, m), "foreign")
	assert.False(t, p.IsLinearExtension([]int{0, 1, -1}, m), "out of range")
	assert.True(t, p.IsLinearExtension([]int{}, bitmask.Mask{}))
}

func TestLinearExtension_Choosers(t *testing.T) {
	p := mustBuild(t, lie.TypeE, 6, 1)
	choosers := map[string]poset.Chooser{
		"min-index": poset.ChooseMinIndex,
		"max-index": poset.ChooseMaxIndex,
		"min-label": poset.ChooseMinLabel,
		"max-label": poset.ChooseMaxLabel,
	}
	for _, m := range p.EnumerateIdeals() {
		base, err := p.Phi(m, nil)
		require.NoError(t, err)
		for name, c := range choosers {
			order, err := p.LinearExtension(m, c)
			require.NoError(t, err, name)
			require.True(t, p.IsLinearExtension(order, m), name)
			res, err := p.Phi(m, order)
			require.NoError(t, err, name)
			assert.Equal(t, base.Weight, res.Weight, "%s on %s", name, m)
		}
	}

	full := p.EnumerateIdeals()
	last := full[len(full)-1]
	_, err := p.LinearExtension(last, func(_ *poset.Poset, _ []int) int { return 99 })
	assert.ErrorIs(t, err, poset.ErrInvalidExtension)
}

func TestChoosers_TieBreaks(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 2)
	// nodes 0 and 4 both carry label 2; nodes 1 and 5 both carry label 3
	assert.Equal(t, 0, poset.ChooseMinLabel(p, []int{0, 4}))
	assert.Equal(t, 4, poset.ChooseMaxLabel(p, []int{0, 4}))
	assert.Equal(t, 3, poset.ChooseMinLabel(p, []int{1, 3, 5}))
	assert.Equal(t, 5, poset.ChooseMaxLabel(p, []int{1, 3, 5}))
	assert.Equal(t, 1, poset.ChooseMinIndex(p, []int{1, 3, 5}))
	assert.Equal(t, 5, poset.ChooseMaxIndex(p, []int{1, 3, 5}))
}

func TestPhi_BijectiveOntoOrbit(t *testing.T) {
	for _, tr := range lie.AllTriples() {
		p := mustBuild(t, tr.Type, tr.Rank, tr.Index)
		seen := make(map[string]bitmask.Mask)
		for _, m := range p.EnumerateIdeals() {
			res, err := p.Phi(m, nil)
			require.NoError(t, err)
			key := lie.WeightKey(res.Weight)
			prev, dup := seen[key]
			assert.False(t, dup, "%s: %s and %s share %s", tr, prev, m, key)
			seen[key] = m
			assert.True(t, p.KnowsWeight(res.Weight), "%s: %s", tr, key)
		}
		assert.Len(t, seen, p.ExpectedIdeals(), tr.String())
	}
}

func TestSubsetModel_AgreesWithPhi(t *testing.T) {
	for n := 2; n <= 8; n++ {
		for k := 1; k <= n; k++ {
			p := mustBuild(t, lie.TypeA, n, k)
			for _, m := range p.EnumerateIdeals() {
				res, err := p.Phi(m, nil)
				require.NoError(t, err)
				subset, err := p.SubsetOf(res.Labels)
				require.NoError(t, err)
				require.Len(t, subset, k)
				assert.Equal(t, res.Weight, poset.FundamentalFromSubset(subset, n), "A_%d k=%d %s", n, k, m)
			}
		}
	}
}

func TestSubsetOf(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 2)
	s, err := p.SubsetOf(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s)

	s, err = p.SubsetOf([]int{2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, s)

	_, err = p.SubsetOf([]int{5})
	assert.Error(t, err)

	d := mustBuild(t, lie.TypeD, 4, 1)
	_, err = d.SubsetOf(nil)
	assert.ErrorIs(t, err, poset.ErrNotTypeA)

	assert.Equal(t, []int{0, 1, 0, 0}, poset.FundamentalFromSubset([]int{1, 2}, 4))
	assert.Equal(t, []int{-1, 1, -1, 1}, poset.FundamentalFromSubset([]int{2, 4}, 4))
}
