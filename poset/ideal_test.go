package poset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/lie"
)

func TestToggle_A4k2Scenario(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 2)
	empty := bitmask.Mask{}

	res := p.ToggleByLabel(empty, 2)
	assert.Equal(t, bitmask.FromIndices(0), res.Mask)
	assert.Equal(t, []int{0}, res.Changed)

	res = p.ToggleByLabel(empty, 1)
	assert.True(t, res.Mask.IsZero(), "label 1 has no addable node on the empty ideal")
	assert.Empty(t, res.Changed)

	res = p.ToggleByLabel(empty, 7)
	assert.True(t, res.Mask.IsZero())
	assert.NotNil(t, res.Changed)
	assert.Empty(t, res.Changed)
}

func TestToggle_A4k1AddsOneNode(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 1)
	res := p.ToggleByLabel(bitmask.Mask{}, 1)
	assert.Equal(t, 1, res.Mask.Count())
	assert.Equal(t, []int{0}, res.Changed)
}

func TestToggle_D4Vector(t *testing.T) {
	p := mustBuild(t, lie.TypeD, 4, 1)
	res := p.ToggleByLabel(bitmask.Mask{}, 1)
	assert.Equal(t, []int{5}, res.Changed)
}

func TestToggle_Primitives(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 2)
	m := bitmask.FromIndices(0, 1, 3) // (1,1), (1,2), (2,1)

	assert.True(t, p.CanAdd(m, 4))
	assert.False(t, p.CanAdd(m, 5))
	assert.False(t, p.CanAdd(m, 0), "already present")
	assert.False(t, p.CanAdd(m, -1))
	assert.False(t, p.CanAdd(m, 42))

	assert.True(t, p.CanRemove(m, 1))
	assert.True(t, p.CanRemove(m, 3))
	assert.False(t, p.CanRemove(m, 0), "has upper covers inside")
	assert.False(t, p.CanRemove(m, 4), "absent")

	assert.Equal(t, m.Set(4), p.ToggleNode(m, 4))
	assert.Equal(t, m.Clear(1), p.ToggleNode(m, 1))
	assert.Equal(t, m, p.ToggleNode(m, 5))
	assert.Equal(t, m, p.ToggleNode(m, 99))

	res := p.ApplyToggles(m, []int{5, 4, 2, 5, 0})
	assert.Equal(t, []int{4, 2, 5}, res.Changed)
	assert.Equal(t, bitmask.FromIndices(0, 1, 3, 4, 5), res.Mask)
}

func TestToggleByRank(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 3, 2)
	// rank 3 holds (1,2) and (2,1); both need (1,1) first
	res := p.ToggleByRank(bitmask.Mask{}, 3)
	assert.Empty(t, res.Changed)
	res = p.ToggleByRank(bitmask.FromIndices(0), 3)
	assert.Equal(t, []int{1, 2}, res.Changed)
}

func TestEnumerateIdeals_AllConfigurations(t *testing.T) {
	for _, tr := range lie.AllTriples() {
		p := mustBuild(t, tr.Type, tr.Rank, tr.Index)
		ideals := p.EnumerateIdeals()
		require.Equal(t, p.ExpectedIdeals(), len(ideals), tr.String())
		assert.True(t, ideals[0].IsZero())

		seen := make(map[bitmask.Mask]bool, len(ideals))
		for _, m := range ideals {
			assert.False(t, seen[m], "%s: duplicate %s", tr, m)
			seen[m] = true
			assert.True(t, p.IsIdeal(m), "%s: %s", tr, m)
		}
	}
}

func TestIsIdeal(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 2)
	assert.True(t, p.IsIdeal(bitmask.Mask{}))
	assert.True(t, p.IsIdeal(bitmask.FromIndices(0, 3)))
	assert.False(t, p.IsIdeal(bitmask.FromIndices(3)))
	assert.False(t, p.IsIdeal(bitmask.FromIndices(0, 6)), "bit beyond the poset")
}

func TestStatisticsAndMaximal(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 2)
	full := bitmask.FromIndices(0, 1, 2, 3, 4, 5)

	st := p.Statistics(full)
	assert.Equal(t, 6, st.Size)
	assert.Equal(t, []int{1, 2, 2, 1}, st.LabelCounts)
	assert.Equal(t, 1, st.AntichainSize)
	assert.Equal(t, []int{5}, p.MaximalElements(full))

	m := bitmask.FromIndices(0, 1, 3)
	st = p.Statistics(m)
	assert.Equal(t, 3, st.Size)
	assert.Equal(t, 2, st.AntichainSize)
	assert.Equal(t, []int{1, 3}, p.MaximalElements(m))

	st = p.Statistics(bitmask.Mask{})
	assert.Equal(t, 0, st.Size)
	assert.Equal(t, []int{0, 0, 0, 0}, st.LabelCounts)
	assert.Empty(t, p.MaximalElements(bitmask.Mask{}))
}
