package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/lattice"
	"github.com/katalvlaran/minuscule/lie"
)

func build(t *testing.T, typ lie.Type, n, k int) *lattice.Lattice {
	t.Helper()
	c, err := lie.CartanMatrix(typ, n)
	require.NoError(t, err)
	l, err := lattice.Build(c, lie.HighestWeight(n, k))
	require.NoError(t, err)

	return l
}

func TestBuild_SizesMatchDimension(t *testing.T) {
	for _, tr := range lie.AllTriples() {
		l := build(t, tr.Type, tr.Rank, tr.Index)
		dim, err := lie.Dimension(tr.Type, tr.Rank, tr.Index)
		require.NoError(t, err)
		assert.Equal(t, dim, l.Len(), tr.String())
	}
}

func TestBuild_Structure(t *testing.T) {
	for _, tr := range lie.AllTriples() {
		l := build(t, tr.Type, tr.Rank, tr.Index)

		assert.Equal(t, 0, l.Top(), tr.String())
		assert.Equal(t, 0, l.Depth(l.Top()))
		assert.Empty(t, l.Up(l.Top()), "%s: top has no incoming edges", tr)
		assert.Equal(t, l.Len(), l.Closure(l.Top()).Count(), "%s: top dominates every weight", tr)

		// A distributive lattice has length equal to its number of
		// join-irreducibles.
		assert.Equal(t, len(l.JoinIrreducibles()), l.MaxDepth(), tr.String())

		// Exactly one sink, the lowest weight.
		sinks := 0
		for i := 0; i < l.Len(); i++ {
			if len(l.Down(i)) == 0 {
				sinks++
				assert.Equal(t, l.MaxDepth(), l.Depth(i))
			}
			for _, e := range l.Down(i) {
				assert.Equal(t, i, e.From)
				assert.Greater(t, l.Depth(e.To), l.Depth(i))
				assert.True(t, l.Below(i, e.To))
			}
		}
		assert.Equal(t, 1, sinks, tr.String())
	}
}

func TestBuild_D4Vector(t *testing.T) {
	l := build(t, lie.TypeD, 4, 1)
	assert.Equal(t, 8, l.Len())
	assert.Len(t, l.JoinIrreducibles(), 6)
	assert.Equal(t, 6, l.MaxDepth())

	// the top weight ω_1 only pairs positively with α_1
	down := l.Down(l.Top())
	require.Len(t, down, 1)
	assert.Equal(t, 1, down[0].Label)

	i, ok := l.IndexOf([]int{-1, 1, 0, 0})
	require.True(t, ok)
	assert.Equal(t, down[0].To, i)
	assert.True(t, l.Contains([]int{-1, 0, 0, 0}))
	assert.False(t, l.Contains([]int{2, 0, 0, 0}))
}

func TestBuild_TopologicalOrder(t *testing.T) {
	l := build(t, lie.TypeE, 6, 1)
	pos := make(map[int]int, l.Len())
	for p, v := range l.Topological() {
		pos[v] = p
	}
	require.Len(t, pos, 27)
	for i := 0; i < l.Len(); i++ {
		for _, e := range l.Down(i) {
			assert.Less(t, pos[e.From], pos[e.To])
		}
	}
}

func TestBuild_AccessorsCopy(t *testing.T) {
	l := build(t, lie.TypeA, 3, 2)
	w := l.Weight(0)
	w[0] = 99
	assert.Equal(t, []int{0, 1, 0}, l.Weight(0))

	ws := l.Weights()
	ws[1][0] = 99
	assert.NotEqual(t, 99, l.Weight(1)[0])
}

func TestBuild_Errors(t *testing.T) {
	_, err := lattice.Build(nil, nil)
	assert.ErrorIs(t, err, lattice.ErrEmptyInput)

	c, err := lie.CartanMatrix(lie.TypeA, 3)
	require.NoError(t, err)
	_, err = lattice.Build(c, []int{1, 0})
	assert.ErrorIs(t, err, lattice.ErrEmptyInput)

	// A non-minuscule weight of A_8 has an orbit of 9!/6! = 504 weights.
	a8, err := lie.CartanMatrix(lie.TypeA, 8)
	require.NoError(t, err)
	_, err = lattice.Build(a8, []int{1, 1, 1, 0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, bitmask.ErrCapacity)

	// A degenerate matrix fixes the weight and orients a self-loop.
	_, err = lattice.Build(lie.Matrix{{0}}, []int{1})
	assert.ErrorIs(t, err, lattice.ErrCyclic)
	assert.True(t, fault.IsInvariant(err))
}
