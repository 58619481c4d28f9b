package action_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minuscule/action"
	"github.com/katalvlaran/minuscule/bitmask"
	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/poset"
)

func mustBuild(t testing.TB, typ lie.Type, n, k int) *poset.Poset {
	t.Helper()
	p, err := poset.Build(typ, n, k)
	require.NoError(t, err)

	return p
}

func identityWord(t testing.TB, n int) action.CoxeterWord {
	t.Helper()
	word := make([]int, n)
	for i := range word {
		word[i] = i + 1
	}
	c, err := action.NewCoxeterWord(word, n)
	require.NoError(t, err)

	return c
}

func TestFonDerFlaass_FromEmpty(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 4, 2)
	res := action.Apply(p, bitmask.Mask{}, action.FonDerFlaass{})

	assert.Equal(t, bitmask.FromIndices(0), res.Mask)
	assert.Equal(t, []int{0}, res.Changed)
	require.Len(t, res.Steps, 4)
	for i, s := range res.Steps {
		assert.Equal(t, 5-i, s.Rank)
	}
	assert.Equal(t, res.Steps[3].Before, bitmask.Mask{})
	assert.Equal(t, res.Steps[3].After, bitmask.FromIndices(0))
}

func TestCoxeterWord_A2(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 2, 1)
	c := identityWord(t, 2)
	assert.Equal(t, "s1 s2", c.String())
	assert.Equal(t, "coxeter", c.Name())

	res := action.Apply(p, bitmask.Mask{}, c)
	assert.Equal(t, bitmask.FromIndices(0), res.Mask)
	require.Len(t, res.Steps, 2)
	assert.Equal(t, 2, res.Steps[0].Label)
	assert.Equal(t, 1, res.Steps[0].WordPosition)
	assert.Empty(t, res.Steps[0].Changed)
	assert.Equal(t, 1, res.Steps[1].Label)
	assert.Equal(t, 0, res.Steps[1].WordPosition)

	res = action.Apply(p, bitmask.FromIndices(0, 1), c)
	assert.True(t, res.Mask.IsZero())
	assert.Equal(t, []int{1, 0}, res.Changed)

	o, err := action.OrbitFrom(p, bitmask.Mask{}, c)
	require.NoError(t, err)
	assert.Equal(t, 3, o.Length)
	assert.False(t, o.FixedPoint)
	assert.Equal(t, []bitmask.Mask{{}, bitmask.FromIndices(0), bitmask.FromIndices(0, 1)}, o.Masks)
	require.Len(t, o.Steps, 3)
	assert.Equal(t, o.Start, o.Steps[2].To)
}

func TestFonDerFlaass_OrderDividesCoxeterNumber(t *testing.T) {
	for _, tr := range lie.AllTriples() {
		p := mustBuild(t, tr.Type, tr.Rank, tr.Index)
		h := p.CoxeterNumber()
		ideals := p.EnumerateIdeals()

		for _, a := range []action.Action{action.FonDerFlaass{}, identityWord(t, tr.Rank)} {
			for _, m := range ideals {
				require.Equal(t, m, action.Iterate(p, m, a, h), "%s %s: a^h on %s", tr, a, m)
			}
			orbits, err := action.Orbits(p, a, ideals)
			require.NoError(t, err)
			total := 0
			for _, o := range orbits {
				assert.Zero(t, h%o.Length, "%s %s: orbit length %d", tr, a, o.Length)
				total += o.Length
			}
			assert.Equal(t, len(ideals), total, "%s %s: orbits partition J(P)", tr, a)
		}
	}
}

func TestFixedPoints(t *testing.T) {
	p := mustBuild(t, lie.TypeA, 3, 2)
	ideals := p.EnumerateIdeals()
	fp := action.CountFixedPoints(p, action.FonDerFlaass{}, nil)
	assert.Equal(t, len(ideals), fp.Checked)
	assert.Equal(t, 0, fp.Count)
	assert.NotNil(t, fp.Masks)

	// a^h fixes everything
	fp = action.CountFixedPointsOfPower(p, action.FonDerFlaass{}, p.CoxeterNumber(), ideals)
	assert.Equal(t, len(ideals), fp.Count)
	fp = action.CountFixedPointsOfPower(p, action.FonDerFlaass{}, 0, ideals)
	assert.Equal(t, len(ideals), fp.Count)
}

func TestSummarize_TypeAHomomesy(t *testing.T) {
	for n := 2; n <= 8; n++ {
		for k := 1; k <= n; k++ {
			p := mustBuild(t, lie.TypeA, n, k)
			orbits, err := action.Orbits(p, action.FonDerFlaass{}, nil)
			require.NoError(t, err)
			for _, o := range orbits {
				s, err := action.Summarize(p, o.Masks)
				require.NoError(t, err)
				assert.Equal(t, o.Length, s.Length)
				// |I| averages to k(n+1-k)/2, the antichain to k(n+1-k)/(n+1).
				assert.True(t, s.AvgSize.Mul(fracInt(2)).Equal(fracInt(int64(k*(n+1-k)))), "A_%d k=%d", n, k)
				assert.True(t, s.AvgAntichainSize.Mul(fracInt(int64(n+1))).Equal(fracInt(int64(k*(n+1-k)))), "A_%d k=%d", n, k)
			}
		}
	}

	_, err := action.Summarize(mustBuild(t, lie.TypeA, 2, 1), nil)
	assert.ErrorIs(t, err, action.ErrEmptyOrbit)
}

func TestNewCoxeterWord_Rejects(t *testing.T) {
	cases := map[string][]int{
		"short":     {1, 2},
		"repeated":  {1, 1, 2},
		"too large": {1, 2, 4},
		"zero":      {0, 1, 2},
	}
	for name, w := range cases {
		_, err := action.NewCoxeterWord(w, 3)
		require.Error(t, err, name)
		assert.True(t, fault.IsConfiguration(err), name)
		var ce *fault.ConfigError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "word", ce.Param)
	}
}

func TestParseCoxeterWord(t *testing.T) {
	for _, in := range []string{"2 1 3", "2,1,3", "s2 s1 s3", "2>1>3", " 2 , 1 > s3 "} {
		c, err := action.ParseCoxeterWord(in, 3)
		require.NoError(t, err, in)
		assert.Equal(t, []int{2, 1, 3}, c.Word(), in)
	}

	for _, in := range []string{"", "2 1", "2 x 3", "2 2 3", "1 2 3 4"} {
		_, err := action.ParseCoxeterWord(in, 3)
		assert.True(t, fault.IsConfiguration(err), in)
	}
}

func TestCoxeterWord_WordIsCopy(t *testing.T) {
	c := identityWord(t, 3)
	w := c.Word()
	w[0] = 9
	assert.Equal(t, []int{1, 2, 3}, c.Word())
}
