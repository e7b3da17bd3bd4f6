// SPDX-License-Identifier: MIT
package sampling_test

import (
	"testing"

	"github.com/katalvlaran/trustnet/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := sampling.New(42), sampling.New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	// Zero seed maps onto the default seed.
	assert.Equal(t, sampling.New(0).Uint64(), sampling.New(sampling.DefaultSeed).Uint64())
}

func TestDerive_IndependentStreams(t *testing.T) {
	base := sampling.New(7)
	c1 := base.Derive(1)
	c2 := base.Derive(1)
	assert.NotEqual(t, c1.Uint64(), c2.Uint64(), "same stream id twice must still differ")

	// Derivation is reproducible from the same parent seed.
	again := sampling.New(7).Derive(1)
	assert.Equal(t, sampling.New(7).Derive(1).Uint64(), again.Uint64())
}

func TestTrustLevel_RangeAndBias(t *testing.T) {
	r := sampling.New(3)
	const n = 5000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := r.TrustLevel()
		require.GreaterOrEqual(t, v, -1.0)
		require.LessOrEqual(t, v, 1.0)
		sum += v
	}
	// beta(19,7) has mean 19/26, mapped onto [-1,1] gives ≈ 0.4615.
	assert.InDelta(t, 2*19.0/26.0-1, sum/n, 0.03)
}

func TestServiceCount(t *testing.T) {
	r := sampling.New(11)
	seen := map[int]int{}
	for i := 0; i < 2000; i++ {
		n, err := r.ServiceCount(3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 3)
		seen[n]++
	}
	// Resampling keeps every admissible value reachable.
	assert.Len(t, seen, 3)

	n, err := r.ServiceCount(1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = r.ServiceCount(0)
	require.ErrorIs(t, err, sampling.ErrBadBound)
}

func TestElement(t *testing.T) {
	r := sampling.New(5)
	_, err := sampling.Element(r, []string{})
	require.ErrorIs(t, err, sampling.ErrEmpty)

	v, err := sampling.Element(r, []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", v)
}

func TestSubset(t *testing.T) {
	r := sampling.New(9)
	items := []int{10, 20, 30, 40, 50}

	sub, err := sampling.Subset(r, items, 3)
	require.NoError(t, err)
	require.Len(t, sub, 3)
	// Distinct and in original order.
	for i := 1; i < len(sub); i++ {
		assert.Less(t, sub[i-1], sub[i])
	}

	all, err := sampling.Subset(r, items, 5)
	require.NoError(t, err)
	assert.Equal(t, items, all)

	_, err = sampling.Subset(r, items, 6)
	require.ErrorIs(t, err, sampling.ErrSubsetTooLarge)
}

func TestPair(t *testing.T) {
	r := sampling.New(13)
	items := []string{"a", "b"}
	for i := 0; i < 50; i++ {
		x, y, err := sampling.Pair(r, items)
		require.NoError(t, err)
		assert.NotEqual(t, x, y)
	}

	_, _, err := sampling.Pair(r, []string{"a"})
	require.ErrorIs(t, err, sampling.ErrTooFewElements)
}

func TestPicker_Proportional(t *testing.T) {
	r := sampling.New(17)
	weights := map[string]int{"zero": 0, "one": 1, "three": 3}
	items := []string{"zero", "one", "three"}

	p, err := sampling.NewPicker(r, items, func(s string) int { return weights[s] })
	require.NoError(t, err)
	assert.Equal(t, 4, p.Total())

	counts := map[string]int{}
	const n = 8000
	for i := 0; i < n; i++ {
		counts[p.Next()]++
	}
	assert.Zero(t, counts["zero"])
	assert.InDelta(t, 0.25, float64(counts["one"])/n, 0.03)
	assert.InDelta(t, 0.75, float64(counts["three"])/n, 0.03)
}

func TestPicker_ZeroWeight(t *testing.T) {
	_, err := sampling.NewPicker(sampling.New(1), []string{"a", "b"}, func(string) int { return 0 })
	require.ErrorIs(t, err, sampling.ErrZeroWeight)

	_, err = sampling.NewPicker(sampling.New(1), nil, func(string) int { return 1 })
	require.ErrorIs(t, err, sampling.ErrZeroWeight)
}
