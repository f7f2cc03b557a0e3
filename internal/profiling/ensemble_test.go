package profiling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"innerbag/adapters/numerics"
	"innerbag/adapters/rng"
	"innerbag/domain/bag"
)

func generate(t *testing.T, seed uint64, sampleCount int, weights []float64, bagCount int) *bag.BagSet {
	t.Helper()
	generator := bag.NewGenerator(bag.GeneratorConfig{Summer: numerics.NewBigSummer()})
	set, err := generator.GenerateBags(rng.NewMT19937(seed), sampleCount, weights, bagCount)
	require.NoError(t, err)
	t.Cleanup(set.Release)
	return set
}

func TestProfileFlatBag(t *testing.T) {
	set := generate(t, 1, 4, []float64{1, 2, 3, 4}, 0)

	profile, err := ProfileBag(set.Bag(0))
	require.NoError(t, err)

	require.Equal(t, 4, profile.SampleCount)
	require.Equal(t, 1.0, profile.UniqueFraction)
	require.Equal(t, 1, profile.MaxOccurrence)
	require.Equal(t, 2.5, profile.MeanWeight)
	require.Equal(t, 1.0, profile.MinWeight)
	require.Equal(t, 4.0, profile.MaxWeight)
	require.Equal(t, 2.5, profile.MedianWeight)
	require.Equal(t, 10.0, profile.WeightTotal)
}

func TestProfileBootstrapBag(t *testing.T) {
	const sampleCount = 500
	set := generate(t, 2, sampleCount, nil, 1)

	profile, err := ProfileBag(set.Bag(0))
	require.NoError(t, err)

	require.Equal(t, sampleCount, profile.SampleCount)
	// A bootstrap replicate leaves roughly 1/e of the samples out.
	require.InDelta(t, 1-1/math.E, profile.UniqueFraction, 0.08)
	require.GreaterOrEqual(t, profile.MaxOccurrence, 2)
	require.Equal(t, 1.0, profile.MeanWeight)
	require.Equal(t, float64(sampleCount), profile.WeightTotal)
}

func TestProfileEnsembleFlat(t *testing.T) {
	set := generate(t, 3, 4, []float64{1, 2, 3, 4}, 0)

	profile, err := ProfileEnsemble(set)
	require.NoError(t, err)

	require.Equal(t, 1, profile.BagCount)
	require.Equal(t, 10.0, profile.MeanTotal)
	require.Equal(t, 0.0, profile.StdDevTotal)
	require.Equal(t, 10.0, profile.MinTotal)
	require.Equal(t, 10.0, profile.MaxTotal)
	// Every count is 1 in a flat bag, far from the Poisson(1) limit.
	require.InDelta(t, 1-1/math.E, profile.OccurrenceDivergence, 1e-9)
}

func TestProfileEnsembleBootstrap(t *testing.T) {
	const sampleCount, bagCount = 500, 8
	set := generate(t, 4, sampleCount, nil, bagCount)

	profile, err := ProfileEnsemble(set)
	require.NoError(t, err)

	require.Equal(t, bagCount, profile.BagCount)
	require.Equal(t, float64(sampleCount), profile.MeanTotal)
	require.Equal(t, 0.0, profile.StdDevTotal)
	// 4000 observed counts track the Poisson(1) limit closely.
	require.Less(t, profile.OccurrenceDivergence, 0.05)
}
