package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"innerbag/adapters/numerics"
	"innerbag/domain/bag"
	"innerbag/domain/core"
)

func newTestService(maxParallel int64) *EnsembleService {
	generator := bag.NewGenerator(bag.GeneratorConfig{Summer: numerics.NewBigSummer()})
	return NewEnsembleService(generator, maxParallel)
}

func bagCounts(b *bag.InnerBag) []int {
	out := make([]int, b.Len())
	for i := range out {
		out[i] = b.OccurrenceCount(i)
	}
	return out
}

func TestBuildEnsembleReproducible(t *testing.T) {
	service := newTestService(1)

	first, err := service.BuildEnsemble(42, 150, nil, 4)
	require.NoError(t, err)
	defer first.Release()

	second, err := service.BuildEnsemble(42, 150, nil, 4)
	require.NoError(t, err)
	defer second.Release()

	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, first.Seed, second.Seed)
	require.Equal(t, first.Bags.Len(), second.Bags.Len())
	for i := 0; i < first.Bags.Len(); i++ {
		require.Equal(t, bagCounts(first.Bags.Bag(i)), bagCounts(second.Bags.Bag(i)))
	}
}

func TestBuildEnsembleFailurePropagates(t *testing.T) {
	service := newTestService(1)
	ensemble, err := service.BuildEnsemble(42, 3, []float64{0, 0, 0}, 2)
	require.Error(t, err)
	require.True(t, core.IsWeightTotalError(err))
	require.Nil(t, ensemble)
}

func TestBuildSubEnsembles(t *testing.T) {
	service := newTestService(3)

	ensembles, err := service.BuildSubEnsembles(context.Background(), 7, 120, nil, 3, 4)
	require.NoError(t, err)
	defer func() {
		for _, e := range ensembles {
			e.Release()
		}
	}()

	require.Len(t, ensembles, 4)
	seeds := make(map[uint64]bool)
	for _, e := range ensembles {
		require.NotNil(t, e)
		require.Equal(t, 3, e.Bags.Len())
		require.False(t, seeds[e.Seed], "derived seeds must be distinct")
		seeds[e.Seed] = true
	}
}

func TestBuildSubEnsemblesReproducible(t *testing.T) {
	// Bounded concurrency must not change any per-stream result.
	first, err := newTestService(1).BuildSubEnsembles(context.Background(), 9, 80, nil, 2, 3)
	require.NoError(t, err)
	second, err := newTestService(4).BuildSubEnsembles(context.Background(), 9, 80, nil, 2, 3)
	require.NoError(t, err)

	for i := range first {
		require.Equal(t, first[i].Seed, second[i].Seed)
		for j := 0; j < first[i].Bags.Len(); j++ {
			require.Equal(t, bagCounts(first[i].Bags.Bag(j)), bagCounts(second[i].Bags.Bag(j)))
		}
		first[i].Release()
		second[i].Release()
	}
}

func TestBuildSubEnsemblesAllOrNothing(t *testing.T) {
	service := newTestService(2)
	ensembles, err := service.BuildSubEnsembles(context.Background(), 1, 2, []float64{0, 0}, 2, 3)
	require.Error(t, err)
	require.Nil(t, ensembles)
}

func TestBuildSubEnsemblesCancelledContext(t *testing.T) {
	service := newTestService(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ensembles, err := service.BuildSubEnsembles(ctx, 1, 10, nil, 1, 2)
	require.Error(t, err)
	require.Nil(t, ensembles)
}

func TestEnsembleReleaseNilSafe(t *testing.T) {
	var e *Ensemble
	e.Release()
}
