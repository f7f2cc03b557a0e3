// Package app orchestrates bag generation for callers: one ensemble from one
// seed, or several independent sub-ensembles built concurrently from derived
// seeds.
package app

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"innerbag/adapters/rng"
	"innerbag/domain/bag"
	"innerbag/domain/core"
	"innerbag/internal"
	"innerbag/internal/errors"
)

// Ensemble pairs a generated bag set with its identity and the seed that
// reproduces it.
type Ensemble struct {
	ID   core.EnsembleID
	Seed uint64
	Bags *bag.BagSet
}

// Release releases the ensemble's bag set. Safe on a nil ensemble.
func (e *Ensemble) Release() {
	if e == nil {
		return
	}
	e.Bags.Release()
	e.Bags = nil
}

// EnsembleService builds ensembles. The bag core is strictly sequential per
// RNG stream; the service only parallelizes across independent streams.
type EnsembleService struct {
	generator *bag.Generator
	log       *internal.Logger
	sem       *semaphore.Weighted
}

// NewEnsembleService creates a service around generator. maxParallel bounds
// concurrent sub-ensemble builds; values below 1 are treated as 1.
func NewEnsembleService(generator *bag.Generator, maxParallel int64) *EnsembleService {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &EnsembleService{
		generator: generator,
		log:       internal.DefaultLogger,
		sem:       semaphore.NewWeighted(maxParallel),
	}
}

// BuildEnsemble generates one ensemble from seed. The returned ensemble owns
// its bag set; the caller releases it exactly once.
func (s *EnsembleService) BuildEnsemble(seed uint64, sampleCount int, weights []float64, bagCount int) (*Ensemble, error) {
	source := rng.NewMT19937(seed)
	set, err := s.generator.GenerateBags(source, sampleCount, weights, bagCount)
	if err != nil {
		return nil, errors.Wrapf(err, "ensemble generation failed (seed %d)", seed)
	}
	return &Ensemble{
		ID:   core.EnsembleID(core.NewID()),
		Seed: seed,
		Bags: set,
	}, nil
}

// BuildSubEnsembles generates count independent ensembles concurrently, each
// from a seed derived from baseSeed and its stream index. Each build gets its
// own generator instance, so no RNG stream is ever shared between goroutines.
// All-or-nothing: on any failure every completed sub-ensemble is released and
// only the error is returned.
func (s *EnsembleService) BuildSubEnsembles(ctx context.Context, baseSeed uint64, sampleCount int, weights []float64, bagCount, count int) ([]*Ensemble, error) {
	s.log.Debug("BuildSubEnsembles: %d sub-ensembles from base seed %d", count, baseSeed)

	ensembles := make([]*Ensemble, count)
	errs := make([]error, count)

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		go func(stream int) {
			defer wg.Done()
			defer s.sem.Release(1)
			seed := rng.DeriveSeed(baseSeed, uint64(stream))
			ensembles[stream], errs[stream] = s.BuildEnsemble(seed, sampleCount, weights, bagCount)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			for _, e := range ensembles {
				e.Release()
			}
			s.log.Warn("BuildSubEnsembles: %v", err)
			return nil, errors.Wrap(err, "sub-ensemble generation failed")
		}
	}
	return ensembles, nil
}
