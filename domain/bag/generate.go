package bag

import (
	"fmt"
	"math"

	"innerbag/domain/core"
	"innerbag/internal"
	"innerbag/ports"
)

// GeneratorConfig configures a Generator.
type GeneratorConfig struct {
	// Summer aggregates externally weighted totals. Required.
	Summer ports.PositiveSummer

	// Logger defaults to internal.DefaultLogger.
	Logger *internal.Logger

	// CrossCheckTotals verifies the counting-derived total of an unweighted
	// bootstrap bag against the summer. The counting total is exact, so this
	// exists to catch a broken summer, not to compute anything.
	CrossCheckTotals bool
}

// Generator builds inner bags and bag sets.
type Generator struct {
	summer     ports.PositiveSummer
	log        *internal.Logger
	crossCheck bool
}

// NewGenerator creates a generator from config, applying defaults.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Summer == nil {
		panic("bag: GeneratorConfig.Summer is required")
	}
	if config.Logger == nil {
		config.Logger = internal.DefaultLogger
	}
	return &Generator{
		summer:     config.Summer,
		log:        config.Logger,
		crossCheck: config.CrossCheckTotals,
	}
}

// GenerateBags builds bagCount bootstrap bags against rng, or a single flat
// bag when bagCount is 0. weights is either nil (uniform 1.0) or exactly
// sampleCount externally supplied per-sample weights.
//
// Bag i's draws strictly follow bag i-1's draws in rng's stream; the whole
// set is reproducible from the generator state rng started in. On any
// failure everything allocated within the call is released and an error in
// the core taxonomy is returned: a partial set is never surfaced.
func (g *Generator) GenerateBags(rng ports.RNG, sampleCount int, weights []float64, bagCount int) (*BagSet, error) {
	checkArgs(rng, sampleCount, weights)
	if bagCount < 0 {
		panic(fmt.Sprintf("bag: negative bag count %d", bagCount))
	}
	g.log.Trace("GenerateBags: %d samples, %d bags requested", sampleCount, bagCount)

	slots, err := allocSlots(slotCount(bagCount))
	if err != nil {
		g.log.Warn("GenerateBags: %v", err)
		return nil, err
	}
	set := &BagSet{bags: slots}

	if bagCount == 0 {
		// Zero is a special value meaning one bag that uses every sample once.
		b, err := g.generateFlatBag(sampleCount, weights)
		if err != nil {
			g.log.Warn("GenerateBags: flat bag failed: %v", err)
			set.Release()
			return nil, err
		}
		set.bags[0] = b
	} else {
		for i := 0; i < bagCount; i++ {
			b, err := g.generateSingleBag(rng, sampleCount, weights)
			if err != nil {
				g.log.Warn("GenerateBags: bag %d failed: %v", i, err)
				set.Release()
				return nil, err
			}
			set.bags[i] = b
		}
	}

	g.log.Trace("GenerateBags: done")
	return set, nil
}

// generateSingleBag builds one bootstrap replicate: sampleCount draws with
// replacement from sampleCount samples.
func (g *Generator) generateSingleBag(rng ports.RNG, sampleCount int, weights []float64) (*InnerBag, error) {
	g.log.Trace("generateSingleBag: %d samples", sampleCount)

	counts, err := allocCounts(sampleCount)
	if err != nil {
		return nil, err
	}
	effective, err := allocWeights(sampleCount)
	if err != nil {
		return nil, err
	}

	// Draw against a local working copy so the hot loop never touches the
	// caller's generator, then write the advanced state back once. The
	// caller's stream still observes every draw.
	local := rng.Snapshot()
	n := uint64(sampleCount)
	for i := 0; i < sampleCount; i++ {
		counts[local.UintN(n)]++
	}
	rng.Restore(local)

	var total float64
	if weights == nil {
		for i, c := range counts {
			effective[i] = float64(c)
		}
		// Every draw contributed exactly 1 to exactly one count, so the
		// total is sampleCount without any summation.
		total = float64(sampleCount)
		if g.crossCheck {
			g.verifyCountingTotal(total, effective)
		}
	} else {
		for i, c := range counts {
			effective[i] = float64(c) * weights[i]
		}
		total = g.summer.SumPositive(effective)
		if !validTotal(total) {
			return nil, core.NewWeightTotalError(total)
		}
	}

	return &InnerBag{
		occurrenceCounts: counts,
		effectiveWeights: effective,
		weightTotal:      total,
	}, nil
}

// generateFlatBag builds the degenerate bag that uses every sample exactly
// once.
func (g *Generator) generateFlatBag(sampleCount int, weights []float64) (*InnerBag, error) {
	g.log.Trace("generateFlatBag: %d samples", sampleCount)

	counts, err := allocCounts(sampleCount)
	if err != nil {
		return nil, err
	}
	effective, err := allocWeights(sampleCount)
	if err != nil {
		return nil, err
	}

	var total float64
	if weights == nil {
		for i := range counts {
			counts[i] = 1
			effective[i] = 1
		}
		total = float64(sampleCount)
	} else {
		total = g.summer.SumPositive(weights)
		if !validTotal(total) {
			return nil, core.NewWeightTotalError(total)
		}
		copy(effective, weights)
		for i := range counts {
			counts[i] = 1
		}
	}

	return &InnerBag{
		occurrenceCounts: counts,
		effectiveWeights: effective,
		weightTotal:      total,
	}, nil
}

// validTotal reports whether a bag's aggregate weight may be handed out.
// Per-sample zeros are legal; an all-zero (or non-finite) aggregate is not.
func validTotal(total float64) bool {
	return !math.IsNaN(total) && !math.IsInf(total, 0) && total > 0
}

func (g *Generator) verifyCountingTotal(total float64, effective []float64) {
	check := g.summer.SumPositive(effective)
	if !(check*0.999 <= total && total <= check*1.0001) {
		panic(fmt.Sprintf("bag: counting total %g disagrees with summed total %g", total, check))
	}
}

// checkArgs guards the caller contract: a non-nil RNG, at least one sample,
// and weights either absent or index-aligned with the samples. Violations
// are programming errors, not recoverable generation failures.
func checkArgs(rng ports.RNG, sampleCount int, weights []float64) {
	if rng == nil {
		panic("bag: nil RNG")
	}
	if sampleCount < 1 {
		panic(fmt.Sprintf("bag: sample count %d < 1", sampleCount))
	}
	if weights != nil && len(weights) != sampleCount {
		panic(fmt.Sprintf("bag: %d weights for %d samples", len(weights), sampleCount))
	}
}
