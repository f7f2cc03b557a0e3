// Package profiling computes diagnostics over generated bag sets: summary
// statistics of effective weights and weight totals, and a check of the
// occurrence-count distribution against its large-sample limit.
package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"innerbag/domain/bag"
)

// BagProfile summarizes one inner bag.
type BagProfile struct {
	SampleCount    int
	UniqueFraction float64 // fraction of samples drawn at least once
	MaxOccurrence  int
	MeanWeight     float64
	StdDevWeight   float64
	MinWeight      float64
	MaxWeight      float64
	MedianWeight   float64
	WeightTotal    float64
}

// ProfileBag computes summary statistics for a single bag.
func ProfileBag(b *bag.InnerBag) (BagProfile, error) {
	profile := BagProfile{
		SampleCount: b.Len(),
		WeightTotal: b.WeightTotal(),
	}

	weights := make([]float64, b.Len())
	unique := 0
	for i := 0; i < b.Len(); i++ {
		weights[i] = b.EffectiveWeight(i)
		if c := b.OccurrenceCount(i); c > 0 {
			unique++
			if c > profile.MaxOccurrence {
				profile.MaxOccurrence = c
			}
		}
	}
	profile.UniqueFraction = float64(unique) / float64(b.Len())

	mean, err := stats.Mean(weights)
	if err != nil {
		return profile, err
	}
	stdDev, err := stats.StandardDeviation(weights)
	if err != nil {
		return profile, err
	}
	minW, err := stats.Min(weights)
	if err != nil {
		return profile, err
	}
	maxW, err := stats.Max(weights)
	if err != nil {
		return profile, err
	}
	median, err := stats.Median(weights)
	if err != nil {
		return profile, err
	}

	profile.MeanWeight = mean
	profile.StdDevWeight = stdDev
	profile.MinWeight = minW
	profile.MaxWeight = maxW
	profile.MedianWeight = median
	return profile, nil
}

// EnsembleProfile summarizes a whole bag set.
type EnsembleProfile struct {
	BagCount     int
	MeanTotal    float64
	StdDevTotal  float64
	MinTotal     float64
	MaxTotal     float64
	// OccurrenceDivergence is the largest absolute gap between the observed
	// occurrence-count frequencies across all bags and the Poisson(1) mass
	// function, the limit distribution of unweighted bootstrap counts.
	OccurrenceDivergence float64
}

// ProfileEnsemble computes summary statistics for a bag set.
func ProfileEnsemble(set *bag.BagSet) (EnsembleProfile, error) {
	profile := EnsembleProfile{BagCount: set.Len()}

	totals := make([]float64, 0, set.Len())
	occurrenceFreq := map[int]int{}
	samples := 0
	for i := 0; i < set.Len(); i++ {
		b := set.Bag(i)
		totals = append(totals, b.WeightTotal())
		for j := 0; j < b.Len(); j++ {
			occurrenceFreq[b.OccurrenceCount(j)]++
			samples++
		}
	}

	mean, err := stats.Mean(totals)
	if err != nil {
		return profile, err
	}
	stdDev, err := stats.StandardDeviation(totals)
	if err != nil {
		return profile, err
	}
	minT, err := stats.Min(totals)
	if err != nil {
		return profile, err
	}
	maxT, err := stats.Max(totals)
	if err != nil {
		return profile, err
	}
	profile.MeanTotal = mean
	profile.StdDevTotal = stdDev
	profile.MinTotal = minT
	profile.MaxTotal = maxT

	poisson := distuv.Poisson{Lambda: 1}
	for count, freq := range occurrenceFreq {
		observed := float64(freq) / float64(samples)
		gap := math.Abs(observed - poisson.Prob(float64(count)))
		if gap > profile.OccurrenceDivergence {
			profile.OccurrenceDivergence = gap
		}
	}
	return profile, nil
}
