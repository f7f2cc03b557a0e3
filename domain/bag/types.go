// Package bag builds and manages inner bags: per-ensemble-member resamplings
// of a training set. Each bag records how many times every sample occurs,
// the effective weight that gives each sample, and the aggregate of those
// weights. Bags are produced either by weighted bootstrap resampling or by a
// degenerate flat pass that uses every sample exactly once.
package bag

// InnerBag is one ensemble member's view of the training set. A bag handed
// out by this package is always fully valid: sequences of equal length and a
// finite, strictly positive weight total. Individual per-sample weights may
// legally be zero.
type InnerBag struct {
	occurrenceCounts []int
	effectiveWeights []float64
	weightTotal      float64
}

// Len returns the number of training samples the bag covers.
func (b *InnerBag) Len() int {
	return len(b.occurrenceCounts)
}

// OccurrenceCount returns how many times sample i was drawn into the bag.
func (b *InnerBag) OccurrenceCount(i int) int {
	return b.occurrenceCounts[i]
}

// EffectiveWeight returns sample i's occurrence count multiplied by its
// external weight (1 when no external weights were supplied).
func (b *InnerBag) EffectiveWeight(i int) float64 {
	return b.effectiveWeights[i]
}

// WeightTotal returns the aggregate of all effective weights.
func (b *InnerBag) WeightTotal() float64 {
	return b.weightTotal
}

// release drops the bag's sequences. Safe on a nil bag and on a bag whose
// sequences were never populated.
func (b *InnerBag) release() {
	if b == nil {
		return
	}
	b.occurrenceCounts = nil
	b.effectiveWeights = nil
	b.weightTotal = 0
}

// BagSet is the ordered collection of inner bags handed to a training loop.
// Its length equals the requested bag count with the zero-to-one remap
// applied: a request for zero bags yields exactly one flat bag.
type BagSet struct {
	bags []*InnerBag
}

// Len returns the number of bag slots in the set.
func (s *BagSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bags)
}

// Bag returns the bag at slot i.
func (s *BagSet) Bag(i int) *InnerBag {
	return s.bags[i]
}

// Release releases every populated slot and then the set itself. It is a
// no-op on a nil set and tolerates empty sentinel slots left by a rolled
// back generation. Release must be called exactly once by whoever owns the
// set; the set is unusable afterwards.
func (s *BagSet) Release() {
	if s == nil {
		return
	}
	for i, b := range s.bags {
		if b != nil {
			b.release()
			s.bags[i] = nil
		}
	}
	s.bags = nil
}

// slotCount maps a requested bag count to the number of slots actually
// allocated: zero means one flat bag covering the full set once. Allocation
// and teardown both size through this helper so the two can never diverge.
func slotCount(bagCount int) int {
	if bagCount == 0 {
		return 1
	}
	return bagCount
}
