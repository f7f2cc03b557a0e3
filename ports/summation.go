package ports

// PositiveSummer aggregates non-negative floating values at extended
// precision. Implementations must resist overflow-to-infinity and
// cancellation compared to naive sequential addition: the result may be
// infinite only when the true sum does not fit a float64.
type PositiveSummer interface {
	// SumPositive returns the sum of vals rounded once to float64.
	// Negative inputs are outside the contract; NaN and infinite inputs
	// propagate into the result.
	SumPositive(vals []float64) float64
}
