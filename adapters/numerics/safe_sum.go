// Package numerics provides the extended-precision summation primitive
// consumed by bag generation.
package numerics

import (
	"math"
	"math/big"

	"innerbag/ports"
)

// summerPrec is the mantissa width of the accumulator. 128 bits absorbs the
// cancellation and intermediate rounding that a float64 running sum suffers
// across many additions of arbitrary magnitude.
const summerPrec = 128

// BigSummer implements ports.PositiveSummer by accumulating into a
// big.Float and rounding once on output. The result overflows to infinity
// only when the true sum does not fit a float64.
type BigSummer struct {
	prec uint
}

var _ ports.PositiveSummer = (*BigSummer)(nil)

// NewBigSummer returns a summer with the default accumulator precision.
func NewBigSummer() *BigSummer {
	return &BigSummer{prec: summerPrec}
}

// SumPositive returns the sum of vals. NaN and infinite inputs propagate
// into the result immediately.
func (s *BigSummer) SumPositive(vals []float64) float64 {
	acc := new(big.Float).SetPrec(s.prec)
	term := new(big.Float).SetPrec(s.prec)
	for _, v := range vals {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if math.IsInf(v, 0) {
			return v
		}
		acc.Add(acc, term.SetFloat64(v))
	}
	out, _ := acc.Float64()
	return out
}
