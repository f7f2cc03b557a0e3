package bag

import (
	"innerbag/domain/core"
)

// maxAllocElems bounds any single sequence allocation. Requests beyond it
// are reported as recoverable allocation failures instead of letting make
// abort the process.
const maxAllocElems = 1 << 34

func allocCounts(n int) ([]int, error) {
	if n < 0 || maxAllocElems < n {
		return nil, core.NewAllocationError("occurrence counts", n)
	}
	return make([]int, n), nil
}

func allocWeights(n int) ([]float64, error) {
	if n < 0 || maxAllocElems < n {
		return nil, core.NewAllocationError("effective weights", n)
	}
	return make([]float64, n), nil
}

func allocSlots(n int) ([]*InnerBag, error) {
	if n < 0 || maxAllocElems < n {
		return nil, core.NewAllocationError("bag slots", n)
	}
	// Zero-valued slots are the empty sentinel; teardown skips them, so a
	// set is safe to release no matter how far population progressed.
	return make([]*InnerBag, n), nil
}
