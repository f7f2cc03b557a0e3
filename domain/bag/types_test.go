package bag

import (
	"testing"
)

func TestSlotCount(t *testing.T) {
	cases := []struct {
		requested int
		want      int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{100, 100},
	}
	for _, tc := range cases {
		if got := slotCount(tc.requested); got != tc.want {
			t.Errorf("slotCount(%d) = %d, want %d", tc.requested, got, tc.want)
		}
	}
}

func TestReleaseNilSet(t *testing.T) {
	var set *BagSet
	set.Release() // must not fault
	if set.Len() != 0 {
		t.Errorf("nil set Len() = %d, want 0", set.Len())
	}
}

func TestReleaseSetWithSentinelSlots(t *testing.T) {
	// A rolled back generation leaves empty sentinel slots behind; release
	// must skip them.
	set := &BagSet{bags: make([]*InnerBag, 3)}
	set.bags[1] = &InnerBag{
		occurrenceCounts: []int{1, 1},
		effectiveWeights: []float64{1, 1},
		weightTotal:      2,
	}
	set.Release()
	if set.bags != nil {
		t.Error("expected slot storage to be dropped after Release")
	}
}

func TestReleaseIsIdempotentOnBag(t *testing.T) {
	var b *InnerBag
	b.release() // nil bag

	b = &InnerBag{} // sequences never allocated
	b.release()
	b.release()
	if b.Len() != 0 || b.WeightTotal() != 0 {
		t.Error("released bag should be empty")
	}
}

func TestDoubleReleaseSet(t *testing.T) {
	set := &BagSet{bags: []*InnerBag{{
		occurrenceCounts: []int{1},
		effectiveWeights: []float64{1},
		weightTotal:      1,
	}}}
	set.Release()
	set.Release() // second release is a no-op
}
