package ports

// RNG is a deterministic random number generator borrowed exclusively by one
// bag generation at a time. Sequential reuse of a single instance across bags
// is what makes a whole ensemble reproducible from a single seed. Concurrent
// use of one instance is a caller contract violation; callers running
// independent generations in parallel must give each its own instance.
type RNG interface {
	// UintN returns an unbiased integer uniformly distributed in [0, n),
	// advancing the generator state. n must be at least 1.
	UintN(n uint64) uint64

	// Snapshot returns an independent working copy of the full generator
	// state in O(1). Draws against the copy do not affect the original.
	Snapshot() RNG

	// Restore adopts the state of a working copy previously returned by
	// Snapshot on this generator. Passing a snapshot of a different
	// concrete type is a contract violation.
	Restore(snapshot RNG)
}
