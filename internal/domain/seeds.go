package domain

// Default seeds used before the first regenerate action.
const (
	DefaultSeed1 int64 = 123
	DefaultSeed2 int64 = 456
)

// SeedSet holds one seed per chart, in display order.
type SeedSet []int64

// DefaultSeedSet returns the seeds a fresh session starts with.
func DefaultSeedSet() SeedSet {
	return SeedSet{DefaultSeed1, DefaultSeed2}
}

// Regenerate returns a new set of the same size with every seed drawn from next.
// The receiver is left untouched.
func (s SeedSet) Regenerate(next func() int64) SeedSet {
	out := make(SeedSet, len(s))
	for i := range out {
		out[i] = next()
	}
	return out
}

// Clone returns an independent copy.
func (s SeedSet) Clone() SeedSet {
	if s == nil {
		return nil
	}
	return append(SeedSet(nil), s...)
}
