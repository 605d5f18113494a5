package calculation

import "math/rand/v2"

// Bounds of a fresh seed: [DefaultSeedMin, DefaultSeedMax).
const (
	DefaultSeedMin int64 = 1
	DefaultSeedMax int64 = 100000
)

// seedFunc draws a seed in [lo, hi) from the process entropy source. Results differ from
// run to run on purpose (override for deterministic tests).
var seedFunc = func(lo, hi int64) int64 { return lo + rand.Int64N(hi-lo) }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func(lo, hi int64) int64) { seedFunc = f }

// FreshSeed picks a new, non-reproducible seed in [DefaultSeedMin, DefaultSeedMax).
func FreshSeed() int64 { return seedFunc(DefaultSeedMin, DefaultSeedMax) }

// SeedRange picks fresh seeds in a configured half-open range.
type SeedRange struct {
	Min int64
	Max int64 // exclusive
}

// DefaultSeedRange is [1, 100000).
func DefaultSeedRange() SeedRange {
	return SeedRange{Min: DefaultSeedMin, Max: DefaultSeedMax}
}

// Next draws a fresh seed. The default range is served by FreshSeed; a degenerate range
// always yields Min.
func (r SeedRange) Next() int64 {
	if r == DefaultSeedRange() {
		return FreshSeed()
	}
	if r.Max-r.Min <= 1 {
		return r.Min
	}
	return seedFunc(r.Min, r.Max)
}
