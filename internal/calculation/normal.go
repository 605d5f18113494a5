package calculation

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

// NormalStream is an isolated, seeded source of standard normal variates.
//
// The underlying generator is MT19937 initialised with the low 32 bits of the seed
// (init_genrand). Uniforms carry 53 bits built from two 32-bit outputs and normals come
// from the Marsaglia polar method, which yields variates in pairs: the first is cached and
// returned by the next call. This is the classic legacy seeded normal stream, so a seed
// yields the same sequence as other implementations of it.
//
// A NormalStream is not safe for concurrent use; give each goroutine its own.
type NormalStream struct {
	src      *prng.MT19937
	hasSpare bool
	spare    float64
}

// NewNormalStream creates a stream seeded deterministically by seed.
func NewNormalStream(seed int64) *NormalStream {
	src := prng.NewMT19937()
	src.Seed(uint64(seed))
	return &NormalStream{src: src}
}

// Float64 returns a uniform value in [0, 1) with 53 bits of randomness.
func (s *NormalStream) Float64() float64 {
	a := s.src.Uint32() >> 5
	b := s.src.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

// Normal returns the next standard normal variate.
func (s *NormalStream) Normal() float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare
	}

	var x1, x2, r2 float64
	for {
		x1 = 2.0*s.Float64() - 1.0
		x2 = 2.0*s.Float64() - 1.0
		// explicit conversions keep the sum from being fused
		r2 = float64(x1*x1) + float64(x2*x2)
		if r2 < 1.0 && r2 != 0.0 {
			break
		}
	}
	f := math.Sqrt(-2.0 * math.Log(r2) / r2)
	s.spare = f * x1
	s.hasSpare = true
	return f * x2
}

// StandardNormals draws n consecutive variates. n <= 0 yields an empty slice.
func (s *NormalStream) StandardNormals(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Normal()
	}
	return out
}
