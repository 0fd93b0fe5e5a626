package core

import "math/bits"

// Philox4x32-10 round constants (random123)
const (
	philoxM0 = 0xD2511F53
	philoxM1 = 0xCD9E8D57
	philoxW0 = 0x9E3779B9
	philoxW1 = 0xBB67AE85
)

// RNG stream class identifiers. Each subsystem that draws randomness
// gets its own id so identical user seeds never produce correlated
// streams across subsystems.
const (
	RNGIdentifierRender uint8 = 1
	RNGIdentifierScene  uint8 = 2
)

// Philox4x32 computes one 128-bit block of the Philox4x32-10 generator.
// It is a pure function: identical (counter, key) inputs yield an
// identical block on every call, in every goroutine, in every run.
func Philox4x32(counter [4]uint32, key [2]uint32) [4]uint32 {
	ctr := counter
	for round := 0; round < 10; round++ {
		if round > 0 {
			key[0] += philoxW0
			key[1] += philoxW1
		}
		hi0, lo0 := bits.Mul32(philoxM0, ctr[0])
		hi1, lo1 := bits.Mul32(philoxM1, ctr[2])
		ctr = [4]uint32{
			hi1 ^ ctr[1] ^ key[0],
			lo1,
			hi0 ^ ctr[3] ^ key[1],
			lo0,
		}
	}
	return ctr
}

// Seed holds the 64-bit Philox key. It is constructed from a class
// identifier, a coarse timestep and a user seed so that independent
// subsystems and independent timesteps never share a key even when the
// user seed is the same.
type Seed struct {
	key [2]uint32
}

// NewSeed packs an 8-bit class id, the low 5 bytes of a timestep and a
// 16-bit user seed into the key:
//
//	id seed1 seed0 timestep4 | timestep3 timestep2 timestep1 timestep0
func NewSeed(id uint8, timestep uint64, seed uint16) Seed {
	return Seed{key: [2]uint32{
		uint32(id)<<24 | uint32(seed)<<8 | uint32((timestep&0x000000ff00000000)>>32),
		uint32(timestep & 0x00000000ffffffff),
	}}
}

// Key returns the packed Philox key
func (s Seed) Key() [2]uint32 {
	return s.key
}

// Counter holds the 128-bit Philox counter. Values unique to the
// calling unit of work (pixel index, sample index, ...) go into a, b
// and c; the low word is reserved for advancing the stream. No two
// concurrently active streams may share the same (Seed, Counter) pair.
type Counter struct {
	ctr [4]uint32
}

// NewCounter builds a counter from up to three 32-bit work-item
// identifiers and an optional 16-bit value d. Only use d when the
// stream is known to draw fewer than 65536 blocks, since it shares the
// word that advances the stream.
func NewCounter(a, b, c uint32, d uint16) Counter {
	return Counter{ctr: [4]uint32{uint32(d) << 16, c, b, a}}
}

// RandomGenerator produces a short stream of random blocks starting
// from a (Seed, Counter) pair. Advancing the stream increments the low
// counter word; no other state is retained, so streams with distinct
// counters are independent regardless of execution order.
type RandomGenerator struct {
	key [2]uint32
	ctr [4]uint32
}

// NewRandomGenerator creates a generator positioned at the given
// seed and counter.
func NewRandomGenerator(seed Seed, counter Counter) *RandomGenerator {
	return &RandomGenerator{key: seed.key, ctr: counter.ctr}
}

// Uint32x4 returns the next 128-bit block and advances the stream
func (g *RandomGenerator) Uint32x4() [4]uint32 {
	u := Philox4x32(g.ctr, g.key)
	g.ctr[0]++
	return u
}

// Uint32 returns a uniform random uint32
func (g *RandomGenerator) Uint32() uint32 {
	return g.Uint32x4()[0]
}

// Uint64 returns a uniform random uint64
func (g *RandomGenerator) Uint64() uint64 {
	u := g.Uint32x4()
	return uint64(u[0])<<32 | uint64(u[1])
}

// Float64 returns a canonical uniform value in [2^-65, 1]. The raw
// 64-bit draw is scaled by 2^-64 and biased by half the smallest step,
// so the result is never exactly 0.
func (g *RandomGenerator) Float64() float64 {
	return float64(g.Uint64())*0x1p-64 + 0x1p-65
}

// UniformDistribution maps canonical draws to a uniform value in [a, b].
// For small a the range may effectively become (a, b] due to round off
// in a + (b-a)*u.
type UniformDistribution struct {
	a     float64
	width float64
}

// NewUniformDistribution creates a distribution over [a, b]
func NewUniformDistribution(a, b float64) UniformDistribution {
	return UniformDistribution{a: a, width: b - a}
}

// Sample draws a value from the distribution
func (d UniformDistribution) Sample(g *RandomGenerator) float64 {
	return d.a + d.width*g.Float64()
}
