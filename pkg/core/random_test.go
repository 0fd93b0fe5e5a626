package core

import (
	"sync"
	"testing"
)

// Known-answer vectors from the random123 distribution (kat_vectors,
// philox4x32 with 10 rounds)
func TestPhilox4x32_KnownAnswers(t *testing.T) {
	tests := []struct {
		name     string
		counter  [4]uint32
		key      [2]uint32
		expected [4]uint32
	}{
		{
			name:     "all zeros",
			counter:  [4]uint32{0, 0, 0, 0},
			key:      [2]uint32{0, 0},
			expected: [4]uint32{0x6627e8d5, 0xe169c58d, 0xbc57ac4c, 0x9b00dbd8},
		},
		{
			name:     "all ones",
			counter:  [4]uint32{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff},
			key:      [2]uint32{0xffffffff, 0xffffffff},
			expected: [4]uint32{0x408f276d, 0x41c83b0e, 0xa20bc7c6, 0x6d5451fd},
		},
		{
			name:     "pi digits",
			counter:  [4]uint32{0x243f6a88, 0x85a308d3, 0x13198a2e, 0x03707344},
			key:      [2]uint32{0xa4093822, 0x299f31d0},
			expected: [4]uint32{0xd16cfe09, 0x94fdcceb, 0x5001e420, 0x24126ea1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Philox4x32(tt.counter, tt.key)
			if result != tt.expected {
				t.Errorf("Expected %08x, got %08x", tt.expected, result)
			}
		})
	}
}

func TestPhilox4x32_PureFunction(t *testing.T) {
	counter := [4]uint32{7, 11, 13, 17}
	key := [2]uint32{19, 23}

	first := Philox4x32(counter, key)
	for i := 0; i < 100; i++ {
		if got := Philox4x32(counter, key); got != first {
			t.Fatalf("Call %d returned %08x, expected %08x", i, got, first)
		}
	}
}

func TestRandomGenerator_DeterministicAcrossGoroutines(t *testing.T) {
	seed := NewSeed(RNGIdentifierRender, 0, 42)
	counter := NewCounter(123, 456, 0, 0)

	const draws = 64
	reference := make([]uint64, draws)
	rng := NewRandomGenerator(seed, counter)
	for i := range reference {
		reference[i] = rng.Uint64()
	}

	const goroutines = 8
	results := make([][]uint64, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			rng := NewRandomGenerator(seed, counter)
			out := make([]uint64, draws)
			for i := range out {
				out[i] = rng.Uint64()
			}
			results[g] = out
		}(g)
	}
	wg.Wait()

	for g, out := range results {
		for i := range out {
			if out[i] != reference[i] {
				t.Fatalf("Goroutine %d draw %d: got %x, expected %x", g, i, out[i], reference[i])
			}
		}
	}
}

func TestRandomGenerator_StreamAdvances(t *testing.T) {
	rng := NewRandomGenerator(NewSeed(RNGIdentifierRender, 0, 1), NewCounter(0, 0, 0, 0))

	a := rng.Uint32x4()
	b := rng.Uint32x4()
	if a == b {
		t.Error("Consecutive blocks should differ")
	}

	// A fresh generator at the same position replays the stream
	replay := NewRandomGenerator(NewSeed(RNGIdentifierRender, 0, 1), NewCounter(0, 0, 0, 0))
	if got := replay.Uint32x4(); got != a {
		t.Errorf("Replayed first block %08x, expected %08x", got, a)
	}
}

func TestRandomGenerator_DistinctStreams(t *testing.T) {
	seed := NewSeed(RNGIdentifierRender, 0, 42)

	tests := []struct {
		name string
		a, b Counter
	}{
		{"pixel index differs", NewCounter(1, 0, 0, 0), NewCounter(2, 0, 0, 0)},
		{"sample index differs", NewCounter(1, 0, 0, 0), NewCounter(1, 1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rngA := NewRandomGenerator(seed, tt.a)
			rngB := NewRandomGenerator(seed, tt.b)
			if rngA.Uint32x4() == rngB.Uint32x4() {
				t.Error("Streams with distinct counters should not collide")
			}
		})
	}
}

func TestRandomGenerator_ClassIDsDoNotCollide(t *testing.T) {
	counter := NewCounter(0, 0, 0, 0)
	render := NewRandomGenerator(NewSeed(RNGIdentifierRender, 0, 42), counter)
	scene := NewRandomGenerator(NewSeed(RNGIdentifierScene, 0, 42), counter)

	if render.Uint32x4() == scene.Uint32x4() {
		t.Error("Different class ids with the same user seed should give different streams")
	}
}

func TestSeed_Packing(t *testing.T) {
	// id seed1 seed0 timestep4 | timestep3 timestep2 timestep1 timestep0
	seed := NewSeed(0xAB, 0x123456789A, 0xCDEF)
	key := seed.Key()

	if key[0] != 0xABCDEF12 {
		t.Errorf("Expected key[0] 0xABCDEF12, got %08x", key[0])
	}
	if key[1] != 0x3456789A {
		t.Errorf("Expected key[1] 0x3456789A, got %08x", key[1])
	}
}

func TestCounter_Packing(t *testing.T) {
	c := NewCounter(1, 2, 3, 4)
	expected := [4]uint32{4 << 16, 3, 2, 1}
	if c.ctr != expected {
		t.Errorf("Expected counter %08x, got %08x", expected, c.ctr)
	}
}

func TestRandomGenerator_Float64Range(t *testing.T) {
	rng := NewRandomGenerator(NewSeed(RNGIdentifierRender, 0, 7), NewCounter(0, 0, 0, 0))

	for i := 0; i < 10000; i++ {
		v := rng.Float64()
		if v <= 0 || v > 1 {
			t.Fatalf("Draw %d: canonical value %v outside (0, 1]", i, v)
		}
	}
}

func TestRandomGenerator_Float64NeverZero(t *testing.T) {
	// The canonical mapping biases by half the smallest step, so even a
	// raw draw of 0 maps to 2^-65
	if v := float64(0)*0x1p-64 + 0x1p-65; v != 0x1p-65 {
		t.Errorf("Zero draw should map to 2^-65, got %v", v)
	}
}

func TestUniformDistribution_Interval(t *testing.T) {
	rng := NewRandomGenerator(NewSeed(RNGIdentifierScene, 0, 9), NewCounter(0, 0, 0, 0))
	dist := NewUniformDistribution(-2.5, 4.0)

	for i := 0; i < 10000; i++ {
		v := dist.Sample(rng)
		if v < -2.5 || v > 4.0 {
			t.Fatalf("Draw %d: value %v outside [-2.5, 4.0]", i, v)
		}
	}
}
