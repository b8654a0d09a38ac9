package core

import "math/rand/v2"

// RNG wraps math/rand/v2 so seed patterns and test shuffles are reproducible.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Shuffle randomizes the order of n elements using swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// FillBinary fills the buffer with random true/false values.
func (r *RNG) FillBinary(buf []bool) {
	for i := range buf {
		buf[i] = r.Bool()
	}
}
