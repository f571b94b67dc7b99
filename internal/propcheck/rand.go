package propcheck

import "math/rand"

// Rand wraps a per-trial PRNG seeded independently per goroutine so
// trials are reproducible from their seed but never share mutable RNG
// state across workers.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded deterministically from seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Int16 returns a random int16 in the full representable range.
func (r *Rand) Int16() int16 {
	return int16(r.r.Uint32())
}

// Int32 returns a random int32 in the full representable range.
func (r *Rand) Int32() int32 {
	return int32(r.r.Uint32())
}

// Exp returns a random exponent in a modest range, representative of
// the small shifts real BFP pipelines accumulate.
func (r *Rand) Exp() int32 {
	return int32(r.r.Intn(41)) - 20
}

// Length returns a random vector length in [1, max].
func (r *Rand) Length(max int) int {
	return 1 + r.r.Intn(max)
}

// Int16Vector returns a random vector of n int16 mantissas.
func (r *Rand) Int16Vector(n int) []int16 {
	v := make([]int16, n)
	for i := range v {
		v[i] = r.Int16()
	}
	return v
}

// Int32Vector returns a random vector of n int32 mantissas.
func (r *Rand) Int32Vector(n int) []int32 {
	v := make([]int32, n)
	for i := range v {
		v[i] = r.Int32()
	}
	return v
}
