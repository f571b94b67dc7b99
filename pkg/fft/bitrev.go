package fft

import "github.com/kestrel-dsp/bfpmath/internal/vect"

// bitReverseIndices returns the bit-reversal permutation for log2n bits.
func bitReverseIndices(log2n int) []int {
	n := 1 << log2n
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = reverseBits(i, log2n)
	}
	return idx
}

func reverseBits(x, bits int) int {
	r := 0
	for i := 0; i < bits; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// bitReversePermute reorders x in place according to the bit-reversal
// permutation for its length, which must be a power of two.
func bitReversePermute(x []vect.Complex32, log2n int) {
	perm := bitReverseIndices(log2n)
	for i, j := range perm {
		if j > i {
			x[i], x[j] = x[j], x[i]
		}
	}
}
