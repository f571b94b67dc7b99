package fft

import (
	"testing"

	"github.com/kestrel-dsp/bfpmath/internal/vect"
)

func TestReverseBits(t *testing.T) {
	cases := []struct{ x, bits, want int }{
		{0b001, 3, 0b100},
		{0b110, 3, 0b011},
		{0, 4, 0},
		{1, 4, 0b1000},
	}
	for _, c := range cases {
		if got := reverseBits(c.x, c.bits); got != c.want {
			t.Errorf("reverseBits(%b, %d) = %b, want %b", c.x, c.bits, got, c.want)
		}
	}
}

func TestBitReversePermuteIsInvolution(t *testing.T) {
	n := 8
	x := make([]vect.Complex32, n)
	for i := range x {
		x[i] = vect.Complex32{Re: int32(i + 1), Im: int32(-(i + 1))}
	}
	orig := append([]vect.Complex32(nil), x...)
	bitReversePermute(x, log2(n))
	bitReversePermute(x, log2(n))
	for i := range x {
		if x[i] != orig[i] {
			t.Errorf("applying bitReversePermute twice didn't restore index %d: got %+v want %+v", i, x[i], orig[i])
		}
	}
}

func TestBitReverseIndicesIsPermutation(t *testing.T) {
	idx := bitReverseIndices(4)
	seen := make(map[int]bool)
	for _, v := range idx {
		if seen[v] {
			t.Fatalf("bitReverseIndices(4) produced duplicate index %d: %v", v, idx)
		}
		seen[v] = true
	}
	if len(seen) != 16 {
		t.Errorf("bitReverseIndices(4) covered %d distinct indices, want 16", len(seen))
	}
}
