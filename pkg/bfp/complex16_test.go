package bfp

import (
	"math"
	"testing"
)

func newComplexS16(re, im []int16) ComplexS16 {
	v := ComplexS16{Re: re, Im: im, Length: len(re)}
	v.Headroom()
	return v
}

func TestComplexS16AddExponentAndValue(t *testing.T) {
	x := newComplexS16([]int16{10}, []int16{20})
	y := newComplexS16([]int16{1}, []int16{2})
	out := AllocComplexS16(1)
	out.Add(&x, &y)
	gotRe := math.Ldexp(float64(out.Re[0]), int(out.Exp))
	gotIm := math.Ldexp(float64(out.Im[0]), int(out.Exp))
	if gotRe != 11 || gotIm != 22 {
		t.Errorf("Add = (%d,%d) @ 2^%d, want (11,22)", out.Re[0], out.Im[0], out.Exp)
	}
}

func TestComplexS16ConjMulSelfIsReal(t *testing.T) {
	x := newComplexS16([]int16{3}, []int16{4})
	out := AllocComplexS16(1)
	out.ConjMul(&x, &x)
	if out.Im[0] != 0 {
		t.Errorf("ConjMul(x,x).Im = %d, want 0 (x*conj(x) is always real)", out.Im[0])
	}
}

func TestComplexS16MagSquaredExponentDoubles(t *testing.T) {
	x := newComplexS16([]int16{3}, []int16{4})
	x.Exp = 2
	x.Headroom()
	dst := AllocS16(1)
	x.MagSquared(&dst)
	if dst.Exp != 4 {
		t.Errorf("MagSquared exponent = %d, want 2*x.Exp = 4", dst.Exp)
	}
}

func TestComplexS16AllocDeallocRoundTrip(t *testing.T) {
	v := AllocComplexS16(4)
	if v.Length != 4 || cap(v.Re) < 4+monoOverhead || cap(v.Im) < 4+monoOverhead {
		t.Fatalf("AllocComplexS16(4) = %+v, want Length=4 and monoOverhead spare capacity", v)
	}
	v.Dealloc()
	if v.Re != nil || v.Im != nil || v.Length != 0 {
		t.Errorf("Dealloc left Re=%v Im=%v Length=%d, want nil/nil/0", v.Re, v.Im, v.Length)
	}
}

func TestComplexS16ToComplexS32RoundTrip(t *testing.T) {
	src := newComplexS16([]int16{100, -200}, []int16{50, -75})
	wide := AllocComplexS32(2)
	src.ToComplexS32(&wide)
	narrow := AllocComplexS16(2)
	wide.ToComplexS16(&narrow)
	for i := range src.Re {
		if narrow.Re[i] != src.Re[i] || narrow.Im[i] != src.Im[i] {
			t.Errorf("element %d: round trip (%d,%d) -> (%d,%d)", i, src.Re[i], src.Im[i], narrow.Re[i], narrow.Im[i])
		}
	}
}
