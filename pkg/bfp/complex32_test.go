package bfp

import (
	"github.com/kestrel-dsp/bfpmath/internal/vect"
	"math"
	"testing"
)

func newComplexS32(data []vect.Complex32) ComplexS32 {
	v := ComplexS32{Data: data, Length: len(data)}
	v.Headroom()
	return v
}

func TestComplexS32AddExponentAndValue(t *testing.T) {
	x := newComplexS32([]vect.Complex32{{Re: 10, Im: 20}})
	y := newComplexS32([]vect.Complex32{{Re: 1, Im: 2}})
	out := AllocComplexS32(1)
	out.Add(&x, &y)
	gotRe := math.Ldexp(float64(out.Data[0].Re), int(out.Exp))
	gotIm := math.Ldexp(float64(out.Data[0].Im), int(out.Exp))
	if gotRe != 11 || gotIm != 22 {
		t.Errorf("Add = (%d,%d) @ 2^%d, want (11,22)", out.Data[0].Re, out.Data[0].Im, out.Exp)
	}
}

func TestComplexS32ConjMulSelfIsReal(t *testing.T) {
	x := newComplexS32([]vect.Complex32{{Re: 3, Im: 4}})
	out := AllocComplexS32(1)
	out.ConjMul(&x, &x)
	if out.Data[0].Im != 0 {
		t.Errorf("ConjMul(x,x).Im = %d, want 0", out.Data[0].Im)
	}
}

func TestComplexS32UseExponentNoOp(t *testing.T) {
	x := newComplexS32([]vect.Complex32{{Re: 1000, Im: -2000}, {Re: 5, Im: 5}})
	before := append([]vect.Complex32(nil), x.Data...)
	x.UseExponent(x.Exp)
	for i := range x.Data {
		if x.Data[i] != before[i] {
			t.Errorf("element %d changed under no-op UseExponent: %+v -> %+v", i, before[i], x.Data[i])
		}
	}
}

func TestComplexS32AllocComplexS16RoundTrip(t *testing.T) {
	src := newComplexS32([]vect.Complex32{{Re: 100000, Im: -200000}})
	narrow := AllocComplexS16(1)
	src.ToComplexS16(&narrow)
	wide := AllocComplexS32(1)
	wide.FromComplexS16(&narrow)
	if wide.Data[0].Re == 0 && wide.Data[0].Im == 0 {
		t.Errorf("FromComplexS16 produced all-zero output from non-zero input")
	}
}

func TestComplexS32MagSquaredExponentDoubles(t *testing.T) {
	x := newComplexS32([]vect.Complex32{{Re: 3, Im: 4}})
	x.Exp = 3
	x.Headroom()
	dst := AllocS32(1)
	x.MagSquared(&dst)
	if dst.Exp != 6 {
		t.Errorf("MagSquared exponent = %d, want 2*x.Exp = 6", dst.Exp)
	}
}
