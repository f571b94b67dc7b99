package fft

import (
	"math"
	"testing"

	"github.com/kestrel-dsp/bfpmath/internal/vect"
	"github.com/kestrel-dsp/bfpmath/pkg/bfp"
)

func TestForwardInverseRoundTrip(t *testing.T) {
	const n = 8
	x := bfp.AllocComplexS32(n)
	for k := 0; k < n; k++ {
		x.Data[k] = vect.Complex32{Re: int32(1000 * (k + 1)), Im: int32(-500 * k)}
	}
	x.Exp = -20
	x.Headroom()
	orig := make([]complex128, n)
	copy(orig, ToFloat64(&x))

	Transform(&x)
	InverseTransform(&x)
	got := ToFloat64(&x)

	for k := range orig {
		if math.Abs(real(got[k])-real(orig[k])) > 1e-3 || math.Abs(imag(got[k])-imag(orig[k])) > 1e-3 {
			t.Errorf("element %d: round trip %v, want ~%v", k, got[k], orig[k])
		}
	}
}

func TestDITMatchesNaiveDFT(t *testing.T) {
	const n = 4
	x := make([]vect.Complex32, n)
	// Kept small relative to int32 range so no headroom-triggered
	// rescale fires during the transform, letting the fixed-point
	// result compare directly against the floating-point reference.
	const scale = int32(1) << 20
	x[0] = vect.Complex32{Re: scale, Im: 0}
	x[1] = vect.Complex32{Re: scale / 2, Im: 0}
	x[2] = vect.Complex32{Re: 0, Im: 0}
	x[3] = vect.Complex32{Re: -scale / 2, Im: 0}

	expected := naiveDFT(x)

	bitReversePermute(x, log2(n))
	if rescales := DIT(x); rescales != 0 {
		t.Fatalf("DIT rescaled %d times, want 0 for this input magnitude", rescales)
	}

	for k := range x {
		gotRe, gotIm := float64(x[k].Re), float64(x[k].Im)
		wantRe, wantIm := real(expected[k]), imag(expected[k])
		if math.Abs(gotRe-wantRe) > float64(scale)*1e-5 || math.Abs(gotIm-wantIm) > float64(scale)*1e-5 {
			t.Errorf("bin %d = (%v,%v), want ~(%v,%v)", k, gotRe, gotIm, wantRe, wantIm)
		}
	}
}

func naiveDFT(x []vect.Complex32) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var acc complex128
		for j := 0; j < n; j++ {
			theta := -2 * math.Pi * float64(k*j) / float64(n)
			w := complex(math.Cos(theta), math.Sin(theta))
			acc += complex(float64(x[j].Re), float64(x[j].Im)) * w
		}
		out[k] = acc
	}
	return out
}

func TestRescaleNeverLosesHeadroom(t *testing.T) {
	const n = 16
	x := make([]vect.Complex32, n)
	const full = int32(1<<31 - 1)
	for i := range x {
		x[i] = vect.Complex32{Re: full, Im: -full}
	}
	bitReversePermute(x, log2(n))
	DIT(x)
	if vect.HeadroomVectorCS32(x) < 0 {
		t.Errorf("HeadroomVectorCS32 after DIT = %d, want >= 0 (no overflow survives)", vect.HeadroomVectorCS32(x))
	}
}
