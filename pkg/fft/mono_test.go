package fft

import (
	"math"
	"testing"

	"github.com/kestrel-dsp/bfpmath/internal/vect"
	"github.com/kestrel-dsp/bfpmath/pkg/bfp"
)

func TestPackMonoUnpackMonoRoundTrip(t *testing.T) {
	const n = 4 // 2*n = 8 real samples
	src := bfp.AllocS32(2 * n)
	for i := range src.Data {
		src.Data[i] = int32(1000 * (i + 1))
	}
	src.Exp = -24
	src.Headroom()

	spec := bfp.AllocComplexS32(n)
	if _, err := ForwardMono(&spec, &src); err != nil {
		t.Fatalf("ForwardMono: %v", err)
	}

	// Reference: a naive real DFT of the original 2n-sample signal. X has
	// 2n+1 conceptually-unique bins folded by conjugate symmetry down to
	// X[0..2n]; UnpackMono's packed layout stores X[0] and the Nyquist
	// bin X[2n/2]=X[n] together in bin 0, and X[k] directly in bin k for
	// k=1..n-1.
	samples := make([]float64, 2*n)
	scale := math.Ldexp(1, int(src.Exp))
	for i, v := range src.Data {
		samples[i] = float64(v) * scale
	}
	expected := naiveRealDFT(samples)

	got := ToFloat64(&spec)
	const tol = 1e-2
	if math.Abs(real(got[0])-real(expected[0])) > tol || math.Abs(imag(got[0])-real(expected[n])) > tol {
		t.Errorf("bin 0 = %v, want DC=%v Nyquist=%v packed as (Re,Im)", got[0], expected[0], expected[n])
	}
	for k := 1; k < n; k++ {
		if math.Abs(real(got[k])-real(expected[k])) > tol || math.Abs(imag(got[k])-imag(expected[k])) > tol {
			t.Errorf("bin %d = %v, want ~%v", k, got[k], expected[k])
		}
	}
}

// naiveRealDFT returns X[0..n] (n+1 bins) of the length-2n real DFT of x.
func naiveRealDFT(x []float64) []complex128 {
	full := len(x)
	out := make([]complex128, full/2+1)
	for k := range out {
		var acc complex128
		for j, v := range x {
			theta := -2 * math.Pi * float64(k*j) / float64(full)
			acc += complex(v, 0) * complex(math.Cos(theta), math.Sin(theta))
		}
		out[k] = acc
	}
	return out
}

func TestUnpackMonoAlignmentError(t *testing.T) {
	spec := bfp.ComplexS32{Data: make([]vect.Complex32, 4), Length: 4}
	if err := UnpackMono(&spec); err != bfp.ErrAlignment {
		t.Errorf("UnpackMono on an under-capacity buffer returned %v, want ErrAlignment", err)
	}
}
