package fft

import (
	"math"

	"github.com/kestrel-dsp/bfpmath/pkg/bfp"
)

// Transform computes the forward radix-2 FFT of x in place (x.Data must
// be power-of-two length) and updates x.Exp/x.Hr to account for the
// per-stage rescales the engine applied.
func Transform(x *bfp.ComplexS32) {
	rescales := Forward(x.Data[:x.Length])
	x.Exp += rescales
	x.Headroom()
}

// InverseTransform computes the inverse radix-2 FFT of x in place,
// folding both the per-stage rescale shift and the 1/n normalization
// shift into x.Exp.
func InverseTransform(x *bfp.ComplexS32) {
	rescales, scaleShift := Inverse(x.Data[:x.Length])
	x.Exp += rescales - scaleShift
	x.Headroom()
}

// ToFloat64 converts a BFP complex spectrum to a slice of ordinary
// complex128 values, the IEEE-754 escape hatch spec.md §4.5.5 calls for
// when a caller wants floating point at the boundary instead of
// continuing in fixed point.
func ToFloat64(x *bfp.ComplexS32) []complex128 {
	out := make([]complex128, x.Length)
	scale := math.Ldexp(1, int(x.Exp))
	for i, v := range x.Data {
		out[i] = complex(float64(v.Re)*scale, float64(v.Im)*scale)
	}
	return out
}
