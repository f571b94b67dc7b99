package fft

import (
	"github.com/kestrel-dsp/bfpmath/internal/vect"
	"github.com/kestrel-dsp/bfpmath/pkg/bfp"
)

// MergeStereo packs two real signals' time-domain samples into one
// complex buffer (A to the real channel, B to the imaginary channel) so
// a single length-N complex FFT computes both spectra at once.
func MergeStereo(dst *bfp.ComplexS32, a, b *bfp.S32) {
	for k := 0; k < dst.Length; k++ {
		dst.Data[k] = vect.Complex32{Re: a.Data[k], Im: b.Data[k]}
	}
	dst.Exp = a.Exp
}

// SplitStereo recovers the two real signals' individual spectra from a
// length-N complex spectrum y = FFT(a + i*b), using the standard
// conjugate-symmetry decomposition:
//
//	A[f] = (Y[f] + conj(Y[N-f])) / 2
//	B[f] = -i * (Y[f] - conj(Y[N-f])) / 2
func SplitStereo(outA, outB *bfp.ComplexS32, y *bfp.ComplexS32) {
	n := y.Length
	for f := 0; f < n; f++ {
		yf := y.Data[f]
		ynf := conj(y.Data[(n-f)%n])
		sum := cadd(yf, ynf)
		diff := csub(yf, ynf)
		outA.Data[f] = chalf(sum)
		outB.Data[f] = chalf(cmulNegI(diff))
	}
	outA.Exp = y.Exp
	outB.Exp = y.Exp
	outA.Headroom()
	outB.Headroom()
}

// cmulNegI multiplies a by -i.
func cmulNegI(a vect.Complex32) vect.Complex32 {
	return vect.Complex32{Re: a.Im, Im: -a.Re}
}
