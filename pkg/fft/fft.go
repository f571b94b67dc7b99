package fft

import (
	"github.com/kestrel-dsp/bfpmath/internal/sat"
	"github.com/kestrel-dsp/bfpmath/internal/vect"
)

func log2(n int) int {
	l := 0
	for 1<<l < n {
		l++
	}
	return l
}

func cmul(a, b vect.Complex32) vect.Complex32 {
	rr := int64(a.Re) * int64(b.Re)
	ii := int64(a.Im) * int64(b.Im)
	ri := int64(a.Re) * int64(b.Im)
	ir := int64(a.Im) * int64(b.Re)
	const post = 30
	return vect.Complex32{
		Re: sat.Sat32(sat.RoundShr(rr-ii, post)),
		Im: sat.Sat32(sat.RoundShr(ri+ir, post)),
	}
}

func cadd(a, b vect.Complex32) vect.Complex32 {
	return vect.Complex32{Re: sat.Sat32(int64(a.Re) + int64(b.Re)), Im: sat.Sat32(int64(a.Im) + int64(b.Im))}
}

func csub(a, b vect.Complex32) vect.Complex32 {
	return vect.Complex32{Re: sat.Sat32(int64(a.Re) - int64(b.Re)), Im: sat.Sat32(int64(a.Im) - int64(b.Im))}
}

func chalf(a vect.Complex32) vect.Complex32 {
	return vect.Complex32{Re: sat.Sat32(sat.RoundShr(int64(a.Re), 1)), Im: sat.Sat32(sat.RoundShr(int64(a.Im), 1))}
}

// DIT performs an in-place decimation-in-time radix-2 FFT. x must
// already be in bit-reversed order and have power-of-two length n <=
// MaxFFTLength. After every stage, if the vector's minimum headroom has
// dropped to zero, every element is halved (a one-bit rescale) to keep
// the transform from overflowing; the total number of rescales applied
// is returned so the caller can track the resulting exponent shift (one
// bit per rescale, spec.md §4.5.2).
func DIT(x []vect.Complex32) (rescales int32) {
	n := len(x)
	lg := log2(n)
	for stage := 0; stage < lg; stage++ {
		size := 1 << (stage + 1)
		half := size / 2
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				tw := fullTwiddle(size, k)
				u := x[start+k]
				v := cmul(tw, x[start+k+half])
				x[start+k] = cadd(u, v)
				x[start+k+half] = csub(u, v)
			}
		}
		if vect.HeadroomVectorCS32(x) == 0 {
			for i := range x {
				x[i] = chalf(x[i])
			}
			rescales++
		}
	}
	return
}

// DIF performs an in-place decimation-in-frequency radix-2 FFT. x is
// supplied in natural order and left in bit-reversed order; the caller
// must permute it back with bitReversePermute (or leave it reversed, if
// a subsequent DIT-domain operation expects that order). Per-stage
// rescale tracking mirrors DIT.
func DIF(x []vect.Complex32) (rescales int32) {
	n := len(x)
	lg := log2(n)
	for stage := lg - 1; stage >= 0; stage-- {
		size := 1 << (stage + 1)
		half := size / 2
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				tw := fullTwiddle(size, k)
				u := x[start+k]
				v := x[start+k+half]
				x[start+k] = cadd(u, v)
				x[start+k+half] = cmul(tw, csub(u, v))
			}
		}
		if vect.HeadroomVectorCS32(x) == 0 {
			for i := range x {
				x[i] = chalf(x[i])
			}
			rescales++
		}
	}
	return
}

// Forward computes the forward (DIT) FFT of x in place and returns the
// number of exponent-adjusting rescales applied, the same convention
// DIT reports.
func Forward(x []vect.Complex32) int32 {
	log2n := log2(len(x))
	bitReversePermute(x, log2n)
	return DIT(x)
}

// Inverse computes the inverse FFT of x in place via the standard
// conjugate-trick: conjugate, forward transform, conjugate and scale by
// 1/n. The 1/n scale is returned as an additional exponent shift (log2n
// bits) the caller must subtract from the result's exponent, since this
// engine never performs a non-power-of-two scale inside the kernel.
func Inverse(x []vect.Complex32) (rescales int32, scaleShift int32) {
	for i := range x {
		x[i].Im = -x[i].Im
	}
	rescales = Forward(x)
	for i := range x {
		x[i].Im = -x[i].Im
	}
	return rescales, int32(log2(len(x)))
}
