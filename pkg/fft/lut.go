// Package fft implements the radix-2 FFT engine (C5) and its real-signal
// adapters (C6): decimation-in-time and decimation-in-frequency complex
// transforms over bfp.ComplexS32, plus mono (single real signal) and
// stereo (two real signals packed into one complex signal) adapters.
package fft

import (
	"math"
	"math/cmplx"

	"github.com/kestrel-dsp/bfpmath/internal/vect"
)

// MaxFFTLog2 is the largest supported transform size, 2^10 = 1024
// points, matching the original's MAX_DIT_FFT_LOG2/MAX_DIF_FFT_LOG2.
const MaxFFTLog2 = 10

// MaxFFTLength is 2^MaxFFTLog2.
const MaxFFTLength = 1 << MaxFFTLog2

// twiddle is the master table of N/4 = 256 unique twiddle factors for
// the largest supported transform, e^{-2*pi*i*k/MaxFFTLength} for
// k in [0, MaxFFTLength/4), in Q1.30 fixed point (the scale the
// butterfly's fixed post-multiply shift in cmul expects). Every smaller
// transform size's twiddle factor is this table strided by
// MaxFFTLength/N, the standard "one generated table, derive the rest by
// stride" technique (grounded in the generated-at-init-time style
// other_examples/madelynnblue-go-dsp's radix2_simd.go uses for its
// factors table, rather than the original's two offline-computed
// 1020-entry concatenated DIT/DIF tables — see DESIGN.md).
var twiddle [MaxFFTLength / 4]vect.Complex32

func init() {
	for k := range twiddle {
		theta := -2 * math.Pi * float64(k) / float64(MaxFFTLength)
		c := cmplx.Exp(complex(0, theta))
		twiddle[k] = toQ30(c)
	}
}

func toQ30(c complex128) vect.Complex32 {
	const scale = float64(int64(1) << 30)
	return vect.Complex32{
		Re: int32(math.Round(real(c) * scale)),
		Im: int32(math.Round(imag(c) * scale)),
	}
}

// twiddleFactor returns e^{-2*pi*i*k/n} in Q1.30 fixed point for a
// transform of length n <= MaxFFTLength, k in [0, n/4).
func twiddleFactor(n int, k int) vect.Complex32 {
	stride := MaxFFTLength / n
	return twiddle[k*stride]
}

// fullTwiddle returns e^{-2*pi*i*k/n} for any k in [0, n), expanding the
// first-quadrant table by the standard symmetry relations.
func fullTwiddle(n, k int) vect.Complex32 {
	if n < 4 {
		// A size-2 butterfly's only twiddle factor is k=0, e^0 = 1+0i;
		// the quadrant split below needs a quarter-turn to divide by.
		return twiddle[0]
	}
	quarter := n / 4
	q := k / quarter
	r := k % quarter
	t := twiddleFactor(n, r)
	switch q {
	case 0:
		return t
	case 1:
		return vect.Complex32{Re: t.Im, Im: -t.Re}
	case 2:
		return vect.Complex32{Re: -t.Re, Im: -t.Im}
	case 3:
		return vect.Complex32{Re: -t.Im, Im: t.Re}
	}
	return t
}
