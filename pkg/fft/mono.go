package fft

import (
	"github.com/kestrel-dsp/bfpmath/internal/sat"
	"github.com/kestrel-dsp/bfpmath/internal/vect"
	"github.com/kestrel-dsp/bfpmath/pkg/bfp"
)

// PackMono interleaves a single real time-domain signal of length 2*N
// into an N-point complex buffer (even samples to the real channel, odd
// samples to the imaginary channel), the standard trick that lets one
// half-length complex FFT stand in for a full-length real FFT.
func PackMono(dst *bfp.ComplexS32, src *bfp.S32) {
	n := dst.Length
	for k := 0; k < n; k++ {
		dst.Data[k] = vect.Complex32{Re: src.Data[2*k], Im: src.Data[2*k+1]}
	}
	dst.Exp = src.Exp
}

// UnpackMono untangles the pseudo-spectrum PackMono's packing produces,
// once Forward has transformed it, into the true spectrum of the
// original real signal: N complex bins representing frequencies
// 0..N-1, with the Nyquist bin (purely real) packed into bin 0's
// imaginary part since the true bin N has no slot of its own in an
// N-element buffer. spec.Data must have at least one element of spare
// capacity beyond Length (AllocComplexS32's monoOverhead guarantees
// this); UnpackMono returns ErrAlignment if it doesn't.
func UnpackMono(spec *bfp.ComplexS32) error {
	n := spec.Length
	if cap(spec.Data) < n+1 {
		return bfp.ErrAlignment
	}
	z := spec.Data[:n+1 : n+1]
	z[n] = z[0]

	dc, nyq := z[0].Re, z[0].Im
	out := make([]vect.Complex32, n)
	out[0] = vect.Complex32{Re: sat.Sat32(int64(dc) + int64(nyq)), Im: sat.Sat32(int64(dc) - int64(nyq))}

	half := n / 2
	for k := 1; k < n; k++ {
		if k == half {
			continue
		}
		zk := z[k]
		zNk := conj(z[n-k])
		sum := cadd(zk, zNk)
		diff := csub(zk, zNk)
		tw := halfTurnTwiddle(n, k)
		term := cmulI(cmul(tw, diff))
		out[k] = chalf(csub(sum, term))
	}
	if half > 0 {
		// k=n/2 is its own conjugate pair within the packed spectrum
		// (n-k == k), which the general untangling formula collapses
		// to a plain conjugate: X[n/2] = conj(Z[n/2]).
		out[half] = conj(z[half])
	}
	copy(spec.Data[:n], out)
	return nil
}

func conj(a vect.Complex32) vect.Complex32 {
	return vect.Complex32{Re: a.Re, Im: -a.Im}
}

// cmulI multiplies a by i (a 90-degree rotation), exact and shift-free.
func cmulI(a vect.Complex32) vect.Complex32 {
	return vect.Complex32{Re: -a.Im, Im: a.Re}
}

// halfTurnTwiddle returns e^{-i*pi*k/n} in Q1.30, the twiddle used by
// the mono/stereo untangling step (half the angular resolution of the
// main transform's own twiddle, hence computed directly rather than
// drawn from the shared table).
func halfTurnTwiddle(n, k int) vect.Complex32 {
	return fullTwiddle(2*n, k)
}

// ForwardMono computes the real FFT of a 2*N-length real signal into an
// N-element complex spectrum. The headroom-rescale exponent shift is
// already added to dst.Exp; it is also returned.
func ForwardMono(dst *bfp.ComplexS32, src *bfp.S32) (int32, error) {
	PackMono(dst, src)
	rescales := Forward(dst.Data[:dst.Length])
	if err := UnpackMono(dst); err != nil {
		return 0, err
	}
	dst.Exp += rescales
	dst.Headroom()
	return rescales, nil
}
