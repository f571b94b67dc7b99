package vect

import "github.com/kestrel-dsp/bfpmath/internal/sat"

// Complex 16-bit vectors are stored as separate real/imaginary []int16
// slices (spec.md §3.2), matching the split-buffer layout the
// underlying hardware's complex instructions expect.

// HeadroomVectorCS16 returns the minimum headroom across both the real
// and imaginary channels.
func HeadroomVectorCS16(re, im []int16) int32 {
	hr := HeadroomVectorS16(re)
	if h := HeadroomVectorS16(im); h < hr {
		hr = h
	}
	return hr
}

// AddCS16 adds two complex vectors channel-wise.
func AddCS16(aRe, aIm, bRe, bIm, cRe, cIm []int16, bShr, cShr int32) {
	AddS16(aRe, bRe, cRe, bShr, cShr)
	AddS16(aIm, bIm, cIm, bShr, cShr)
}

// SubCS16 subtracts two complex vectors channel-wise.
func SubCS16(aRe, aIm, bRe, bIm, cRe, cIm []int16, bShr, cShr int32) {
	SubS16(aRe, bRe, cRe, bShr, cShr)
	SubS16(aIm, bIm, cIm, bShr, cShr)
}

// MulCS16 computes the complex product a = b*c elementwise:
// re = br*cr - bi*ci, im = br*ci + bi*cr.
func MulCS16(aRe, aIm, bRe, bIm, cRe, cIm []int16, postShift int32) {
	for i := range bRe {
		rr := int64(bRe[i]) * int64(cRe[i])
		ii := int64(bIm[i]) * int64(cIm[i])
		ri := int64(bRe[i]) * int64(cIm[i])
		ir := int64(bIm[i]) * int64(cRe[i])
		aRe[i] = sat.Sat16(sat.RoundShr(rr-ii, postShift))
		aIm[i] = sat.Sat16(sat.RoundShr(ri+ir, postShift))
	}
}

// ConjMulCS16 computes a = b*conj(c): re = br*cr + bi*ci, im = bi*cr - br*ci.
func ConjMulCS16(aRe, aIm, bRe, bIm, cRe, cIm []int16, postShift int32) {
	for i := range bRe {
		rr := int64(bRe[i]) * int64(cRe[i])
		ii := int64(bIm[i]) * int64(cIm[i])
		ir := int64(bIm[i]) * int64(cRe[i])
		ri := int64(bRe[i]) * int64(cIm[i])
		aRe[i] = sat.Sat16(sat.RoundShr(rr+ii, postShift))
		aIm[i] = sat.Sat16(sat.RoundShr(ir-ri, postShift))
	}
}

// RealMulCS16 multiplies a complex vector by a real (single-channel)
// mantissa vector: re = br*c, im = bi*c.
func RealMulCS16(aRe, aIm, bRe, bIm, c []int16, postShift int32) {
	MulS16(aRe, bRe, c, postShift)
	MulS16(aIm, bIm, c, postShift)
}

// ScaleCS16 multiplies every element by a fixed complex scalar (cRe, cIm).
func ScaleCS16(aRe, aIm, bRe, bIm []int16, cRe, cIm int16, postShift int32) {
	for i := range bRe {
		rr := int64(bRe[i]) * int64(cRe)
		ii := int64(bIm[i]) * int64(cIm)
		ri := int64(bRe[i]) * int64(cIm)
		ir := int64(bIm[i]) * int64(cRe)
		aRe[i] = sat.Sat16(sat.RoundShr(rr-ii, postShift))
		aIm[i] = sat.Sat16(sat.RoundShr(ri+ir, postShift))
	}
}

// MaccCS16 accumulates b*c into acc.
func MaccCS16(accRe, accIm, bRe, bIm, cRe, cIm []int16, accShr, bcSat int32) {
	for i := range accRe {
		rr := int64(bRe[i]) * int64(cRe[i])
		ii := int64(bIm[i]) * int64(cIm[i])
		ri := int64(bRe[i]) * int64(cIm[i])
		ir := int64(bIm[i]) * int64(cRe[i])
		oldRe := sat.RoundShr(int64(accRe[i]), accShr)
		oldIm := sat.RoundShr(int64(accIm[i]), accShr)
		accRe[i] = sat.Sat16(oldRe + sat.RoundShr(rr-ii, bcSat))
		accIm[i] = sat.Sat16(oldIm + sat.RoundShr(ri+ir, bcSat))
	}
}

// NmaccCS16 subtracts b*c from acc instead of adding it.
func NmaccCS16(accRe, accIm, bRe, bIm, cRe, cIm []int16, accShr, bcSat int32) {
	for i := range accRe {
		rr := int64(bRe[i]) * int64(cRe[i])
		ii := int64(bIm[i]) * int64(cIm[i])
		ri := int64(bRe[i]) * int64(cIm[i])
		ir := int64(bIm[i]) * int64(cRe[i])
		oldRe := sat.RoundShr(int64(accRe[i]), accShr)
		oldIm := sat.RoundShr(int64(accIm[i]), accShr)
		accRe[i] = sat.Sat16(oldRe - sat.RoundShr(rr-ii, bcSat))
		accIm[i] = sat.Sat16(oldIm - sat.RoundShr(ri+ir, bcSat))
	}
}

// ConjMaccCS16 accumulates b*conj(c) into acc.
func ConjMaccCS16(accRe, accIm, bRe, bIm, cRe, cIm []int16, accShr, bcSat int32) {
	for i := range accRe {
		rr := int64(bRe[i]) * int64(cRe[i])
		ii := int64(bIm[i]) * int64(cIm[i])
		ir := int64(bIm[i]) * int64(cRe[i])
		ri := int64(bRe[i]) * int64(cIm[i])
		oldRe := sat.RoundShr(int64(accRe[i]), accShr)
		oldIm := sat.RoundShr(int64(accIm[i]), accShr)
		accRe[i] = sat.Sat16(oldRe + sat.RoundShr(rr+ii, bcSat))
		accIm[i] = sat.Sat16(oldIm + sat.RoundShr(ir-ri, bcSat))
	}
}

// MagSquaredCS16 computes |x|^2 = re^2+im^2 into a real output vector.
func MagSquaredCS16(a, re, im []int16, postShift int32) {
	for i := range re {
		v := int64(re[i])*int64(re[i]) + int64(im[i])*int64(im[i])
		a[i] = sat.Sat16(sat.RoundShr(v, postShift))
	}
}

// MagCS16 computes the elementwise complex magnitude |x| via an integer
// sqrt of the squared magnitude, to `depth` bits of precision.
func MagCS16(a, re, im []int16, postShift, depth int32) {
	for i := range re {
		sq := int64(re[i])*int64(re[i]) + int64(im[i])*int64(im[i])
		shifted := sat.RoundShr(sq, postShift)
		if shifted < 0 {
			shifted = 0
		}
		a[i] = int16(isqrtBits(shifted, 15, depth))
	}
}

// SumCS16 returns the complex sum of all elements as a pair of 32-bit accumulators.
func SumCS16(re, im []int16) (sr, si int32) {
	return SumS16(re), SumS16(im)
}

// ToCS32 widens a complex-16 vector into an interleaved complex-32 vector.
func ToCS32(a []Complex32, re, im []int16, shl int32) {
	for i := range re {
		a[i].Re = sat.Sat32(sat.RoundShr(int64(re[i]), -shl))
		a[i].Im = sat.Sat32(sat.RoundShr(int64(im[i]), -shl))
	}
}

// FromCS32 narrows an interleaved complex-32 vector into complex-16.
func FromCS32(re, im []int16, x []Complex32, shr int32) {
	for i := range x {
		re[i] = sat.Sat16(sat.RoundShr(int64(x[i].Re), shr))
		im[i] = sat.Sat16(sat.RoundShr(int64(x[i].Im), shr))
	}
}
