package vect

import "github.com/kestrel-dsp/bfpmath/internal/sat"

// Complex32 is an interleaved 32-bit complex mantissa (spec.md §3.2):
// unlike the 16-bit complex path, the 32-bit path stores real and
// imaginary parts together per element, matching the FFT engine's
// native working format.
type Complex32 struct {
	Re, Im int32
}

// HeadroomVectorCS32 returns the minimum headroom across a complex
// vector, where an element's headroom is the lesser of its two
// channels' headroom.
func HeadroomVectorCS32(x []Complex32) int32 {
	if len(x) == 0 {
		return 31
	}
	hr := int32(31)
	for _, v := range x {
		if h := sat.HeadroomS32(v.Re); h < hr {
			hr = h
		}
		if h := sat.HeadroomS32(v.Im); h < hr {
			hr = h
		}
	}
	return hr
}

// ShlCS32 left-shifts (or rounds-right-shifts, if shl is negative) both
// channels of every element.
func ShlCS32(a, x []Complex32, shl int32) {
	for i, v := range x {
		a[i].Re = sat.Sat32(sat.RoundShr(int64(v.Re), -shl))
		a[i].Im = sat.Sat32(sat.RoundShr(int64(v.Im), -shl))
	}
}

// AddCS32 adds two complex vectors channel-wise.
func AddCS32(a, b, c []Complex32, bShr, cShr int32) {
	for i := range b {
		a[i].Re = sat.Sat32(sat.RoundShr(int64(b[i].Re), bShr) + sat.RoundShr(int64(c[i].Re), cShr))
		a[i].Im = sat.Sat32(sat.RoundShr(int64(b[i].Im), bShr) + sat.RoundShr(int64(c[i].Im), cShr))
	}
}

// SubCS32 subtracts two complex vectors channel-wise.
func SubCS32(a, b, c []Complex32, bShr, cShr int32) {
	for i := range b {
		a[i].Re = sat.Sat32(sat.RoundShr(int64(b[i].Re), bShr) - sat.RoundShr(int64(c[i].Re), cShr))
		a[i].Im = sat.Sat32(sat.RoundShr(int64(b[i].Im), bShr) - sat.RoundShr(int64(c[i].Im), cShr))
	}
}

// MulCS32 computes the complex product a = b*c elementwise.
func MulCS32(a, b, c []Complex32, postShift int32) {
	for i := range b {
		rr := int64(b[i].Re) * int64(c[i].Re)
		ii := int64(b[i].Im) * int64(c[i].Im)
		ri := int64(b[i].Re) * int64(c[i].Im)
		ir := int64(b[i].Im) * int64(c[i].Re)
		a[i].Re = sat.Sat32(sat.RoundShr(rr-ii, postShift))
		a[i].Im = sat.Sat32(sat.RoundShr(ri+ir, postShift))
	}
}

// ConjMulCS32 computes a = b*conj(c).
func ConjMulCS32(a, b, c []Complex32, postShift int32) {
	for i := range b {
		rr := int64(b[i].Re) * int64(c[i].Re)
		ii := int64(b[i].Im) * int64(c[i].Im)
		ir := int64(b[i].Im) * int64(c[i].Re)
		ri := int64(b[i].Re) * int64(c[i].Im)
		a[i].Re = sat.Sat32(sat.RoundShr(rr+ii, postShift))
		a[i].Im = sat.Sat32(sat.RoundShr(ir-ri, postShift))
	}
}

// RealMulCS32 multiplies a complex vector by a real mantissa vector.
func RealMulCS32(a, b []Complex32, c []int32, postShift int32) {
	for i := range b {
		a[i].Re = sat.MulRoundShr32(b[i].Re, c[i], postShift)
		a[i].Im = sat.MulRoundShr32(b[i].Im, c[i], postShift)
	}
}

// ScaleCS32 multiplies every element by a fixed complex scalar c.
func ScaleCS32(a, b []Complex32, c Complex32, postShift int32) {
	for i := range b {
		rr := int64(b[i].Re) * int64(c.Re)
		ii := int64(b[i].Im) * int64(c.Im)
		ri := int64(b[i].Re) * int64(c.Im)
		ir := int64(b[i].Im) * int64(c.Re)
		a[i].Re = sat.Sat32(sat.RoundShr(rr-ii, postShift))
		a[i].Im = sat.Sat32(sat.RoundShr(ri+ir, postShift))
	}
}

// MaccCS32 accumulates b*c into acc.
func MaccCS32(acc, b, c []Complex32, accShr, bcSat int32) {
	for i := range acc {
		rr := int64(b[i].Re) * int64(c[i].Re)
		ii := int64(b[i].Im) * int64(c[i].Im)
		ri := int64(b[i].Re) * int64(c[i].Im)
		ir := int64(b[i].Im) * int64(c[i].Re)
		oldRe := sat.RoundShr(int64(acc[i].Re), accShr)
		oldIm := sat.RoundShr(int64(acc[i].Im), accShr)
		acc[i].Re = sat.Sat32(oldRe + sat.RoundShr(rr-ii, bcSat))
		acc[i].Im = sat.Sat32(oldIm + sat.RoundShr(ri+ir, bcSat))
	}
}

// NmaccCS32 subtracts b*c from acc instead of adding it.
func NmaccCS32(acc, b, c []Complex32, accShr, bcSat int32) {
	for i := range acc {
		rr := int64(b[i].Re) * int64(c[i].Re)
		ii := int64(b[i].Im) * int64(c[i].Im)
		ri := int64(b[i].Re) * int64(c[i].Im)
		ir := int64(b[i].Im) * int64(c[i].Re)
		oldRe := sat.RoundShr(int64(acc[i].Re), accShr)
		oldIm := sat.RoundShr(int64(acc[i].Im), accShr)
		acc[i].Re = sat.Sat32(oldRe - sat.RoundShr(rr-ii, bcSat))
		acc[i].Im = sat.Sat32(oldIm - sat.RoundShr(ri+ir, bcSat))
	}
}

// MagSquaredCS32 computes |x|^2 into a real output vector.
func MagSquaredCS32(a []int32, x []Complex32, postShift int32) {
	for i, v := range x {
		sq := int64(v.Re)*int64(v.Re) + int64(v.Im)*int64(v.Im)
		a[i] = sat.Sat32(sat.RoundShr(sq, postShift))
	}
}

// MagCS32 computes the elementwise complex magnitude |x|.
func MagCS32(a []int32, x []Complex32, postShift, depth int32) {
	for i, v := range x {
		sq := int64(v.Re)*int64(v.Re) + int64(v.Im)*int64(v.Im)
		shifted := sat.RoundShr(sq, postShift)
		if shifted < 0 {
			shifted = 0
		}
		a[i] = int32(isqrtBits(shifted, 31, depth))
	}
}

// SumCS32 returns the complex sum of all elements as a pair of 40-bit accumulators.
func SumCS32(x []Complex32) (sr, si int64) {
	accRe, accIm := int64(0), int64(0)
	for _, v := range x {
		accRe += int64(v.Re)
		accIm += int64(v.Im)
	}
	return sat.Sat40(accRe), sat.Sat40(accIm)
}
