package bfp

import (
	"github.com/kestrel-dsp/bfpmath/internal/vect"
)

// Headroom recomputes Hr from Re/Im.
func (v *ComplexS16) Headroom() int32 {
	v.Hr = vect.HeadroomVectorCS16(v.Re, v.Im)
	return v.Hr
}

// Add computes v = x + y.
func (v *ComplexS16) Add(x, y *ComplexS16) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.AddSubPrepare(x.Exp, y.Exp, x.Hr, y.Hr)
	vect.AddCS16(v.Re, v.Im, x.Re, x.Im, y.Re, y.Im, xShr, yShr)
	v.Exp = aExp
	v.Headroom()
}

// Sub computes v = x - y.
func (v *ComplexS16) Sub(x, y *ComplexS16) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.AddSubPrepare(x.Exp, y.Exp, x.Hr, y.Hr)
	vect.SubCS16(v.Re, v.Im, x.Re, x.Im, y.Re, y.Im, xShr, yShr)
	v.Exp = aExp
	v.Headroom()
}

// Mul computes the elementwise complex product v = x * y.
func (v *ComplexS16) Mul(x, y *ComplexS16) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.MulPrepare(x.Exp, y.Exp, x.Hr, y.Hr, postShiftS16, 16)
	vect.MulCS16(v.Re, v.Im, x.Re, x.Im, y.Re, y.Im, postShiftS16+xShr+yShr)
	v.Exp = aExp
	v.Headroom()
}

// ConjMul computes v = x * conj(y).
func (v *ComplexS16) ConjMul(x, y *ComplexS16) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.MulPrepare(x.Exp, y.Exp, x.Hr, y.Hr, postShiftS16, 16)
	vect.ConjMulCS16(v.Re, v.Im, x.Re, x.Im, y.Re, y.Im, postShiftS16+xShr+yShr)
	v.Exp = aExp
	v.Headroom()
}

// RealMul multiplies a complex vector by a real mantissa vector c.
func (v *ComplexS16) RealMul(x *ComplexS16, c *S16) {
	checkLength(v.Length, x.Length, c.Length)
	aExp, xShr, cShr := vect.MulPrepare(x.Exp, c.Exp, x.Hr, c.Hr, postShiftS16, 16)
	vect.RealMulCS16(v.Re, v.Im, x.Re, x.Im, c.Data, postShiftS16+xShr+cShr)
	v.Exp = aExp
	v.Headroom()
}

// Scale multiplies every element by the fixed complex scalar (cRe, cIm).
func (v *ComplexS16) Scale(x *ComplexS16, cRe, cIm int16, cExp, cHr int32) {
	checkLength(v.Length, x.Length)
	aExp, xShr, cShr := vect.MulPrepare(x.Exp, cExp, x.Hr, cHr, postShiftS16, 16)
	vect.ScaleCS16(v.Re, v.Im, x.Re, x.Im, cRe, cIm, postShiftS16+xShr+cShr)
	v.Exp = aExp
	v.Headroom()
}

// Macc computes v += x * y in place.
func (v *ComplexS16) Macc(x, y *ComplexS16) {
	checkLength(v.Length, x.Length, y.Length)
	newExp, accShr, bcSat := vect.MaccPrepare(v.Exp, x.Exp, y.Exp, v.Hr, x.Hr, y.Hr)
	vect.MaccCS16(v.Re, v.Im, x.Re, x.Im, y.Re, y.Im, accShr, bcSat)
	v.Exp = newExp
	v.Headroom()
}

// Nmacc computes v -= x * y in place.
func (v *ComplexS16) Nmacc(x, y *ComplexS16) {
	checkLength(v.Length, x.Length, y.Length)
	newExp, accShr, bcSat := vect.MaccPrepare(v.Exp, x.Exp, y.Exp, v.Hr, x.Hr, y.Hr)
	vect.NmaccCS16(v.Re, v.Im, x.Re, x.Im, y.Re, y.Im, accShr, bcSat)
	v.Exp = newExp
	v.Headroom()
}

// ConjMacc computes v += x * conj(y) in place.
func (v *ComplexS16) ConjMacc(x, y *ComplexS16) {
	checkLength(v.Length, x.Length, y.Length)
	newExp, accShr, bcSat := vect.MaccPrepare(v.Exp, x.Exp, y.Exp, v.Hr, x.Hr, y.Hr)
	vect.ConjMaccCS16(v.Re, v.Im, x.Re, x.Im, y.Re, y.Im, accShr, bcSat)
	v.Exp = newExp
	v.Headroom()
}

// MagSquared computes |v|^2 into a real output vector.
func (v *ComplexS16) MagSquared(dst *S16) {
	checkLength(v.Length, dst.Length)
	vect.MagSquaredCS16(dst.Data, v.Re, v.Im, 0)
	dst.Exp = 2 * v.Exp
	dst.Headroom()
}

// Mag computes the elementwise magnitude of v into a real output vector.
func (v *ComplexS16) Mag(dst *S16, depth int32) {
	checkLength(v.Length, dst.Length)
	vect.MagCS16(dst.Data, v.Re, v.Im, 0, depth)
	dst.Exp = v.Exp
	dst.Headroom()
}

// Sum returns the complex sum of all elements as a (mantissa, exponent) pair.
func (v *ComplexS16) Sum() (sr, si int32, exp int32) {
	re, im := vect.SumCS16(v.Re, v.Im)
	return re, im, v.Exp
}

// ToComplexS32 widens v into an existing ComplexS32 descriptor.
func (v *ComplexS16) ToComplexS32(dst *ComplexS32) {
	checkLength(v.Length, dst.Length)
	vect.ToCS32(dst.Data, v.Re, v.Im, 0)
	dst.Exp = v.Exp
	dst.Headroom()
}
