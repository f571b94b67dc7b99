package bfp

import (
	"github.com/kestrel-dsp/bfpmath/internal/vect"
)

// Headroom recomputes Hr from Data.
func (v *ComplexS32) Headroom() int32 {
	v.Hr = vect.HeadroomVectorCS32(v.Data)
	return v.Hr
}

// UseExponent rewrites v in place to use exponent newExp.
func (v *ComplexS32) UseExponent(newExp int32) {
	shr := vect.AdjustExponent(0, newExp-v.Exp, v.Hr)
	vect.ShlCS32(v.Data, v.Data, -shr)
	v.Exp += shr
	v.Headroom()
}

// Add computes v = x + y.
func (v *ComplexS32) Add(x, y *ComplexS32) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.AddSubPrepare(x.Exp, y.Exp, x.Hr, y.Hr)
	vect.AddCS32(v.Data, x.Data, y.Data, xShr, yShr)
	v.Exp = aExp
	v.Headroom()
}

// Sub computes v = x - y.
func (v *ComplexS32) Sub(x, y *ComplexS32) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.AddSubPrepare(x.Exp, y.Exp, x.Hr, y.Hr)
	vect.SubCS32(v.Data, x.Data, y.Data, xShr, yShr)
	v.Exp = aExp
	v.Headroom()
}

// Mul computes the elementwise complex product v = x * y.
func (v *ComplexS32) Mul(x, y *ComplexS32) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.MulPrepare(x.Exp, y.Exp, x.Hr, y.Hr, postShiftS32, 32)
	vect.MulCS32(v.Data, x.Data, y.Data, postShiftS32+xShr+yShr)
	v.Exp = aExp
	v.Headroom()
}

// ConjMul computes v = x * conj(y).
func (v *ComplexS32) ConjMul(x, y *ComplexS32) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.MulPrepare(x.Exp, y.Exp, x.Hr, y.Hr, postShiftS32, 32)
	vect.ConjMulCS32(v.Data, x.Data, y.Data, postShiftS32+xShr+yShr)
	v.Exp = aExp
	v.Headroom()
}

// RealMul multiplies a complex vector by a real mantissa vector c.
func (v *ComplexS32) RealMul(x *ComplexS32, c *S32) {
	checkLength(v.Length, x.Length, c.Length)
	aExp, xShr, cShr := vect.MulPrepare(x.Exp, c.Exp, x.Hr, c.Hr, postShiftS32, 32)
	vect.RealMulCS32(v.Data, x.Data, c.Data, postShiftS32+xShr+cShr)
	v.Exp = aExp
	v.Headroom()
}

// Scale multiplies every element by a fixed complex scalar c.
func (v *ComplexS32) Scale(x *ComplexS32, c vect.Complex32, cExp, cHr int32) {
	checkLength(v.Length, x.Length)
	aExp, xShr, cShr := vect.MulPrepare(x.Exp, cExp, x.Hr, cHr, postShiftS32, 32)
	vect.ScaleCS32(v.Data, x.Data, c, postShiftS32+xShr+cShr)
	v.Exp = aExp
	v.Headroom()
}

// Macc computes v += x * y in place.
func (v *ComplexS32) Macc(x, y *ComplexS32) {
	checkLength(v.Length, x.Length, y.Length)
	newExp, accShr, bcSat := vect.MaccPrepare(v.Exp, x.Exp, y.Exp, v.Hr, x.Hr, y.Hr)
	vect.MaccCS32(v.Data, x.Data, y.Data, accShr, bcSat)
	v.Exp = newExp
	v.Headroom()
}

// Nmacc computes v -= x * y in place.
func (v *ComplexS32) Nmacc(x, y *ComplexS32) {
	checkLength(v.Length, x.Length, y.Length)
	newExp, accShr, bcSat := vect.MaccPrepare(v.Exp, x.Exp, y.Exp, v.Hr, x.Hr, y.Hr)
	vect.NmaccCS32(v.Data, x.Data, y.Data, accShr, bcSat)
	v.Exp = newExp
	v.Headroom()
}

// MagSquared computes |v|^2 into a real output vector.
func (v *ComplexS32) MagSquared(dst *S32) {
	checkLength(v.Length, dst.Length)
	vect.MagSquaredCS32(dst.Data, v.Data, 0)
	dst.Exp = 2 * v.Exp
	dst.Headroom()
}

// Mag computes the elementwise magnitude of v into a real output vector.
func (v *ComplexS32) Mag(dst *S32, depth int32) {
	checkLength(v.Length, dst.Length)
	vect.MagCS32(dst.Data, v.Data, 0, depth)
	dst.Exp = v.Exp
	dst.Headroom()
}

// Sum returns the complex sum of all elements as a (mantissa, exponent) pair.
func (v *ComplexS32) Sum() (sr, si int64, exp int32) {
	re, im := vect.SumCS32(v.Data)
	return re, im, v.Exp
}

// FromComplexS16 widens src into v at the same exponent, without shifting.
func (v *ComplexS32) FromComplexS16(src *ComplexS16) {
	checkLength(v.Length, src.Length)
	vect.ToCS32(v.Data, src.Re, src.Im, 0)
	v.Exp = src.Exp
	v.Headroom()
}

// ToComplexS16 narrows v into an existing ComplexS16 descriptor.
func (v *ComplexS32) ToComplexS16(dst *ComplexS16) {
	checkLength(v.Length, dst.Length)
	shr := int32(16) - v.Hr
	if shr < 0 {
		shr = 0
	}
	vect.FromCS32(dst.Re, dst.Im, v.Data, shr)
	dst.Exp = v.Exp + shr
	dst.Headroom()
}
