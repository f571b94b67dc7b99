package bfp

import (
	"github.com/kestrel-dsp/bfpmath/internal/sat"
	"github.com/kestrel-dsp/bfpmath/internal/vect"
)

const postShiftS32 = 30 // width(32) - 2, the fixed post-multiply shift

// Headroom recomputes Hr from Data.
func (v *S32) Headroom() int32 {
	v.Hr = vect.HeadroomVectorS32(v.Data)
	return v.Hr
}

// UseExponent rewrites v in place to use exponent newExp.
func (v *S32) UseExponent(newExp int32) {
	shr := vect.AdjustExponent(0, newExp-v.Exp, v.Hr)
	vect.ShlS32(v.Data, v.Data, -shr)
	v.Exp += shr
	v.Headroom()
}

// Add computes v = x + y.
func (v *S32) Add(x, y *S32) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.AddSubPrepare(x.Exp, y.Exp, x.Hr, y.Hr)
	vect.AddS32(v.Data, x.Data, y.Data, xShr, yShr)
	v.Exp = aExp
	v.Headroom()
}

// Sub computes v = x - y.
func (v *S32) Sub(x, y *S32) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.AddSubPrepare(x.Exp, y.Exp, x.Hr, y.Hr)
	vect.SubS32(v.Data, x.Data, y.Data, xShr, yShr)
	v.Exp = aExp
	v.Headroom()
}

// Mul computes the elementwise product v = x * y.
func (v *S32) Mul(x, y *S32) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.MulPrepare(x.Exp, y.Exp, x.Hr, y.Hr, postShiftS32, 32)
	if xShr != 0 || yShr != 0 {
		tmpX := make([]int32, len(x.Data))
		tmpY := make([]int32, len(y.Data))
		vect.ShlS32(tmpX, x.Data, -xShr)
		vect.ShlS32(tmpY, y.Data, -yShr)
		vect.MulS32(v.Data, tmpX, tmpY, postShiftS32)
	} else {
		vect.MulS32(v.Data, x.Data, y.Data, postShiftS32)
	}
	v.Exp = aExp
	v.Headroom()
}

// Scale computes v = x * c for a scalar mantissa c at exponent cExp.
func (v *S32) Scale(x *S32, c int32, cExp, cHr int32) {
	checkLength(v.Length, x.Length)
	aExp, xShr, cShr := vect.MulPrepare(x.Exp, cExp, x.Hr, cHr, postShiftS32, 32)
	if xShr != 0 {
		tmpX := make([]int32, len(x.Data))
		vect.ShlS32(tmpX, x.Data, -xShr)
		vect.ScaleS32(v.Data, tmpX, c, postShiftS32+cShr)
	} else {
		vect.ScaleS32(v.Data, x.Data, c, postShiftS32+cShr)
	}
	v.Exp = aExp
	v.Headroom()
}

// Macc computes v += x * y in place.
func (v *S32) Macc(x, y *S32) {
	checkLength(v.Length, x.Length, y.Length)
	newExp, accShr, bcSat := vect.MaccPrepare(v.Exp, x.Exp, y.Exp, v.Hr, x.Hr, y.Hr)
	vect.MaccS32(v.Data, x.Data, y.Data, accShr, bcSat)
	v.Exp = newExp
	v.Headroom()
}

// Nmacc computes v -= x * y in place.
func (v *S32) Nmacc(x, y *S32) {
	checkLength(v.Length, x.Length, y.Length)
	newExp, accShr, bcSat := vect.MaccPrepare(v.Exp, x.Exp, y.Exp, v.Hr, x.Hr, y.Hr)
	vect.NmaccS32(v.Data, x.Data, y.Data, accShr, bcSat)
	v.Exp = newExp
	v.Headroom()
}

// Abs computes v = |x|.
func (v *S32) Abs(x *S32) {
	checkLength(v.Length, x.Length)
	vect.AbsS32(v.Data, x.Data)
	v.Exp = x.Exp
	v.Headroom()
}

// Rect computes v = max(x, 0).
func (v *S32) Rect(x *S32) {
	checkLength(v.Length, x.Length)
	vect.RectS32(v.Data, x.Data)
	v.Exp = x.Exp
	v.Headroom()
}

// Sum returns the sum of all elements as a (mantissa, exponent) pair,
// the mantissa saturating at the 40-bit accumulator bound.
func (v *S32) Sum() (mant int64, exp int32) {
	return vect.SumS32(v.Data), v.Exp
}

// Dot returns the inner product of v and other as a (mantissa,
// exponent) pair.
func (v *S32) Dot(other *S32) (mant int64, exp int32) {
	checkLength(v.Length, other.Length)
	aExp, xShr, yShr := vect.DotPrepare(v.Exp, other.Exp, v.Hr, other.Hr, v.Length, postShiftS32, 32, 39)
	if xShr == 0 && yShr == 0 {
		return vect.DotS32(v.Data, other.Data, postShiftS32), aExp
	}
	tmpX := make([]int32, v.Length)
	tmpY := make([]int32, v.Length)
	vect.ShlS32(tmpX, v.Data, -xShr)
	vect.ShlS32(tmpY, other.Data, -yShr)
	return vect.DotS32(tmpX, tmpY, postShiftS32), aExp
}

// Energy returns sum(v[i]^2) as a (mantissa, exponent) pair.
func (v *S32) Energy() (mant int64, exp int32) {
	aExp, xShr, _ := vect.DotPrepare(v.Exp, v.Exp, v.Hr, v.Hr, v.Length, postShiftS32, 32, 39)
	if xShr == 0 {
		return vect.EnergyS32(v.Data, postShiftS32), aExp
	}
	tmp := make([]int32, v.Length)
	vect.ShlS32(tmp, v.Data, -xShr)
	return vect.EnergyS32(tmp, postShiftS32), aExp
}

// Clip clamps every element of x into [lo, hi] and writes the result to v.
func (v *S32) Clip(x *S32, lo, hi int64, boundExp int32) {
	checkLength(v.Length, x.Length)
	aExp, xShr, lo2, hi2, clipCase := vect.ClipPrepare(x.Exp, boundExp, x.Hr, lo, hi, 32)
	switch clipCase {
	case vect.ClipAllBelowLow:
		fillS32(v.Data, sat.Sat32(lo2))
	case vect.ClipAllAboveHigh:
		fillS32(v.Data, sat.Sat32(hi2))
	case vect.ClipCollapsed:
		fillS32(v.Data, sat.Sat32(lo2))
	default:
		vect.ClipS32(v.Data, x.Data, xShr, sat.Sat32(lo2), sat.Sat32(hi2))
	}
	v.Exp = aExp
	v.Headroom()
}

func fillS32(data []int32, value int32) {
	for i := range data {
		data[i] = value
	}
}

// Inverse computes v[i] = 1/x[i]. Returns ErrArithmeticDomain without
// writing to v if x contains a zero element.
func (v *S32) Inverse(x *S32) error {
	checkLength(v.Length, x.Length)
	hrMax := int32(0)
	for _, e := range x.Data {
		if e == 0 {
			return errArithmeticDomainWrap()
		}
		if h := sat.HeadroomS32(e); h > hrMax {
			hrMax = h
		}
	}
	aExp, scale := vect.InversePrepare(x.Exp, hrMax, 32)
	vect.InverseS32(v.Data, x.Data, scale)
	v.Exp = aExp
	v.Headroom()
	return nil
}

// Sqrt computes v[i] = sqrt(x[i]) to DefaultSqrtDepthS32 bits.
func (v *S32) Sqrt(x *S32) {
	checkLength(v.Length, x.Length)
	aExp, bShr := vect.SqrtPrepare(x.Exp, x.Hr, DefaultSqrtDepthS32, 32)
	if bShr != 0 {
		tmp := make([]int32, x.Length)
		vect.ShlS32(tmp, x.Data, -bShr)
		vect.SqrtS32(v.Data, tmp, DefaultSqrtDepthS32)
	} else {
		vect.SqrtS32(v.Data, x.Data, DefaultSqrtDepthS32)
	}
	v.Exp = aExp
	v.Headroom()
}

// ArgMax returns the index of the maximum element.
func (v *S32) ArgMax() int { return vect.MaxIndexS32(v.Data) }

// ArgMin returns the index of the minimum element.
func (v *S32) ArgMin() int { return vect.MinIndexS32(v.Data) }

// FromS16 widens src into v at the same exponent, without shifting.
func (v *S32) FromS16(src *S16) {
	checkLength(v.Length, src.Length)
	vect.ToS32(v.Data, src.Data, 0)
	v.Exp = src.Exp
	v.Headroom()
}

// ToS16 narrows v into an existing S16 descriptor, rounding to 16 bits
// at the tightest exponent v's current headroom allows.
func (v *S32) ToS16(dst *S16) {
	checkLength(v.Length, dst.Length)
	shr := int32(16) - v.Hr
	if shr < 0 {
		shr = 0
	}
	vect.FromS32(dst.Data, v.Data, shr)
	dst.Exp = v.Exp + shr
	dst.Headroom()
}
