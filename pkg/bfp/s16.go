package bfp

import (
	"github.com/kestrel-dsp/bfpmath/internal/sat"
	"github.com/kestrel-dsp/bfpmath/internal/vect"
)

const postShiftS16 = 14 // width(16) - 2, the fixed post-multiply shift

// Headroom recomputes Hr from Data and returns it; every mutating
// method below calls this as its step-4 bookkeeping.
func (v *S16) Headroom() int32 {
	v.Hr = vect.HeadroomVectorS16(v.Data)
	return v.Hr
}

// UseExponent rewrites v in place to use exponent newExp instead of its
// current one, shifting the mantissa accordingly. It is the
// adjustability property (spec.md §4.3) exposed at the façade level.
func (v *S16) UseExponent(newExp int32) {
	shr := vect.AdjustExponent(0, newExp-v.Exp, v.Hr)
	vect.ShlS16(v.Data, v.Data, -shr)
	v.Exp += shr
	v.Headroom()
}

// Add computes v = x + y.
func (v *S16) Add(x, y *S16) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.AddSubPrepare(x.Exp, y.Exp, x.Hr, y.Hr)
	vect.AddS16(v.Data, x.Data, y.Data, xShr, yShr)
	v.Exp = aExp
	v.Headroom()
}

// Sub computes v = x - y.
func (v *S16) Sub(x, y *S16) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.AddSubPrepare(x.Exp, y.Exp, x.Hr, y.Hr)
	vect.SubS16(v.Data, x.Data, y.Data, xShr, yShr)
	v.Exp = aExp
	v.Headroom()
}

// Mul computes the elementwise product v = x * y.
func (v *S16) Mul(x, y *S16) {
	checkLength(v.Length, x.Length, y.Length)
	aExp, xShr, yShr := vect.MulPrepare(x.Exp, y.Exp, x.Hr, y.Hr, postShiftS16, 16)
	if xShr != 0 || yShr != 0 {
		tmpX := make([]int16, len(x.Data))
		tmpY := make([]int16, len(y.Data))
		vect.ShlS16(tmpX, x.Data, -xShr)
		vect.ShlS16(tmpY, y.Data, -yShr)
		vect.MulS16(v.Data, tmpX, tmpY, postShiftS16)
	} else {
		vect.MulS16(v.Data, x.Data, y.Data, postShiftS16)
	}
	v.Exp = aExp
	v.Headroom()
}

// Scale computes v = x * c for a scalar mantissa c at exponent cExp.
func (v *S16) Scale(x *S16, c int16, cExp, cHr int32) {
	checkLength(v.Length, x.Length)
	aExp, xShr, cShr := vect.MulPrepare(x.Exp, cExp, x.Hr, cHr, postShiftS16, 16)
	if xShr != 0 {
		tmpX := make([]int16, len(x.Data))
		vect.ShlS16(tmpX, x.Data, -xShr)
		vect.ScaleS16(v.Data, tmpX, c, postShiftS16+cShr)
	} else {
		vect.ScaleS16(v.Data, x.Data, c, postShiftS16+cShr)
	}
	v.Exp = aExp
	v.Headroom()
}

// Macc computes v += x * y in place (v is the accumulator).
func (v *S16) Macc(x, y *S16) {
	checkLength(v.Length, x.Length, y.Length)
	newExp, accShr, bcSat := vect.MaccPrepare(v.Exp, x.Exp, y.Exp, v.Hr, x.Hr, y.Hr)
	vect.MaccS16(v.Data, x.Data, y.Data, accShr, bcSat)
	v.Exp = newExp
	v.Headroom()
}

// Nmacc computes v -= x * y in place.
func (v *S16) Nmacc(x, y *S16) {
	checkLength(v.Length, x.Length, y.Length)
	newExp, accShr, bcSat := vect.MaccPrepare(v.Exp, x.Exp, y.Exp, v.Hr, x.Hr, y.Hr)
	vect.NmaccS16(v.Data, x.Data, y.Data, accShr, bcSat)
	v.Exp = newExp
	v.Headroom()
}

// Abs computes v = |x|.
func (v *S16) Abs(x *S16) {
	checkLength(v.Length, x.Length)
	vect.AbsS16(v.Data, x.Data)
	v.Exp = x.Exp
	v.Headroom()
}

// Rect computes v = max(x, 0).
func (v *S16) Rect(x *S16) {
	checkLength(v.Length, x.Length)
	vect.RectS16(v.Data, x.Data)
	v.Exp = x.Exp
	v.Headroom()
}

// Sum returns the sum of all elements as a float_s32-style (mantissa,
// exponent) pair.
func (v *S16) Sum() (mant int32, exp int32) {
	return vect.SumS16(v.Data), v.Exp
}

// Dot returns the inner product of v and other as a (mantissa,
// exponent) pair.
func (v *S16) Dot(other *S16) (mant int32, exp int32) {
	checkLength(v.Length, other.Length)
	aExp, xShr, yShr := vect.DotPrepare(v.Exp, other.Exp, v.Hr, other.Hr, v.Length, postShiftS16, 16, 31)
	if xShr == 0 && yShr == 0 {
		return vect.DotS16(v.Data, other.Data, postShiftS16), aExp
	}
	tmpX := make([]int16, v.Length)
	tmpY := make([]int16, v.Length)
	vect.ShlS16(tmpX, v.Data, -xShr)
	vect.ShlS16(tmpY, other.Data, -yShr)
	return vect.DotS16(tmpX, tmpY, postShiftS16), aExp
}

// Energy returns sum(v[i]^2) as a (mantissa, exponent) pair.
func (v *S16) Energy() (mant int32, exp int32) {
	aExp, xShr, _ := vect.DotPrepare(v.Exp, v.Exp, v.Hr, v.Hr, v.Length, postShiftS16, 16, 31)
	if xShr == 0 {
		return vect.EnergyS16(v.Data, postShiftS16), aExp
	}
	tmp := make([]int16, v.Length)
	vect.ShlS16(tmp, v.Data, -xShr)
	return vect.EnergyS16(tmp, postShiftS16), aExp
}

// Clip clamps every element of x into [lo, hi] (given at exponent
// boundExp) and writes the result to v. The three degenerate cases from
// spec.md §4.3 (everything below lo, everything above hi, lo==hi after
// rescale) are handled without invoking the elementwise kernel.
func (v *S16) Clip(x *S16, lo, hi int64, boundExp int32) {
	checkLength(v.Length, x.Length)
	aExp, xShr, lo2, hi2, clipCase := vect.ClipPrepare(x.Exp, boundExp, x.Hr, lo, hi, 16)
	switch clipCase {
	case vect.ClipAllBelowLow:
		fillS16(v.Data, sat.Sat16(lo2))
	case vect.ClipAllAboveHigh:
		fillS16(v.Data, sat.Sat16(hi2))
	case vect.ClipCollapsed:
		fillS16(v.Data, sat.Sat16(lo2))
	default:
		vect.ClipS16(v.Data, x.Data, xShr, sat.Sat16(lo2), sat.Sat16(hi2))
	}
	v.Exp = aExp
	v.Headroom()
}

func fillS16(data []int16, value int16) {
	for i := range data {
		data[i] = value
	}
}

// Inverse computes v[i] = 1/x[i]. Returns ErrArithmeticDomain without
// writing to v if x contains a zero element.
func (v *S16) Inverse(x *S16) error {
	checkLength(v.Length, x.Length)
	hrMax, err := v.maxElementHeadroom(x)
	if err != nil {
		return err
	}
	aExp, scale := vect.InversePrepare(x.Exp, hrMax, 16)
	vect.InverseS16(v.Data, x.Data, scale)
	v.Exp = aExp
	v.Headroom()
	return nil
}

func (v *S16) maxElementHeadroom(x *S16) (int32, error) {
	hr := int32(0)
	for _, e := range x.Data {
		if e == 0 {
			return 0, errArithmeticDomainWrap()
		}
		if h := sat.HeadroomS16(e); h > hr {
			hr = h
		}
	}
	return hr, nil
}

// Sqrt computes v[i] = sqrt(x[i]) to DefaultSqrtDepthS16 bits of
// mantissa precision.
func (v *S16) Sqrt(x *S16) {
	checkLength(v.Length, x.Length)
	aExp, bShr := vect.SqrtPrepare(x.Exp, x.Hr, DefaultSqrtDepthS16, 16)
	if bShr != 0 {
		tmp := make([]int16, x.Length)
		vect.ShlS16(tmp, x.Data, -bShr)
		vect.SqrtS16(v.Data, tmp, DefaultSqrtDepthS16)
	} else {
		vect.SqrtS16(v.Data, x.Data, DefaultSqrtDepthS16)
	}
	v.Exp = aExp
	v.Headroom()
}

// ArgMax returns the index of the maximum element.
func (v *S16) ArgMax() int { return vect.MaxIndexS16(v.Data) }

// ArgMin returns the index of the minimum element.
func (v *S16) ArgMin() int { return vect.MinIndexS16(v.Data) }

// ToS32 widens v into an existing S32 descriptor at the same exponent.
func (v *S16) ToS32(dst *S32) {
	checkLength(v.Length, dst.Length)
	vect.ToS32(dst.Data, v.Data, 0)
	dst.Exp = v.Exp
	dst.Headroom()
}
