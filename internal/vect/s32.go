package vect

import "github.com/kestrel-dsp/bfpmath/internal/sat"

// HeadroomVectorS32 returns the minimum headroom across a vector, 31
// for an empty or all-zero vector.
func HeadroomVectorS32(x []int32) int32 {
	if len(x) == 0 {
		return 31
	}
	hr := int32(31)
	for _, v := range x {
		if h := sat.HeadroomS32(v); h < hr {
			hr = h
		}
	}
	return hr
}

// ShlS32 computes a[i] = sat32(x[i] << shl).
func ShlS32(a, x []int32, shl int32) {
	for i, v := range x {
		a[i] = sat.Sat32(sat.RoundShr(int64(v), -shl))
	}
}

// AddS32 computes a[i] = sat32(round(x[i]*2^-xShr) + round(y[i]*2^-yShr)).
func AddS32(a, x, y []int32, xShr, yShr int32) {
	for i := range x {
		xs := sat.RoundShr(int64(x[i]), xShr)
		ys := sat.RoundShr(int64(y[i]), yShr)
		a[i] = sat.Sat32(xs + ys)
	}
}

// SubS32 computes a[i] = sat32(round(x[i]*2^-xShr) - round(y[i]*2^-yShr)).
func SubS32(a, x, y []int32, xShr, yShr int32) {
	for i := range x {
		xs := sat.RoundShr(int64(x[i]), xShr)
		ys := sat.RoundShr(int64(y[i]), yShr)
		a[i] = sat.Sat32(xs - ys)
	}
}

// MulS32 computes a[i] = sat32(round(x[i]*y[i]*2^-postShift)).
func MulS32(a, x, y []int32, postShift int32) {
	for i := range x {
		a[i] = sat.MulRoundShr32(x[i], y[i], postShift)
	}
}

// ScaleS32 multiplies every element by the scalar mantissa c.
func ScaleS32(a, x []int32, c int32, postShift int32) {
	for i := range x {
		a[i] = sat.MulRoundShr32(x[i], c, postShift)
	}
}

// MaccS32 computes acc[i] = sat32(round(acc[i]*2^-accShr) + round(x[i]*y[i]*2^-bcSat)).
func MaccS32(acc, x, y []int32, accShr, bcSat int32) {
	for i := range acc {
		old := sat.RoundShr(int64(acc[i]), accShr)
		prod := sat.RoundShr(int64(x[i])*int64(y[i]), bcSat)
		acc[i] = sat.Sat32(old + prod)
	}
}

// NmaccS32 subtracts the product term instead of adding it.
func NmaccS32(acc, x, y []int32, accShr, bcSat int32) {
	for i := range acc {
		old := sat.RoundShr(int64(acc[i]), accShr)
		prod := sat.RoundShr(int64(x[i])*int64(y[i]), bcSat)
		acc[i] = sat.Sat32(old - prod)
	}
}

// AbsS32 computes a[i] = |x[i]|.
func AbsS32(a, x []int32) {
	for i, v := range x {
		if v < 0 {
			a[i] = sat.Sat32(-int64(v))
		} else {
			a[i] = v
		}
	}
}

// SumS32 returns the sum of all elements as a 40-bit saturating accumulator.
func SumS32(x []int32) int64 {
	acc := int64(0)
	for _, v := range x {
		acc += int64(v)
	}
	return sat.Sat40(acc)
}

// DotS32 returns the inner product of x and y as a 64-bit accumulator,
// post-shifted by bcSat. The accumulator saturates at 40 bits, matching
// the underlying hardware's wide-accumulate lanes, before the final
// down-shift to the chosen output exponent.
func DotS32(x, y []int32, bcSat int32) int64 {
	acc := int64(0)
	for i := range x {
		acc = sat.Sat40(acc + int64(x[i])*int64(y[i]))
	}
	return sat.RoundShr(acc, bcSat)
}

// EnergyS32 returns sum(x[i]^2) as a 64-bit accumulator, post-shifted by bcSat.
func EnergyS32(x []int32, bcSat int32) int64 {
	acc := int64(0)
	for _, v := range x {
		acc = sat.Sat40(acc + int64(v)*int64(v))
	}
	return sat.RoundShr(acc, bcSat)
}

// ClipS32 clamps each (pre-shifted) element into [lo, hi].
func ClipS32(a, x []int32, xShr int32, lo, hi int32) {
	for i, v := range x {
		s := sat.Sat32(sat.RoundShr(int64(v), xShr))
		switch {
		case s < lo:
			a[i] = lo
		case s > hi:
			a[i] = hi
		default:
			a[i] = s
		}
	}
}

// RectS32 clamps every element at zero from below.
func RectS32(a, x []int32) {
	for i, v := range x {
		if v < 0 {
			a[i] = 0
		} else {
			a[i] = v
		}
	}
}

// InverseS32 computes a[i] = sat32(2^scale / x[i]), the quotient
// truncated toward zero; a zero element yields the positive maximum.
func InverseS32(a, x []int32, scale int32) {
	num := int64(1) << uint(scale)
	for i, v := range x {
		if v == 0 {
			a[i] = sat.Sat32(1<<31 - 1)
			continue
		}
		a[i] = sat.Sat32(num / int64(v))
	}
}

// SqrtS32 computes an elementwise integer square root to `depth` bits of
// mantissa precision.
func SqrtS32(a, x []int32, depth int32) {
	for i, v := range x {
		if v <= 0 {
			a[i] = 0
			continue
		}
		a[i] = int32(isqrtBits(int64(v), 31, depth))
	}
}

// MaxIndexS32 returns the index of the maximum element (first on ties).
func MaxIndexS32(x []int32) int {
	idx := 0
	for i, v := range x {
		if v > x[idx] {
			idx = i
		}
	}
	return idx
}

// MinIndexS32 returns the index of the minimum element (first on ties).
func MinIndexS32(x []int32) int {
	idx := 0
	for i, v := range x {
		if v < x[idx] {
			idx = i
		}
	}
	return idx
}
