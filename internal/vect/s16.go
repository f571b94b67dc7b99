package vect

import "github.com/kestrel-dsp/bfpmath/internal/sat"

// S16 mantissa vectors are plain []int16. Every kernel below takes
// pre-shifted operands and a chosen output exponent's worth of per-
// operand shift counts; callers get those from the prepare routines in
// prepare.go, which serve every width.

// HeadroomVectorS16 returns the minimum headroom across a vector, 15 for an
// empty or all-zero vector.
func HeadroomVectorS16(x []int16) int32 {
	if len(x) == 0 {
		return 15
	}
	hr := int32(15)
	for _, v := range x {
		if h := sat.HeadroomS16(v); h < hr {
			hr = h
		}
	}
	return hr
}

// ShlS16 computes a[i] = sat16(x[i] << shl) (shl may be negative, an
// arithmetic right shift with rounding).
func ShlS16(a, x []int16, shl int32) {
	for i, v := range x {
		a[i] = sat.Sat16(sat.RoundShr(int64(v), -shl))
	}
}

// AddS16 computes a[i] = sat16(round(x[i]*2^-xShr) + round(y[i]*2^-yShr)).
func AddS16(a, x, y []int16, xShr, yShr int32) {
	for i := range x {
		xs := sat.RoundShr(int64(x[i]), xShr)
		ys := sat.RoundShr(int64(y[i]), yShr)
		a[i] = sat.Sat16(xs + ys)
	}
}

// SubS16 computes a[i] = sat16(round(x[i]*2^-xShr) - round(y[i]*2^-yShr)).
func SubS16(a, x, y []int16, xShr, yShr int32) {
	for i := range x {
		xs := sat.RoundShr(int64(x[i]), xShr)
		ys := sat.RoundShr(int64(y[i]), yShr)
		a[i] = sat.Sat16(xs - ys)
	}
}

// MulS16 computes the elementwise product a[i] = sat16(round(x[i]*y[i]*2^-postShift)).
func MulS16(a, x, y []int16, postShift int32) {
	for i := range x {
		a[i] = sat.MulRoundShr16(x[i], y[i], postShift)
	}
}

// ScaleS16 multiplies every element by the same scalar mantissa c.
func ScaleS16(a, x []int16, c int16, postShift int32) {
	for i := range x {
		a[i] = sat.MulRoundShr16(x[i], c, postShift)
	}
}

// MaccS16 computes acc[i] = sat16(round(acc[i]*2^-accShr) + round(x[i]*y[i]*2^-bcSat)).
func MaccS16(acc, x, y []int16, accShr, bcSat int32) {
	for i := range acc {
		old := sat.RoundShr(int64(acc[i]), accShr)
		prod := sat.RoundShr(int64(x[i])*int64(y[i]), bcSat)
		acc[i] = sat.Sat16(old + prod)
	}
}

// NmaccS16 subtracts the product term instead of adding it.
func NmaccS16(acc, x, y []int16, accShr, bcSat int32) {
	for i := range acc {
		old := sat.RoundShr(int64(acc[i]), accShr)
		prod := sat.RoundShr(int64(x[i])*int64(y[i]), bcSat)
		acc[i] = sat.Sat16(old - prod)
	}
}

// AbsS16 computes a[i] = |x[i]|, saturating the one value (INT16_MIN)
// that has no positive representation.
func AbsS16(a, x []int16) {
	for i, v := range x {
		if v < 0 {
			a[i] = sat.Sat16(-int64(v))
		} else {
			a[i] = v
		}
	}
}

// SumS16 returns the sum of all elements as an int32 accumulator.
func SumS16(x []int16) int32 {
	acc := int64(0)
	for _, v := range x {
		acc += int64(v)
	}
	return sat.Sat32(acc)
}

// DotS16 returns the inner product of x and y as a 32-bit accumulator,
// post-shifted by bcSat.
func DotS16(x, y []int16, bcSat int32) int32 {
	acc := int64(0)
	for i := range x {
		acc += int64(x[i]) * int64(y[i])
	}
	return sat.Sat32(sat.RoundShr(acc, bcSat))
}

// EnergyS16 returns sum(x[i]^2) as a 32-bit accumulator, post-shifted by bcSat.
func EnergyS16(x []int16, bcSat int32) int32 {
	acc := int64(0)
	for _, v := range x {
		acc += int64(v) * int64(v)
	}
	return sat.Sat32(sat.RoundShr(acc, bcSat))
}

// ClipS16 clamps each (pre-shifted) element into [lo, hi].
func ClipS16(a, x []int16, xShr int32, lo, hi int16) {
	for i, v := range x {
		s := sat.Sat16(sat.RoundShr(int64(v), xShr))
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

// RectS16 clamps every element at zero from below (rectification).
func RectS16(a, x []int16) {
	for i, v := range x {
		if v < 0 {
			a[i] = 0
		} else {
			a[i] = v
		}
	}
}

// InverseS16 computes a[i] = sat16(2^scale / x[i]), the quotient
// truncated toward zero; a zero element yields the positive maximum.
func InverseS16(a, x []int16, scale int32) {
	num := int64(1) << uint(scale)
	for i, v := range x {
		if v == 0 {
			a[i] = sat.Sat16(1<<15 - 1)
			continue
		}
		a[i] = sat.Sat16(num / int64(v))
	}
}

// SqrtS16 computes an elementwise integer square root to `depth` bits of
// mantissa precision using a binary-search (digit-by-digit) reduction,
// matching the bit-recurrence the underlying hardware uses instead of a
// floating-point sqrt.
func SqrtS16(a, x []int16, depth int32) {
	for i, v := range x {
		if v <= 0 {
			a[i] = 0
			continue
		}
		a[i] = int16(isqrtBits(int64(v), 15, depth))
	}
}

// isqrtBits computes floor(sqrt(v * 2^(width-1))) to `depth` significant
// bits via binary search; v is treated as a non-negative mantissa at its
// natural width. The search runs only enough iterations to resolve
// `depth` bits, not the full `width`, since cost is meant to scale with
// the requested precision; bits below the resolved depth are masked to
// zero rather than left to the search's last guess.
func isqrtBits(v int64, width, depth int32) int64 {
	if depth > width {
		depth = width
	}
	if depth < 1 {
		depth = 1
	}
	step := int64(1) << uint(width-depth)
	lo, hi := int64(0), int64(1)<<uint(width)
	for hi-lo > step {
		mid := (lo + hi) / 2
		if mid*mid <= v<<uint(width-1) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo &^ (step - 1)
}

// MaxIndexS16 returns the index of the maximum element (first on ties).
func MaxIndexS16(x []int16) int {
	idx := 0
	for i, v := range x {
		if v > x[idx] {
			idx = i
		}
	}
	return idx
}

// MinIndexS16 returns the index of the minimum element (first on ties).
func MinIndexS16(x []int16) int {
	idx := 0
	for i, v := range x {
		if v < x[idx] {
			idx = i
		}
	}
	return idx
}

// ToS32 widens an s16 mantissa vector into s32 with a left shift (the
// depth-conversion operation, spec.md §4.2).
func ToS32(a []int32, x []int16, shl int32) {
	for i, v := range x {
		a[i] = sat.Sat32(sat.RoundShr(int64(v), -shl))
	}
}

// FromS32 narrows an s32 mantissa vector into s16 with a right shift.
func FromS32(a []int16, x []int32, shr int32) {
	for i, v := range x {
		a[i] = sat.Sat16(sat.RoundShr(int64(v), shr))
	}
}
