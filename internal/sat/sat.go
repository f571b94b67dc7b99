// Package sat implements the saturating scalar primitives every vector
// kernel and prepare routine in this module is built from: symmetric
// saturation at 16/32/40/64 bits, a rounding arithmetic shift that also
// handles negative (left) shift amounts, and the two multiply-round-shift
// helpers used by every elementwise multiply, macc, and inner-product
// kernel.
//
// Saturation here is symmetric: the representable range of an N-bit
// result is [-(2^(N-1)-1), 2^(N-1)-1]. The most negative two's-complement
// value is never produced; a result that would be exactly -2^(N-1) is
// collapsed to -(2^(N-1)-1), matching the underlying VPU this library
// targets. That's a documented 1-LSB asymmetry, not a bug.
package sat

import "math/bits"

const (
	maxS16 = int64(1<<15 - 1)
	minS16 = -maxS16
	maxS32 = int64(1<<31 - 1)
	minS32 = -maxS32
	maxS40 = int64(1<<39 - 1)
	minS40 = -maxS40
	maxS64 = int64(1<<63 - 1)
	minS64 = -maxS64
)

// Sat16 clamps x to the symmetric 16-bit range.
func Sat16(x int64) int16 {
	if x > maxS16 {
		return int16(maxS16)
	}
	if x < minS16 {
		return int16(minS16)
	}
	return int16(x)
}

// Sat32 clamps x to the symmetric 32-bit range.
func Sat32(x int64) int32 {
	if x > maxS32 {
		return int32(maxS32)
	}
	if x < minS32 {
		return int32(minS32)
	}
	return int32(x)
}

// Sat40 clamps x to the symmetric 40-bit accumulator range used by
// multi-lane 32-bit inner-product and energy accumulators.
func Sat40(x int64) int64 {
	if x > maxS40 {
		return maxS40
	}
	if x < minS40 {
		return minS40
	}
	return x
}

// Sat64 clamps x to the symmetric 64-bit range.
func Sat64(x int64) int64 {
	if x == minS64 {
		return maxS64
	}
	return x
}

// RoundShr performs a rounding arithmetic right shift of x by s bits. If
// s is zero or negative, it instead left-shifts by -s with no rounding
// (there's nothing to round when widening); callers are responsible for
// saturating the result to the destination width afterward. If s is
// positive, half the divisor is added before truncating, i.e.
// add-half-then-truncate rounding — the rounding mode used uniformly by
// every kernel family in this port (see DESIGN.md for why this was
// chosen over round-half-to-even).
func RoundShr(x int64, s int32) int64 {
	if s <= 0 {
		return x << uint(-s)
	}
	if s >= 63 {
		if x < 0 {
			return -1
		}
		return 0
	}
	return (x + int64(1)<<uint(s-1)) >> uint(s)
}

// MulRoundShr16 computes sat16(round(a*b * 2^-s)) where a and b are
// 16-bit mantissas. The product is formed in full 32-bit precision
// before the rounding shift is applied.
func MulRoundShr16(a, b int16, s int32) int16 {
	p := int64(a) * int64(b)
	return Sat16(RoundShr(p, s))
}

// MulRoundShr32 computes sat32(round(a*b * 2^-s)) where a and b are
// 32-bit mantissas. The product is formed in full 64-bit precision
// before the rounding shift is applied.
func MulRoundShr32(a, b int32, s int32) int32 {
	p := int64(a) * int64(b)
	return Sat32(RoundShr(p, s))
}

// HeadroomS16 returns the number of redundant sign bits in x at 16-bit
// width: the largest h such that x<<h still fits in a 16-bit two's
// complement value. Zero has the maximal headroom, 15.
func HeadroomS16(x int16) int32 {
	if x == 0 {
		return 15
	}
	u := x
	if u < 0 {
		u = ^u
	}
	return int32(bits.LeadingZeros16(uint16(u))) - 1
}

// HeadroomS32 returns the number of redundant sign bits in x at 32-bit
// width. Zero has the maximal headroom, 31.
func HeadroomS32(x int32) int32 {
	if x == 0 {
		return 31
	}
	u := x
	if u < 0 {
		u = ^u
	}
	return int32(bits.LeadingZeros32(uint32(u))) - 1
}

// Min returns the smaller of two int32 values.
func Min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two int32 values.
func Max(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
