// Package vect implements the mantissa-vector kernels (C2) and their
// paired prepare routines (C3): the per-family functions that choose an
// output exponent and per-operand right-shifts from operand exponents
// and headrooms, and the kernels that then do the actual saturating
// arithmetic over raw mantissa slices using internal/sat.
//
// Every kernel here operates on raw slices, not on a bfp.* descriptor —
// length/alignment checking is the façade's job (pkg/bfp), not this
// package's. Kernels trust their caller.
package vect

// ceilLog2 returns the smallest n such that 2^n >= x, for x >= 1.
func ceilLog2(x int) int32 {
	n := int32(0)
	v := 1
	for v < x {
		v <<= 1
		n++
	}
	return n
}

// AddSubPrepare computes the output exponent and input shifts shared by
// every additive kernel family (real/complex, 16/32-bit): add, sub, and
// the additive half of macc/nmacc once the product term is folded to a
// virtual "operand" at its own exponent.
//
// The chosen output exponent is the smallest exponent that cannot
// overflow: the exponent at which each operand's *worst-case* magnitude
// (exponent minus headroom) would just fill the mantissa, maximized
// across both operands, plus one guard bit for the carry a sum can
// produce. This always reserves the guard bit (see DESIGN.md for why
// this port doesn't attempt the conditional delta-in-{0,1} form spec.md
// §4.3 describes in prose: the unconditional form is the one that keeps
// invariant §8.2 exact by construction for every input, including the
// case where both operands are already at full headroom).
func AddSubPrepare(bExp, cExp, bHr, cHr int32) (aExp, bShr, cShr int32) {
	bMin := bExp - bHr
	cMin := cExp - cHr
	aExp = max32(bMin, cMin) + 1
	bShr = aExp - bExp
	cShr = aExp - cExp
	return
}

// MulPrepare computes the output exponent and input shifts for an
// elementwise multiply or scale kernel. postShift is the kernel's fixed
// post-multiply rounding shift (30 for the 32-bit path, 14 for the
// 16-bit path — both equal to width-2). width is the mantissa bit width
// of the two operands (they must share a width for elementwise multiply;
// scale-by-scalar callers pass the scalar's own width as needed).
//
// totalShr is derived from how many magnitude bits the two operands'
// current (unshifted) worst case occupies versus how many the kernel's
// product-then-post-shift arithmetic can safely absorb; a negative
// totalShr means there's enough combined headroom to left-shift both
// operands first and tighten the output exponent instead.
func MulPrepare(bExp, cExp, bHr, cHr, postShift, width int32) (aExp, bShr, cShr int32) {
	totalShr := (width - postShift) - bHr - cHr
	bShr, cShr = splitShift(totalShr, bHr, cHr)
	aExp = bExp + cExp + bShr + cShr
	return
}

// splitShift divides a combined shift budget between two operands,
// favoring the operand with less headroom for the larger share (it has
// less room to lose precision either way), and never assigns either
// operand a shift more negative than its own headroom allows (which
// would overflow that operand on its own before the multiply even
// happens).
func splitShift(total, bHr, cHr int32) (bShr, cShr int32) {
	bShr = floorDiv2(total + 1)
	cShr = total - bShr
	if cHr < bHr {
		bShr, cShr = cShr, bShr
	}
	if bShr < -bHr {
		diff := -bHr - bShr
		bShr = -bHr
		cShr += diff
	}
	if cShr < -cHr {
		diff := -cHr - cShr
		cShr = -cHr
		bShr += diff
	}
	return
}

func floorDiv2(x int32) int32 {
	if x >= 0 {
		return x / 2
	}
	return -((-x + 1) / 2)
}

// MaccPrepare reconciles the accumulator's exponent with the two
// multiplicand exponents for macc/nmacc/conj_macc/conj_nmacc. It returns
// the new accumulator exponent, the shift applied to the old
// accumulator value to align it there, and the post-multiply shift
// applied to the bk*ck product so it lands at the same exponent. By
// construction, newAccExp == accExp+accShr == bExp+cExp+bcSat, which is
// the adjustability property every prepare routine in this package
// provides (spec.md §4.3).
//
// This port always uses a zero pre-shift on b and c themselves (bShr,
// cShr in spec.md's three-exponent reconciliation): the product of two
// operands up to 32 bits wide always fits exactly in the 64-bit Go
// accumulator used internally, so there's no overflow risk to guard
// against by pre-shifting, and any pre-shift would only discard
// precision the post-shift (bcSat) can absorb instead. See DESIGN.md.
func MaccPrepare(accExp, bExp, cExp, accHr, bHr, cHr int32) (newAccExp, accShr, bcSat int32) {
	_ = bHr
	_ = cHr
	mulExp := bExp + cExp
	newAccExp = max32(accExp-accHr, mulExp) + 1
	accShr = newAccExp - accExp
	bcSat = newAccExp - mulExp
	return
}

// DotPrepare is MulPrepare generalized with an extra shift that keeps
// `length` accumulated products inside the accumulator's saturation
// bound (spec.md §4.3's inner-product prepare). accBits is the usable
// magnitude width of the accumulator (39 for the 32-bit path's 40-bit
// saturating accumulator, 31 for the 16-bit path's 32-bit accumulator).
func DotPrepare(bExp, cExp, bHr, cHr int32, length int, postShift, width, accBits int32) (aExp, bShr, cShr int32) {
	elemShr := (width - postShift) - bHr - cHr
	headroomForLength := accBits - (width - 1)
	lengthExtra := ceilLog2(length) - headroomForLength
	if lengthExtra < 0 {
		lengthExtra = 0
	}
	total := elemShr + lengthExtra
	bShr, cShr = splitShift(total, bHr, cHr)
	aExp = bExp + cExp + bShr + cShr
	return
}

// ClipPrepare rescales the bound pair to the output exponent and
// reports whether the whole input range falls below lo, above hi, or
// the bounds have collapsed onto each other — the three degenerate
// cases spec.md §4.3 calls out, which the façade handles by filling the
// output with a single saturated value instead of invoking the clip
// kernel.
type ClipCase int

const (
	ClipNormal ClipCase = iota
	ClipAllBelowLow
	ClipAllAboveHigh
	ClipCollapsed
)

func ClipPrepare(bExp, boundExp, bHr int32, lo, hi int64, width int32) (aExp, bShr int32, lo2, hi2 int64, clipCase ClipCase) {
	aExp = bExp - bHr + 1
	bShr = aExp - bExp
	shiftBounds := aExp - boundExp
	lo2 = shiftRound(lo, shiftBounds)
	hi2 = shiftRound(hi, shiftBounds)
	maxVal := int64(1)<<uint(width-1) - 1
	minVal := -maxVal
	if lo2 > maxVal {
		clipCase = ClipAllBelowLow
		return
	}
	if hi2 < minVal {
		clipCase = ClipAllAboveHigh
		return
	}
	if hi2 == lo2 {
		clipCase = ClipCollapsed
		return
	}
	clipCase = ClipNormal
	return
}

func shiftRound(x int64, s int32) int64 {
	if s <= 0 {
		return x << uint(-s)
	}
	return (x + int64(1)<<uint(s-1)) >> uint(s)
}

// InversePrepare chooses the scale used by an elementwise (or scalar)
// inverse so the tightest output exponent is obtained from the
// smallest-magnitude (greatest-headroom) element of the input, per
// spec.md §4.3.
func InversePrepare(bExp, bHrMax int32, width int32) (aExp, scale int32) {
	// The largest 1/x occurs for the smallest |x|, i.e. the element
	// with the most headroom. scale is chosen so 2^scale / x_min just
	// fits in width bits.
	scale = 2*(width-2) - bHrMax
	aExp = -bExp - scale
	return
}

// SqrtPrepare chooses the output exponent for an elementwise sqrt. The
// input's (exponent + shift) must be even for the square root to be
// taken in the integer domain; this adjusts b_shr by one bit when
// needed to guarantee that, per spec.md §4.3.
func SqrtPrepare(bExp, bHr, depth, width int32) (aExp, bShr int32) {
	bShr = -bHr
	if (bExp+bShr)%2 != 0 {
		bShr++
	}
	k := width - 2
	aExp = (bExp + bShr - k) / 2
	return
}

// AdjustExponent implements the adjustability property every prepare
// routine in this package provides (spec.md §4.3, last paragraph): a
// caller who wants a specific output exponent rather than the tightest
// one prepare chose can shift the chosen shift by the same delta,
// provided the operand still has enough headroom to absorb it
// (hr+shiftIn+desiredDelta >= 0). It returns the adjusted shift; a
// desiredDelta that would violate the headroom bound is clamped to the
// largest delta that doesn't.
func AdjustExponent(shiftIn, desiredDelta, hr int32) int32 {
	if hr+shiftIn+desiredDelta < 0 {
		desiredDelta = -(hr + shiftIn)
	}
	return shiftIn + desiredDelta
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
