package propcheck

import (
	"fmt"

	"github.com/kestrel-dsp/bfpmath/internal/sat"
	"github.com/kestrel-dsp/bfpmath/internal/vect"
	"github.com/kestrel-dsp/bfpmath/pkg/bfp"
)

// HeadroomS16 checks spec.md §8 invariant 1 for the real-16 path: the
// façade's recomputed Hr equals the true minimum per-element headroom.
func HeadroomS16(r *Rand, results *Table) {
	n := r.Length(64)
	v := bfp.S16{Data: r.Int16Vector(n), Length: n}
	got := v.Headroom()
	want := vect.HeadroomVectorS16(v.Data)
	if got != want {
		results.Add(Violation{"headroom-s16", fmt.Sprintf("Headroom()=%d want %d for %v", got, want, v.Data)})
	}
}

// HeadroomS32 is HeadroomS16 for the real-32 path.
func HeadroomS32(r *Rand, results *Table) {
	n := r.Length(64)
	v := bfp.S32{Data: r.Int32Vector(n), Length: n}
	got := v.Headroom()
	want := vect.HeadroomVectorS32(v.Data)
	if got != want {
		results.Add(Violation{"headroom-s32", fmt.Sprintf("Headroom()=%d want %d for %v", got, want, v.Data)})
	}
}

// UseExponentNoOp checks spec.md §8 invariant 7: re-expressing a vector
// at its own current exponent must not change its mantissas.
func UseExponentNoOp(r *Rand, results *Table) {
	n := r.Length(32)
	data := r.Int16Vector(n)
	orig := append([]int16(nil), data...)
	v := bfp.S16{Data: data, Length: n, Exp: r.Exp()}
	v.Headroom()
	v.UseExponent(v.Exp)
	for i := range data {
		if data[i] != orig[i] {
			results.Add(Violation{"use-exponent-noop", fmt.Sprintf("element %d changed %d -> %d", i, orig[i], data[i])})
			return
		}
	}
}

// AbsIdempotent checks spec.md §8 invariant 8: abs(abs(v)) == abs(v).
func AbsIdempotent(r *Rand, results *Table) {
	n := r.Length(32)
	x := bfp.S16{Data: r.Int16Vector(n), Length: n, Exp: r.Exp()}
	x.Headroom()
	once := bfp.S16{Data: make([]int16, n), Length: n}
	once.Abs(&x)
	twice := bfp.S16{Data: make([]int16, n), Length: n}
	twice.Abs(&once)
	for i := range once.Data {
		if once.Data[i] != twice.Data[i] {
			results.Add(Violation{"abs-idempotent", fmt.Sprintf("element %d: abs=%d abs(abs)=%d", i, once.Data[i], twice.Data[i])})
			return
		}
	}
}

// AddExponentBookkeeping checks spec.md §8 invariant 2 for the additive
// family: A.exp == eB+sB == eC+sC, by construction of AddSubPrepare,
// against randomized operand exponents and headrooms.
func AddExponentBookkeeping(r *Rand, results *Table) {
	bExp, cExp := r.Exp(), r.Exp()
	bHr := int32(r.r.Intn(16))
	cHr := int32(r.r.Intn(16))
	aExp, bShr, cShr := vect.AddSubPrepare(bExp, cExp, bHr, cHr)
	if aExp != bExp+bShr {
		results.Add(Violation{"add-exponent-bookkeeping", fmt.Sprintf("aExp=%d != bExp+bShr=%d", aExp, bExp+bShr)})
		return
	}
	if aExp != cExp+cShr {
		results.Add(Violation{"add-exponent-bookkeeping", fmt.Sprintf("aExp=%d != cExp+cShr=%d", aExp, cExp+cShr)})
	}
}

// SaturationNeverWraps checks spec.md §8 invariant 9: a 32-bit multiply
// that overflows saturates to the symmetric maximum instead of
// wrapping, for every randomized pair of extreme-magnitude operands.
func SaturationNeverWraps(r *Rand, results *Table) {
	a := r.Int32()
	b := r.Int32()
	got := sat.MulRoundShr32(a, b, 0)
	trueProduct := int64(a) * int64(b)
	if trueProduct > int64(1<<31-1) && got != int32(1<<31-1) {
		results.Add(Violation{"saturation-never-wraps", fmt.Sprintf("a=%d b=%d got=%d want max", a, b, got)})
	}
	if trueProduct < -int64(1<<31-1) && got != -int32(1<<31-1) {
		results.Add(Violation{"saturation-never-wraps", fmt.Sprintf("a=%d b=%d got=%d want min", a, b, got)})
	}
}

// AllChecks is the full battery this package runs, named for the
// spec.md §8 invariant each one covers.
var AllChecks = []Check{
	HeadroomS16,
	HeadroomS32,
	UseExponentNoOp,
	AbsIdempotent,
	AddExponentBookkeeping,
	SaturationNeverWraps,
}
