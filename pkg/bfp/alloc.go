package bfp

import "github.com/kestrel-dsp/bfpmath/internal/vect"

// monoOverhead is the extra capacity (in elements) every dynamically
// allocated complex vector carries beyond its nominal length, so an
// in-place mono FFT pack/unpack always has the two extra int32 lanes
// spec.md §3.3/§4.5.3 requires without a reallocation.
const monoOverhead = 2

// AllocS16 allocates a dynamic real-16 vector of the given length at
// exponent 0. A negative length is the one allocation-failure condition
// this port models; per spec.md §7 it's surfaced via the zero-value
// descriptor (Data == nil, Length == 0) rather than an error return.
func AllocS16(length int) S16 {
	if length < 0 {
		return S16{}
	}
	return S16{
		Data:   make([]int16, length),
		Exp:    0,
		Hr:     15,
		Length: length,
		Flags:  DYNAMIC,
	}
}

// AllocS32 allocates a dynamic real-32 vector of the given length.
func AllocS32(length int) S32 {
	if length < 0 {
		return S32{}
	}
	return S32{
		Data:   make([]int32, length),
		Exp:    0,
		Hr:     31,
		Length: length,
		Flags:  DYNAMIC,
	}
}

// AllocComplexS16 allocates a dynamic complex-16 vector of the given
// length, with monoOverhead extra elements of capacity on each channel.
func AllocComplexS16(length int) ComplexS16 {
	if length < 0 {
		return ComplexS16{}
	}
	re := make([]int16, length, length+monoOverhead)
	im := make([]int16, length, length+monoOverhead)
	return ComplexS16{
		Re:     re[:length],
		Im:     im[:length],
		Exp:    0,
		Hr:     15,
		Length: length,
		Flags:  DYNAMIC,
	}
}

// AllocComplexS32 allocates a dynamic complex-32 vector of the given
// length, with monoOverhead extra elements of capacity.
func AllocComplexS32(length int) ComplexS32 {
	if length < 0 {
		return ComplexS32{}
	}
	data := make([]vect.Complex32, length, length+monoOverhead)
	return ComplexS32{
		Data:   data[:length],
		Exp:    0,
		Hr:     31,
		Length: length,
		Flags:  DYNAMIC,
	}
}

// Dealloc releases a dynamically allocated vector's association with
// its buffer. Go's garbage collector reclaims the memory itself; this
// exists so call sites written against the original's explicit
// alloc/dealloc pairing still have a symmetric release point, and so a
// CHAN_B-flagged alias is a visible no-op rather than a dangling free.
func (v *S16) Dealloc() {
	if v.Flags&DYNAMIC != 0 {
		v.Data = nil
		v.Length = 0
	}
}

// Dealloc releases a dynamically allocated S32 vector.
func (v *S32) Dealloc() {
	if v.Flags&DYNAMIC != 0 {
		v.Data = nil
		v.Length = 0
	}
}

// Dealloc releases a dynamically allocated ComplexS16 vector.
func (v *ComplexS16) Dealloc() {
	if v.Flags&DYNAMIC != 0 {
		v.Re = nil
		v.Im = nil
		v.Length = 0
	}
}

// Dealloc releases a dynamically allocated ComplexS32 vector. A
// CHAN_B-flagged vector (the second half of a stereo pair) never frees
// its aliased buffer.
func (v *ComplexS32) Dealloc() {
	if v.Flags&DYNAMIC != 0 && v.Flags&CHAN_B == 0 {
		v.Data = nil
		v.Length = 0
	}
}
