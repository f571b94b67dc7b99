// Package bfp implements the block floating-point façade (C4): one
// vector type per data width/domain, each carrying a shared exponent,
// a headroom count, and a bit of ownership metadata, with one method
// per arithmetic operation following the same five-step pattern:
//
//  1. validate lengths (debug-only, see DebugChecks)
//  2. call the paired prepare routine in internal/vect to choose the
//     output exponent and per-operand shifts
//  3. invoke the internal/vect kernel with those shifts
//  4. recompute headroom from the kernel's actual output
//  5. write Exp/Hr/Length back onto the receiver (or a result the
//     caller supplied, for out-of-place operations)
package bfp

import "github.com/kestrel-dsp/bfpmath/internal/vect"

// Flags records ownership/aliasing bits for a vector's underlying
// buffer. Bit positions are named constants in the teacher's flags.go
// style rather than a derived ownership type hierarchy (see DESIGN.md).
type Flags uint8

const (
	// DYNAMIC marks a vector whose Data was allocated by this package
	// (via Alloc) and must be released by Dealloc. A vector built over
	// a caller-supplied slice never carries this bit.
	DYNAMIC Flags = 0x01
	// CHAN_B marks the second half of a stereo channel pair: its Data
	// aliases the tail of another vector's buffer and must never be
	// independently freed. No function in this module sets it.
	CHAN_B Flags = 0x02
)

// DefaultSqrtDepthS16 is the default mantissa precision (in bits) for
// S16.Sqrt when the caller doesn't request a specific depth.
const DefaultSqrtDepthS16 = 15

// DefaultSqrtDepthS32 is the default mantissa precision (in bits) for
// S32.Sqrt when the caller doesn't request a specific depth.
const DefaultSqrtDepthS32 = 30

// S16 is a real 16-bit mantissa block: Data[i]*2^Exp is the value of
// element i.
type S16 struct {
	Data   []int16
	Exp    int32
	Hr     int32
	Length int
	Flags  Flags
}

// S32 is a real 32-bit mantissa block.
type S32 struct {
	Data   []int32
	Exp    int32
	Hr     int32
	Length int
	Flags  Flags
}

// ComplexS16 is a complex 16-bit mantissa block stored as two separate
// aligned buffers, matching the independent-channel layout spec.md §3.2
// requires even without a SIMD backend to exploit it.
type ComplexS16 struct {
	Re, Im []int16
	Exp    int32
	Hr     int32
	Length int
	Flags  Flags
}

// ComplexS32 is a complex 32-bit mantissa block stored as an
// interleaved buffer, the FFT engine's native working format.
type ComplexS32 struct {
	Data   []vect.Complex32
	Exp    int32
	Hr     int32
	Length int
	Flags  Flags
}
