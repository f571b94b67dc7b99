package bfp

import "github.com/pkg/errors"

// DebugChecks gates the length-mismatch assertion every façade method's
// step 1 performs. Default true, matching the teacher's own
// debug/verbose toggle pattern; a release build that wants to skip the
// bounds-check cost sets this false once at startup.
var DebugChecks = true

// ErrAlignment is returned when a caller-supplied buffer's capacity
// can't satisfy an operation's overallocation contract (e.g. unpacking
// a mono FFT result into a vector that wasn't allocated with the extra
// two elements spec.md §3.3 requires).
var ErrAlignment = errors.New("bfp: buffer capacity does not satisfy operation's alignment contract")

// ErrArithmeticDomain is returned by Inverse when an input element is
// zero and therefore has no fixed-point reciprocal.
var ErrArithmeticDomain = errors.New("bfp: arithmetic domain error")

func errArithmeticDomainWrap() error {
	return errors.Wrap(ErrArithmeticDomain, "inverse of a zero-valued element")
}

func checkLength(lengths ...int) {
	if !DebugChecks || len(lengths) == 0 {
		return
	}
	want := lengths[0]
	for _, l := range lengths[1:] {
		if l != want {
			panic(errors.Errorf("bfp: length mismatch: %d != %d", l, want))
		}
	}
}
