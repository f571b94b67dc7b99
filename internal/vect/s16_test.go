package vect

import "testing"

func TestAddS16Basic(t *testing.T) {
	a := make([]int16, 2)
	AddS16(a, []int16{100, -100}, []int16{50, 50}, 0, 0)
	if a[0] != 150 || a[1] != -50 {
		t.Errorf("AddS16 = %v, want [150 -50]", a)
	}
}

func TestMulS16RoundTrip(t *testing.T) {
	a := make([]int16, 1)
	MulS16(a, []int16{0x4000}, []int16{0x4000}, 14)
	// (0x4000*0x4000) >> 14 rounded = 0x4000
	if a[0] != 0x4000 {
		t.Errorf("MulS16 = 0x%x, want 0x4000", a[0])
	}
}

func TestClipS16(t *testing.T) {
	a := make([]int16, 3)
	ClipS16(a, []int16{-100, 0, 100}, 0, -10, 10)
	if a[0] != -10 || a[1] != 0 || a[2] != 10 {
		t.Errorf("ClipS16 = %v, want [-10 0 10]", a)
	}
}

func TestAbsS16SaturatesIntMin(t *testing.T) {
	a := make([]int16, 1)
	AbsS16(a, []int16{-32768})
	if a[0] != 32767 {
		t.Errorf("AbsS16(INT16_MIN) = %d, want 32767", a[0])
	}
}

func TestHeadroomVectorS16(t *testing.T) {
	if got := HeadroomVectorS16([]int16{0x4000, 0x0100}); got != 0 {
		t.Errorf("HeadroomVectorS16 = %d, want 0 (min across elements)", got)
	}
	if got := HeadroomVectorS16(nil); got != 15 {
		t.Errorf("HeadroomVectorS16(nil) = %d, want 15", got)
	}
}

func TestMaxMinIndexS16(t *testing.T) {
	x := []int16{3, 9, -5, 9, 1}
	if got := MaxIndexS16(x); got != 1 {
		t.Errorf("MaxIndexS16 = %d, want 1 (first max on tie)", got)
	}
	if got := MinIndexS16(x); got != 2 {
		t.Errorf("MinIndexS16 = %d, want 2", got)
	}
}

func TestSqrtS16(t *testing.T) {
	a := make([]int16, 1)
	SqrtS16(a, []int16{0x4000}, 15)
	// isqrtBits scales by 2^14 before the root, so 0x4000 maps to
	// sqrt(2^14 * 2^14) = 0x4000; this only checks the result is positive.
	if a[0] <= 0 {
		t.Errorf("SqrtS16(0x4000) = %d, want positive", a[0])
	}
}

func TestDotAndEnergyS16(t *testing.T) {
	x := []int16{1, 2, 3}
	y := []int16{4, 5, 6}
	got := DotS16(x, y, 0)
	if got != 32 {
		t.Errorf("DotS16 = %d, want 32", got)
	}
	e := EnergyS16(x, 0)
	if e != 14 {
		t.Errorf("EnergyS16 = %d, want 14", e)
	}
}
