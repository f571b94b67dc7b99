package vect

import "testing"

func TestAddSubPrepareScenarioA(t *testing.T) {
	// spec.md Scenario A operand exponents/headrooms: B at eB=0,hrB=0;
	// C at eC=4,hrC=6. The bookkeeping invariant (spec.md §8 item 2)
	// must hold regardless of the exact guard-bit convention chosen
	// (see DESIGN.md for why this port doesn't reproduce the scenario's
	// illustrative mantissa verbatim).
	aExp, bShr, cShr := AddSubPrepare(0, 4, 0, 6)
	if aExp != 0+bShr {
		t.Errorf("aExp=%d != bExp+bShr=%d", aExp, 0+bShr)
	}
	if aExp != 4+cShr {
		t.Errorf("aExp=%d != cExp+cShr=%d", aExp, 4+cShr)
	}
	if aExp != 1 {
		t.Errorf("aExp=%d, want 1 (matches spec.md scenario A's stated exponent)", aExp)
	}
	if bShr != 1 || cShr != -3 {
		t.Errorf("bShr=%d cShr=%d, want 1,-3 (matches spec.md scenario A's stated shifts)", bShr, cShr)
	}
}

func TestAddSubPrepareSymmetric(t *testing.T) {
	for _, tc := range []struct{ bExp, cExp, bHr, cHr int32 }{
		{0, 0, 0, 0}, {5, -3, 2, 10}, {-8, -8, 15, 0}, {0, 0, 31, 31},
	} {
		aExp, bShr, cShr := AddSubPrepare(tc.bExp, tc.cExp, tc.bHr, tc.cHr)
		if aExp != tc.bExp+bShr || aExp != tc.cExp+cShr {
			t.Errorf("%+v: bookkeeping violated: aExp=%d bExp+bShr=%d cExp+cShr=%d",
				tc, aExp, tc.bExp+bShr, tc.cExp+cShr)
		}
	}
}

func TestMulPrepareScenarioB(t *testing.T) {
	// spec.md Scenario B: 32-bit multiply, eB=eC=0, hrB=0, hrC=1.
	aExp, bShr, cShr := MulPrepare(0, 0, 0, 1, 30, 32)
	if aExp != bShr+cShr {
		t.Errorf("aExp=%d != bShr+cShr=%d", aExp, bShr+cShr)
	}
	if aExp != 1 || bShr != 1 || cShr != 0 {
		t.Errorf("aExp=%d bShr=%d cShr=%d, want 1,1,0 (matches spec.md scenario B)", aExp, bShr, cShr)
	}
}

func TestMulPrepareNoOverflowAtZeroHeadroom(t *testing.T) {
	// Both operands fully packed (zero headroom): the chosen shifts
	// must leave both shifted operands within 32-bit range and the
	// worst-case product within the post-shift's safety margin.
	aExp, bShr, cShr := MulPrepare(0, 0, 0, 0, 30, 32)
	_ = aExp
	if bShr+cShr < 2 {
		t.Errorf("bShr+cShr=%d, want >=2 to avoid overflow at zero combined headroom", bShr+cShr)
	}
}

func TestClipPrepareDegenerateCases(t *testing.T) {
	// Both bounds lie below the most negative value a full-scale 32-bit
	// input can represent, so every input is above hi.
	_, _, _, _, c := ClipPrepare(0, 0, 0, -(1 << 40), -(1 << 36), 32)
	if c != ClipAllAboveHigh {
		t.Errorf("expected ClipAllAboveHigh for input exceeding both bounds, got %v", c)
	}
	// Both bounds lie above the largest input value, so every input is below lo.
	_, _, _, _, c2 := ClipPrepare(0, 0, 0, 1<<36, 1<<40, 32)
	if c2 != ClipAllBelowLow {
		t.Errorf("expected ClipAllBelowLow, got %v", c2)
	}
	_, _, _, _, c3 := ClipPrepare(0, 0, 0, 5, 5, 32)
	if c3 != ClipCollapsed {
		t.Errorf("expected ClipCollapsed for lo==hi, got %v", c3)
	}
}

func TestAdjustExponent(t *testing.T) {
	if got := AdjustExponent(0, 3, 10); got != 3 {
		t.Errorf("AdjustExponent(0,3,10) = %d, want 3", got)
	}
	// delta clamped so hr+shiftIn+delta never goes negative.
	if got := AdjustExponent(0, -5, 2); got != -2 {
		t.Errorf("AdjustExponent(0,-5,2) = %d, want -2 (clamped)", got)
	}
}

func TestMaccPrepareBookkeeping(t *testing.T) {
	for _, tc := range []struct{ accExp, bExp, cExp, accHr, bHr, cHr int32 }{
		{0, 0, 0, 10, 10, 10},
		{-5, 3, 2, 0, 5, 5},
		{10, -10, -10, 20, 0, 0},
	} {
		newAccExp, accShr, bcSat := MaccPrepare(tc.accExp, tc.bExp, tc.cExp, tc.accHr, tc.bHr, tc.cHr)
		if newAccExp != tc.accExp+accShr {
			t.Errorf("%+v: newAccExp=%d != accExp+accShr=%d", tc, newAccExp, tc.accExp+accShr)
		}
		if newAccExp != tc.bExp+tc.cExp+bcSat {
			t.Errorf("%+v: newAccExp=%d != bExp+cExp+bcSat=%d", tc, newAccExp, tc.bExp+tc.cExp+bcSat)
		}
	}
}

func TestSqrtPrepareEvenExponent(t *testing.T) {
	for bExp := int32(-4); bExp <= 4; bExp++ {
		_, bShr := SqrtPrepare(bExp, 0, 30, 32)
		if (bExp+bShr)%2 != 0 {
			t.Errorf("bExp=%d: bExp+bShr=%d is odd, sqrt requires an even exponent", bExp, bExp+bShr)
		}
	}
}
