package element

import "testing"

func TestSelectSimpleBreakAtomicFits(t *testing.T) {
	bt := Atomic(3)
	got := SelectSimpleBreak(bt, 5)
	if got.Kind != BreakNone {
		t.Fatalf("expected None when atomic height fits, got %+v", got)
	}
}

func TestSelectSimpleBreakAtomicOverflows(t *testing.T) {
	bt := Atomic(6)
	got := SelectSimpleBreak(bt, 5)
	if got.Kind != BreakMandatory {
		t.Fatalf("expected Mandatory when atomic height overflows, got %+v", got)
	}
}

func TestSelectSimpleBreakListPicksLastFittingPoint(t *testing.T) {
	bt := List([]BreakPoint{
		{TokenIndex: 3, LineNo: 2},
		{TokenIndex: 7, LineNo: 4},
		{TokenIndex: 11, LineNo: 6},
	})
	got := SelectSimpleBreak(bt, 5)
	if got.Kind != BreakPointKind || got.Point.TokenIndex != 7 {
		t.Fatalf("expected break at token 7 (last point with LineNo<=5), got %+v", got)
	}
}

func TestSelectSimpleBreakListNoPointFits(t *testing.T) {
	bt := List([]BreakPoint{{TokenIndex: 3, LineNo: 4}})
	got := SelectSimpleBreak(bt, 2)
	if got.Kind != BreakMandatory {
		t.Fatalf("expected Mandatory when even the first point overflows, got %+v", got)
	}
}

func TestSelectBreakRejectsSmallR(t *testing.T) {
	e := &Element{Train: []BreakType{Atomic(1)}}
	idx, bt := e.SelectBreak(1)
	if idx != -1 || bt.Kind != BreakNone {
		t.Fatalf("expected (-1, None) for r<2, got (%d, %+v)", idx, bt)
	}
}

func TestSelectBreakWalksAtomicTrain(t *testing.T) {
	// cue line (1) + three atomic entries of height 1 each; r=3 should
	// cache the break after the first entry (line_count 1+1+1(bonus)=3 <= r
	// fails for the second, so it must stop after consuming entry 0).
	e := &Element{Train: []BreakType{
		Atomic(1),
		Atomic(1),
		Atomic(1),
	}}
	idx, bt := e.SelectBreak(3)
	if idx != 0 {
		t.Fatalf("expected cache at index 0, got %d (%+v)", idx, bt)
	}
	if bt.Kind != BreakAtomic {
		t.Fatalf("expected cached break kind Atomic, got %+v", bt)
	}
}

func TestSelectBreakFitsEntireTrain(t *testing.T) {
	e := &Element{Train: []BreakType{Atomic(1), Atomic(1)}}
	idx, bt := e.SelectBreak(10)
	if idx != len(e.Train) || bt.Kind != BreakNone {
		t.Fatalf("expected whole train to fit (len, None), got (%d, %+v)", idx, bt)
	}
}

func TestSelectBreakWalksListEntryPointByPoint(t *testing.T) {
	e := &Element{Train: []BreakType{
		List([]BreakPoint{
			{TokenIndex: 1, LineNo: 1},
			{TokenIndex: 2, LineNo: 2},
			{TokenIndex: 3, LineNo: 3},
		}),
	}}
	// cue line 1 + line_no + 1 for (MORE) > r=3 stops the walk once
	// line_no=2 is reached (1+2+1=4>3), so the cache holds line_no=1.
	idx, bt := e.SelectBreak(3)
	if idx != 0 || bt.Kind != BreakPointKind || bt.Point.LineNo != 1 {
		t.Fatalf("expected cached point at line 1 of entry 0, got (%d, %+v)", idx, bt)
	}
}

func TestSelectBreakSkipsNonCacheableKinds(t *testing.T) {
	// Forbidden(1) fits (line_count 1+1+1=3<=3) but is never cached; the
	// following Atomic(5) overflows (2+5+0=7>3), so no cache was ever set.
	e := &Element{Train: []BreakType{Forbidden(1), Atomic(5)}}
	idx, bt := e.SelectBreak(3)
	if idx != -1 || bt.Kind != BreakNone {
		t.Fatalf("Forbidden entries must never be cached as a break, got (%d, %+v)", idx, bt)
	}
}
