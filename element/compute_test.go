package element

import (
	"testing"

	"github.com/SCKelemen/screenplay/token"
)

func words(texts ...string) []token.Token {
	var toks []token.Token
	for i, w := range texts {
		if i > 0 {
			toks = append(toks, token.Token{Kind: token.Space, Text: " ", Format: token.DLB | token.DOB})
		}
		toks = append(toks, token.Token{Kind: token.Word, Text: w})
	}
	return toks
}

func TestWrapBreakPointsMonotonic(t *testing.T) {
	toks := words("one", "two", "three", "four", "five", "six", "seven", "eight")
	bps := wrapBreakPoints(toks, 10)
	for i := 1; i < len(bps); i++ {
		if bps[i].TokenIndex <= bps[i-1].TokenIndex {
			t.Fatalf("token_index not strictly increasing at %d: %+v", i, bps)
		}
		if bps[i].LineNo < bps[i-1].LineNo {
			t.Fatalf("line_no decreased at %d: %+v", i, bps)
		}
	}
	last := bps[len(bps)-1]
	if last.TokenIndex != len(toks) {
		t.Errorf("sentinel token_index = %d, want %d", last.TokenIndex, len(toks))
	}
	if last.LineNo != wrapLineCount(toks, 10) {
		t.Errorf("sentinel line_no = %d, want %d", last.LineNo, wrapLineCount(toks, 10))
	}
}

func TestWrapBreakPointsFitsOneLine(t *testing.T) {
	toks := words("hi", "there")
	bps := wrapBreakPoints(toks, 40)
	if got := bps[len(bps)-1].LineNo; got != 1 {
		t.Errorf("line count = %d, want 1 for short text in a wide column", got)
	}
}

func TestNextWordFitsSkipsOpenClose(t *testing.T) {
	// "x (y" — scanning past '(' should add its length to the leading sum.
	toks := []token.Token{
		{Kind: token.Word, Text: "x"},
		{Kind: token.Space, Text: " ", Format: token.DLB | token.DOB},
		{Kind: token.Open, Text: "("},
		{Kind: token.Word, Text: "y"},
	}
	if !nextWordFits(toks, 1, 0, 10) {
		t.Errorf("expected (y to fit in width 10")
	}
	// "(y" is 2 wide including the opener: it exactly fills width 2 and
	// does not fit in width 1.
	if nextWordFits(toks, 1, 0, 1) {
		t.Errorf("expected (y not to fit in width 1")
	}
}

func TestComputeBreakFixedAssignments(t *testing.T) {
	if b := computeBreak(TagBr, nil, 0); b.Kind != BreakDisposable || b.Height != 1 {
		t.Errorf("Br = %+v, want Disposable(1)", b)
	}
	if b := computeBreak(TagPageBreak, nil, 0); b.Kind != BreakMandatory {
		t.Errorf("PageBreak = %+v, want Mandatory", b)
	}
	for _, tag := range []Tag{TagAct, TagEnd, TagOpen, TagSeries, TagTrans} {
		if b := computeBreak(tag, words("x"), 40); b.Kind != BreakAtomic || b.Height != 1 {
			t.Errorf("%v = %+v, want Atomic(1)", tag, b)
		}
	}
}

func TestComputeBreakSlugForbidden(t *testing.T) {
	b := computeBreak(TagSlug, words("int", "office", "day"), 40)
	if b.Kind != BreakForbidden {
		t.Errorf("Slug break kind = %v, want Forbidden", b.Kind)
	}
}
