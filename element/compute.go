package element

import "github.com/SCKelemen/screenplay/token"

// computeBreak assigns the break descriptor for a finalized text or empty
// element (spec.md §4.3). actNumber/afterOpen are only consulted by the
// caller for Attrs.Defaults, not here.
func computeBreak(tag Tag, tokens []token.Token, width int) BreakType {
	switch tag {
	case TagD, TagP:
		return List(wrapBreakPoints(tokens, width))
	case TagDir, TagSlug:
		return Forbidden(wrapLineCount(tokens, width))
	case TagTitle:
		return Atomic(wrapLineCount(tokens, width))
	case TagAct, TagEnd, TagOpen, TagSeries, TagTrans:
		return Atomic(1)
	case TagBr:
		return Disposable(1)
	case TagPageBreak:
		return Mandatory()
	default:
		return None()
	}
}

// wrapBreakPoints runs the greedy word-wrap simulation of spec.md §4.3 and
// returns the full candidate break-point list, ending with the mandatory
// sentinel entry.
func wrapBreakPoints(tokens []token.Token, w int) []BreakPoint {
	var bps []BreakPoint
	n, x := 1, 0
	atEOS := false

	for i, tok := range tokens {
		if atEOS && tok.Kind == token.Punct {
			atEOS = false
		}

		switch {
		case tok.Format.Has(token.MLB):
			bps = append(bps, BreakPoint{TokenIndex: i + 1, Discard: true, LineNo: n})
			n++
			x = 0
			atEOS = false

		case tok.Format.Has(token.EOS) && !tok.Format.Has(token.DLB):
			x += tok.Len()
			atEOS = true

		case tok.Format.Has(token.DLB):
			if atEOS || tok.Format.Has(token.EOS) {
				bps = append(bps, BreakPoint{TokenIndex: i + 1, Discard: tok.Format.Has(token.DOB), LineNo: n})
				atEOS = false
			}
			if !nextWordFits(tokens, i+1, x, w) {
				n++
				x = 0
			} else {
				x += tok.Len()
			}

		default:
			x += tok.Len()
		}
	}

	if x >= w {
		n++
	}
	bps = append(bps, BreakPoint{TokenIndex: len(tokens), Discard: false, LineNo: n})
	return bps
}

// wrapLineCount is the total-line-count-only form of wrapBreakPoints, used
// for Dir/Slug/Title where no candidate list is needed (spec.md §4.3).
func wrapLineCount(tokens []token.Token, w int) int {
	bps := wrapBreakPoints(tokens, w)
	return bps[len(bps)-1].LineNo
}

// nextWordFits implements spec.md §4.3's "next word fits" predicate:
// scanning forward from pos, skip Space tokens and step over Open/Close
// tokens (accumulating the length of any leading Open/Close tokens, since
// an opening bracket stays glued to the word it introduces), then sum the lengths of the following
// consecutive non-space, non-break-opportunity tokens (the word run). The
// run fits iff x + sum <= w.
func nextWordFits(tokens []token.Token, pos, x, w int) bool {
	j := pos
	sum := 0
	for j < len(tokens) {
		tk := tokens[j]
		switch tk.Kind {
		case token.Space:
			j++
			continue
		case token.Open, token.Close:
			sum += tk.Len()
			j++
			continue
		}
		break
	}
	for j < len(tokens) {
		tk := tokens[j]
		if tk.IsSpace() || tk.Format.Has(token.DLB) || tk.Format.Has(token.MLB) {
			break
		}
		sum += tk.Len()
		j++
	}
	return x+sum <= w
}
