package element

// SelectBreak is Cue.select_break(r) from spec.md §4.5: the core
// dialogue-split algorithm. It walks the cue's train left to right,
// maintaining line_count (starting at 1 for the cue line itself) and
// keeping the last viable (index, break_info) pair seen so far.
//
// A train entry that is itself a BreakList (a D, whose own text wraps
// across several lines) is walked point by point, since a split can land
// mid-element; each point needs one extra line for the (MORE) marker,
// even in the last train entry. Any other entry is treated as a single
// atomic step of height Lines().
func (e *Element) SelectBreak(r int) (int, BreakType) {
	if r < 2 {
		return -1, None()
	}

	lineCount := 1
	cacheIndex, cacheBreak := -1, None()

	for i, bt := range e.Train {
		moreBonus := 1
		if i == len(e.Train)-1 {
			moreBonus = 0
		}

		if bt.Kind == BreakList {
			for _, bp := range bt.List {
				if lineCount+bp.LineNo+1 > r {
					return cacheIndex, cacheBreak
				}
				cacheIndex, cacheBreak = i, Point(bp)
			}
			lineCount += bt.Lines()
			continue
		}

		h := bt.Lines()
		if h == 0 {
			h = 1
		}
		if lineCount+h+moreBonus > r {
			return cacheIndex, cacheBreak
		}
		switch bt.Kind {
		case BreakAtomic, BreakDisposable, BreakPointKind:
			cacheIndex, cacheBreak = i, bt
		}
		lineCount += h
	}

	return len(e.Train), None()
}

// SelectSimpleBreak is P.select_break(r) from spec.md §4.5, generalized
// over any BreakType so it can also serve a train entry that needs the
// simpler whole-element treatment: an Atomic entry that fits needs no
// break; one that doesn't moves wholesale to the next page (Mandatory). A
// List entry breaks at the last Point whose line_no fits within r, or
// Mandatory if even the first line doesn't fit.
func SelectSimpleBreak(bt BreakType, r int) BreakType {
	switch bt.Kind {
	case BreakAtomic:
		if bt.Height <= r {
			return None()
		}
		return Mandatory()
	case BreakList:
		var last BreakPoint
		found := false
		for _, bp := range bt.List {
			if bp.LineNo > r {
				break
			}
			last, found = bp, true
		}
		if found {
			return Point(last)
		}
		return Mandatory()
	default:
		return None()
	}
}
