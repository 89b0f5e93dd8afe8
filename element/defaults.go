package element

import "github.com/SCKelemen/screenplay/config"

// Defaults returns the attribute defaults for tag per spec.md §6's "Element
// attribute defaults" table, resolved against grid. actNumber is the
// 1-based position of this <act> among its siblings (only meaningful for
// TagAct: the first act differs from subsequent acts), and afterOpen
// reports whether the immediately preceding body sibling was an <open>
// (only meaningful for TagSlug).
//
// This mirrors the original Rust reader's static per-tag defaults table
// (_examples/original_source/src/document/reader.rs), overridden
// afterward by the markup attributes actually present on the tag.
func Defaults(tag Tag, grid config.Grid, actNumber int, afterOpen bool) Attrs {
	a := Attrs{LeftMargin: grid.LeftMargin, RightMargin: grid.RightMargin}
	switch tag {
	case TagAct:
		a.PaddingAfter = 1
		if actNumber <= 1 {
			a.PaddingBefore = 0
		} else {
			a.PaddingBefore = -1
		}
	case TagSlug:
		a.PaddingAfter = 1
		if afterOpen {
			a.PaddingBefore = 1
		} else {
			a.PaddingBefore = 2
		}
	case TagOpen:
		a.PaddingAfter = 1
		a.HasTabStop = true
		a.TabStop = grid.PBegin
		a.LeftMargin, a.RightMargin = grid.PBegin, grid.PEnd
	case TagCue:
		a.PaddingBefore = 1
		a.HasTabStop = true
		a.TabStop = grid.CueBegin
		a.LeftMargin, a.RightMargin = grid.CueBegin, grid.DEnd
	case TagD:
		a.LeftMargin, a.RightMargin = grid.DBegin, grid.DEnd
	case TagDir:
		a.LeftMargin, a.RightMargin = grid.DirBegin, grid.DirEnd
	case TagP:
		a.PaddingBefore = 1
		a.PaddingAfter = 1
		a.LeftMargin, a.RightMargin = grid.PBegin, grid.PEnd
	case TagTrans:
		a.PaddingBefore = 1
		a.PaddingAfter = 1
		a.LeftMargin, a.RightMargin = grid.TransBegin, grid.TransEnd
	case TagEnd:
		a.PaddingBefore = 1
		a.LeftMargin, a.RightMargin = grid.LeftMargin, grid.RightMargin
	case TagTitle, TagSeries, TagAuthors, TagFullName, TagNote:
		a.LeftMargin, a.RightMargin = grid.LeftMargin, grid.RightMargin
	case TagContact:
		a.LeftMargin, a.RightMargin = grid.ContactBegin, grid.ContactEnd
	}
	return a
}
