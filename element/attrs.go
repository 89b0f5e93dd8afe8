package element

// Numbering is the screenplay's scene-numbering mode (spec.md §6).
type Numbering int

const (
	NumberingNone Numbering = iota
	NumberingLeft
	NumberingRight
	NumberingFull
)

func NumberingByName(name string) Numbering {
	switch name {
	case "left":
		return NumberingLeft
	case "right":
		return NumberingRight
	case "full":
		return NumberingFull
	default:
		return NumberingNone
	}
}

// Attrs holds the per-element attributes of spec.md §3: margins, tab
// stop, padding, indent, and the tag-specific fields (Slug's Number/
// Addition, the Screenplay's Numbering). Trains live on Element directly
// since they are computed, not declared.
type Attrs struct {
	LeftMargin  int
	RightMargin int
	HasTabStop  bool
	TabStop     int

	// PaddingBefore is signed: negative means "page-break, then pad
	// |n|-1 lines" (spec.md §3).
	PaddingBefore int
	PaddingAfter  int

	Indent int

	// Slug-only.
	Number   int
	HasAddition bool
	Addition byte

	// Screenplay-only.
	Numbering Numbering
}

// Width is the element's column width: RightMargin - LeftMargin + 1.
func (a Attrs) Width() int {
	return a.RightMargin - a.LeftMargin + 1
}
