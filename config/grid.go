// Package config holds the page-grid constants of spec.md §6: process-wide
// immutable configuration, following the teacher's treatment of its own
// layout constants (types.go's Tight/Loose/Unconstrained helpers build off
// a small fixed set of named numbers rather than a sprawling options
// struct). Unlike the teacher, a caller may retarget the grid — a
// different page size or pitch — by loading an override file; see Load.
package config

// Grid is the page-grid in character cells / line cells (spec.md §6).
type Grid struct {
	CharWidth  float64 // pt, monospace pitch
	LineHeight float64 // pt, vertical spacing

	TopLine    int
	BottomLine int
	HeaderLine int
	MiddleLine int

	LeftMargin  int
	RightMargin int
	Center      int
	Indent      int

	PBegin, PEnd     int
	DBegin, DEnd     int
	DirBegin, DirEnd int
	CueBegin         int
	TransBegin, TransEnd int
	ContactBegin, ContactEnd int
	LHSceneNoBegin, RHSceneNoBegin int
	PageNoBegin int
	TitleSkip   int

	PageWidthPt  float64
	PageHeightPt float64
}

// DefaultGrid is the US Letter / Courier grid spec.md §6 specifies.
var DefaultGrid = Grid{
	CharWidth:  7.2,
	LineHeight: 12.0,

	TopLine:    60,
	BottomLine: 6,
	HeaderLine: 62,
	MiddleLine: 27,

	LeftMargin:  10,
	RightMargin: 75,
	Center:      43,
	Indent:      5,

	PBegin: 16, PEnd: 72,
	DBegin: 26, DEnd: 59,
	DirBegin: 34, DirEnd: 52,
	CueBegin: 42,
	TransBegin: 60, TransEnd: 75,
	ContactBegin: 12, ContactEnd: 42,
	LHSceneNoBegin: 12, RHSceneNoBegin: 73,
	PageNoBegin: 72,
	TitleSkip:   19,

	PageWidthPt:  612,
	PageHeightPt: 792,
}

// Height is the page body's line capacity: TOP_LINE - BOTTOM_LINE + 1
// (spec.md §3 invariant, §6 constants).
func (g Grid) Height() int {
	return g.TopLine - g.BottomLine + 1
}
