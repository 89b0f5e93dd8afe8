package paginate

import (
	"fmt"
	"strconv"

	"github.com/SCKelemen/screenplay/config"
	"github.com/SCKelemen/screenplay/element"
	"github.com/SCKelemen/screenplay/wrap"
)

// flyInfo accumulates the head's elements for §4.7's fly-page synthesis;
// none of them emit body lines when encountered during the main walk.
type flyInfo struct {
	series  *element.Element
	title   *element.Element
	authors []*element.Element
	note    *element.Element
	contact *element.Element
}

// Paginator holds the state of spec.md §4.5: the page list under
// construction, the previous element's padding_after, the break_selection
// queue a Cue uses to hand fit decisions to its followers, the cached cue
// line for "(CONT'D)" reprints, and the current scene's numbering state.
type Paginator struct {
	grid config.Grid

	pages  []*Page
	cur    *Page
	cursor int

	prevPadAfter int

	breakSelection []*element.BreakType

	curCueLine wrap.Line

	numbering   element.Numbering
	sceneLabel  string
	scenePageNo int // -1 outside a scene, 0 on a scene's first page

	fly      flyInfo
	docTitle string
}

// New creates a Paginator targeting grid.
func New(grid config.Grid) *Paginator {
	return &Paginator{grid: grid, scenePageNo: -1}
}

// Paginate runs a Paginator over root and returns the finished page list;
// it is the package-level entry point the pipeline (see package
// screenplay) drives.
func Paginate(root *element.Element, grid config.Grid) ([]*Page, error) {
	return New(grid).Run(root)
}

// DocTitle is the first line of the balanced title block, used for the
// PostScript %%Title header (spec.md §4.7).
func (pg *Paginator) DocTitle() string { return pg.docTitle }

// Run walks root (a <screenplay> element) in document order and returns
// the finished page list, fly page first.
func (pg *Paginator) Run(root *element.Element) ([]*Page, error) {
	if root == nil || root.Tag != element.TagScreenplay {
		return nil, fmt.Errorf("markup syntax: paginate requires a <screenplay> root")
	}
	pg.numbering = root.Attrs.Numbering
	pg.newPageRaw()

	for _, child := range root.Children {
		switch child.Tag {
		case element.TagHead:
			pg.collectFly(child)
		case element.TagBody:
			for _, c := range child.Children {
				pg.dispatch(c)
			}
		}
	}

	// Body pages already carry their real, sequential Number from
	// newPageRaw; the fly page keeps the Number: 0 synthesizeFlyPage gave
	// it so postscript.Write's "p.Number > 0" check leaves it blank.
	fly := pg.synthesizeFlyPage()
	pg.pages = append([]*Page{fly}, pg.pages...)
	return pg.pages, nil
}

func (pg *Paginator) inScene() bool { return pg.scenePageNo >= 0 }

func (pg *Paginator) remaining() int { return pg.cur.Height - pg.cursor }

func (pg *Paginator) empty() bool { return pg.cursor == 0 }

// newPageRaw starts a page with no scene-continuation bookkeeping, used
// only for the document's very first page.
func (pg *Paginator) newPageRaw() {
	pg.cur = newPage(len(pg.pages)+1, pg.grid.Height())
	pg.pages = append(pg.pages, pg.cur)
	pg.cursor = 0
}

// newPage starts a new page, emitting the (CONTINUED) footer on the page
// being left and the CONTINUED: header on the one being entered when the
// paginator is inside a scene (spec.md §4.6).
func (pg *Paginator) newPage() {
	inScene := pg.inScene()
	if inScene {
		pg.footer("(CONTINUED)", pg.grid.TransBegin)
	}
	pg.newPageRaw()
	if inScene {
		pg.scenePageNo++
		pg.header()
	}
}

func (pg *Paginator) footer(text string, column int) {
	pg.cur.Footer = append(pg.cur.Footer, wrap.Line{Column: column, Segments: []wrap.Segment{{Text: text}}})
}

// header emits the CONTINUED: row (spec.md §4.6), decorated with the
// scene-pagination counter and the scene label per the numbering mode.
func (pg *Paginator) header() {
	text := "CONTINUED:"
	if pg.scenePageNo > 1 {
		text += fmt.Sprintf(" (%d)", pg.scenePageNo)
	}
	row := pg.cursor
	pg.placeLines([]wrap.Line{{Column: pg.grid.PBegin, Segments: []wrap.Segment{{Text: text}}}})

	label := pg.sceneLabel
	if label == "" {
		return
	}
	switch pg.numbering {
	case element.NumberingRight, element.NumberingFull:
		pg.addToRow(row, wrap.Line{Column: pg.grid.PEnd - len(label), Segments: []wrap.Segment{{Text: label}}})
	}
	switch pg.numbering {
	case element.NumberingLeft, element.NumberingFull:
		padded := label
		for len(padded) < 6 {
			padded += " "
		}
		pg.addToRow(row, wrap.Line{Column: pg.grid.PBegin - len(label), Segments: []wrap.Segment{{Text: padded}}})
	}
}

func (pg *Paginator) placeLines(lines []wrap.Line) {
	for _, l := range lines {
		if pg.cursor >= pg.cur.Height {
			return
		}
		pg.cur.Body[pg.cursor] = append(pg.cur.Body[pg.cursor], l)
		pg.cursor++
	}
}

func (pg *Paginator) placeBlank(n int) {
	pg.cursor += n
	if pg.cursor > pg.cur.Height {
		pg.cursor = pg.cur.Height
	}
}

func (pg *Paginator) addToRow(row int, l wrap.Line) {
	if row < 0 || row >= len(pg.cur.Body) {
		return
	}
	pg.cur.Body[row] = append(pg.cur.Body[row], l)
}

func (pg *Paginator) pushBreakSelection(bt *element.BreakType) {
	pg.breakSelection = append(pg.breakSelection, bt)
}

func (pg *Paginator) popBreakSelection() *element.BreakType {
	if len(pg.breakSelection) == 0 {
		return nil
	}
	bt := pg.breakSelection[0]
	pg.breakSelection = pg.breakSelection[1:]
	return bt
}

// dispatch is spec.md §4.5 step 1-2: read padding_before (starting a new
// page first if negative), then dispatch on the element variant.
func (pg *Paginator) dispatch(el *element.Element) {
	if el.Shape == element.ShapeEmpty {
		switch el.Tag {
		case element.TagBr:
			pg.emitBr()
		case element.TagPageBreak:
			pg.newPage()
		}
		return
	}

	padBefore := el.Attrs.PaddingBefore
	if padBefore < 0 {
		pg.newPage()
		padBefore = -padBefore - 1
	}

	switch el.Tag {
	case element.TagAct, element.TagEnd:
		pg.emitCentered(el, padBefore)
	case element.TagOpen:
		pg.emitLeftTab(el, padBefore)
	case element.TagTrans:
		pg.emitRightHung(el, padBefore)
	case element.TagCue:
		pg.emitCue(el, padBefore)
	case element.TagD:
		pg.emitD(el, padBefore)
	case element.TagDir:
		pg.emitDir(el, padBefore)
	case element.TagP:
		pg.emitP(el, padBefore)
	case element.TagSlug:
		pg.emitSlug(el, padBefore)
	}

	pg.prevPadAfter = el.Attrs.PaddingAfter
	// A Cue or Slug carries at_scene_end only by propagation from the
	// element that really closes the scene, which is still to come.
	if el.AtSceneEnd && el.Tag != element.TagCue && el.Tag != element.TagSlug {
		pg.scenePageNo = -1
	}
}

func blockHeight(el *element.Element) int {
	if h := el.Break.Lines(); h > 0 {
		return h
	}
	return 1
}

// emitCentered handles Act/End (spec.md §4.5's combined Act/End/Open/
// Trans/Title bullet, centered case).
func (pg *Paginator) emitCentered(el *element.Element, padBefore int) {
	h := blockHeight(el)
	if h > pg.remaining() {
		pg.newPage()
	}
	pg.placeBlank(max(padBefore, pg.prevPadAfter))
	lines := wrap.Fill(el.Tokens, el.Attrs.Width(), el.Attrs.LeftMargin)
	for i := range lines {
		lines[i] = centerLine(lines[i], pg.grid.Center)
	}
	pg.placeLines(lines)
}

// emitLeftTab handles Open, left-justified at its tab stop.
func (pg *Paginator) emitLeftTab(el *element.Element, padBefore int) {
	h := blockHeight(el)
	if h > pg.remaining() {
		pg.newPage()
	}
	pg.placeBlank(max(padBefore, pg.prevPadAfter))
	pg.placeLines(wrap.Fill(el.Tokens, el.Attrs.Width(), el.Attrs.TabStop))
}

// emitRightHung handles Trans, right-justified to its right margin.
func (pg *Paginator) emitRightHung(el *element.Element, padBefore int) {
	h := blockHeight(el)
	if h > pg.remaining() {
		pg.newPage()
	}
	pg.placeBlank(max(padBefore, pg.prevPadAfter))
	lines := wrap.Fill(el.Tokens, el.Attrs.Width(), el.Attrs.LeftMargin)
	for i := range lines {
		lines[i] = rightJustify(lines[i], el.Attrs.RightMargin)
	}
	pg.placeLines(lines)
}

func centerLine(l wrap.Line, center int) wrap.Line {
	n := l.Width()
	l.Column = center - n/2 - n%2
	return l
}

func rightJustify(l wrap.Line, rightMargin int) wrap.Line {
	n := l.Width()
	l.Column = rightMargin - n + 1
	return l
}

// emitCue is spec.md §4.5's core dialogue-fit decision.
func (pg *Paginator) emitCue(el *element.Element, padBefore int) {
	for attempt := 0; attempt < 2; attempt++ {
		h := el.CountLines()
		reserve := 0
		if pg.inScene() && !el.AtSceneEnd {
			reserve = 2
		}
		r := pg.remaining() - padBefore

		if h+reserve <= r {
			pg.placeBlank(max(padBefore, pg.prevPadAfter))
			pg.placeCueLine(el)
			for range el.Train {
				pg.pushBreakSelection(nil)
			}
			return
		}

		i, bt := el.SelectBreak(r)
		if i >= 0 {
			for k := 0; k < i; k++ {
				pg.pushBreakSelection(nil)
			}
			sel := bt
			pg.pushBreakSelection(&sel)
			pg.placeBlank(max(padBefore, pg.prevPadAfter))
			pg.placeCueLine(el)
			return
		}

		pg.newPage()
		padBefore = 0
	}
}

// placeCueLine wraps and places the cue's own text (always expected to be
// a single short line) and caches it for a later "(CONT'D)" reprint.
func (pg *Paginator) placeCueLine(el *element.Element) {
	lines := wrap.Fill(el.Tokens, el.Attrs.Width(), el.Attrs.LeftMargin)
	if len(lines) == 0 {
		lines = []wrap.Line{{Column: el.Attrs.LeftMargin}}
	}
	pg.curCueLine = lines[0]
	pg.placeLines(lines[:1])
}

func (pg *Paginator) reprintCue() {
	l := pg.curCueLine
	segs := append([]wrap.Segment{}, l.Segments...)
	segs = append(segs, wrap.Segment{Text: " (CONT'D)"})
	l.Segments = segs
	pg.placeLines([]wrap.Line{l})
}

const more = "(MORE)"

// emitD pops break_selection and renders the dialogue accordingly (spec.md
// §4.5's D bullet).
func (pg *Paginator) emitD(el *element.Element, padBefore int) {
	pg.placeBlank(padBefore)
	bt := pg.popBreakSelection()

	col, width := el.Attrs.LeftMargin, el.Attrs.Width()

	if bt == nil {
		pg.placeLines(wrap.Fill(el.Tokens, width, col))
		return
	}

	switch bt.Kind {
	case element.BreakAtomic:
		pg.placeLines(wrap.Fill(el.Tokens, width, col))
		pg.placeLines([]wrap.Line{{Column: pg.grid.CueBegin, Segments: []wrap.Segment{{Text: more}}}})
		pg.footer("(CONTINUED)", pg.grid.TransBegin)
		pg.newPage()
		pg.reprintCue()

	case element.BreakPointKind:
		cut := bt.Point.TokenIndex
		if cut > len(el.Tokens) {
			cut = len(el.Tokens)
		}
		suffixStart := cut
		if bt.Point.Discard && suffixStart < len(el.Tokens) {
			suffixStart++
		}
		pg.placeLines(wrap.Fill(el.Tokens[:cut], width, col))
		pg.placeLines([]wrap.Line{{Column: pg.grid.CueBegin, Segments: []wrap.Segment{{Text: more}}}})
		pg.footer("(CONTINUED)", pg.grid.TransBegin)
		pg.newPage()
		pg.reprintCue()
		pg.placeLines(wrap.Fill(el.Tokens[suffixStart:], width, col))

	default:
		pg.placeLines(wrap.Fill(el.Tokens, width, col))
	}
}

// emitDir pops break_selection (expected None: page splits never land
// after a personal direction) and wraps its first/last lines in
// parentheses.
func (pg *Paginator) emitDir(el *element.Element, padBefore int) {
	pg.placeBlank(padBefore)
	pg.popBreakSelection()

	lines := wrap.Fill(el.Tokens, el.Attrs.Width(), el.Attrs.LeftMargin)
	if len(lines) > 0 {
		lines[0] = prependText(lines[0], "(")
		lines[len(lines)-1] = appendText(lines[len(lines)-1], ")")
	}
	pg.placeLines(lines)
}

func prependText(l wrap.Line, s string) wrap.Line {
	if len(l.Segments) == 0 {
		l.Segments = []wrap.Segment{{Text: s}}
		return l
	}
	segs := append([]wrap.Segment{}, l.Segments...)
	segs[0].Text = s + segs[0].Text
	l.Segments = segs
	return l
}

func appendText(l wrap.Line, s string) wrap.Line {
	if len(l.Segments) == 0 {
		l.Segments = []wrap.Segment{{Text: s}}
		return l
	}
	segs := append([]wrap.Segment{}, l.Segments...)
	segs[len(segs)-1].Text += s
	l.Segments = segs
	return l
}

// emitP is spec.md §4.5's P bullet.
func (pg *Paginator) emitP(el *element.Element, padBefore int) {
	h := blockHeight(el)
	reserve := 0
	if pg.inScene() && !el.AtSceneEnd {
		reserve = 2
	}
	r := pg.remaining() - reserve

	col, width := el.Attrs.LeftMargin, el.Attrs.Width()

	if r <= 0 || r < h+padBefore {
		bt := element.SelectSimpleBreak(el.Break, r-padBefore)
		switch bt.Kind {
		case element.BreakMandatory:
			pg.footer("(CONTINUED)", pg.grid.TransBegin)
			pg.newPage()
			pg.placeLines(wrap.Fill(el.Tokens, width, col))
		case element.BreakPointKind:
			cut := bt.Point.TokenIndex
			if cut > len(el.Tokens) {
				cut = len(el.Tokens)
			}
			suffixStart := cut
			if bt.Point.Discard && suffixStart < len(el.Tokens) {
				suffixStart++
			}
			pg.placeLines(wrap.Fill(el.Tokens[:cut], width, col))
			pg.footer("(CONTINUED)", pg.grid.TransBegin)
			pg.newPage()
			pg.placeLines(wrap.Fill(el.Tokens[suffixStart:], width, col))
		default:
			pg.placeBlank(padBefore)
			pg.placeLines(wrap.Fill(el.Tokens, width, col))
		}
		return
	}

	pg.placeBlank(max(padBefore, pg.prevPadAfter))
	pg.placeLines(wrap.Fill(el.Tokens, width, col))
}

// emitBr handles a standalone <br/> (Disposable(1)): dropped if it would
// be the first thing on the page/column, otherwise a single blank line.
func (pg *Paginator) emitBr() {
	if pg.empty() {
		return
	}
	pg.placeBlank(1)
}

// emitSlug is spec.md §4.5's Slug bullet.
func (pg *Paginator) emitSlug(el *element.Element, padBefore int) {
	needed := blockHeight(el)
	if len(el.Train) > 0 {
		t0 := el.Train[0]
		if t0.Kind == element.BreakList && len(t0.List) > 0 {
			needed += t0.List[0].LineNo
		} else {
			needed += t0.Lines()
		}
	}
	if needed+2 > pg.remaining()-padBefore {
		pg.newPage()
		padBefore = 0
	}

	pg.placeBlank(max(padBefore, pg.prevPadAfter))
	row := pg.cursor
	lines := wrap.Fill(el.Tokens, el.Attrs.Width(), el.Attrs.LeftMargin)
	pg.placeLines(lines)

	pg.sceneLabel = sceneLabel(el.Attrs)
	if pg.sceneLabel != "" {
		switch pg.numbering {
		case element.NumberingLeft, element.NumberingFull:
			pg.addToRow(row, wrap.Line{Column: pg.grid.LHSceneNoBegin, Segments: []wrap.Segment{{Text: pg.sceneLabel}}})
		}
		switch pg.numbering {
		case element.NumberingRight, element.NumberingFull:
			pg.addToRow(row, wrap.Line{Column: pg.grid.RHSceneNoBegin, Segments: []wrap.Segment{{Text: pg.sceneLabel}}})
		}
	}
	pg.scenePageNo = 0
}

func sceneLabel(a element.Attrs) string {
	if a.Number == 0 {
		return ""
	}
	s := strconv.Itoa(a.Number)
	if a.HasAddition {
		s += string(a.Addition)
	}
	return s
}

func (pg *Paginator) collectFly(head *element.Element) {
	for _, c := range head.Children {
		switch c.Tag {
		case element.TagSeries:
			pg.fly.series = c
		case element.TagTitle:
			pg.fly.title = c
		case element.TagAuthors:
			for _, a := range c.Children {
				if a.Tag == element.TagFullName {
					pg.fly.authors = append(pg.fly.authors, a)
				}
			}
		case element.TagNote:
			pg.fly.note = c
		case element.TagContact:
			pg.fly.contact = c
		}
	}
}

// synthesizeFlyPage builds the title page of spec.md §4.7.
func (pg *Paginator) synthesizeFlyPage() *Page {
	p := newPage(0, pg.grid.Height())
	row := 0
	place := func(lines []wrap.Line) {
		for _, l := range lines {
			if row >= p.Height {
				return
			}
			p.Body[row] = append(p.Body[row], l)
			row++
		}
	}
	blank := func(n int) { row += n }

	blank(pg.grid.TitleSkip)

	if pg.fly.series != nil {
		place(pg.centeredBalanced(pg.fly.series))
		blank(1)
	}

	if pg.fly.title != nil {
		lines := pg.centeredBalanced(pg.fly.title)
		for _, l := range lines {
			place([]wrap.Line{l})
			blank(1)
		}
		if len(lines) > 0 {
			pg.docTitle = lines[0].Text()
			p.Title = pg.docTitle
		}
		blank(2)
	}

	place([]wrap.Line{pg.centerText("written by")})
	blank(1)
	for _, a := range pg.fly.authors {
		place(pg.centeredBalanced(a))
		blank(1)
	}

	if pg.fly.note != nil {
		blank(2)
		place(pg.centeredBalanced(pg.fly.note))
	}

	if pg.fly.contact != nil {
		lines := wrap.Fill(pg.fly.contact.Tokens, pg.fly.contact.Attrs.Width(), pg.grid.ContactBegin)
		p.Footer = append(p.Footer, lines...)
	}

	return p
}

func (pg *Paginator) centeredBalanced(el *element.Element) []wrap.Line {
	lines := wrap.Balance(el.Tokens, el.Attrs.Width(), el.Attrs.LeftMargin)
	for i := range lines {
		lines[i] = centerLine(lines[i], pg.grid.Center)
	}
	return lines
}

func (pg *Paginator) centerText(s string) wrap.Line {
	n := len([]rune(s))
	return wrap.Line{Column: pg.grid.Center - n/2 - n%2, Segments: []wrap.Segment{{Text: s}}}
}
