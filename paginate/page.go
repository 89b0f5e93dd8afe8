// Package paginate walks an element tree in document order and produces a
// list of Pages (spec.md §4.5), handling dialogue-split and scene-
// continuation bookkeeping (§4.6) and fly-page synthesis (§4.7).
package paginate

import "github.com/SCKelemen/screenplay/wrap"

// Page is (page_number, height, body lines (possibly-empty slots), footer
// lines) (spec.md §3). Body is indexed 0 .. Height-1 by row; a row may
// carry more than one Line fragment (e.g. the CONTINUED: header shares a
// row with a right-justified scene label), so each slot is itself a
// slice. An empty slot has no fragments.
type Page struct {
	Number int
	Height int
	Body   [][]wrap.Line
	Footer []wrap.Line

	// Title is set only on the fly page (Number 0): the first line of the
	// balanced title block, used for the PostScript %%Title header
	// (spec.md §4.7).
	Title string
}

func newPage(number, height int) *Page {
	return &Page{Number: number, Height: height, Body: make([][]wrap.Line, height)}
}
