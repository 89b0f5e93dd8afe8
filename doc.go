// Package screenplay converts a semantically tagged screenplay markup
// document into paginated, fixed-pitch PostScript.
//
// The pipeline is strictly sequential: an XML event stream is reduced to a
// typed element tree (package element), each text element's prose is
// tokenized (package token) and its candidate line-break points computed
// (element.BreakType), the element tree is flowed onto fixed-height pages
// by a greedy paginator (package paginate), and the resulting pages are
// rendered to PostScript (package postscript).
//
// # Quick start
//
//	doc, err := xmlreader.Read(src, xmlreader.Options{Grid: config.DefaultGrid})
//	pages, err := paginate.Paginate(doc, config.DefaultGrid)
//	err = postscript.Write(w, pages, prologuePath, config.DefaultGrid)
//
// See cmd/screenplay for the command-line entry point.
package screenplay

import (
	"io"

	"github.com/SCKelemen/screenplay/config"
	"github.com/SCKelemen/screenplay/paginate"
	"github.com/SCKelemen/screenplay/postscript"
	"github.com/SCKelemen/screenplay/xmlreader"
)

// Options configures a single Typeset run.
type Options struct {
	// Grid overrides the default page-grid constants (CHAR_WIDTH, margins, ...).
	Grid config.Grid
	// ProloguePath is the PostScript prologue template (see postscript.Write).
	ProloguePath string
	// Diagnostics receives unknown-escape and unknown-tag warnings; nil discards them.
	Diagnostics io.Writer
}

// Typeset runs the full pipeline: read markup from src, paginate it, and
// write PostScript to out. It is the library-level equivalent of the
// cmd/screenplay CLI's default (non -e) mode.
func Typeset(src io.Reader, out io.Writer, opts Options) error {
	grid := opts.Grid
	if grid == (config.Grid{}) {
		grid = config.DefaultGrid
	}

	doc, err := xmlreader.Read(src, xmlreader.Options{Grid: grid, Diagnostics: opts.Diagnostics})
	if err != nil {
		return err
	}
	pages, err := paginate.Paginate(doc, grid)
	if err != nil {
		return err
	}
	return postscript.Write(out, pages, opts.ProloguePath, grid)
}
