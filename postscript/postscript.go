// Package postscript renders a paginated document to PostScript (spec.md
// §5/§6): a substituted prologue template, one %%Page section per page
// with its body and footer lines placed by grid-to-point arithmetic, and a
// trailer. Coordinate arithmetic is grounded on the original formatter's
// writer (_examples/original_source/src/document/writer.rs): y starts at
// TOP_LINE*LINE_HEIGHT and steps down by LINE_HEIGHT per body row; the
// footer starts at (BOTTOM_LINE + len(footer) - 1) * LINE_HEIGHT; the
// page-number stamp sits at (PAGE_NO_BEGIN*CHAR_WIDTH, HEADER_LINE*LINE_HEIGHT).
package postscript

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SCKelemen/screenplay/config"
	"github.com/SCKelemen/screenplay/paginate"
	"github.com/SCKelemen/screenplay/token"
	"github.com/SCKelemen/screenplay/typeseterr"
	"github.com/SCKelemen/screenplay/wrap"
)

const programName = "screenplay"

// defaultPrologue is used when no -prologue file is given: a minimal
// Courier/US-Letter header defining the page-begin/page-end procedures
// the per-page body relies on.
const defaultPrologue = `%!PS-Adobe-3.0
%%Title: (@title@)
%%Creator: (@creator@)
%%Pages: @pages@
%%DocumentFonts: Courier Courier-Oblique
%%BoundingBox: 0 0 612 792
%%EndComments
/Courier findfont 12 scalefont setfont
/page-begin { } def
/page-end { showpage } def
%%EndProlog
`

// Write renders pages to out, substituting the prologue template's
// @title@/@creator@/@pages@ markers before the per-page body (spec.md
// §6), encoding every byte written in Latin-9/ISO 8859-15 (spec.md §5).
func Write(out io.Writer, pages []*paginate.Page, prologuePath string, grid config.Grid) error {
	title := programName
	for _, p := range pages {
		if p.Title != "" {
			title = p.Title
			break
		}
	}

	prologue, err := loadPrologue(prologuePath)
	if err != nil {
		return err
	}
	prologue = strings.NewReplacer(
		"@title@", title,
		"@creator@", programName,
		"@pages@", fmt.Sprintf("%d", len(pages)),
	).Replace(prologue)

	w := &writer{out: out}
	if err := w.write(prologue); err != nil {
		return typeseterr.OutputIO(err)
	}

	for i, p := range pages {
		if err := w.writePage(i+1, p, grid); err != nil {
			return typeseterr.OutputIO(err)
		}
	}

	return w.write("%%Trailer\n")
}

func loadPrologue(path string) (string, error) {
	if path == "" {
		return defaultPrologue, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", typeseterr.TemplateMissing(err)
	}
	return string(data), nil
}

type writer struct {
	out io.Writer
}

func (w *writer) write(s string) error {
	_, err := w.out.Write(EncodeLatin9(s))
	return err
}

func (w *writer) writePage(realPageNo int, p *paginate.Page, grid config.Grid) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%%%%Page: %d %d\n", realPageNo, realPageNo)
	sb.WriteString("page-begin\n")

	if p.Number > 0 {
		x := round(float64(grid.PageNoBegin) * grid.CharWidth)
		y := round(float64(grid.HeaderLine) * grid.LineHeight)
		fmt.Fprintf(&sb, "%d %d moveto %s\n", x, y, showOp(fmt.Sprintf("%d.", p.Number), 0))
	}

	y := round(float64(grid.TopLine) * grid.LineHeight)
	for _, row := range p.Body {
		writeRow(&sb, row, y, grid)
		y -= round(grid.LineHeight)
	}

	if len(p.Footer) > 0 {
		y = round(float64(grid.BottomLine+len(p.Footer)-1) * grid.LineHeight)
		for _, line := range p.Footer {
			writeRow(&sb, []wrap.Line{line}, y, grid)
			y -= round(grid.LineHeight)
		}
	}

	sb.WriteString("page-end\n")
	return w.write(sb.String())
}

// writeRow emits every fragment placed on a row (possibly more than one,
// e.g. the CONTINUED: header sharing a row with a right-justified scene
// label), each a sequence of segments starting at the fragment's own
// column and advancing left to right as segments are shown.
func writeRow(sb *strings.Builder, fragments []wrap.Line, y int, grid config.Grid) {
	for _, frag := range fragments {
		x := float64(frag.Column) * grid.CharWidth
		for _, seg := range frag.Segments {
			if seg.Text == "" {
				continue
			}
			fmt.Fprintf(sb, "%d %d moveto %s\n", round(x), y, showOp(seg.Text, seg.Display))
			x += float64(len([]rune(seg.Text))) * grid.CharWidth
		}
	}
}

func showOp(text string, display token.DisplayFlags) string {
	body := "(" + escapePS(text) + ") show"
	if display.Has(token.Emphasis) {
		return "/Courier-Oblique findfont 12 scalefont setfont " + body + " /Courier findfont 12 scalefont setfont"
	}
	return body
}

func escapePS(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
