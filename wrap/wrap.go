// Package wrap renders a token slice into Line/Segment output, the
// render-time counterpart of element.computeBreak's line-counting pass
// (spec.md §4.4).
package wrap

import "github.com/SCKelemen/screenplay/token"

// Segment is (text, display_flags) (spec.md §3). Adjacent tokens sharing
// Display merge into one Segment; a flag change starts a new one at the
// same column offset.
type Segment struct {
	Text    string
	Display token.DisplayFlags
}

// Line is a column offset plus its sequence of segments (spec.md §3).
type Line struct {
	Column   int
	Segments []Segment
}

// Width is the total character width of the line's segments.
func (l Line) Width() int {
	n := 0
	for _, s := range l.Segments {
		n += len([]rune(s.Text))
	}
	return n
}

// Text concatenates the line's segment text, ignoring display flags.
func (l Line) Text() string {
	var s string
	for _, seg := range l.Segments {
		s += seg.Text
	}
	return s
}

// appender accumulates tokens into Lines at a fixed column, merging
// same-Display runs into Segments as it goes.
type appender struct {
	column int
	lines  []Line
	cur    []Segment
}

func (a *appender) push(text string, display token.DisplayFlags) {
	if text == "" {
		return
	}
	if n := len(a.cur); n > 0 && a.cur[n-1].Display == display {
		a.cur[n-1].Text += text
		return
	}
	a.cur = append(a.cur, Segment{Text: text, Display: display})
}

func (a *appender) newline() {
	a.lines = append(a.lines, Line{Column: a.column, Segments: a.cur})
	a.cur = nil
}

func (a *appender) finish() []Line {
	if len(a.cur) > 0 || len(a.lines) == 0 {
		a.lines = append(a.lines, Line{Column: a.column, Segments: a.cur})
	}
	return a.lines
}

// Fill greedily wraps tokens into Lines at column column (spec.md §4.4):
// emit words left to right; at each token carrying DLB (a Space, but also
// a discretionary-break Punct like a hyphen), if the next word run does
// not fit, finish the line — discarding the
// token itself only if it also carries DOB, otherwise keeping it at the
// end of the line being closed — and start a new one; at each MLB token,
// finish the line unconditionally. This mirrors element.wrapBreakPoints'
// DLB/MLB dispatch exactly, so the two passes agree on every break
// opportunity, not just the ones that happen to be spaces. The fit test
// compares the column before the break token plus the next word run
// against w, without the break token's own width, so a line can be w+1
// characters wide when a single space and the word after it exactly fill
// the remaining room.
func Fill(tokens []token.Token, w, column int) []Line {
	a := &appender{column: column}
	x := 0

	for i, tok := range tokens {
		switch {
		case tok.Format.Has(token.MLB):
			a.newline()
			x = 0

		case tok.Format.Has(token.DLB):
			if wordFits(tokens, i+1, x, w) {
				a.push(tok.Text, tok.Display)
				x += tok.Len()
				continue
			}
			if !tok.Format.Has(token.DOB) {
				a.push(tok.Text, tok.Display)
				x += tok.Len()
			}
			a.newline()
			x = 0

		default:
			a.push(tok.Text, tok.Display)
			x += tok.Len()
		}
	}

	return a.finish()
}

// wordFits mirrors element's "next word fits" predicate: summing an
// Open/Close run plus the following word run starting at pos, against the
// remaining width w - x.
func wordFits(tokens []token.Token, pos, x, w int) bool {
	j := pos
	sum := 0
	for j < len(tokens) {
		tk := tokens[j]
		if tk.Kind == token.Space {
			j++
			continue
		}
		if tk.Kind == token.Open || tk.Kind == token.Close {
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

// Balance wraps tokens the same way Fill does to get a target line count
// k, then redistributes words across those k lines so each carries
// roughly the same character count, used for titles and authors (spec.md
// §4.4). The redistribution only ever moves whole words, never splits
// one.
func Balance(tokens []token.Token, w, column int) []Line {
	filled := Fill(tokens, w, column)
	k := len(filled)
	if k <= 1 {
		return filled
	}

	words := splitWords(tokens)
	if len(words) == 0 {
		return filled
	}

	total := 0
	for _, wd := range words {
		total += wd.width
	}
	target := (total + k - 1) / k

	var lines []Line
	cur := &appender{column: column}
	lineWidth := 0
	linesLeft := k

	for _, wd := range words {
		wouldBe := lineWidth + wd.width
		if lineWidth > 0 {
			wouldBe++
		}
		if lineWidth > 0 && wouldBe > target && linesLeft > 1 {
			lines = append(lines, Line{Column: column, Segments: cur.cur})
			cur = &appender{column: column}
			lineWidth = 0
			linesLeft--
		}
		if lineWidth > 0 {
			cur.push(" ", 0)
			lineWidth++
		}
		for _, t := range wd.toks {
			cur.push(t.Text, t.Display)
		}
		lineWidth += wd.width
	}
	lines = append(lines, Line{Column: column, Segments: cur.cur})

	return lines
}

type word struct {
	toks  []token.Token
	width int
}

// splitWords groups tokens into whole words, dropping Space/LineBreak
// separators (balance only ever moves word boundaries).
func splitWords(tokens []token.Token) []word {
	var words []word
	var cur []token.Token
	curWidth := 0
	flush := func() {
		if len(cur) > 0 {
			words = append(words, word{toks: cur, width: curWidth})
			cur = nil
			curWidth = 0
		}
	}
	for _, tok := range tokens {
		if tok.Kind == token.Space || tok.Kind == token.LineBreak {
			flush()
			continue
		}
		cur = append(cur, tok)
		curWidth += tok.Len()
	}
	flush()
	return words
}
