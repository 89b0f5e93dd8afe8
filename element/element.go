package element

import "github.com/SCKelemen/screenplay/token"

// Element is spec.md §3's tagged Element union, flattened: Shape
// discriminates which fields apply. Container elements use Children;
// Empty elements use only Break; Text elements use Attrs, Tokens, Break,
// and AtSceneEnd.
type Element struct {
	Tag   Tag
	Shape Shape

	// Container.
	Children []*Element

	// Text.
	Attrs      Attrs
	Tokens     []token.Token
	AtSceneEnd bool

	// Empty and Text.
	Break BreakType

	// Train holds, for a Cue, the break descriptors of its immediately
	// following D/Dir elements, and for a Slug, the break descriptor of
	// the next content element followed by that element's own train if it
	// is itself a Cue (spec.md §3 "Train", built by build_trains).
	Train []BreakType
}

// TokenCount is the element's token count, used as the sentinel
// break-point's token_index (spec.md §4.3).
func (e *Element) TokenCount() int { return len(e.Tokens) }

// CountLines returns the cue's total line count including its train: 1
// (the cue line itself) plus the height of every train member
// (spec.md §4.5 "Cue: compute h = cue.count_lines()").
func (e *Element) CountLines() int {
	n := 1
	for _, b := range e.Train {
		n += b.Lines()
	}
	return n
}

// Literal concatenates a text element's token literals, for debugging and
// the token round-trip property (spec.md §8).
func (e *Element) Literal() string {
	var s string
	for _, t := range e.Tokens {
		s += t.Text
	}
	return s
}
