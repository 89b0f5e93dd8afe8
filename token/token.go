// Package token implements the tokenizer that converts a run of characters
// inside a text element into a flat sequence of typed tokens (spec.md §4.1).
//
// Classification mirrors the shape of the teacher's UAX #14 classifier
// (a rune -> class function plus a small enum) but the class set here is
// the fixed, small alphabet spec.md §3 defines for fixed-pitch typewriter
// output, not full Unicode line breaking.
package token

// Kind is the tagged-union variant of a Token.
type Kind int

const (
	Word Kind = iota
	Space
	Punct
	Open
	Close
	Symbol
	LineBreak
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Space:
		return "Space"
	case Punct:
		return "Punct"
	case Open:
		return "Open"
	case Close:
		return "Close"
	case Symbol:
		return "Symbol"
	case LineBreak:
		return "LineBreak"
	default:
		return "Unknown"
	}
}

// Flags is a bitset of format_flags (spec.md §3).
type Flags uint8

const (
	// FS: full stop. Set by '!', '.', '?', ':'.
	FS Flags = 1 << iota
	// EOS: end of sentence. Set by '!', '.', '?', and the long dashes/ellipsis.
	EOS
	// DLB: discretionary line break.
	DLB
	// DOB: discardable on break (the token is dropped when a break lands on it).
	DOB
	// MLB: mandatory line break.
	MLB
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// DisplayFlags is the style bitset tokens carry; downstream segmentation
// only starts a new Segment when these change (spec.md §3, §4.4).
type DisplayFlags uint8

const (
	Emphasis DisplayFlags = 1 << iota
)

func (f DisplayFlags) Has(bit DisplayFlags) bool { return f&bit != 0 }

// Token is spec.md §3's tagged token union, flattened into one struct: Kind
// discriminates which fields are meaningful (Text is always meaningful,
// Format/Display flags are always attached, even if zero).
type Token struct {
	Kind    Kind
	Text    string
	Display DisplayFlags
	Format  Flags
}

// Len is the token's contribution to line width: its literal character
// count, except a LineBreak always contributes 0 (spec.md §3).
func (t Token) Len() int {
	if t.Kind == LineBreak {
		return 0
	}
	return len([]rune(t.Text))
}

// IsSpace reports whether the token is a Space (convenience for the
// tokenizer/break-point code, which checks this often).
func (t Token) IsSpace() bool { return t.Kind == Space }
