package token

// Tokenizer is the single-pass FSM of spec.md §4.1. States {Scan, Close,
// Escape, Open, Punct, Space, Symbol, Word} are realized here as a switch
// over the character class of the current rune, with Scan as the
// implicit hub between iterations — the same "classify, then consume a
// maximal run" shape as the teacher's text.go word-by-word wrapper, but
// operating on runes rather than whitespace-split words.
type Tokenizer struct {
	// Warn receives a message for every unknown escape sequence
	// encountered; nil discards warnings.
	Warn func(msg string)
}

// Tokenize converts s into the token sequence spec.md §4.1 defines.
func (tz Tokenizer) Tokenize(s string) []Token {
	runes := []rune(s)
	var toks []Token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch classify(r) {
		case classWord:
			j := i + 1
			for j < len(runes) && classify(runes[j]) == classWord {
				j++
			}
			toks = append(toks, Token{Kind: Word, Text: string(runes[i:j])})
			i = j

		case classSpace:
			j := i + 1
			for j < len(runes) && classify(runes[j]) == classSpace {
				j++
			}
			toks = appendSpace(toks, doubleSpace(toks))
			i = j

		case classPunct:
			spec := punctRunes[r]
			toks = append(toks, Token{Kind: Punct, Text: spec.text, Format: spec.flags})
			i++

		case classOpen:
			toks = append(toks, Token{Kind: Open, Text: openRunes[r]})
			i++

		case classClose:
			toks = append(toks, Token{Kind: Close, Text: closeRunes[r]})
			i++

		case classSymbol:
			toks = append(toks, Token{Kind: Symbol, Text: string(r)})
			i++

		case classEscape:
			var consumed int
			toks, consumed = tz.escape(toks, runes[i+1:])
			i += 1 + consumed

		default: // classOther: unclassified punctuation-like rune, pass through as Symbol.
			toks = append(toks, Token{Kind: Symbol, Text: string(r)})
			i++
		}
	}
	return toks
}

// escape handles the character(s) following a backslash. rest is the input
// after the backslash; it returns the updated token list and the number of
// runes of rest consumed by the escape.
func (tz Tokenizer) escape(toks []Token, rest []rune) ([]Token, int) {
	if len(rest) == 0 {
		if tz.Warn != nil {
			tz.Warn("trailing backslash with no following character")
		}
		return toks, 0
	}
	switch {
	case classify(rest[0]) == classSpace:
		j := 1
		for j < len(rest) && classify(rest[j]) == classSpace {
			j++
		}
		clearTrailingSentenceEnd(toks)
		toks = append(toks, Token{Kind: Space, Text: " ", Format: DLB | DOB})
		return toks, j
	case rest[0] == '\\':
		toks = append(toks, Token{Kind: Symbol, Text: `\`})
		return toks, 1
	default:
		if tz.Warn != nil {
			tz.Warn("unknown escape sequence")
		}
		return toks, 0
	}
}

// appendSpace appends a Space token unless the preceding token forces a
// mandatory break, in which case the space is discarded entirely
// (spec.md §4.1 "Space emission").
func appendSpace(toks []Token, double bool) []Token {
	if n := len(toks); n > 0 && toks[n-1].Format.Has(MLB) {
		return toks
	}
	text := " "
	if double {
		text = "  "
	}
	return append(toks, Token{Kind: Space, Text: text, Format: DLB | DOB})
}

// doubleSpace reports whether the most recent non-Close preceding token is
// a Punct carrying FS, in which case the space about to be emitted gets
// the sentence-end double-space literal.
func doubleSpace(toks []Token) bool {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind == Close {
			continue
		}
		return toks[i].Kind == Punct && toks[i].Format.Has(FS)
	}
	return false
}

// clearTrailingSentenceEnd removes FS|EOS from the most recent preceding
// Punct token, implementing the "EXT.\ LOBBY is one sentence" rule.
func clearTrailingSentenceEnd(toks []Token) {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind == Punct {
			toks[i].Format &^= FS | EOS
			return
		}
	}
}
