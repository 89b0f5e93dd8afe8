package element

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SCKelemen/screenplay/config"
	"github.com/SCKelemen/screenplay/token"
)

// frame is a partially built element on the Builder's pushdown stack
// (spec.md §4.2).
type frame struct {
	tag      Tag
	ignored  bool
	attrs    Attrs
	children []*Element
	tokens   []token.Token
}

// Builder is the pushdown automaton of spec.md §4.2: it maintains a stack
// of in-progress elements and, on close, finalizes each one (trims
// whitespace, applies per-tag post-processing, computes its break
// descriptor). Events are pushed in by a markup event source (see
// package xmlreader); Builder has no XML awareness of its own, matching
// spec.md §1's framing of the event source as an external collaborator.
type Builder struct {
	grid config.Grid
	warn func(string)
	tz   token.Tokenizer

	stack []*frame
	root  *Element
}

// NewBuilder creates a Builder targeting grid. warn receives diagnostics
// for unknown tags and unknown escapes (spec.md §7); nil discards them.
func NewBuilder(grid config.Grid, warn func(string)) *Builder {
	b := &Builder{grid: grid, warn: warn}
	b.tz = token.Tokenizer{Warn: warn}
	return b
}

// OpenTag pushes a new frame for the named tag, seeded from its attribute
// defaults (spec.md §6) and overridden by the attributes present on the
// tag. An unrecognized tag is ignored per spec.md §7: a placeholder frame
// absorbs it and any nested content without effect.
func (b *Builder) OpenTag(name string, xmlAttrs map[string]string) {
	tag, ok := TagByName(name)
	if !ok {
		if b.warn != nil {
			b.warn(fmt.Sprintf("unknown tag <%s> ignored", name))
		}
		b.stack = append(b.stack, &frame{ignored: true})
		return
	}

	var parent *frame
	if len(b.stack) > 0 {
		parent = b.stack[len(b.stack)-1]
	}

	actNumber := 0
	afterOpen := false
	if parent != nil {
		switch tag {
		case TagAct:
			for _, c := range parent.children {
				if c.Tag == TagAct {
					actNumber++
				}
			}
			actNumber++
		case TagSlug:
			if n := len(parent.children); n > 0 {
				afterOpen = parent.children[n-1].Tag == TagOpen
			}
		}
	}

	attrs := Defaults(tag, b.grid, actNumber, afterOpen)
	applyXMLAttrs(&attrs, tag, xmlAttrs)
	if tag == TagScreenplay {
		attrs.Numbering = NumberingByName(xmlAttrs["numbering"])
	}
	b.stack = append(b.stack, &frame{tag: tag, attrs: attrs})
}

// applyXMLAttrs overrides tag-default attributes with the ones present on
// the markup tag (spec.md §6: "d and p accept an integer indent
// attribute; slug accepts integer number and single-character addition").
func applyXMLAttrs(a *Attrs, tag Tag, xmlAttrs map[string]string) {
	switch tag {
	case TagD, TagP:
		if v, ok := xmlAttrs["indent"]; ok {
			if n, err := strconv.Atoi(v); err == nil {
				a.Indent = n
			}
		}
	case TagSlug:
		if v, ok := xmlAttrs["number"]; ok {
			if n, err := strconv.Atoi(v); err == nil {
				a.Number = n
			}
		}
		if v, ok := xmlAttrs["addition"]; ok && len(v) > 0 {
			a.HasAddition = true
			a.Addition = v[0]
		}
	}
}

// Text appends tokenized characters to the top element's token list
// (spec.md §4.2's "On text event").
func (b *Builder) Text(s string) {
	if len(b.stack) == 0 {
		return
	}
	top := b.stack[len(b.stack)-1]
	if top.ignored {
		return
	}
	top.tokens = append(top.tokens, b.tz.Tokenize(s)...)
}

// CloseTag pops the top frame and notifies its parent (spec.md §4.2's "On
// child-close"): Container parents append the finalized child; Text
// parents absorb only Em (inlining its tokens, tagged with the emphasis
// display flag) and Br (appending a LineBreak token). Any other child
// shape runs full finalization and is appended as a tree node.
func (b *Builder) CloseTag() error {
	if len(b.stack) == 0 {
		return fmt.Errorf("close-tag with empty element stack")
	}
	child := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if child.ignored {
		return nil
	}

	var parent *frame
	if len(b.stack) > 0 {
		parent = b.stack[len(b.stack)-1]
	}

	if parent != nil && !parent.ignored && ShapeOf(parent.tag) == ShapeText {
		switch child.tag {
		case TagEm:
			for _, t := range child.tokens {
				t.Display |= token.Emphasis
				parent.tokens = append(parent.tokens, t)
			}
			return nil
		case TagBr:
			parent.tokens = append(parent.tokens, token.Token{Kind: token.LineBreak, Format: token.MLB})
			return nil
		}
	}

	el := b.finalize(child)
	if parent == nil {
		b.root = el
		return nil
	}
	if !parent.ignored {
		parent.children = append(parent.children, el)
	}
	return nil
}

// finalize runs spec.md §4.2's element-close steps and computes the
// element's break descriptor.
func (b *Builder) finalize(f *frame) *Element {
	switch ShapeOf(f.tag) {
	case ShapeContainer:
		return &Element{Tag: f.tag, Shape: ShapeContainer, Children: f.children, Attrs: f.attrs}

	case ShapeEmpty:
		return &Element{Tag: f.tag, Shape: ShapeEmpty, Break: computeBreak(f.tag, nil, 0)}

	default: // ShapeText
		toks := trimSpaceEdges(f.tokens)
		if f.tag == TagD || f.tag == TagP {
			stripLeadingSentenceFlags(toks)
		}
		if f.attrs.Indent > 0 {
			indent := token.Token{Kind: token.Space, Text: strings.Repeat(" ", f.attrs.Indent)}
			toks = append([]token.Token{indent}, toks...)
		}
		br := computeBreak(f.tag, toks, f.attrs.Width())
		return &Element{Tag: f.tag, Shape: ShapeText, Attrs: f.attrs, Tokens: toks, Break: br}
	}
}

// trimSpaceEdges removes leading/trailing Space tokens (spec.md §3
// invariant). Re-running it is a no-op, since a slice already trimmed has
// no edge Space tokens to remove.
func trimSpaceEdges(toks []token.Token) []token.Token {
	start := 0
	for start < len(toks) && toks[start].Kind == token.Space {
		start++
	}
	end := len(toks)
	for end > start && toks[end-1].Kind == token.Space {
		end--
	}
	return toks[start:end]
}

// stripLeadingSentenceFlags clears FS|EOS from a leading Punct token so a
// D/P element never starts mid-sentence (spec.md §4.2 step 2).
func stripLeadingSentenceFlags(toks []token.Token) {
	if len(toks) > 0 && toks[0].Kind == token.Punct {
		toks[0].Format &^= token.FS | token.EOS
	}
}

// Finish runs the post-passes of spec.md §4.2 (build_trains,
// mark_scene_endings) over the finished tree and returns its root. It must
// be called exactly once, after the <screenplay> root element has closed.
func (b *Builder) Finish() (*Element, error) {
	if b.root == nil {
		return nil, fmt.Errorf("markup syntax: no root <screenplay> element")
	}
	var body *Element
	for _, c := range b.root.Children {
		if c.Tag == TagBody {
			body = c
			break
		}
	}
	if body != nil {
		buildTrains(body)
		markSceneEndings(body)
	}
	return b.root, nil
}
