// Package xmlreader is the markup event source of spec.md §1: it decodes
// the input XML document with the standard library's encoding/xml and
// feeds open/text/close events into an element.Builder, in the same spirit
// as the teacher's wpt_test_loader.go driving a decoder into a typed tree
// one event at a time.
package xmlreader

import (
	"encoding/xml"
	"io"

	"github.com/SCKelemen/screenplay/config"
	"github.com/SCKelemen/screenplay/diag"
	"github.com/SCKelemen/screenplay/element"
	"github.com/SCKelemen/screenplay/typeseterr"
)

// Options configures a Read call.
type Options struct {
	// Grid resolves element attribute defaults (spec.md §6); the zero
	// value is invalid, callers should pass config.DefaultGrid or an
	// override loaded via config.Load.
	Grid config.Grid
	// Diagnostics receives unknown-tag/unknown-escape warnings; nil
	// discards them.
	Diagnostics io.Writer
}

// Read decodes src as a <screenplay> markup document and builds the
// element tree (spec.md §6's input format).
func Read(src io.Reader, opts Options) (*element.Element, error) {
	var warn func(string)
	if opts.Diagnostics != nil {
		logger := &diag.Logger{Out: opts.Diagnostics}
		warn = logger.Func()
	}
	b := element.NewBuilder(opts.Grid, warn)

	dec := xml.NewDecoder(src)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, typeseterr.MarkupSyntax(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			b.OpenTag(t.Name.Local, attrMap(t.Attr))
		case xml.CharData:
			b.Text(string(t))
		case xml.EndElement:
			if err := b.CloseTag(); err != nil {
				return nil, typeseterr.MarkupSyntax(err)
			}
		}
	}

	root, err := b.Finish()
	if err != nil {
		return nil, typeseterr.MarkupSyntax(err)
	}
	return root, nil
}

func attrMap(attrs []xml.Attr) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}
