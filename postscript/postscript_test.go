package postscript

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SCKelemen/screenplay/config"
	"github.com/SCKelemen/screenplay/paginate"
	"github.com/SCKelemen/screenplay/wrap"
)

func TestWriteSubstitutesPrologueMarkers(t *testing.T) {
	pages := []*paginate.Page{{Number: 1, Height: 5, Title: "My Title"}}
	var buf bytes.Buffer
	if err := Write(&buf, pages, "", config.DefaultGrid); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "My Title") {
		t.Errorf("expected substituted title in output: %q", out)
	}
	if strings.Contains(out, "@title@") || strings.Contains(out, "@pages@") {
		t.Errorf("markers not fully substituted: %q", out)
	}
}

func TestEncodeLatin9ReplacesUnsupportedRunes(t *testing.T) {
	out := EncodeLatin9("café 中") // "café 中"
	if !bytes.Contains(out, []byte("caf")) {
		t.Errorf("expected ascii prefix preserved, got %q", out)
	}
	if !bytes.Contains(out, []byte("?")) {
		t.Errorf("expected unsupported CJK rune replaced with ?, got %q", out)
	}
}

func TestWritePageEmitsMovetoForEachSegment(t *testing.T) {
	pages := []*paginate.Page{
		{
			Number: 1,
			Height: 2,
			Body: [][]wrap.Line{
				{{Column: 10, Segments: []wrap.Segment{{Text: "INT. OFFICE"}}}},
				nil,
			},
		},
	}
	var buf bytes.Buffer
	if err := Write(&buf, pages, "", config.DefaultGrid); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "moveto") {
		t.Errorf("expected at least one moveto op, got %q", buf.String())
	}
}
