package paginate

import (
	"strings"
	"testing"

	"github.com/SCKelemen/screenplay/config"
	"github.com/SCKelemen/screenplay/element"
)

// smallGrid returns a grid with a short page body so tests can force
// pagination without constructing hundreds of lines of dialogue.
func smallGrid(height int) config.Grid {
	g := config.DefaultGrid
	g.BottomLine = 0
	g.TopLine = height - 1
	return g
}

func minimalDoc(t *testing.T, build func(b *element.Builder)) *element.Element {
	t.Helper()
	b := element.NewBuilder(config.DefaultGrid, nil)
	b.OpenTag("screenplay", nil)
	b.OpenTag("head", nil)
	b.OpenTag("title", nil)
	b.Text("A Title")
	b.CloseTag()
	b.OpenTag("authors", nil)
	b.OpenTag("fullName", nil)
	b.Text("Author")
	b.CloseTag()
	b.CloseTag()
	b.CloseTag() // head
	b.OpenTag("body", nil)
	build(b)
	b.CloseTag() // body
	b.CloseTag() // screenplay
	root, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return root
}

func pageText(p *Page) string {
	var sb strings.Builder
	for _, row := range p.Body {
		for _, frag := range row {
			sb.WriteString(frag.Text())
			sb.WriteString(" ")
		}
	}
	for _, f := range p.Footer {
		sb.WriteString(f.Text())
		sb.WriteString(" ")
	}
	return sb.String()
}

func TestFlyPageIsFirstAndCarriesTitle(t *testing.T) {
	root := minimalDoc(t, func(b *element.Builder) {
		b.OpenTag("p", nil)
		b.Text("Hello.")
		b.CloseTag()
	})
	pg := New(config.DefaultGrid)
	pages, err := pg.Run(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) < 2 {
		t.Fatalf("expected a fly page plus at least one body page, got %d", len(pages))
	}
	if pg.DocTitle() != "A Title" {
		t.Errorf("DocTitle() = %q, want %q", pg.DocTitle(), "A Title")
	}
	if pages[0].Number != 0 {
		t.Errorf("fly page number = %d, want 0 (not a content page)", pages[0].Number)
	}
	if pages[1].Number != 1 {
		t.Errorf("first body page number = %d, want 1", pages[1].Number)
	}
}

func TestActPageBreakForcesNewPage(t *testing.T) {
	root := minimalDoc(t, func(b *element.Builder) {
		b.OpenTag("act", nil)
		b.Text("ACT ONE")
		b.CloseTag()
		b.OpenTag("act", nil)
		b.Text("ACT TWO")
		b.CloseTag()
	})
	pg := New(config.DefaultGrid)
	pages, err := pg.Run(root)
	if err != nil {
		t.Fatal(err)
	}
	// fly page + at least 2 body pages, since the second act's
	// padding_before = -1 forces a break.
	if len(pages) < 3 {
		t.Fatalf("expected >= 3 pages (fly, act one, act two), got %d", len(pages))
	}
}

func TestCueNonOrphanShortDialogueFitsOnePage(t *testing.T) {
	root := minimalDoc(t, func(b *element.Builder) {
		b.OpenTag("cue", nil)
		b.Text("ALICE")
		b.CloseTag()
		b.OpenTag("d", nil)
		b.Text("A short line.")
		b.CloseTag()
	})
	pg := New(config.DefaultGrid)
	pages, err := pg.Run(root)
	if err != nil {
		t.Fatal(err)
	}
	body := pages[1]
	if strings.Contains(pageText(body), "(MORE)") {
		t.Errorf("short dialogue should not need (MORE)")
	}
}

func TestDialogueSplitAcrossPagesEmitsMoreAndContinued(t *testing.T) {
	var words []string
	// Dialogue only breaks at sentence ends, so every word is a sentence.
	for i := 0; i < 40; i++ {
		words = append(words, "Wordwordword.")
	}
	text := strings.Join(words, " ")

	root := minimalDoc(t, func(b *element.Builder) {
		b.OpenTag("slug", map[string]string{"number": "5"})
		b.Text("INT. ROOM - DAY")
		b.CloseTag()
		b.OpenTag("cue", nil)
		b.Text("BOB")
		b.CloseTag()
		b.OpenTag("d", nil)
		b.Text(text)
		b.CloseTag()
	})
	pg := New(smallGrid(8))
	pages, err := pg.Run(root)
	if err != nil {
		t.Fatal(err)
	}

	var all strings.Builder
	for _, p := range pages[1:] {
		all.WriteString(pageText(p))
	}
	joined := all.String()
	if !strings.Contains(joined, "(MORE)") {
		t.Errorf("expected (MORE) in split dialogue output, got %q", joined)
	}
	if !strings.Contains(joined, "(CONTINUED)") {
		t.Errorf("expected (CONTINUED) footer, got %q", joined)
	}
	if !strings.Contains(joined, "CONTINUED:") {
		t.Errorf("expected CONTINUED: header on the following page, got %q", joined)
	}
	if !strings.Contains(joined, "CONT'D") {
		t.Errorf("expected cue reprint suffixed CONT'D, got %q", joined)
	}
}

func TestDirNeverLandsPageSplit(t *testing.T) {
	root := minimalDoc(t, func(b *element.Builder) {
		b.OpenTag("cue", nil)
		b.Text("ALICE")
		b.CloseTag()
		b.OpenTag("dir", nil)
		b.Text("beat")
		b.CloseTag()
		b.OpenTag("d", nil)
		b.Text("Hello.")
		b.CloseTag()
	})
	pg := New(config.DefaultGrid)
	_, err := pg.Run(root)
	if err != nil {
		t.Fatal(err)
	}
}
