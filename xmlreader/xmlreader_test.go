package xmlreader

import (
	"strings"
	"testing"

	"github.com/SCKelemen/screenplay/config"
	"github.com/SCKelemen/screenplay/element"
)

func TestReadMinimalDocument(t *testing.T) {
	doc := `<screenplay numbering="full">
		<head>
			<title>A Title</title>
			<authors><fullName>Author One</fullName></authors>
		</head>
		<body>
			<slug number="5">INT. OFFICE - DAY</slug>
			<cue>ALICE</cue>
			<d>Hello there.</d>
		</body>
	</screenplay>`

	root, err := Read(strings.NewReader(doc), Options{Grid: config.DefaultGrid})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if root.Tag != element.TagScreenplay {
		t.Fatalf("root tag = %v", root.Tag)
	}
	if root.Attrs.Numbering != element.NumberingFull {
		t.Errorf("numbering = %v, want full", root.Attrs.Numbering)
	}
	if len(root.Children) != 2 {
		t.Fatalf("children = %d, want 2 (head, body)", len(root.Children))
	}
}

func TestReadUnknownTagIgnored(t *testing.T) {
	doc := `<screenplay><head><title>T</title><authors><fullName>A</fullName></authors></head>
		<body><bogus>dropped</bogus></body></screenplay>`
	root, err := Read(strings.NewReader(doc), Options{Grid: config.DefaultGrid})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	body := root.Children[1]
	if len(body.Children) != 0 {
		t.Errorf("body children = %+v, want none", body.Children)
	}
}

func TestReadMalformedXMLReturnsMarkupSyntaxError(t *testing.T) {
	_, err := Read(strings.NewReader("<screenplay><head>"), Options{Grid: config.DefaultGrid})
	if err == nil {
		t.Fatal("expected an error for truncated XML")
	}
}
