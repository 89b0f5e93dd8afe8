//go:build !no_yaml

// Package dump serializes an element tree to YAML for the cmd/screenplay
// -e/--elements debug flag, mirroring the teacher's
// serialize.ToYAML/FromYAML JSON-mirror-then-marshal shape
// (github.com/SCKelemen/layout's serialize/yaml.go): convert to a plain
// JSON-shaped tree first, then hand that to yaml.Marshal.
package dump

import (
	"gopkg.in/yaml.v3"

	"github.com/SCKelemen/screenplay/element"
)

// nodeJSON is the plain, YAML-friendly mirror of element.Element.
type nodeJSON struct {
	Tag        string     `yaml:"tag"`
	Shape      string     `yaml:"shape"`
	Children   []nodeJSON `yaml:"children,omitempty"`
	Literal    string     `yaml:"literal,omitempty"`
	AtSceneEnd bool       `yaml:"at_scene_end,omitempty"`
	Break      breakJSON  `yaml:"break_info"`
}

type breakJSON struct {
	Kind   string `yaml:"kind"`
	Height int    `yaml:"height,omitempty"`
}

func shapeName(s element.Shape) string {
	switch s {
	case element.ShapeContainer:
		return "Container"
	case element.ShapeEmpty:
		return "Empty"
	default:
		return "Text"
	}
}

func breakKindName(k element.BreakKind) string {
	switch k {
	case element.BreakMandatory:
		return "Mandatory"
	case element.BreakForbidden:
		return "Forbidden"
	case element.BreakAtomic:
		return "Atomic"
	case element.BreakDisposable:
		return "Disposable"
	case element.BreakPointKind:
		return "Point"
	case element.BreakList:
		return "List"
	default:
		return "None"
	}
}

func nodeToJSON(e *element.Element) nodeJSON {
	n := nodeJSON{
		Tag:        e.Tag.String(),
		Shape:      shapeName(e.Shape),
		AtSceneEnd: e.AtSceneEnd,
		Break:      breakJSON{Kind: breakKindName(e.Break.Kind), Height: e.Break.Height},
	}
	if e.Shape == element.ShapeText {
		n.Literal = e.Literal()
	}
	for _, c := range e.Children {
		n.Children = append(n.Children, nodeToJSON(c))
	}
	return n
}

// ToYAML converts an element tree to YAML bytes.
func ToYAML(root *element.Element) ([]byte, error) {
	return yaml.Marshal(nodeToJSON(root))
}
