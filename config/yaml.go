//go:build !no_yaml
// +build !no_yaml

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// override is the YAML shape of a grid-override file: only the fields a
// caller wants to change from DefaultGrid need be present. Same partial-
// override philosophy as the teacher's Style structs, where absent zero
// fields fall back to a base value.
type override struct {
	CharWidth  *float64 `yaml:"char_width"`
	LineHeight *float64 `yaml:"line_height"`

	TopLine    *int `yaml:"top_line"`
	BottomLine *int `yaml:"bottom_line"`
	HeaderLine *int `yaml:"header_line"`

	LeftMargin  *int `yaml:"left_margin"`
	RightMargin *int `yaml:"right_margin"`
	Center      *int `yaml:"center"`
	Indent      *int `yaml:"indent"`

	PBegin *int `yaml:"p_begin"`
	PEnd   *int `yaml:"p_end"`
	DBegin *int `yaml:"d_begin"`
	DEnd   *int `yaml:"d_end"`

	DirBegin *int `yaml:"dir_begin"`
	DirEnd   *int `yaml:"dir_end"`
	CueBegin *int `yaml:"cue_begin"`

	TransBegin *int `yaml:"trans_begin"`
	TransEnd   *int `yaml:"trans_end"`

	PageWidthPt  *float64 `yaml:"page_width_pt"`
	PageHeightPt *float64 `yaml:"page_height_pt"`
}

// Load reads a grid-override YAML file and applies it on top of
// DefaultGrid. Requires: go get gopkg.in/yaml.v3 (disable with the
// no_yaml build tag, matching the teacher's serialize/yaml.go).
func Load(path string) (Grid, error) {
	g := DefaultGrid
	data, err := os.ReadFile(path)
	if err != nil {
		return g, fmt.Errorf("read grid config %q: %w", path, err)
	}
	var o override
	if err := yaml.Unmarshal(data, &o); err != nil {
		return g, fmt.Errorf("parse grid config %q: %w", path, err)
	}
	applyOverride(&g, o)
	return g, nil
}

func applyOverride(g *Grid, o override) {
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&g.CharWidth, o.CharWidth)
	setF(&g.LineHeight, o.LineHeight)
	set(&g.TopLine, o.TopLine)
	set(&g.BottomLine, o.BottomLine)
	set(&g.HeaderLine, o.HeaderLine)
	set(&g.LeftMargin, o.LeftMargin)
	set(&g.RightMargin, o.RightMargin)
	set(&g.Center, o.Center)
	set(&g.Indent, o.Indent)
	set(&g.PBegin, o.PBegin)
	set(&g.PEnd, o.PEnd)
	set(&g.DBegin, o.DBegin)
	set(&g.DEnd, o.DEnd)
	set(&g.DirBegin, o.DirBegin)
	set(&g.DirEnd, o.DirEnd)
	set(&g.CueBegin, o.CueBegin)
	set(&g.TransBegin, o.TransBegin)
	set(&g.TransEnd, o.TransEnd)
	setF(&g.PageWidthPt, o.PageWidthPt)
	setF(&g.PageHeightPt, o.PageHeightPt)
}
