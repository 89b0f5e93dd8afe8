// Command screenplay converts a screenplay markup document into paginated
// PostScript (spec.md §6): `screenplay [-e|--elements] [--grid FILE]
// [--prologue FILE] INPUT`.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/SCKelemen/screenplay/config"
	"github.com/SCKelemen/screenplay/internal/dump"
	"github.com/SCKelemen/screenplay/paginate"
	"github.com/SCKelemen/screenplay/postscript"
	"github.com/SCKelemen/screenplay/xmlreader"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("screenplay", pflag.ContinueOnError)
	elements := flags.BoolP("elements", "e", false, "dump the element tree instead of PostScript")
	gridPath := flags.String("grid", "", "YAML grid-override file")
	prologuePath := flags.String("prologue", "", "PostScript prologue template")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: screenplay [-e|--elements] [--grid FILE] [--prologue FILE] INPUT")
		return 2
	}
	inputPath := flags.Arg(0)

	grid := config.DefaultGrid
	if *gridPath != "" {
		g, err := config.Load(*gridPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "screenplay: %v\n", err)
			return 1
		}
		grid = g
	}

	in, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "screenplay: input io error: %v\n", err)
		return 1
	}
	defer in.Close()

	doc, err := xmlreader.Read(in, xmlreader.Options{Grid: grid, Diagnostics: os.Stderr})
	if err != nil {
		fmt.Fprintf(os.Stderr, "screenplay: %v\n", err)
		return 1
	}

	if *elements {
		out, err := dump.ToYAML(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "screenplay: %v\n", err)
			return 1
		}
		os.Stderr.Write(out)
		return 0
	}

	pages, err := paginate.Paginate(doc, grid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "screenplay: %v\n", err)
		return 1
	}

	if err := postscript.Write(os.Stdout, pages, *prologuePath, grid); err != nil {
		fmt.Fprintf(os.Stderr, "screenplay: %v\n", err)
		return 1
	}

	return 0
}
