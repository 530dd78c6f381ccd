package render

import (
	"fmt"
	"io"

	"github.com/npillmayer/cells"
	"github.com/npillmayer/cells/axis"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the cells of src as an HTML table to w. The table has a header
// row and one row per cell, holding the cell's label and its value.
//
// If config is nil, cells are labeled by index. Widths, glyphs and colors do
// not apply to HTML output.
func HTML[V any](w io.Writer, src cells.Source[V], value func(V) float64, config *Config) error {
	if w == nil || src == nil || value == nil {
		return fmt.Errorf("%w: nil argument", cells.ErrIllegalArguments)
	}
	if config == nil {
		config = &Config{}
	}
	if err := config.validate(); err != nil {
		return err
	}
	table := TableNode(src, value, config.Axis)
	return html.Render(w, table)
}

// TableNode creates the node tree of a <table> element for the cells of src.
// The axis may be nil.
func TableNode[V any](src cells.Source[V], value func(V) float64, ax axis.Axis) *html.Node {
	table := element(atom.Table)
	thead := element(atom.Thead)
	thead.AppendChild(tableRow(atom.Th, "bin", "value"))
	table.AppendChild(thead)
	tbody := element(atom.Tbody)
	for _, r := range tabulate(src, value, ax) {
		tbody.AppendChild(tableRow(atom.Td, r.label, r.text))
	}
	table.AppendChild(tbody)
	T().Debugf("created HTML table for %d cells", src.Len())
	return table
}

func tableRow(cell atom.Atom, texts ...string) *html.Node {
	tr := element(atom.Tr)
	for _, s := range texts {
		td := element(cell)
		td.AppendChild(&html.Node{Type: html.TextNode, Data: s})
		tr.AppendChild(td)
	}
	return tr
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
