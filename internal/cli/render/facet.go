package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// FacetRenderer renders the position of a located facet
type FacetRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewFacetRenderer creates a new facet renderer
func NewFacetRenderer(out io.Writer, format config.OutputFormat) *FacetRenderer {
	return &FacetRenderer{
		out:    out,
		format: format,
	}
}

// Render renders the located facet
func (r *FacetRenderer) Render(result *usecase.LocateFacetResult) error {
	if isStructured(r.format) {
		return WriteStructured(r.out, r.format, result)
	}

	fmt.Fprintf(r.out, "💎 Facet %s is at index %s of %d (%s)\n",
		color.New(color.FgCyan, color.Bold).Sprint(result.Facet.Address),
		color.New(color.FgGreen, color.Bold).Sprint(result.Index),
		result.Total,
		result.Source,
	)

	if len(result.Facet.Selectors) == 0 {
		fmt.Fprintln(r.out, "\n  No selectors registered")
		return nil
	}

	fmt.Fprintln(r.out)
	t := newTable(table.Row{"#", "Selector"})
	for i, sel := range result.Facet.Selectors {
		t.AppendRow(table.Row{i, sel.Hex()})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[*usecase.LocateFacetResult] = (*FacetRenderer)(nil)
