package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// ActionsRenderer renders the facet cut action codes
type ActionsRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewActionsRenderer creates a new actions renderer
func NewActionsRenderer(out io.Writer, format config.OutputFormat) *ActionsRenderer {
	return &ActionsRenderer{
		out:    out,
		format: format,
	}
}

// Render renders the action list
func (r *ActionsRenderer) Render(actions []usecase.FacetActionInfo) error {
	if isStructured(r.format) {
		return WriteStructured(r.out, r.format, actions)
	}

	t := newTable(table.Row{"Action", "Code"})
	for _, a := range actions {
		t.AppendRow(table.Row{a.Name, a.Code})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[[]usecase.FacetActionInfo] = (*ActionsRenderer)(nil)
