package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
	"github.com/trebuchet-org/treb-diamond/pkg/diamond"
)

// SelectorsRenderer renders the selectors derived for a contract
type SelectorsRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewSelectorsRenderer creates a new selectors renderer
func NewSelectorsRenderer(out io.Writer, format config.OutputFormat) *SelectorsRenderer {
	return &SelectorsRenderer{
		out:    out,
		format: format,
	}
}

// Render renders the selectors result
func (r *SelectorsRenderer) Render(result *usecase.ShowSelectorsResult) error {
	if isStructured(r.format) {
		return WriteStructured(r.out, r.format, result)
	}

	nameColor := color.New(color.FgCyan, color.Bold)
	fmt.Fprintf(r.out, "📋 Selectors for %s (%d of %d functions)\n\n",
		nameColor.Sprint(result.Name), len(result.Selectors), result.Functions)

	if len(result.Selectors) == 0 {
		fmt.Fprintln(r.out, "  No selectors")
	} else {
		t := newTable(table.Row{"Selector", "Signature"})
		for _, entry := range result.Selectors {
			t.AppendRow(table.Row{entry.Selector.Hex(), entry.Signature})
		}
		fmt.Fprintln(r.out, t.Render())
	}

	if result.Initializer {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, color.New(color.Faint).Sprintf("  %s is never registered and was skipped", diamond.InitializerSignature))
	}

	if len(result.Unresolved) > 0 {
		fmt.Fprintln(r.out)
		for _, u := range result.Unresolved {
			msg := fmt.Sprintf("%s is not declared by %s and was ignored", u.Signature, result.Name)
			if len(u.Suggestions) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(u.Suggestions, ", "))
			}
			fmt.Fprintln(r.out, FormatWarning(msg))
		}
	}

	return nil
}

var _ Renderer[*usecase.ShowSelectorsResult] = (*SelectorsRenderer)(nil)
