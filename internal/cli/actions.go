package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-diamond/internal/cli/render"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// NewActionsCmd creates the actions command
func NewActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the diamondCut facet cut actions and their codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			actions := usecase.NewListFacetActions().Run()
			return render.NewActionsRenderer(cmd.OutOrStdout(), format).Render(actions)
		},
	}
}
