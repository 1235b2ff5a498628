package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-diamond/internal/cli/render"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// NewFacetCmd creates the facet command
func NewFacetCmd() *cobra.Command {
	var diamondAddr string
	var facetsFile string

	cmd := &cobra.Command{
		Use:   "facet <facet-address>",
		Short: "Find the index of a facet in a diamond's facet records",
		Long: `Find the index of a facet in a diamond's facet records.

Facet records are read either from a deployed diamond through the
IDiamondLoupe facets() call (--diamond with --network), or from a JSON or
YAML file of {facetAddress, functionSelectors} records (--facets-file).

Loupe addresses are compared checksummed. File addresses are compared
exactly as written.

Examples:
  treb-diamond facet 0x1234... --diamond 0xabcd... --network sepolia
  treb-diamond facet 0x1234... --facets-file facets.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.LocateFacet.Run(cmd.Context(), usecase.LocateFacetParams{
				FacetAddress: args[0],
				Diamond:      diamondAddr,
				FacetsFile:   facetsFile,
			})
			if err != nil {
				return err
			}

			return render.NewFacetRenderer(cmd.OutOrStdout(), app.Config.Format).Render(result)
		},
	}

	cmd.Flags().StringVarP(&diamondAddr, "diamond", "d", "", "Diamond address to query through the loupe")
	cmd.Flags().StringVarP(&facetsFile, "facets-file", "f", "", "JSON or YAML file of facet records")
	cmd.MarkFlagsMutuallyExclusive("diamond", "facets-file")
	cmd.MarkFlagsOneRequired("diamond", "facets-file")

	return cmd
}
