package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-diamond/internal/cli/render"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// NewSelectorsCmd creates the selectors command
func NewSelectorsCmd() *cobra.Command {
	var only, except, remove []string

	cmd := &cobra.Command{
		Use:   "selectors <contract>",
		Short: "List the selectors a contract registers as a diamond facet",
		Long: `List the function selectors of a compiled contract, in ABI declaration
order, as they would be passed to diamondCut. init(bytes) is never included.

The contract can be given as:
- Contract name: "ERC20Facet"
- Source path and name: "src/facets/ERC20Facet.sol:ERC20Facet"
- Artifact file: "out/ERC20Facet.sol/ERC20Facet.json"

--only and --except match against the contract's ABI and ignore signatures
it does not declare. --remove takes standalone declarations and fails on any
it cannot parse. Each flag can be repeated; signatures contain commas so they
are never split.

Examples:
  treb-diamond selectors ERC20Facet
  treb-diamond selectors ERC20Facet --only "transfer(address,uint256)" --only "approve(address,uint256)"
  treb-diamond selectors OwnershipFacet --except "owner()"
  treb-diamond selectors ERC20Facet --remove "function supportsInterface(bytes4) view returns (bool)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowSelectors.Run(cmd.Context(), usecase.ShowSelectorsParams{
				Contract: args[0],
				Only:     only,
				Except:   except,
				Remove:   remove,
			})
			if err != nil {
				return err
			}

			return render.NewSelectorsRenderer(cmd.OutOrStdout(), app.Config.Format).Render(result)
		},
	}

	cmd.Flags().StringArrayVar(&only, "only", nil, "Keep only the selectors of this signature (repeatable)")
	cmd.Flags().StringArrayVar(&except, "except", nil, "Drop the selector of this signature (repeatable)")
	cmd.Flags().StringArrayVar(&remove, "remove", nil, "Drop the selector of this function declaration, validated strictly (repeatable)")

	return cmd
}
