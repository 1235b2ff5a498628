package cli

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-diamond/internal/adapters/progress"
	"github.com/trebuchet-org/treb-diamond/internal/app"
	"github.com/trebuchet-org/treb-diamond/internal/config"
	domainconfig "github.com/trebuchet-org/treb-diamond/internal/domain/config"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// standaloneCommands run without a Foundry project
var standaloneCommands = []string{"version", "help", "completion", "actions", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treb-diamond",
		Short: "Diamond (EIP-2535) facet and selector tooling for Foundry",
		Long: `treb-diamond derives the function selectors a contract registers as a
diamond facet and locates facets in a diamond's facet records.

Contracts are read from the Foundry artifacts directory, run forge build first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if lo.Contains(standaloneCommands, cmd.Name()) {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			var sink usecase.ProgressSink = progress.NewSpinnerSink(cmd.ErrOrStderr())
			if v.GetBool("non_interactive") {
				sink = progress.NewNopSink()
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (same as --format json)")
	rootCmd.PersistentFlags().String("format", string(domainconfig.OutputTable), "Output format: table, json or yaml")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to query, a foundry.toml rpc_endpoints name or an RPC URL")
	rootCmd.PersistentFlags().String("profile", "default", "Foundry profile")
	rootCmd.PersistentFlags().String("out", "", "Foundry artifacts directory (defaults to the profile's out)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Command timeout (defaults to 1m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})

	selectorsCmd := NewSelectorsCmd()
	selectorsCmd.GroupID = "main"
	rootCmd.AddCommand(selectorsCmd)

	facetCmd := NewFacetCmd()
	facetCmd.GroupID = "main"
	rootCmd.AddCommand(facetCmd)

	actionsCmd := NewActionsCmd()
	actionsCmd.GroupID = "main"
	rootCmd.AddCommand(actionsCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// outputFormat reads the output format from flags, for commands that run without an app
func outputFormat(cmd *cobra.Command) (domainconfig.OutputFormat, error) {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return domainconfig.OutputJSON, nil
	}
	format, _ := cmd.Flags().GetString("format")
	switch f := domainconfig.OutputFormat(format); f {
	case domainconfig.OutputTable, domainconfig.OutputJSON, domainconfig.OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}
}
