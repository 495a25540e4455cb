package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/evm-deployment-info/internal/adapters/progress"
	"github.com/trebuchet-org/evm-deployment-info/internal/app"
	"github.com/trebuchet-org/evm-deployment-info/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "evm-deployment-info",
		Short: "A CLI tool for analyzing hardhat deployments",
		Long: `evm-deployment-info reads the deployments a Hardhat project declares and the
artifacts hardhat-deploy wrote to disk, and reports counts, listings,
discrepancies and mainnet/testnet coverage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(cmd)

			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}

			// No spinner when the output is meant for another program
			sink := progress.NewSink(os.Stderr, machineOutput(cmd))

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return err
			}
			if appInstance.Config.NoColor {
				color.NoColor = true
			}
			appInstance.Logger.Debug("project detected",
				"root", appInstance.Config.ProjectRoot,
				"deployments", appInstance.Config.DeploymentsDir)

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "No command provided. Use --help to see available commands.")
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("project", "p", "", "Root directory of the hardhat project (default: nearest directory with a hardhat config)")
	rootCmd.PersistentFlags().StringP("root", "r", "", "Root directory of the hardhat project")
	_ = rootCmd.PersistentFlags().MarkHidden("root")
	rootCmd.PersistentFlags().String("deployments-dir", "", "Deployments directory, relative to the project root (default: deployments)")
	rootCmd.PersistentFlags().String("manifest", "", "Declared deployments file (default: deployments.{yaml,yml,toml,json})")
	rootCmd.PersistentFlags().String("networks-file", "", "YAML or TOML file extending the built-in network table")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	for _, cmd := range []*cobra.Command{
		NewCountCmd(),
		NewListCmd(),
		NewAuditCmd(),
		NewCoverageCmd(),
	} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}

	// Management commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// machineOutput reports whether the command was asked for JSON or CSV
func machineOutput(cmd *cobra.Command) bool {
	for _, name := range []string{"json", "csv"} {
		if on, err := cmd.Flags().GetBool(name); err == nil && on {
			return true
		}
	}
	return false
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
