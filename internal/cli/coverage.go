package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/evm-deployment-info/internal/cli/render"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// NewCoverageCmd creates the coverage command
func NewCoverageCmd() *cobra.Command {
	var (
		jsonOutput     bool
		incompleteOnly bool
		networks       []string
	)

	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Show which network families are deployed on mainnet and testnet",
		Long: `Group deployed networks into families and report, per family, whether
at least one mainnet and one testnet network hold deployments.`,
		Example: `  # Families missing a mainnet or a testnet deployment
  evm-deployment-info coverage --incomplete`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckCoverage.Run(cmd.Context(), usecase.CheckCoverageParams{
				IncompleteOnly: incompleteOnly,
				Networks:       networks,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				out := &outputFlags{json: true}
				return out.write(cmd, func(w io.Writer) error {
					return render.WriteJSON(w, render.CoverageJSON(result))
				})
			}

			printWarnings(cmd, result.Warnings)
			return render.NewCoverageRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&incompleteOnly, "incomplete", false, "Only show families missing a mainnet or a testnet")
	cmd.Flags().StringSliceVarP(&networks, "network", "n", nil, "Only check these networks or families (repeatable)")

	return cmd
}
