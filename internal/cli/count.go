package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/evm-deployment-info/internal/cli/render"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// NewCountCmd creates the count command
func NewCountCmd() *cobra.Command {
	var (
		jsonOutput bool
		networks   []string
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the number of deployments",
		Long: `Count the deployment artifacts found in the deployments directory.

Each sub-directory is a network and each JSON artifact in it a deployment.
Artifacts without a valid address are skipped with a warning.`,
		Example: `  # Count all deployments
  evm-deployment-info count

  # Count deployments on every Ethereum network
  evm-deployment-info count --network Ethereum`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CountDeployments.Run(cmd.Context(), usecase.CountDeploymentsParams{
				Networks: networks,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				out := &outputFlags{json: true}
				return out.write(cmd, func(w io.Writer) error {
					return render.WriteJSON(w, render.CountJSON(result))
				})
			}

			printWarnings(cmd, result.Warnings)
			return render.NewCountRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringSliceVarP(&networks, "network", "n", nil, "Only count these networks or families (repeatable)")

	return cmd
}
