package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/evm-deployment-info/internal/cli/render"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var (
		jsonOutput   bool
		deployedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List known networks and their deployments",
		Long: `List the network table used to group and classify networks, along with
the deployment directories that resolve to each entry. Deployment
directories the table doesn't know are listed last.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{
				DeployedOnly: deployedOnly,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				out := &outputFlags{json: true}
				return out.write(cmd, func(w io.Writer) error {
					return render.WriteJSON(w, render.NetworksJSON(result))
				})
			}

			printWarnings(cmd, result.Warnings)
			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&deployedOnly, "deployed", false, "Only show networks with deployment directories")

	return cmd
}
