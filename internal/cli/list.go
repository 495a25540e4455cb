package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/evm-deployment-info/internal/cli/render"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		out       outputFlags
		aggregate bool
		networks  []string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List declared deployments",
		Long: `List the deployments declared in the project's deployments manifest.

With --aggregate, networks of one family (Ethereum and Ethereum Sepolia,
for example) are merged into a single group.`,
		Example: `  # List declared deployments per network
  evm-deployment-info list

  # Group testnets with their mainnet
  evm-deployment-info list --aggregate

  # Export to CSV
  evm-deployment-info list --csv --outfile deployments.csv`,
		Args: cobra.MatchAll(cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
			return out.validate()
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				Aggregate: aggregate,
				Networks:  networks,
			})
			if err != nil {
				return err
			}

			if format, ok := out.format(); ok {
				return out.write(cmd, func(w io.Writer) error {
					return render.NewListExporter(w, format).Render(result)
				})
			}
			return render.NewListRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&aggregate, "aggregate", false, "Merge networks of the same family")
	cmd.Flags().BoolVar(&out.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&out.csv, "csv", false, "Output in CSV format")
	cmd.Flags().StringVarP(&out.outfile, "outfile", "o", "", "Write the JSON or CSV output to a file")
	cmd.Flags().StringSliceVarP(&networks, "network", "n", nil, "Only list these networks or families (repeatable)")

	return cmd
}
