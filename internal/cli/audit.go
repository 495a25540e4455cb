package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/evm-deployment-info/internal/cli/render"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// NewAuditCmd creates the audit command
func NewAuditCmd() *cobra.Command {
	var (
		jsonOutput bool
		networks   []string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Compare declared deployments with the artifacts on disk",
		Long: `Compare the deployments declared in the manifest with the artifacts in the
deployments directory and list what only one side holds.

The command exits with a non-zero status when the two sides differ.`,
		Example: `  # Audit every network
  evm-deployment-info audit

  # Audit Polygon only, as JSON
  evm-deployment-info audit --network Polygon --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			report, err := app.AuditDeployments.Run(cmd.Context(), usecase.AuditDeploymentsParams{
				Networks: networks,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				out := &outputFlags{json: true}
				err = out.write(cmd, func(w io.Writer) error {
					return render.WriteJSON(w, render.AuditJSON(report))
				})
			} else {
				printWarnings(cmd, report.Warnings)
				err = render.NewAuditRenderer(cmd.OutOrStdout()).Render(report)
			}
			if err != nil {
				return err
			}

			if !report.Clean() {
				return domain.ErrAuditMismatch
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringSliceVarP(&networks, "network", "n", nil, "Only audit these networks or families (repeatable)")

	return cmd
}
