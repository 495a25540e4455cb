package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// AuditRenderer renders the difference between declared and deployed records
type AuditRenderer struct {
	out io.Writer
}

// NewAuditRenderer creates a new audit renderer
func NewAuditRenderer(out io.Writer) *AuditRenderer {
	return &AuditRenderer{out: out}
}

// Render prints both sides of the difference and a summary line
func (r *AuditRenderer) Render(report *usecase.AuditReport) error {
	fmt.Fprintf(r.out, "Declared: %s\n", plural(report.DeclaredTotal, "deployment", "deployments"))
	fmt.Fprintf(r.out, "Deployed: %s\n", plural(report.DeployedTotal, "deployment", "deployments"))
	fmt.Fprintf(r.out, "Matched:  %d\n", report.Matched)

	if report.Clean() {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatSuccess("Declared and deployed deployments match"))
		return nil
	}

	r.renderSide("Declared but not deployed", report.OnlyInDeclared)
	r.renderSide("Deployed but not declared", report.OnlyInDeployed)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%d missing, %d undeclared",
		len(report.OnlyInDeclared), len(report.OnlyInDeployed))))
	return nil
}

func (r *AuditRenderer) renderSide(title string, records []domain.DeploymentRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, missingStyle.Sprintf("%s (%d)", title, len(records)))

	t := newTable(r.out, table.Row{"Network", "Contract", "Address"})
	for _, record := range records {
		contract := record.Contract
		if contract == "" {
			contract = "-"
		}
		t.AppendRow(table.Row{record.Network, contract, addressStyle.Sprint(record.Address.Hex())})
	}
	t.Render()
}

var _ Renderer[*usecase.AuditReport] = (*AuditRenderer)(nil)
