package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// CoverageRenderer renders mainnet/testnet coverage per family
type CoverageRenderer struct {
	out io.Writer
}

// NewCoverageRenderer creates a new coverage renderer
func NewCoverageRenderer(out io.Writer) *CoverageRenderer {
	return &CoverageRenderer{out: out}
}

// Render prints one row per family
func (r *CoverageRenderer) Render(result *usecase.CoverageResult) error {
	if len(result.Report.Families) == 0 {
		fmt.Fprintln(r.out, "No families to report")
		return nil
	}

	t := newTable(r.out, table.Row{"Family", "Mainnet", "Testnet", "Networks"})
	for _, f := range result.Report.Families {
		notes := make([]string, 0, len(f.Mainnets)+len(f.Testnets)+len(f.Unknown)+1)
		notes = append(notes, f.Mainnets...)
		notes = append(notes, f.Testnets...)
		notes = append(notes, f.Unknown...)
		if len(f.Empty) > 0 {
			notes = append(notes, unknownStyle.Sprintf("(empty: %s)", strings.Join(f.Empty, ", ")))
		}
		t.AppendRow(table.Row{
			FamilyTitle(f.Family),
			mark(f.HasMainnet),
			mark(f.HasTestnet),
			strings.Join(notes, ", "),
		})
	}
	t.Render()

	fmt.Fprintln(r.out)
	if result.Incomplete == 0 {
		fmt.Fprintln(r.out, FormatSuccess("Every family is deployed on a mainnet and a testnet"))
	} else {
		fmt.Fprintln(r.out, FormatWarning(plural(result.Incomplete, "family is", "families are")+" missing a mainnet or a testnet deployment"))
	}
	return nil
}

func mark(ok bool) string {
	if ok {
		return mainnetStyle.Sprint("yes")
	}
	return missingStyle.Sprint("no")
}

var _ Renderer[*usecase.CoverageResult] = (*CoverageRenderer)(nil)
