package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// ListRenderer renders declared deployments grouped by network or family
type ListRenderer struct {
	out io.Writer
}

// NewListRenderer creates a new list renderer
func NewListRenderer(out io.Writer) *ListRenderer {
	return &ListRenderer{out: out}
}

// Render prints one block per group
func (r *ListRenderer) Render(result *usecase.ListResult) error {
	if result.Total == 0 && len(result.Groups) == 0 {
		fmt.Fprintln(r.out, "No deployments declared")
		return nil
	}

	for i, group := range result.Groups {
		if i > 0 {
			fmt.Fprintln(r.out)
		}

		if result.Aggregated {
			fmt.Fprintf(r.out, "%s %s\n",
				familyStyle.Sprintf(" %s ", FamilyTitle(domain.NetworkFamily(group.Key))),
				unknownStyle.Sprint(strings.Join(group.Networks, ", ")))
		} else {
			fmt.Fprintln(r.out, headingStyle.Sprint(group.Key))
		}

		if len(group.Records) == 0 {
			fmt.Fprintln(r.out, unknownStyle.Sprint("  no deployments"))
			continue
		}

		header := table.Row{"Contract", "Address"}
		if result.Aggregated {
			header = table.Row{"Network", "Contract", "Address"}
		}
		t := newTable(r.out, header)
		for _, record := range group.Records {
			contract := record.Contract
			if contract == "" {
				contract = "-"
			}
			row := table.Row{contract, addressStyle.Sprint(record.Address.Hex())}
			if result.Aggregated {
				row = append(table.Row{record.Network}, row...)
			}
			t.AppendRow(row)
		}
		t.Render()
	}

	groups := plural(len(result.Groups), "network", "networks")
	if result.Aggregated {
		groups = plural(len(result.Groups), "family", "families")
	}
	fmt.Fprintf(r.out, "\nFound %s across %s\n", plural(result.Total, "deployment", "deployments"), groups)
	return nil
}

var _ Renderer[*usecase.ListResult] = (*ListRenderer)(nil)
