package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// CountRenderer renders deployment totals
type CountRenderer struct {
	out io.Writer
}

// NewCountRenderer creates a new count renderer
func NewCountRenderer(out io.Writer) *CountRenderer {
	return &CountRenderer{out: out}
}

// Render prints a per-network table followed by the total
func (r *CountRenderer) Render(result *usecase.CountResult) error {
	if len(result.Networks) > 0 {
		t := newTable(r.out, table.Row{"Network", "Chain ID", "Deployments"})
		for _, n := range result.Networks {
			t.AppendRow(table.Row{n.Network, chainIDLabel(n.ChainID), countStyle.Sprint(n.Count)})
		}
		t.Render()
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "Found %d deployment(s)\n", result.Total)
	return nil
}

var _ Renderer[*usecase.CountResult] = (*CountRenderer)(nil)
