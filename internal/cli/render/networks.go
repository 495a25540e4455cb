package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// NetworksRenderer renders the network table
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render prints every known network and any unknown deployment directory
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks found")
		return nil
	}

	t := newTable(r.out, table.Row{"Network", "Family", "Class", "Chain ID", "Aliases", "Deployments"})
	unknown := 0
	for _, n := range result.Networks {
		name := n.Name
		if !n.Known {
			name = missingStyle.Sprint(n.Name)
			unknown++
		}
		deployments := unknownStyle.Sprint("-")
		if len(n.Directories) > 0 {
			deployments = countStyle.Sprintf("%d (%s)", n.Deployments, strings.Join(n.Directories, ", "))
		}
		t.AppendRow(table.Row{
			name,
			FamilyTitle(n.Family),
			classLabel(n.Class),
			chainIDLabel(n.ChainID),
			strings.Join(n.Aliases, ", "),
			deployments,
		})
	}
	t.Render()

	if unknown > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s not in the network table",
			plural(unknown, "deployment directory is", "deployment directories are"))))
	}
	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
