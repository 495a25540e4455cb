package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
)

// Format is a machine-readable output format
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

type recordJSON struct {
	Network  string `json:"network"`
	Contract string `json:"contract,omitempty"`
	Address  string `json:"address"`
}

type groupJSON struct {
	Key         string       `json:"key"`
	Networks    []string     `json:"networks"`
	Deployments []recordJSON `json:"deployments"`
}

type listJSON struct {
	Aggregated bool        `json:"aggregated"`
	Total      int         `json:"total"`
	Groups     []groupJSON `json:"groups"`
}

type countJSON struct {
	Total    int                           `json:"total"`
	Networks []networkCountJSON            `json:"networks"`
	Warnings []domain.ArtifactParseWarning `json:"warnings"`
}

type networkCountJSON struct {
	Network string `json:"network"`
	ChainID uint64 `json:"chainId,omitempty"`
	Count   int    `json:"count"`
}

type auditJSON struct {
	Clean          bool                          `json:"clean"`
	Matched        int                           `json:"matched"`
	DeclaredTotal  int                           `json:"declaredTotal"`
	DeployedTotal  int                           `json:"deployedTotal"`
	OnlyInDeclared []recordJSON                  `json:"onlyInDeclared"`
	OnlyInDeployed []recordJSON                  `json:"onlyInDeployed"`
	Warnings       []domain.ArtifactParseWarning `json:"warnings"`
}

type coverageJSON struct {
	Families   []domain.FamilyCoverage       `json:"families"`
	Incomplete int                           `json:"incomplete"`
	Warnings   []domain.ArtifactParseWarning `json:"warnings"`
}

type networkJSON struct {
	Name        string               `json:"name"`
	Family      domain.NetworkFamily `json:"family"`
	Class       domain.NetworkClass  `json:"class"`
	ChainID     uint64               `json:"chainId,omitempty"`
	Aliases     []string             `json:"aliases,omitempty"`
	Known       bool                 `json:"known"`
	Directories []string             `json:"directories,omitempty"`
	Deployments int                  `json:"deployments"`
}

// WriteJSON writes v as indented JSON
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func toRecordsJSON(records []domain.DeploymentRecord) []recordJSON {
	out := make([]recordJSON, 0, len(records))
	for _, r := range records {
		out = append(out, recordJSON{Network: r.Network, Contract: r.Contract, Address: r.Address.Hex()})
	}
	return out
}

func warningsJSON(warnings []domain.ArtifactParseWarning) []domain.ArtifactParseWarning {
	if warnings == nil {
		return []domain.ArtifactParseWarning{}
	}
	return warnings
}

// CountJSON converts a count result to its JSON document
func CountJSON(result *usecase.CountResult) any {
	doc := countJSON{
		Total:    result.Total,
		Networks: make([]networkCountJSON, 0, len(result.Networks)),
		Warnings: warningsJSON(result.Warnings),
	}
	for _, n := range result.Networks {
		doc.Networks = append(doc.Networks, networkCountJSON{Network: n.Network, ChainID: n.ChainID, Count: n.Count})
	}
	return doc
}

// ListJSON converts a listing to its JSON document
func ListJSON(result *usecase.ListResult) any {
	doc := listJSON{
		Aggregated: result.Aggregated,
		Total:      result.Total,
		Groups:     make([]groupJSON, 0, len(result.Groups)),
	}
	for _, g := range result.Groups {
		doc.Groups = append(doc.Groups, groupJSON{
			Key:         g.Key,
			Networks:    g.Networks,
			Deployments: toRecordsJSON(g.Records),
		})
	}
	return doc
}

// AuditJSON converts an audit report to its JSON document
func AuditJSON(report *usecase.AuditReport) any {
	return auditJSON{
		Clean:          report.Clean(),
		Matched:        report.Matched,
		DeclaredTotal:  report.DeclaredTotal,
		DeployedTotal:  report.DeployedTotal,
		OnlyInDeclared: toRecordsJSON(report.OnlyInDeclared),
		OnlyInDeployed: toRecordsJSON(report.OnlyInDeployed),
		Warnings:       warningsJSON(report.Warnings),
	}
}

// CoverageJSON converts a coverage result to its JSON document
func CoverageJSON(result *usecase.CoverageResult) any {
	return coverageJSON{
		Families:   result.Report.Families,
		Incomplete: result.Incomplete,
		Warnings:   warningsJSON(result.Warnings),
	}
}

// NetworksJSON converts the network listing to its JSON document
func NetworksJSON(result *usecase.ListNetworksResult) any {
	out := make([]networkJSON, 0, len(result.Networks))
	for _, n := range result.Networks {
		out = append(out, networkJSON{
			Name:        n.Name,
			Family:      n.Family,
			Class:       n.Class,
			ChainID:     n.ChainID,
			Aliases:     n.Aliases,
			Known:       n.Known,
			Directories: n.Directories,
			Deployments: n.Deployments,
		})
	}
	return out
}

// WriteListCSV writes a listing as CSV, one row per record
func WriteListCSV(out io.Writer, result *usecase.ListResult) error {
	w := csv.NewWriter(out)
	header := []string{"network", "contract", "address"}
	if result.Aggregated {
		header = append([]string{"family"}, header...)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, g := range result.Groups {
		for _, r := range g.Records {
			row := []string{r.Network, r.Contract, r.Address.Hex()}
			if result.Aggregated {
				row = append([]string{g.Key}, row...)
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// ListExporter writes a listing in a machine-readable format
type ListExporter struct {
	out    io.Writer
	format Format
}

// NewListExporter creates a new list exporter
func NewListExporter(out io.Writer, format Format) *ListExporter {
	return &ListExporter{out: out, format: format}
}

// Render writes the listing
func (e *ListExporter) Render(result *usecase.ListResult) error {
	switch e.format {
	case FormatJSON:
		return WriteJSON(e.out, ListJSON(result))
	case FormatCSV:
		return WriteListCSV(e.out, result)
	default:
		return fmt.Errorf("unsupported format %s", strconv.Quote(string(e.format)))
	}
}

var _ Renderer[*usecase.ListResult] = (*ListExporter)(nil)
