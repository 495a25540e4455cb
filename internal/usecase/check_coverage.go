package usecase

import (
	"context"

	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/reconcile"
)

// CheckCoverageParams contains parameters for the coverage check
type CheckCoverageParams struct {
	IncompleteOnly bool     // drop families with both a mainnet and a testnet
	Networks       []string // empty for all networks
}

// CoverageResult contains the coverage of every deployed family
type CoverageResult struct {
	Report     domain.CoverageReport
	Incomplete int // families missing a mainnet or a testnet, before IncompleteOnly
	Warnings   []domain.ArtifactParseWarning
}

// CheckCoverage reports which families are deployed on both mainnet and testnet
type CheckCoverage struct {
	deployed DeployedSource
	catalog  NetworkCatalog
	sink     ProgressSink
}

// NewCheckCoverage creates a new CheckCoverage use case
func NewCheckCoverage(deployed DeployedSource, catalog NetworkCatalog, sink ProgressSink) *CheckCoverage {
	return &CheckCoverage{
		deployed: deployed,
		catalog:  catalog,
		sink:     sink,
	}
}

// Run executes the coverage check
func (uc *CheckCoverage) Run(ctx context.Context, params CheckCoverageParams) (*CoverageResult, error) {
	deployed, warnings, err := readDeployed(ctx, uc.deployed, uc.sink)
	if err != nil {
		return nil, err
	}

	deployed, err = reconcile.Filter(deployed, params.Networks, uc.catalog)
	if err != nil {
		return nil, err
	}

	report := reconcile.Coverage(deployed, uc.catalog, uc.catalog)
	incomplete := report.Incomplete()
	if params.IncompleteOnly {
		report.Families = incomplete
	}

	return &CoverageResult{
		Report:     report,
		Incomplete: len(incomplete),
		Warnings:   warnings,
	}, nil
}
