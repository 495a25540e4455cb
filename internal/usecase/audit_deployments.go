package usecase

import (
	"context"

	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"github.com/trebuchet-org/evm-deployment-info/internal/reconcile"
)

// AuditDeploymentsParams contains parameters for auditing deployments
type AuditDeploymentsParams struct {
	Networks []string // empty for all networks
}

// AuditReport is the two-way difference plus what the readers skipped
type AuditReport struct {
	domain.AuditResult
	DeclaredTotal int
	DeployedTotal int
	Warnings      []domain.ArtifactParseWarning
}

// AuditDeployments compares declared deployments with the artifacts on disk
type AuditDeployments struct {
	declared DeclaredSource
	deployed DeployedSource
	catalog  NetworkCatalog
	sink     ProgressSink
}

// NewAuditDeployments creates a new AuditDeployments use case
func NewAuditDeployments(declared DeclaredSource, deployed DeployedSource, catalog NetworkCatalog, sink ProgressSink) *AuditDeployments {
	return &AuditDeployments{
		declared: declared,
		deployed: deployed,
		catalog:  catalog,
		sink:     sink,
	}
}

// Run executes the audit. Discrepancies are part of the result, not an error.
func (uc *AuditDeployments) Run(ctx context.Context, params AuditDeploymentsParams) (*AuditReport, error) {
	declared, err := readDeclared(ctx, uc.declared, uc.sink)
	if err != nil {
		return nil, err
	}
	deployed, warnings, err := readDeployed(ctx, uc.deployed, uc.sink)
	if err != nil {
		return nil, err
	}

	declared, deployed, err = filterPair(declared, deployed, params.Networks, uc.catalog)
	if err != nil {
		return nil, err
	}

	return &AuditReport{
		AuditResult:   reconcile.Audit(declared, deployed),
		DeclaredTotal: reconcile.Count(declared),
		DeployedTotal: reconcile.Count(deployed),
		Warnings:      warnings,
	}, nil
}
